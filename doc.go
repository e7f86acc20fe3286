// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a bounded single-producer single-consumer
// ring queue.
//
// The queue is a Lamport ring buffer with cached peer cursors: the
// producer keeps a private copy of the consumer's read cursor and only
// re-synchronizes when the local check says the ring might be full, and
// vice versa. Both operations are wait-free, O(1), and allocation-free.
//
// Cursors wrap modulo the slot count with one slot permanently unused
// to distinguish full from empty, so capacity is honored exactly: a
// ring built with n slots holds at most n-1 elements, for any n >= 2.
// There is no power-of-2 rounding.
//
// # Quick Start
//
//	q := ringq.NewRing[Event](1024)   // generic elements
//	q := ringq.NewRingIndirect(1024)  // uintptr handles
//	q := ringq.NewRingPtr(1024)       // unsafe.Pointer, zero-copy
//
// # Basic Usage
//
//	q := ringq.NewRing[int](1024)
//
//	// Enqueue (non-blocking)
//	value := 42
//	err := q.Enqueue(&value)
//	if ringq.IsWouldBlock(err) {
//	    // Ring is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // Ring is empty - try again later
//	}
//
// # Pipeline Pattern
//
//	q := ringq.NewRing[Data](1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Error Handling
//
// Operations return [ErrWouldBlock] when they cannot proceed. This
// error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency and signals an expected condition, never a failure:
//
//	ringq.IsWouldBlock(err)  // true if ring full/empty
//	ringq.IsSemantic(err)    // true if control flow signal
//	ringq.IsNonFailure(err)  // true for nil or ErrWouldBlock
//
// There are no blocking variants, no peek, and no built-in retry or
// cancellation; callers wishing to wait call again, typically through
// iox.Backoff or spin.Wait.
//
// # Thread Safety
//
// Exactly one goroutine may enqueue and exactly one may dequeue.
// The cursors are the sole synchronization mechanism: each is written
// by one side with release ordering and read by the other with acquire
// ordering, which is what makes the payload slots safe to hand over
// without a lock. Concurrent producers or concurrent consumers are
// undefined behavior including data corruption, with no detection.
//
// # Completion Signaling
//
// Drained reports whether the two cursors coincide, using relaxed loads
// from whatever goroutine asks. Reading both cursors together from a
// non-owning goroutine is inherently racy, so treat the result as a
// best-effort approximation: it is meaningful only once the producer
// has stopped, e.g. for a driver waiting for the consumer to catch up.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe happens-before relationships established through
// atomic memory orderings on separate variables. Concurrent tests are
// skipped under the race detector via the RaceEnabled constant.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering.
package ringq
