// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// Queue is the combined producer-consumer interface for an SPSC ring.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both
// operations return ErrWouldBlock when they cannot proceed (ring full
// or empty); callers decide between spinning, backing off, or dropping.
//
// The interface intentionally excludes length because an accurate count
// requires synchronizing both cursors across cores. Track counts in
// application logic when needed. Drained is the one deliberate
// exception: a racy, best-effort completion signal for drivers.
//
// Example:
//
//	q := ringq.NewRing[int](1024)
//
//	// Enqueue
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Handle full ring
//	}
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
	Drained() bool
}

// Producer is the interface for enqueueing elements.
//
// Exactly one goroutine may act as the producer. The element is passed
// by pointer to avoid copying large structs; the ring stores a copy of
// the pointed-to value, so the original can be modified after Enqueue
// returns.
type Producer[T any] interface {
	// Enqueue adds an element to the ring (non-blocking).
	// The element is copied into the ring's internal buffer.
	// Returns nil on success, ErrWouldBlock if the ring is full.
	//
	// Calling Enqueue from two goroutines concurrently is undefined
	// behavior; the ring performs no detection.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// Exactly one goroutine may act as the consumer. The element is
// returned by value (copied out of the ring's buffer); the vacated slot
// is cleared to allow garbage collection of referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the ring (non-blocking).
	// Returns the dequeued element on success.
	// Returns (zero-value, ErrWouldBlock) if the ring is empty.
	//
	// Calling Dequeue from two goroutines concurrently is undefined
	// behavior; the ring performs no detection.
	Dequeue() (T, error)
}

// QueueIndirect is the combined interface for indirect (uintptr) rings.
//
// QueueIndirect passes indices or handles instead of full objects. This
// is useful for buffer pools, object pools, or any index-based data
// structure.
//
// Example (buffer pool):
//
//	pool := make([][]byte, 1024)
//	freeList := ringq.NewRingIndirect(1025)
//
//	// Initialize pool
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    freeList.Enqueue(uintptr(i))
//	}
//
//	// Allocate
//	idx, _ := freeList.Dequeue()
//	buf := pool[idx]
//
//	// Free
//	freeList.Enqueue(idx)
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect
	Cap() int
	Drained() bool
}

// ProducerIndirect enqueues uintptr values (non-blocking).
type ProducerIndirect interface {
	// Enqueue adds an element to the ring.
	// Returns ErrWouldBlock immediately if the ring is full.
	Enqueue(elem uintptr) error
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns an element from the ring.
	// Returns (0, ErrWouldBlock) immediately if the ring is empty.
	Dequeue() (uintptr, error)
}

// QueuePtr is the combined interface for unsafe.Pointer rings.
//
// QueuePtr passes pointers directly without copying. This enables
// zero-copy transfer of objects between the producer and the consumer.
//
// Ownership semantics: the producer transfers ownership to the
// consumer. After enqueueing, the producer should not access the
// object.
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr
	Cap() int
	Drained() bool
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking).
type ProducerPtr interface {
	// Enqueue adds an element to the ring.
	// Returns ErrWouldBlock immediately if the ring is full.
	Enqueue(elem unsafe.Pointer) error
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns an element from the ring.
	// Returns (nil, ErrWouldBlock) immediately if the ring is empty.
	Dequeue() (unsafe.Pointer, error)
}
