// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/atomix"

// Ring is a single-producer single-consumer bounded FIFO ring buffer.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's read cursor and vice versa,
// reducing cross-core cache line traffic to the full/empty boundary.
//
// Unlike mask-based rings, cursors wrap modulo the slot count, so any
// capacity >= 2 is honored exactly with no power-of-2 rounding. One slot
// stays permanently unused to distinguish full from empty: a ring built
// with capacity n holds at most n-1 elements.
//
// Memory: O(capacity) with no per-slot overhead
type Ring[T any] struct {
	_           pad
	readIdx     atomix.Uint64 // Consumer reads from here
	_           pad
	cachedWrite uint64 // Consumer's cached view of writeIdx
	_           pad
	writeIdx    atomix.Uint64 // Producer writes here
	_           pad
	cachedRead  uint64 // Producer's cached view of readIdx
	_           pad
	buffer      []T
	slots       uint64
}

// NewRing creates a new SPSC ring with exactly capacity slots,
// of which capacity-1 are usable.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}

	return &Ring[T]{
		buffer: make([]T, capacity),
		slots:  uint64(capacity),
	}
}

// Enqueue adds an element to the ring (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *Ring[T]) Enqueue(elem *T) error {
	writeIdx := q.writeIdx.LoadRelaxed()
	nextWrite := writeIdx + 1
	if nextWrite == q.slots {
		nextWrite = 0
	}

	if nextWrite == q.cachedRead {
		q.cachedRead = q.readIdx.LoadAcquire()
		if nextWrite == q.cachedRead {
			return ErrWouldBlock
		}
	}

	q.buffer[writeIdx] = *elem
	q.writeIdx.StoreRelease(nextWrite)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (q *Ring[T]) Dequeue() (T, error) {
	readIdx := q.readIdx.LoadRelaxed()

	if readIdx == q.cachedWrite {
		q.cachedWrite = q.writeIdx.LoadAcquire()
		if readIdx == q.cachedWrite {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[readIdx]
	var zero T
	q.buffer[readIdx] = zero
	nextRead := readIdx + 1
	if nextRead == q.slots {
		nextRead = 0
	}
	q.readIdx.StoreRelease(nextRead)
	return elem, nil
}

// Cap returns the usable capacity: one slot fewer than allocated.
func (q *Ring[T]) Cap() int {
	return int(q.slots) - 1
}

// Drained reports whether both cursors currently coincide.
//
// Both loads are relaxed and may be issued from any goroutine, so the
// result is a best-effort snapshot, not a synchronization point. It is
// only meaningful as a completion signal once the producer has stopped
// enqueueing; drivers use it to wait for the consumer to catch up.
func (q *Ring[T]) Drained() bool {
	return q.readIdx.LoadRelaxed() == q.writeIdx.LoadRelaxed()
}
