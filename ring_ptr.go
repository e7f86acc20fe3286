// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingPtr is an SPSC ring for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines: the producer
// transfers ownership of the pointed-to object to the consumer.
type RingPtr struct {
	_           pad
	readIdx     atomix.Uint64
	_           pad
	cachedWrite uint64
	_           pad
	writeIdx    atomix.Uint64
	_           pad
	cachedRead  uint64
	_           pad
	buffer      []unsafe.Pointer
	slots       uint64
}

// NewRingPtr creates a new SPSC ring for unsafe.Pointer values with
// exactly capacity slots, of which capacity-1 are usable.
func NewRingPtr(capacity int) *RingPtr {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}

	return &RingPtr{
		buffer: make([]unsafe.Pointer, capacity),
		slots:  uint64(capacity),
	}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *RingPtr) Enqueue(elem unsafe.Pointer) error {
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

	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to q.buffer[writeIdx] = elem
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(writeIdx)*ptrSize)) = elem
	q.writeIdx.StoreRelease(nextWrite)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) if the ring is empty.
func (q *RingPtr) Dequeue() (unsafe.Pointer, error) {
	readIdx := q.readIdx.LoadRelaxed()

	if readIdx == q.cachedWrite {
		q.cachedWrite = q.writeIdx.LoadAcquire()
		if readIdx == q.cachedWrite {
			return nil, ErrWouldBlock
		}
	}

	// Equivalent to elem := q.buffer[readIdx]
	elem := *(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(readIdx)*ptrSize))
	nextRead := readIdx + 1
	if nextRead == q.slots {
		nextRead = 0
	}
	q.readIdx.StoreRelease(nextRead)
	return elem, nil
}

// Cap returns the usable capacity: one slot fewer than allocated.
func (q *RingPtr) Cap() int {
	return int(q.slots) - 1
}

// Drained reports whether both cursors currently coincide.
// Best-effort snapshot; see Ring.Drained.
func (q *RingPtr) Drained() bool {
	return q.readIdx.LoadRelaxed() == q.writeIdx.LoadRelaxed()
}
