// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingIndirect is an SPSC ring for uintptr values.
//
// Intended for pool indices and handles: the producer enqueues a small
// integer identifying an externally owned object and the consumer
// resolves it. Same algorithm and cursor layout as Ring.
type RingIndirect struct {
	_           pad
	readIdx     atomix.Uint64
	_           pad
	cachedWrite uint64
	_           pad
	writeIdx    atomix.Uint64
	_           pad
	cachedRead  uint64
	_           pad
	buffer      []uintptr
	slots       uint64
}

// NewRingIndirect creates a new SPSC ring for uintptr values with
// exactly capacity slots, of which capacity-1 are usable.
func NewRingIndirect(capacity int) *RingIndirect {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}

	return &RingIndirect{
		buffer: make([]uintptr, capacity),
		slots:  uint64(capacity),
	}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *RingIndirect) Enqueue(elem uintptr) error {
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
	// Equivalent to q.buffer[writeIdx] = elem; writeIdx < len(buffer)
	// holds because cursors only ever wrap back to 0 at len(buffer).
	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(writeIdx)*ptrSize)) = elem
	q.writeIdx.StoreRelease(nextWrite)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) if the ring is empty.
func (q *RingIndirect) Dequeue() (uintptr, error) {
	readIdx := q.readIdx.LoadRelaxed()

	if readIdx == q.cachedWrite {
		q.cachedWrite = q.writeIdx.LoadAcquire()
		if readIdx == q.cachedWrite {
			return 0, ErrWouldBlock
		}
	}

	// Equivalent to elem := q.buffer[readIdx]
	elem := *(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(readIdx)*ptrSize))
	nextRead := readIdx + 1
	if nextRead == q.slots {
		nextRead = 0
	}
	q.readIdx.StoreRelease(nextRead)
	return elem, nil
}

// Cap returns the usable capacity: one slot fewer than allocated.
func (q *RingIndirect) Cap() int {
	return int(q.slots) - 1
}

// Drained reports whether both cursors currently coincide.
// Best-effort snapshot; see Ring.Drained.
func (q *RingIndirect) Drained() bool {
	return q.readIdx.LoadRelaxed() == q.writeIdx.LoadRelaxed()
}
