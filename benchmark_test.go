// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"sync"
	"testing"
	"unsafe"

	"code.hybscloud.com/spin"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Single-Goroutine Baselines
// =============================================================================

func BenchmarkRing_SingleOp(b *testing.B) {
	q := ringq.NewRing[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkRingIndirect_SingleOp(b *testing.B) {
	q := ringq.NewRingIndirect(1024)

	b.ResetTimer()
	for i := range b.N {
		q.Enqueue(uintptr(i))
		q.Dequeue()
	}
}

func BenchmarkRingPtr_SingleOp(b *testing.B) {
	q := ringq.NewRingPtr(1024)
	val := 42

	b.ResetTimer()
	for range b.N {
		q.Enqueue(unsafe.Pointer(&val))
		q.Dequeue()
	}
}

// =============================================================================
// Two-Goroutine Pipeline
// =============================================================================

func BenchmarkRing_Pipeline(b *testing.B) {
	q := ringq.NewRing[int64](4096)

	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for i := int64(0); i < int64(b.N); i++ {
			var err error
			for _, err = q.Dequeue(); err != nil; _, err = q.Dequeue() {
				sw.Once()
			}
			sw.Reset()
		}
	}()

	sw := spin.Wait{}
	for i := int64(0); i < int64(b.N); i++ {
		v := i
		for q.Enqueue(&v) != nil {
			sw.Once()
		}
		sw.Reset()
	}
	wg.Wait()
}

func BenchmarkRing_PipelineSmallRing(b *testing.B) {
	q := ringq.NewRing[int64](100)

	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for i := int64(0); i < int64(b.N); i++ {
			var err error
			for _, err = q.Dequeue(); err != nil; _, err = q.Dequeue() {
				sw.Once()
			}
			sw.Reset()
		}
	}()

	sw := spin.Wait{}
	for i := int64(0); i < int64(b.N); i++ {
		v := i
		for q.Enqueue(&v) != nil {
			sw.Once()
		}
		sw.Reset()
	}
	wg.Wait()
}
