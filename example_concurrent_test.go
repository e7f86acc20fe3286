// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer
// goroutines. These trigger false positives with Go's race detector
// because the ring's synchronization runs through atomic orderings the
// detector cannot see. The examples are correct; they're excluded from
// race testing.

package ringq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/ringq"
)

// Example_pipeline demonstrates a two-stage pipeline over SPSC rings.
func Example_pipeline() {
	// Pipeline: Generate → Double → Collect
	stage1to2 := ringq.NewRing[int](8)
	stage2to3 := ringq.NewRing[int](8)

	var wg sync.WaitGroup
	results := make([]int, 0, 5)

	// Stage 1: Generate numbers 1-5
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 1; i <= 5; i++ {
			v := i
			for stage1to2.Enqueue(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	// Stage 2: Double each number
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoffDeq := iox.Backoff{}
		backoffEnq := iox.Backoff{}
		for processed := 0; processed < 5; processed++ {
			var v int
			for {
				var err error
				if v, err = stage1to2.Dequeue(); err == nil {
					break
				}
				backoffDeq.Wait()
			}
			backoffDeq.Reset()
			doubled := v * 2
			for stage2to3.Enqueue(&doubled) != nil {
				backoffEnq.Wait()
			}
			backoffEnq.Reset()
		}
	}()

	// Stage 3: Collect results on the main goroutine
	backoff := iox.Backoff{}
	for len(results) < 5 {
		v, err := stage2to3.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		results = append(results, v)
	}
	wg.Wait()

	for i, v := range results {
		fmt.Printf("Stage output %d: %d\n", i, v)
	}

	// Output:
	// Stage output 0: 2
	// Stage output 1: 4
	// Stage output 2: 6
	// Stage output 3: 8
	// Stage output 4: 10
}
