// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench drives a producer and a consumer across a ringq ring
// and measures sustained transfer throughput.
//
// The producer pushes the sequence 0..N-1 while the consumer verifies
// it arrives intact, busy-polling on both sides. Each side can be
// pinned to a processor core for measurement stability.
package bench

import (
	"fmt"
	"runtime"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"github.com/google/uuid"

	"code.hybscloud.com/ringq"
	"code.hybscloud.com/ringq/internal/affinity"
)

// Case describes one throughput measurement.
type Case struct {
	Name       string `yaml:"name"`
	Capacity   int    `yaml:"capacity"`
	Iterations int64  `yaml:"iterations"`

	// CPU core for each side; -1 leaves the thread unpinned.
	ProducerCPU int `yaml:"producer_cpu"`
	ConsumerCPU int `yaml:"consumer_cpu"`
}

// Result is the outcome of a completed case.
type Result struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Capacity   int           `json:"capacity"`
	Iterations int64         `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	OpsPerSec  float64       `json:"ops_per_sec"`
	StartedAt  time.Time     `json:"started_at"`
}

// Run executes a single case: the consumer runs on its own locked
// thread, the producer on the calling goroutine's thread. The clock
// covers the full push loop plus the wait for the consumer to drain
// the ring, mirroring what the consumer actually processed.
//
// A sequence mismatch observed by the consumer is returned as an
// error; full and empty rejections are retried with a spin wait.
func Run(c Case) (Result, error) {
	if c.Capacity < 2 {
		return Result{}, fmt.Errorf("bench: capacity must be >= 2, got %d", c.Capacity)
	}
	if c.Iterations <= 0 {
		return Result{}, fmt.Errorf("bench: iterations must be positive, got %d", c.Iterations)
	}

	q := ringq.NewRing[int64](c.Capacity)

	// Either side sets abort on early exit so the peer's retry loop
	// cannot spin forever.
	var abort atomix.Bool
	consumerErr := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := affinity.Pin(c.ConsumerCPU); err != nil {
			abort.Store(true)
			consumerErr <- err
			return
		}

		sw := spin.Wait{}
		for i := int64(0); i < c.Iterations; i++ {
			var v int64
			for {
				var err error
				if v, err = q.Dequeue(); err == nil {
					break
				}
				if abort.Load() {
					consumerErr <- nil
					return
				}
				sw.Once()
			}
			sw.Reset()

			if v != i {
				abort.Store(true)
				consumerErr <- fmt.Errorf("bench: sequence mismatch at %d: got %d", i, v)
				return
			}
		}
		consumerErr <- nil
	}()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := affinity.Pin(c.ProducerCPU); err != nil {
		abort.Store(true)
		<-consumerErr
		return Result{}, err
	}

	startedAt := time.Now()
	sw := spin.Wait{}
	for i := int64(0); i < c.Iterations; i++ {
		v := i
		for q.Enqueue(&v) != nil {
			if abort.Load() {
				return Result{}, <-consumerErr
			}
			sw.Once()
		}
		sw.Reset()
	}

	// Wait until the consumer has caught up before stopping the clock.
	// Drained is a racy approximation; the authoritative completion
	// signal is the consumer finishing its verification loop below.
	for !q.Drained() {
		if abort.Load() {
			break
		}
		sw.Once()
	}
	elapsed := time.Since(startedAt)

	if err := <-consumerErr; err != nil {
		return Result{}, err
	}

	return Result{
		ID:         uuid.New().String()[:8],
		Name:       c.Name,
		Capacity:   c.Capacity,
		Iterations: c.Iterations,
		Elapsed:    elapsed,
		OpsPerSec:  float64(c.Iterations) / elapsed.Seconds(),
		StartedAt:  startedAt,
	}, nil
}
