// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringbench measures ringq transfer throughput between two
// pinned threads.
//
// A single ad-hoc case:
//
//	ringbench -capacity 100000 -iters 10000000 -producer-cpu 1 -consumer-cpu 0
//
// Or a YAML suite, optionally recording history:
//
//	ringbench -suite cases.yaml -json -db bench.db
//
// The process exits with status 1 if the consumer observes any value
// out of sequence.
package main

import (
	"flag"
	"fmt"
	"os"

	"code.hybscloud.com/ringq/internal/bench"
	"code.hybscloud.com/ringq/internal/report"
)

func main() {
	var (
		capacity    = flag.Int("capacity", 100000, "ring capacity in slots (usable is one less)")
		iters       = flag.Int64("iters", 10000000, "number of values to transfer")
		producerCPU = flag.Int("producer-cpu", -1, "CPU core for the producer thread (-1: unpinned)")
		consumerCPU = flag.Int("consumer-cpu", -1, "CPU core for the consumer thread (-1: unpinned)")
		suitePath   = flag.String("suite", "", "YAML suite file; overrides the single-case flags")
		jsonOut     = flag.Bool("json", false, "emit results as JSON instead of text")
		dbPath      = flag.String("db", "", "SQLite database to append results to")
	)
	flag.Parse()

	if err := run(*capacity, *iters, *producerCPU, *consumerCPU, *suitePath, *jsonOut, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "ringbench: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done")
}

func run(capacity int, iters int64, producerCPU, consumerCPU int, suitePath string, jsonOut bool, dbPath string) error {
	cases := []bench.Case{{
		Name:        "ringbench",
		Capacity:    capacity,
		Iterations:  iters,
		ProducerCPU: producerCPU,
		ConsumerCPU: consumerCPU,
	}}

	if suitePath != "" {
		loaded, err := bench.LoadSuite(suitePath)
		if err != nil {
			return err
		}
		cases = loaded
	}

	results, err := bench.RunAll(cases)

	// Completed results are still reported and recorded when a later
	// case fails; the error decides the exit status afterwards.
	var writeErr error
	if jsonOut {
		writeErr = report.WriteJSON(os.Stdout, results)
	} else {
		writeErr = report.WriteText(os.Stdout, results)
	}
	if writeErr == nil && dbPath != "" {
		writeErr = record(dbPath, results)
	}

	if err != nil {
		return err
	}
	return writeErr
}

func record(dbPath string, results []bench.Result) error {
	store, err := report.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		if err := store.Insert(r); err != nil {
			return err
		}
	}
	return nil
}
