// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report renders and persists benchmark results.
package report

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"

	"code.hybscloud.com/ringq/internal/bench"
)

// WriteText prints one human-readable line per result, in the classic
// "N iters in S secs" form.
func WriteText(w io.Writer, results []bench.Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s: %d iters in %.3f secs, %.0f ops/sec\n",
			r.Name, r.Iterations, r.Elapsed.Seconds(), r.OpsPerSec)
		if err != nil {
			return fmt.Errorf("report: writing text: %w", err)
		}
	}
	return nil
}

// WriteJSON encodes results as a JSON array.
func WriteJSON(w io.Writer, results []bench.Result) error {
	enc := sonnet.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	return nil
}
