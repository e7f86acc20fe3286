// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"code.hybscloud.com/ringq/internal/bench"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing suite: %v", err)
	}
	return path
}

// TestLoadSuite tests parsing a full suite definition.
func TestLoadSuite(t *testing.T) {
	path := writeSuite(t, `
cases:
  - name: small-ring
    capacity: 16
    iterations: 1000000
  - name: pinned
    capacity: 100000
    iterations: 10000000
    producer_cpu: 1
    consumer_cpu: 0
`)

	cases, err := bench.LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("cases: got %d, want 2", len(cases))
	}

	first := cases[0]
	if first.Name != "small-ring" || first.Capacity != 16 || first.Iterations != 1000000 {
		t.Errorf("first case: got %+v", first)
	}
	// Omitted CPUs mean unpinned, not core 0
	if first.ProducerCPU != -1 || first.ConsumerCPU != -1 {
		t.Errorf("first case CPUs: got %d/%d, want -1/-1", first.ProducerCPU, first.ConsumerCPU)
	}

	second := cases[1]
	if second.ProducerCPU != 1 || second.ConsumerCPU != 0 {
		t.Errorf("second case CPUs: got %d/%d, want 1/0", second.ProducerCPU, second.ConsumerCPU)
	}
}

// TestLoadSuiteDefaultNames tests that unnamed cases get positional names.
func TestLoadSuiteDefaultNames(t *testing.T) {
	path := writeSuite(t, `
cases:
  - capacity: 8
    iterations: 100
  - capacity: 8
    iterations: 100
`)

	cases, err := bench.LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if cases[0].Name != "case-0" || cases[1].Name != "case-1" {
		t.Errorf("names: got %q, %q", cases[0].Name, cases[1].Name)
	}
}

// TestLoadSuiteErrors tests the failure modes of suite loading.
func TestLoadSuiteErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := bench.LoadSuite(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeSuite(t, "cases: [not: {valid")
		if _, err := bench.LoadSuite(path); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("empty suite", func(t *testing.T) {
		path := writeSuite(t, "cases: []")
		if _, err := bench.LoadSuite(path); err == nil {
			t.Fatal("expected error")
		}
	})
}
