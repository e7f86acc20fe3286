// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity binds the calling OS thread to a processor core.
//
// Pinning the producer and consumer threads to distinct cores keeps
// throughput measurements stable by eliminating migration noise. It is
// a tuning step only: ring correctness never depends on it.
package affinity

// Pin binds the calling OS thread to the given CPU core.
//
// The caller must hold the thread via runtime.LockOSThread for the
// binding to mean anything. Pin(-1) is a no-op, letting call sites
// treat "unpinned" uniformly. On platforms without affinity support
// Pin succeeds without effect.
func Pin(cpu int) error {
	if cpu < 0 {
		return nil
	}
	return setAffinity(cpu)
}
