// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

// setAffinity is a no-op on platforms without sched_setaffinity(2).
// Keeps the API identical so callers need no conditional compilation.
func setAffinity(cpu int) error {
	return nil
}
