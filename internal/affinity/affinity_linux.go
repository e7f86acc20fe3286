// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setAffinity pins the current thread via sched_setaffinity(2).
// Thread id 0 means the calling thread.
func setAffinity(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu=%d): %w", cpu, err)
	}
	return nil
}
