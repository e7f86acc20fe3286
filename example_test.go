// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"fmt"

	"code.hybscloud.com/ringq"
)

// ExampleNewRing demonstrates the full/empty boundary of a small ring.
func ExampleNewRing() {
	// 4 slots, 3 usable: one slot disambiguates full from empty.
	q := ringq.NewRing[int](4)

	for i := 1; i <= 4; i++ {
		v := i
		if err := q.Enqueue(&v); err != nil {
			fmt.Println("rejected:", i)
		}
	}

	for {
		v, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println("popped:", v)
	}

	// Output:
	// rejected: 4
	// popped: 1
	// popped: 2
	// popped: 3
}
