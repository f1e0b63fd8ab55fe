// SPDX-License-Identifier: MIT
package input_test

import (
	"fmt"

	"github.com/katalvlaran/numcore/input"
)

func ExampleParseList() {
	xs, err := input.ParseList("0,5 1; 2,25, 4")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(xs)
	// Output: [0.5 1 2.25 4]
}
