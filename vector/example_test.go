// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/luminol/vector"
)

func ExampleVector_Normalized() {
	v := vector.Vec3(1.0, 2, 2)
	fmt.Println(v, v.Length())
	fmt.Println(v.Normalized())

	// Output:
	// (1, 2, 2) 3
	// (0.3333333333333333, 0.6666666666666666, 0.6666666666666666)
}

func ExampleCross() {
	x := vector.Vec3(1.0, 0, 0)
	y := vector.Vec3(0.0, 1, 0)
	fmt.Println(vector.Cross(x, y))

	// Output:
	// (0, 0, 1)
}
