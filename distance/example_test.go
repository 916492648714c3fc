package distance_test

import (
	"fmt"

	"github.com/katalvlaran/sentalign/distance"
)

// ExampleCost prices the same pair of segment groups as different operations.
func ExampleCost() {
	fmt.Println("1-1:", distance.Cost(10, 12, 0, 0))
	fmt.Println("1-0:", distance.Cost(10, 0, 0, 0))
	fmt.Println("2-1:", distance.Cost(5, 10, 5, 0))
	fmt.Println("1-2:", distance.Cost(5, 10, 0, 5))
	fmt.Println("2-2:", distance.Cost(5, 5, 5, 5))
	// Output:
	// 1-1: 20
	// 1-0: 694
	// 2-1: 230
	// 1-2: 379
	// 2-2: 440
}
