package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-rply/arr"
	"github.com/hasbyte1/go-rply/collections"
)

func ExampleFlatten() {
	flat, _ := arr.Flatten(collections.List{1, collections.List{2, 3}, collections.List{4, collections.List{5, 6}}})
	fmt.Println(flat)
	// Output: [1 2 3 4 5 6]
}

func ExampleMode() {
	single, _ := arr.Mode(collections.List{1, 2, 2, 3})
	tie, _ := arr.Mode(collections.List{1, 1, 2, 2})
	fmt.Println(single, tie)
	// Output: 2 [1 2]
}

func ExampleModeOf() {
	winners, _ := arr.ModeOf([]string{"b", "a", "b", "a", "c"})
	fmt.Println(winners)
	// Output: [a b]
}

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleZip() {
	for _, p := range arr.Zip([]string{"a", "b"}, []int{1, 2}) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	}
	// Output:
	// a=1
	// b=2
}
