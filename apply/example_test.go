package apply_test

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-rply/apply"
	"github.com/hasbyte1/go-rply/collections"
)

func ExampleLapply() {
	squares, _ := apply.Lapply(collections.List{1, 2, 3}, func(x any) any {
		return x.(int) * x.(int)
	})
	fmt.Println(squares)
	// Output: {0: 1, 1: 4, 2: 9}
}

func ExampleLapply_keys() {
	lengths, _ := apply.Lapply(collections.List{"go", "rust"}, func(x any) any {
		return len(x.(string))
	}, "first", "second")
	fmt.Println(lengths)
	// Output: {first: 2, second: 4}
}

func ExampleSapply() {
	upper, _ := apply.Sapply(collections.List{"a", "b"}, func(x any) any {
		return strings.ToUpper(x.(string))
	}, apply.ReturnTuple)
	fmt.Printf("%T %v\n", upper, upper)
	// Output: collections.Tuple [A B]
}

func ExampleRapply() {
	doubled, _ := apply.Rapply(collections.List{1, "a", 2, 3.5}, func(x any) any {
		return x.(int) * 2
	}, reflect.TypeFor[int]())
	fmt.Println(doubled)
	// Output: [2 4]
}
