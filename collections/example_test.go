package collections_test

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-rply/collections"
)

func ExampleDict() {
	d := collections.NewDict()
	_ = d.Set("b", 1)
	_ = d.Set("a", 2)
	_ = d.Set("b", 3)
	fmt.Println(d.Keys(), d.Values())
	fmt.Println(d)
	// Output:
	// [b a] [3 2]
	// {b: 3, a: 2}
}

func ExampleDict_Items() {
	d, _ := collections.DictOf(
		collections.Pair{Key: "x", Value: 1},
		collections.Pair{Key: "y", Value: 2},
	)
	fmt.Println(d.Items())
	// Output: [(x, 1) (y, 2)]
}

func ExampleDict_MarshalJSON() {
	d, _ := collections.DictOf(
		collections.Pair{Key: "name", Value: "ann"},
		collections.Pair{Key: "age", Value: 41},
	)
	b, _ := json.Marshal(d)
	fmt.Println(string(b))
	// Output: {"name":"ann","age":41}
}
