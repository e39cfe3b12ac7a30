package shape_test

import (
	"fmt"

	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/shape"
)

func ExampleOf() {
	for _, v := range []any{
		collections.List{1, 2},
		collections.Tuple{1, 2},
		collections.NewDict(),
		"text",
	} {
		fmt.Println(shape.Of(v))
	}
	// Output:
	// List
	// Tuple
	// Dict
	// Other
}
