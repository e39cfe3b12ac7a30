package shape

import (
	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/frame"
)

// IsList reports whether x is a [collections.List] (a []any).
func IsList(x any) bool {
	_, ok := x.([]any)
	return ok
}

// IsTuple reports whether x is a [collections.Tuple].
func IsTuple(x any) bool {
	_, ok := x.(collections.Tuple)
	return ok
}

// IsDict reports whether x is a *[collections.Dict].
func IsDict(x any) bool {
	_, ok := x.(*collections.Dict)
	return ok
}

// IsInt reports whether x is an int. Other integer types do not count.
func IsInt(x any) bool {
	_, ok := x.(int)
	return ok
}

// IsFloat reports whether x is a float64.
func IsFloat(x any) bool {
	_, ok := x.(float64)
	return ok
}

// IsStr reports whether x is a string.
func IsStr(x any) bool {
	_, ok := x.(string)
	return ok
}

// IsDataFrame reports whether x is a *[frame.Frame].
func IsDataFrame(x any) bool {
	_, ok := x.(*frame.Frame)
	return ok
}
