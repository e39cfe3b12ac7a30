package apply

import "errors"

// ErrUnsupportedReturnType is returned by [Sapply] when the requested
// [ReturnType] is not [ReturnList] or [ReturnTuple].
var ErrUnsupportedReturnType = errors.New("apply: return type must be list or tuple")
