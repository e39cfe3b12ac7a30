package apply

//go:generate go tool stringer -type=ReturnType -trimprefix=Return -output=returntype_string.go

// ReturnType selects the sequence shape produced by [Sapply].
type ReturnType int

const (
	ReturnList  ReturnType = iota // collections.List
	ReturnTuple                   // collections.Tuple
)
