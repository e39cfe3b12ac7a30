package frame

import "errors"

// Sentinel errors returned by frame operations.
var (
	// ErrDuplicateColumn is returned when a column name appears twice.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrRowWidth is returned when a row does not have one value per column.
	ErrRowWidth = errors.New("frame: row width does not match column count")

	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrIndexOutOfRange is returned when a row position is outside
	// [0, Len()-1].
	ErrIndexOutOfRange = errors.New("frame: row index out of range")

	// ErrSchemaMismatch is returned when frames with different column sets
	// are concatenated.
	ErrSchemaMismatch = errors.New("frame: column schemas differ")

	// ErrEmptyInput is returned by [Concat] and [Unsplit] when no frames are
	// given.
	ErrEmptyInput = errors.New("frame: no frames to combine")

	// ErrNilFrame is returned when a nil *Frame is passed where a frame is
	// required.
	ErrNilFrame = errors.New("frame: nil frame")
)
