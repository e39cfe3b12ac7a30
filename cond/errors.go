package cond

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Switch].
//
// Both lookup failures wrap [ErrLookup], so a caller can handle them
// together:
//
//	if errors.Is(err, cond.ErrLookup) { … }
var (
	// ErrLookup is the common cause of every failed branch lookup.
	ErrLookup = errors.New("cond: lookup failed")

	// ErrIndexOutOfRange is returned when an int selector does not address a
	// branch.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrLookup)

	// ErrKeyNotFound is returned when a string selector names no branch.
	ErrKeyNotFound = fmt.Errorf("%w: key not found", ErrLookup)
)
