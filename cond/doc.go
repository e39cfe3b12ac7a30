// Package cond provides expression-style conditionals: [Ifelse] (and its
// typed form [If]) and an R-style [Switch].
//
// Both are ordinary function calls, so every branch value is computed
// before the call. They select a value; they do not control which code runs.
//
//	label := cond.If(n%2 == 0, "even", "odd")
//
//	v, err := cond.Switch(1, "x", "y", "z")              // → "y"
//	v, err = cond.Switch("k", cond.Named("k", "v"))      // → "v"
//	_, err = cond.Switch(5, "a", "b")                    // errors.Is(err, cond.ErrLookup)
package cond
