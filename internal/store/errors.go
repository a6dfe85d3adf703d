package store

import "errors"

// Sentinel errors returned by [TokenStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrOutputParse is returned when the existing token file cannot be read
	// or is not a mapping with a "tokens" sequence.
	ErrOutputParse = errors.New("cannot read tokens output file")

	// ErrOutputWrite is returned when the token file cannot be created or
	// rewritten.
	ErrOutputWrite = errors.New("cannot write tokens output file")
)
