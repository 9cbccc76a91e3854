package tokenizer

import "errors"

// Resource errors abort tokenization outright; CSS-level problems never do
// (spec §7). These mirror the teacher's errBadEscape sentinel style rather
// than pulling in a third-party error-wrapping library — nothing in the
// retrieved example corpus actually imports one (see DESIGN.md).
var (
	// ErrNilInput is returned by Tokenize when SetInput was never called,
	// or was called with a nil buffer.
	ErrNilInput = errors.New("csstok: nil input")
	// ErrOutOfMemory is returned when the preprocessor or token list fails
	// to grow. In practice this only surfaces if the Go runtime itself is
	// out of memory, since append()/make() panic rather than returning an
	// error; it is kept as a typed return value so the public API matches
	// the specification's two resource-error codes.
	ErrOutOfMemory = errors.New("csstok: out of memory")
)
