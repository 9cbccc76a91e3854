// Package buffer implements the mutable working buffer the tokenizer scans
// over. It models the reader/writer cursor pair from the CSS Syntax Level 3
// preprocessing algorithm: the writer always stays at or ahead of the
// reader, and escape recovery may reshape the bytes between them in place.
package buffer

// lookahead is the number of trailing NUL sentinel bytes appended after
// normalization, so that any classifier may safely peek several bytes past
// the last real byte of input without a bounds check.
const lookahead = 8

// Buffer is the shared mutable byte store the preprocessor writes into and
// the tokenizer reads from.
//
// The preprocessor normalizes the whole input eagerly (SetInput receives a
// complete byte slice, not an incremental stream), so writer is pinned to
// len(data) for the buffer's whole lifetime; reader never exceeds it. This
// keeps the reader<=writer invariant trivially true while still giving the
// escape consumer a real, mutable window to reshape.
type Buffer struct {
	data   []byte
	reader int
}

// New wraps already-normalized bytes (CR/CRLF/FF folded to LF, NUL folded to
// U+FFFD) and pads the tail with sentinel bytes for safe look-ahead.
func New(normalized []byte) *Buffer {
	data := make([]byte, len(normalized)+lookahead)
	copy(data, normalized)
	return &Buffer{data: data}
}

// Pos returns the current reader offset.
func (b *Buffer) Pos() int { return b.reader }

// SetPos repositions the reader. Callers must not move it past Writer().
func (b *Buffer) SetPos(i int) { b.reader = i }

// Writer returns the end of valid input (excludes the sentinel padding).
func (b *Buffer) Writer() int { return len(b.data) - lookahead }

// Advance moves the reader forward by n bytes.
func (b *Buffer) Advance(n int) { b.reader += n }

// At returns the byte at reader+offset, or 0 past the end of the sentinel
// region (which cannot happen for any offset this package's callers use).
func (b *Buffer) At(offset int) byte {
	i := b.reader + offset
	if i < 0 || i >= len(b.data) {
		return 0
	}
	return b.data[i]
}

// Byte returns the byte at the reader and advances past it.
func (b *Buffer) Byte() byte {
	c := b.At(0)
	b.reader++
	return c
}

// Slice returns a read-only view of data[start:end]. The returned slice
// aliases the buffer and is only valid until the next ReplaceRange call that
// touches an overlapping or preceding region.
func (b *Buffer) Slice(start, end int) []byte {
	return b.data[start:end]
}

// ReplaceRange overwrites data[start:end) with repl, growing or shrinking the
// backing store as needed, and returns the signed length delta (len(repl) -
// (end-start)). The reader is shifted by delta when it lies at or after end,
// preserving every invariant the escape consumer depends on (I6): slices
// already handed out for the confirmed (already-classified) span before
// start stay valid because nothing there moves.
func (b *Buffer) ReplaceRange(start, end int, repl []byte) int {
	delta := len(repl) - (end - start)
	tail := append([]byte(nil), b.data[end:]...)
	b.data = append(b.data[:start], append(append([]byte(nil), repl...), tail...)...)
	if b.reader >= end {
		b.reader += delta
	}
	return delta
}
