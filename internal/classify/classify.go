// Package classify holds the pure character predicates from CSS Syntax
// Level 3 §4.2 (definitions), ported from the free functions in the
// gorilla/css tokenizer (isNameStart, isNameCode, isHexDigit, ...) so both
// the tokenizer and the minifier's re-tokenization check can share them.
package classify

import "unicode/utf8"

// IsWS reports whether b is whitespace per the post-normalization
// definition (only LF, space, and TAB remain; CR/FF are folded away by the
// preprocessor).
func IsWS(b byte) bool {
	return b == '\n' || b == '\t' || b == ' '
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHex reports whether b is a hex digit.
func IsHex(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsNameStart reports whether b begins an identifier name: an underscore, an
// ASCII letter, or any byte that begins a multi-byte UTF-8 sequence.
func IsNameStart(b byte) bool {
	if b >= utf8.RuneSelf {
		return true
	}
	if b == '_' {
		return true
	}
	if b >= 'A' && b <= 'Z' {
		return true
	}
	if b >= 'a' && b <= 'z' {
		return true
	}
	return false
}

// IsName reports whether b may continue an identifier name.
func IsName(b byte) bool {
	return IsNameStart(b) || IsDigit(b) || b == '-'
}

// IsNonPrintable reports whether b is a non-printable code point as defined
// by the url-token spec.
func IsNonPrintable(b byte) bool {
	return (b <= 0x08) || b == 0x0B || (b >= 0x0E && b <= 0x1F) || b == 0x7F
}

// Peeker is the minimal lookahead surface the classifiers below need; both
// *buffer.Buffer and a small window of bytes satisfy it.
type Peeker interface {
	At(offset int) byte
}

// StartsValidEscape reports whether the two bytes at p[0], p[1] begin a
// valid escape: a backslash not immediately followed by a newline.
func StartsValidEscape(p Peeker) bool {
	return p.At(0) == '\\' && p.At(1) != '\n'
}

// StartsIdent reports whether the stream at p would start an identifier.
func StartsIdent(p Peeker) bool {
	off := 0
	if p.At(0) == '-' {
		off = 1
	}
	if IsNameStart(p.At(off)) {
		return true
	}
	return StartsValidEscape(offsetPeeker{p, off})
}

// StartsNumber reports whether the stream at p would start a number.
func StartsNumber(p Peeker) bool {
	off := 0
	if p.At(0) == '+' || p.At(0) == '-' {
		off = 1
	}
	if p.At(off) == '.' {
		off++
	}
	return IsDigit(p.At(off))
}

type offsetPeeker struct {
	p   Peeker
	off int
}

func (o offsetPeeker) At(offset int) byte { return o.p.At(o.off + offset) }
