// Package preprocess implements the CSS Syntax Level 3 input preprocessing
// filter: https://www.w3.org/TR/css-syntax-3/#input-preprocessing
package preprocess

import (
	"bytes"

	"golang.org/x/text/transform"
)

const replacementCharacter = "�"

// normalize takes CR, CRLF, or bare CR/LF line endings in src and converts
// them to LF in dst, and replaces NUL bytes with U+FFFD.
//
// Adapted from the gorilla/css tokenizer's crlf.go, itself adapted from the
// crlf package (Copyright 2015 Andy Balholm, 2-Clause BSD).
type normalize struct {
	prev byte
}

func (n *normalize) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nDst < len(dst) && nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r':
			dst[nDst] = '\n'
		case '\n':
			if n.prev == '\r' {
				nSrc++
				n.prev = c
				continue
			}
			dst[nDst] = '\n'
		case '\f':
			dst[nDst] = '\n'
		case 0:
			if nDst+len(replacementCharacter) > len(dst) {
				err = transform.ErrShortDst
				return
			}
			copy(dst[nDst:], replacementCharacter)
			nDst += len(replacementCharacter) - 1
		default:
			dst[nDst] = c
		}
		n.prev = c
		nDst++
		nSrc++
	}
	if nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return
}

func (n *normalize) Reset() { n.prev = 0 }

// stripBOM discards a single leading UTF-8 byte order mark, chained ahead of
// normalize the way the teacher chains transform.Transformer values around
// its bufio.Reader.
type stripBOM struct {
	done bool
}

var bomBytes = []byte{0xEF, 0xBB, 0xBF}

func (s *stripBOM) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !s.done {
		if len(src) < len(bomBytes) && !atEOF {
			return 0, 0, transform.ErrShortSrc
		}
		s.done = true
		if bytes.HasPrefix(src, bomBytes) {
			nSrc = len(bomBytes)
		}
	}
	n := copy(dst, src[nSrc:])
	nDst += n
	nSrc += n
	if nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return
}

func (s *stripBOM) Reset() { s.done = false }

// Run applies the full input-preprocessing chain to raw CSS source bytes and
// returns the canonical, NUL-free, LF-only byte sequence.
func Run(src []byte) ([]byte, error) {
	out, _, err := transform.Bytes(transform.Chain(new(stripBOM), new(normalize)), src)
	return out, err
}
