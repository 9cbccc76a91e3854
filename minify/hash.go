package minify

import "github.com/andrewstuart/csstok/token"

// rewriteHash shortens a 6-digit or 8-digit hex HASH to its 3-digit or
// 4-digit form when every channel pair repeats (#aabbcc -> #abc), per
// property P5. Grounded on the original C minifier's hash-shortening entry
// point (original_source/extcss3/minifier/types/hash.h,
// extcss3_minify_hash) — only its header was retrieved, so the pairing rule
// itself follows the specification's literal statement of P5 rather than
// the C body.
//
// Only ID-flagged hashes are candidates: an UNRESTRICTED hash (one that
// wouldn't parse as a plain identifier, e.g. a leading-digit name) is never
// a color literal shorthand target.
func rewriteHash(t *token.Token) {
	if t.Flag != token.FlagID {
		return
	}
	name := t.Data[1:] // drop the leading '#'
	short, ok := shortenHex(name)
	if !ok {
		return
	}
	out := make([]byte, 0, len(short)+1)
	out = append(out, '#')
	out = append(out, short...)
	t.SetUser(out)
}

func shortenHex(name []byte) ([]byte, bool) {
	switch len(name) {
	case 6:
		if !allHex(name) {
			return nil, false
		}
		if eqFold(name[0], name[1]) && eqFold(name[2], name[3]) && eqFold(name[4], name[5]) {
			return []byte{lowerHex(name[0]), lowerHex(name[2]), lowerHex(name[4])}, true
		}
	case 8:
		if !allHex(name) {
			return nil, false
		}
		if eqFold(name[0], name[1]) && eqFold(name[2], name[3]) &&
			eqFold(name[4], name[5]) && eqFold(name[6], name[7]) {
			return []byte{
				lowerHex(name[0]), lowerHex(name[2]), lowerHex(name[4]), lowerHex(name[6]),
			}, true
		}
	}
	return nil, false
}

func allHex(b []byte) bool {
	for _, c := range b {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func eqFold(a, b byte) bool { return lowerHex(a) == lowerHex(b) }

func lowerHex(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}
