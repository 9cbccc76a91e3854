package tokenizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewstuart/csstok/token"
)

func mustTokenize(t *testing.T, src string) *Engine {
	t.Helper()
	e := New()
	require.NoError(t, e.SetInput([]byte(src)))
	require.NoError(t, e.Tokenize(context.Background()))
	return e
}

// TestPreserveRoundTrip checks property P1: preserve-mode output equals the
// input byte-for-byte after preprocessor normalization.
func TestPreserveRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a { color: red; }\r\n",
		"/* a */b{c:d}\r",
		"p\x00q",
		"a\tb\n\nc",
	}
	for _, c := range cases {
		e := mustTokenize(t, c)
		out, err := e.Dump(Preserve)
		require.NoError(t, err)
		want := c
		want = normalizeForTest(want)
		assert.Equal(t, want, string(out), "input %q", c)
	}
}

// normalizeForTest mirrors the preprocessor's CR/CRLF/FF->LF, NUL->U+FFFD
// folding so TestPreserveRoundTrip can compute an expected value without
// calling the internal/preprocess code the round trip itself runs through.
func normalizeForTest(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			out = append(out, '\n')
		case '\f':
			out = append(out, '\n')
		case 0:
			out = append(out, "�"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// TestEOFTerminator checks property P2: the list always ends with exactly
// one EOF token.
func TestEOFTerminator(t *testing.T) {
	for _, c := range []string{"", "a", "a{b:c}", "/*"} {
		e := mustTokenize(t, c)
		last := e.list.Last()
		require.NotNil(t, last)
		assert.Equal(t, token.EOF, last.Kind)
		assert.Nil(t, last.Next)
		// Exactly one EOF: walk back and make sure there isn't a second.
		n := 0
		for tok := e.list.First(); tok != nil; tok = tok.Next {
			if tok.Kind == token.EOF {
				n++
			}
		}
		assert.Equal(t, 1, n, "input %q", c)
	}
}

// TestImportURLElevation checks scenario S4's tokenizer-level half: the
// @import string is retyped to a URL token with AT_URL_STRING, independent
// of whatever the minifier later does to the surrounding whitespace.
func TestImportURLElevation(t *testing.T) {
	e := mustTokenize(t, `@import "x.css";`)
	var found *token.Token
	for tok := e.list.First(); tok != nil; tok = tok.Next {
		if tok.Kind == token.URL {
			found = tok
			break
		}
	}
	require.NotNil(t, found, "expected a URL token")
	assert.Equal(t, token.FlagAtURLString, found.Flag)
	assert.Equal(t, `"x.css"`, string(found.Data))
	require.Len(t, found.Info, 1)
	assert.Equal(t, byte('"'), found.Info[0])

	out, err := e.Dump(Preserve)
	require.NoError(t, err)
	assert.Equal(t, `@import "x.css";`, string(out))
}

// TestBadStringEscape checks scenario S5: an escape sequence inside a
// string, even one that looks like it encodes a newline, never produces a
// BAD_STRING, and the escape text survives untouched.
func TestBadStringEscape(t *testing.T) {
	e := mustTokenize(t, `content: "line\ABreak";`)
	var str *token.Token
	for tok := e.list.First(); tok != nil; tok = tok.Next {
		if tok.Kind == token.STRING {
			str = tok
			break
		}
	}
	require.NotNil(t, str)
	assert.Equal(t, `"line\ABreak"`, string(str.Data))
}

// TestBareLFIsBadString is the negative case for P7: an actual bare newline
// inside a string (no backslash) does yield BAD_STRING, and it stops before
// consuming the newline.
func TestBareLFIsBadString(t *testing.T) {
	e := mustTokenize(t, "\"broken\nstring\"")
	first := e.list.First()
	require.NotNil(t, first)
	assert.Equal(t, token.BadString, first.Kind)
	assert.Equal(t, `"broken`, string(first.Data))
	assert.Equal(t, token.WS, first.Next.Kind)
}

// TestDispatch exercises one representative token per kind the filler
// dispatch switch handles, the way the teacher's checkMatch table does.
func TestDispatch(t *testing.T) {
	type want struct {
		kind token.Kind
		data string
	}
	cases := []struct {
		src  string
		want []want
	}{
		{"   ", []want{{token.WS, "   "}}},
		{"'abc'", []want{{token.STRING, "'abc'"}}},
		{"#name", []want{{token.Hash, "#name"}}},
		{"##name", []want{{token.Delim, "#"}, {token.Hash, "#name"}}},
		{"a$=b", []want{{token.Ident, "a"}, {token.SuffixMatch, "$="}, {token.Ident, "b"}}},
		{"a*=b", []want{{token.Ident, "a"}, {token.SubstrMatch, "*="}, {token.Ident, "b"}}},
		{"a^=b", []want{{token.Ident, "a"}, {token.PrefixMatch, "^="}, {token.Ident, "b"}}},
		{"a~=b", []want{{token.Ident, "a"}, {token.IncludeMatch, "~="}, {token.Ident, "b"}}},
		{"a|=b", []want{{token.Ident, "a"}, {token.DashMatch, "|="}, {token.Ident, "b"}}},
		{"a||b", []want{{token.Ident, "a"}, {token.Column, "||"}, {token.Ident, "b"}}},
		{"(a)", []want{{token.BrRO, "("}, {token.Ident, "a"}, {token.BrRC, ")"}}},
		{"[a]", []want{{token.BrSO, "["}, {token.Ident, "a"}, {token.BrSC, "]"}}},
		{"{a}", []want{{token.BrCO, "{"}, {token.Ident, "a"}, {token.BrCC, "}"}}},
		{"a,b", []want{{token.Ident, "a"}, {token.Comma, ","}, {token.Ident, "b"}}},
		{"a:b", []want{{token.Ident, "a"}, {token.Colon, ":"}, {token.Ident, "b"}}},
		{"a;b", []want{{token.Ident, "a"}, {token.Semicolon, ";"}, {token.Ident, "b"}}},
		{"<!-- -->", []want{{token.CDO, "<!--"}, {token.WS, " "}, {token.CDC, "-->"}}},
		{"42", []want{{token.Number, "42"}}},
		{"+42", []want{{token.Number, "+42"}}},
		{"-42", []want{{token.Number, "-42"}}},
		{"42.0", []want{{token.Number, "42.0"}}},
		{".42", []want{{token.Number, ".42"}}},
		{"42%", []want{{token.Percentage, "42%"}}},
		{"42px", []want{{token.Dimension, "42px"}}},
		{"url(http://example.com/a)", []want{{token.URL, "url(http://example.com/a)"}}},
		{"url( http://example.com/a )", []want{{token.URL, "url( http://example.com/a )"}}},
		{`url("http://example.com/a")`, []want{{token.URL, "http://example.com/a"}}},
		{"url(bad url)", []want{{token.BadURL, "url(bad url)"}}},
		{"func(a)", []want{{token.Function, "func("}, {token.Ident, "a"}, {token.BrRC, ")"}}},
		{"@media", []want{{token.AtKeyword, "@media"}}},
		{"/* c */", []want{{token.Comment, "/* c */"}}},
		{"U+0025-00FF", []want{{token.UnicodeRange, "U+0025-00FF"}}},
		{"U+0??", []want{{token.UnicodeRange, "U+0??"}}},
	}
	for _, c := range cases {
		e := mustTokenize(t, c.src)
		tok := e.list.First()
		for i, w := range c.want {
			require.NotNilf(t, tok, "case %q: ran out of tokens at index %d", c.src, i)
			assert.Equalf(t, w.kind, tok.Kind, "case %q token %d kind", c.src, i)
			assert.Equalf(t, w.data, string(tok.Data), "case %q token %d data", c.src, i)
			tok = tok.Next
		}
	}
}
