package minify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewstuart/csstok/minify"
	"github.com/andrewstuart/csstok/token"
	"github.com/andrewstuart/csstok/tokenizer"
)

func minifyString(t *testing.T, src string) string {
	t.Helper()
	e := tokenizer.New()
	e.SetModifier(minify.New())
	require.NoError(t, e.SetInput([]byte(src)))
	require.NoError(t, e.Tokenize(context.Background()))
	out, err := e.Dump(tokenizer.Minify)
	require.NoError(t, err)
	return string(out)
}

// TestScenarios checks the spec's literal worked examples end to end.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"S1 rgb collapse + trailing semicolon", `a { color: rgb(255, 0, 0); }`, `a{color:#f00}`},
		{"S2 zero trimming", `p { margin: 0.50px 0px; }`, `p{margin:.5px 0}`},
		{"S3 important comment kept, plain comment dropped", `/*! keep */ /* drop */ h1{color:#AABBCC}`, `/*! keep */h1{color:#abc}`},
		{"S4 import string elevation keeps quotes, drops the space", `@import "x.css";`, `@import"x.css";`},
		{"S6 rgba mixed percentage/numeric collapse", `div{ background: rgba(100%, 0%, 0%, 1); }`, `div{background:#f00}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, minifyString(t, c.src))
		})
	}
}

// TestHashShortening checks property P5's exact pairing rule: an ID-flagged
// 6 (or 8) digit hex hash shortens only when every channel pair repeats, and the
// result is always lowercased.
func TestHashShortening(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"#AABBCC", "#abc"},
		{"#aabbcc", "#abc"},
		{"#112233", "#112233"}, // leading digit: UNRESTRICTED hash, never shortened
		{"#AABBCCDD", "#abcd"},
		{"#123456", "#123456"}, // no repeating pairs, stays full-length
		{"#AbC123", "#AbC123"}, // mismatched pairs in the last triplet, unchanged
		{"#112234", "#112234"}, // third pair doesn't repeat
	}
	for _, c := range cases {
		got := minifyString(t, "a{color:"+c.src+"}")
		want := "a{color:" + c.want + "}"
		assert.Equal(t, want, got, "hash %q", c.src)
	}
}

// TestHashShorteningIdempotent checks property P4: minifying an
// already-shortened hash is a no-op.
func TestHashShorteningIdempotent(t *testing.T) {
	once := minifyString(t, "a{color:#AABBCC}")
	twice := minifyString(t, once)
	assert.Equal(t, once, twice)
	assert.Equal(t, "a{color:#abc}", twice)
}

// TestRGBCollapseAccuracy checks property P6: every legal rgb()/rgba() form
// collapses to a HASH whose channels are within +/-1 of the algebraically
// exact conversion, via exact cases chosen to round cleanly.
func TestRGBCollapseAccuracy(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"rgb(0, 0, 0)", "#000"},
		{"rgb(255, 255, 255)", "#fff"},
		{"rgb(17, 34, 51)", "#123"},
		{"rgb(0%, 0%, 0%)", "#000"},
		{"rgb(100%, 100%, 100%)", "#fff"},
		{"rgba(255, 0, 0, 1)", "#f00"},
		{"rgba(255, 0, 0, 0.5)", "#ff000080"},
		{"rgba(0, 0, 0, 0)", "#0000"},
	}
	for _, c := range cases {
		got := minifyString(t, "a{color:"+c.src+"}")
		want := "a{color:" + c.want + "}"
		assert.Equal(t, want, got, "color %q", c.src)
	}
}

// TestRGBCollapseSkipsInvalid checks that malformed or mixed-type rgb()
// calls are left entirely alone (not partially rewritten) when the channel
// count or type doesn't match a collapsible shape.
func TestRGBCollapseSkipsInvalid(t *testing.T) {
	cases := []string{
		"rgb(255, 0%, 0)",     // mixed Number/Percentage across the RGB channels
		"rgb(255, 0, 0, 0, 0)", // wrong channel count
		"rgb(300, 0, 0)",       // out of range
		"rgb(1.5, 0, 0)",       // non-integer Number channel
	}
	for _, c := range cases {
		src := "a{color:" + c + "}"
		got := minifyString(t, src)
		assert.Contains(t, got, "rgb(", "expected %q to survive unrewritten, got %q", c, got)
	}
}

// TestBadTokensSurviveMinification checks property P7: BAD_STRING and
// BAD_URL tokens are never silently dropped or "fixed" by the minifier.
func TestBadTokensSurviveMinification(t *testing.T) {
	got := minifyString(t, "a{content:\"broken\nmore}")
	assert.Contains(t, got, `"broken`)

	got2 := minifyString(t, "a{background:url(bad url)}")
	assert.Contains(t, got2, "url(bad url)")
}

// TestMinifiedOutputRetokenizes checks property P3: re-tokenizing minified
// output yields the same sequence of significant (non-trivia) token kinds
// as tokenizing the original input.
//
// This holds exactly for inputs that don't trigger one of the three
// rewrites the spec's own worked scenarios require over P3's literal
// "exact match" wording: a redundant trailing semicolon is dropped
// entirely (S1), a zero-value DIMENSION in a safe unit drops its unit and
// retokenizes as NUMBER instead of DIMENSION (S2), and an rgb()/rgba() call
// collapses an entire FUNCTION...BR_RC run into one HASH (S1/S6). Those
// three are deliberate, scenario-mandated departures, so
// this test sticks to inputs that exercise only whitespace/comment
// collapsing, hash shortening, and non-zero numeric trimming, the cases
// where the literal property actually holds.
func TestMinifiedOutputRetokenizes(t *testing.T) {
	cases := []string{
		`div > span.foo[data-x="y"] { content: "hi" }`,
		`a b c { color: red }`,
		`.foo , .bar { color: blue }`,
		`h1 { color: #123456 }`,
		`p { width: 10px }`,
		`/* drop */ a { color: red }`,
	}
	for _, src := range cases {
		before := effectivePairs(t, src)
		out := minifyString(t, src)
		after := rawPairs(t, out)
		assert.Equal(t, before, after, "token stream changed for %q -> %q", src, out)
	}
}

type kindData struct {
	kind token.Kind
	data string
}

// effectivePairs tokenizes src through the minifier and returns the
// (Kind, Effective) pairs of every non-trivia token, in the form the
// original list actually rewrote them to.
func effectivePairs(t *testing.T, src string) []kindData {
	t.Helper()
	e := tokenizer.New()
	e.SetModifier(minify.New())
	require.NoError(t, e.SetInput([]byte(src)))
	require.NoError(t, e.Tokenize(context.Background()))
	var pairs []kindData
	for tok := e.Tokens(); tok != nil; tok = tok.Next {
		switch tok.Kind {
		case token.WS, token.Comment, token.EOF:
			continue
		}
		pairs = append(pairs, kindData{tok.Kind, string(tok.Effective())})
	}
	return pairs
}

// rawPairs tokenizes src with no modifier and returns the (Kind, Data)
// pairs of every non-trivia token.
func rawPairs(t *testing.T, src string) []kindData {
	t.Helper()
	e := tokenizer.New()
	require.NoError(t, e.SetInput([]byte(src)))
	require.NoError(t, e.Tokenize(context.Background()))
	var pairs []kindData
	for tok := e.Tokens(); tok != nil; tok = tok.Next {
		switch tok.Kind {
		case token.WS, token.Comment, token.EOF:
			continue
		}
		pairs = append(pairs, kindData{tok.Kind, string(tok.Data)})
	}
	return pairs
}

// TestWhitespaceSeparatorSafety checks that collapsing whitespace never
// fuses two tokens that would otherwise retokenize differently (two
// adjacent IDENTs, two adjacent DIMENSIONs), while whitespace that isn't
// load-bearing is dropped (an IDENT before a DELIM '.' that isn't followed
// by a digit never risks fusing, since '.' can't continue an IDENT).
func TestWhitespaceSeparatorSafety(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"a b", "a b"},
		{"1px 1px", "1px 1px"},
		{"a .b", "a.b"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, minifyString(t, c.src), "src %q", c.src)
	}
}
