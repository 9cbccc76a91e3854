package tokenizer

import (
	"strings"

	"github.com/andrewstuart/csstok/internal/buffer"
	"github.com/andrewstuart/csstok/internal/classify"
	"github.com/andrewstuart/csstok/token"
)

// at is a tiny classify.Peeker adapter that offsets into the engine's
// buffer, used for the two/three-byte lookahead checks the dispatch switch
// needs before committing to a filler (ported from the teacher's
// z.repeek()+z.peek[:n] pattern, but lazy instead of buffered).
type at struct {
	b   *buffer.Buffer
	off int
}

func (a at) At(o int) byte { return a.b.At(a.off + o) }

// newToken snapshots buf[start:end) as an owned Data slice. This is the one
// place that decides Data's default shape: the full, raw, contiguous
// source text for the token (escape bytes included verbatim, except where
// the escape consumer already patched an invalid code point in place).
// Fillers that need the §3 "info"-bearing exception (dimension units,
// percentage suffixes, and the quoted-url inner-string special case, I4)
// adjust Data/Info/User afterwards.
func (e *Engine) newToken(kind token.Kind, start, end int, flag token.Flag) *token.Token {
	return &token.Token{
		Kind: kind,
		Flag: flag,
		Data: append([]byte(nil), e.buf.Slice(start, end)...),
	}
}

func (e *Engine) skipWS() {
	for classify.IsWS(e.buf.At(0)) {
		e.buf.Advance(1)
	}
}

// skipName advances past a run of name characters and escapes (CSS Syntax
// Level 3 §4.3.11), leaving raw bytes in place; only invalid escapes get
// rewritten in place by the escape consumer.
func (e *Engine) skipName() {
	for {
		c := e.buf.At(0)
		if c == '\\' && classify.StartsValidEscape(e.buf) {
			classify.ConsumeEscape(e.buf)
			continue
		}
		if classify.IsName(c) {
			e.buf.Advance(1)
			continue
		}
		return
	}
}

// scanOne dispatches on the current byte and returns the next token,
// ported from the teacher's big consume() switch (tokenizer/tokenizer.go)
// and generalized to the in-place buffer model described in spec §4.4.
func (e *Engine) scanOne() *token.Token {
	b := e.buf
	ch := b.At(0)

	switch ch {
	case 0:
		start := b.Pos()
		return e.newToken(token.EOF, start, start, token.FlagNone)
	case '\n', '\t', ' ':
		return e.consumeWhitespace()
	case '"', '\'':
		return e.consumeString(ch)
	case '#':
		if classify.IsName(b.At(1)) || classify.StartsValidEscape(at{b, 1}) {
			return e.consumeHash()
		}
		return e.consumeDelim()
	case '$':
		return e.consumeMatchOrDelim('$', token.SuffixMatch)
	case '*':
		return e.consumeMatchOrDelim('*', token.SubstrMatch)
	case '^':
		return e.consumeMatchOrDelim('^', token.PrefixMatch)
	case '~':
		return e.consumeMatchOrDelim('~', token.IncludeMatch)
	case '(':
		return e.consumePunct(token.BrRO)
	case ')':
		return e.consumePunct(token.BrRC)
	case '[':
		return e.consumePunct(token.BrSO)
	case ']':
		return e.consumePunct(token.BrSC)
	case '{':
		return e.consumePunct(token.BrCO)
	case '}':
		return e.consumePunct(token.BrCC)
	case ',':
		return e.consumePunct(token.Comma)
	case ':':
		return e.consumePunct(token.Colon)
	case ';':
		return e.consumePunct(token.Semicolon)
	case '|':
		if b.At(1) == '=' {
			return e.consumeFixed(token.DashMatch, 2)
		}
		if b.At(1) == '|' {
			return e.consumeFixed(token.Column, 2)
		}
		return e.consumeDelim()
	case '+':
		if classify.StartsNumber(b) {
			return e.consumeNumeric()
		}
		return e.consumeDelim()
	case '-':
		if classify.StartsNumber(b) {
			return e.consumeNumeric()
		}
		if classify.StartsIdent(b) {
			return e.consumeIdentish()
		}
		if b.At(1) == '-' && b.At(2) == '>' {
			return e.consumeFixed(token.CDC, 3)
		}
		return e.consumeDelim()
	case '.':
		if classify.StartsNumber(b) {
			return e.consumeNumeric()
		}
		return e.consumeDelim()
	case '/':
		if b.At(1) == '*' {
			return e.consumeComment()
		}
		return e.consumeDelim()
	case '<':
		if b.At(1) == '!' && b.At(2) == '-' && b.At(3) == '-' {
			return e.consumeFixed(token.CDO, 4)
		}
		return e.consumeDelim()
	case '@':
		if classify.StartsIdent(at{b, 1}) {
			return e.consumeAtKeyword()
		}
		return e.consumeDelim()
	case '\\':
		if classify.StartsValidEscape(b) {
			return e.consumeIdentish()
		}
		return e.consumeDelim()
	case 'u', 'U':
		if b.At(1) == '+' && (b.At(2) == '?' || classify.IsHex(b.At(2))) {
			return e.consumeUnicodeRange()
		}
	}

	if classify.IsDigit(ch) {
		return e.consumeNumeric()
	}
	if classify.IsNameStart(ch) {
		return e.consumeIdentish()
	}
	return e.consumeDelim()
}

func (e *Engine) consumeWhitespace() *token.Token {
	start := e.buf.Pos()
	e.skipWS()
	return e.newToken(token.WS, start, e.buf.Pos(), token.FlagNone)
}

func (e *Engine) consumeDelim() *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(1)
	return e.newToken(token.Delim, start, e.buf.Pos(), token.FlagNone)
}

func (e *Engine) consumePunct(kind token.Kind) *token.Token {
	return e.consumeFixed(kind, 1)
}

func (e *Engine) consumeFixed(kind token.Kind, n int) *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(n)
	return e.newToken(kind, start, e.buf.Pos(), token.FlagNone)
}

func (e *Engine) consumeMatchOrDelim(lead byte, kind token.Kind) *token.Token {
	if e.buf.At(1) == '=' {
		return e.consumeFixed(kind, 2)
	}
	return e.consumeDelim()
}

func (e *Engine) consumeHash() *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(1) // '#'
	isID := classify.StartsIdent(e.buf)
	e.skipName()
	flag := token.FlagUnrestricted
	if isID {
		flag = token.FlagID
	}
	return e.newToken(token.Hash, start, e.buf.Pos(), flag)
}

func (e *Engine) consumeAtKeyword() *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(1) // '@'
	e.skipName()
	return e.newToken(token.AtKeyword, start, e.buf.Pos(), token.FlagNone)
}

// consumeIdentish implements CSS Syntax Level 3 §4.3.3: consume a name and,
// if immediately followed by '(', either switch to URL consumption (for the
// literal name "url", case-insensitively) or emit a FUNCTION token.
func (e *Engine) consumeIdentish() *token.Token {
	start := e.buf.Pos()
	e.skipName()
	nameEnd := e.buf.Pos()
	if e.buf.At(0) == '(' {
		name := e.buf.Slice(start, nameEnd)
		e.buf.Advance(1)
		if len(name) == 3 && strings.EqualFold(string(name), "url") {
			return e.consumeURL(start)
		}
		return e.newToken(token.Function, start, e.buf.Pos(), token.FlagNone)
	}
	return e.newToken(token.Ident, start, nameEnd, token.FlagNone)
}

func (e *Engine) consumeNumeric() *token.Token {
	start := e.buf.Pos()
	flag := token.FlagInteger

	if c := e.buf.At(0); c == '+' || c == '-' {
		e.buf.Advance(1)
	}
	for classify.IsDigit(e.buf.At(0)) {
		e.buf.Advance(1)
	}
	if e.buf.At(0) == '.' && classify.IsDigit(e.buf.At(1)) {
		flag = token.FlagNumber
		e.buf.Advance(1)
		for classify.IsDigit(e.buf.At(0)) {
			e.buf.Advance(1)
		}
	}
	if e.buf.At(0) == 'e' || e.buf.At(0) == 'E' {
		if (e.buf.At(1) == '+' || e.buf.At(1) == '-') && classify.IsDigit(e.buf.At(2)) {
			flag = token.FlagNumber
			e.buf.Advance(2)
			for classify.IsDigit(e.buf.At(0)) {
				e.buf.Advance(1)
			}
		} else if classify.IsDigit(e.buf.At(1)) {
			flag = token.FlagNumber
			e.buf.Advance(1)
			for classify.IsDigit(e.buf.At(0)) {
				e.buf.Advance(1)
			}
		}
	}
	numEnd := e.buf.Pos()

	if classify.StartsIdent(e.buf) {
		unitStart := e.buf.Pos()
		e.skipName()
		end := e.buf.Pos()
		t := e.newToken(token.Dimension, start, end, flag)
		t.Info = append([]byte(nil), e.buf.Slice(unitStart, end)...)
		return t
	}
	if e.buf.At(0) == '%' {
		e.buf.Advance(1)
		t := e.newToken(token.Percentage, start, e.buf.Pos(), flag)
		t.Info = []byte{'%'}
		return t
	}
	return e.newToken(token.Number, start, numEnd, flag)
}

// consumeUnicodeRange implements §4.3.6. Endpoint values are intentionally
// not decoded (spec Non-goal: interpreting unicode-range endpoints); the
// token's Data is the raw "U+..." span.
func (e *Engine) consumeUnicodeRange() *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(2) // 'U'/'u' + '+'

	hasQ := false
	n := 0
	for n < 6 {
		c := e.buf.At(0)
		if c == '?' {
			hasQ = true
			e.buf.Advance(1)
			n++
		} else if !hasQ && classify.IsHex(c) {
			e.buf.Advance(1)
			n++
		} else {
			break
		}
	}
	if !hasQ && e.buf.At(0) == '-' && classify.IsHex(e.buf.At(1)) {
		e.buf.Advance(1)
		m := 0
		for m < 6 && classify.IsHex(e.buf.At(0)) {
			e.buf.Advance(1)
			m++
		}
	}
	return e.newToken(token.UnicodeRange, start, e.buf.Pos(), token.FlagNone)
}

func (e *Engine) consumeComment() *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(2) // "/*"
	for {
		c := e.buf.At(0)
		if c == 0 {
			break
		}
		if c == '*' && e.buf.At(1) == '/' {
			e.buf.Advance(2)
			break
		}
		e.buf.Advance(1)
	}
	return e.newToken(token.Comment, start, e.buf.Pos(), token.FlagNone)
}

// stringOutcome is the result of scanning a string body, shared by
// consumeString and consumeURL's quoted-argument branch.
type stringOutcome int

const (
	strClosed stringOutcome = iota // matching quote consumed
	strEOF                         // ran off the end without a closing quote
	strBadLF                       // bare newline before the closing quote
)

// scanStringBody advances past a string's contents (CSS Syntax Level 3
// §4.3.4), assuming the opening quote has already been consumed.
func (e *Engine) scanStringBody(delim byte) stringOutcome {
	for {
		c := e.buf.At(0)
		switch {
		case c == delim:
			e.buf.Advance(1)
			return strClosed
		case c == 0:
			return strEOF
		case c == '\n':
			return strBadLF
		case c == '\\':
			switch {
			case e.buf.At(1) == 0:
				e.buf.Advance(1)
			case e.buf.At(1) == '\n':
				e.buf.Advance(2)
			default:
				classify.ConsumeEscape(e.buf)
			}
		default:
			e.buf.Advance(1)
		}
	}
}

func (e *Engine) consumeString(delim byte) *token.Token {
	start := e.buf.Pos()
	e.buf.Advance(1) // opening quote
	outcome := e.scanStringBody(delim)
	if outcome == strBadLF {
		return e.newToken(token.BadString, start, e.buf.Pos(), token.FlagNone)
	}
	t := e.newToken(token.STRING, start, e.buf.Pos(), token.FlagString)
	t.Info = []byte{delim}
	return t
}

// consumeBadURLRemainder implements §4.3.14: consume the remains of a
// malformed url() token so tokenization can resume cleanly afterward.
func (e *Engine) consumeBadURLRemainder() {
	for {
		c := e.buf.At(0)
		if c == ')' {
			e.buf.Advance(1)
			return
		}
		if c == 0 {
			return
		}
		if c == '\\' && classify.StartsValidEscape(e.buf) {
			classify.ConsumeEscape(e.buf)
			continue
		}
		e.buf.Advance(1)
	}
}

// consumeURL implements §4.3.5. start is the position of the 'u' in "url(";
// the caller has already consumed the name and the opening paren.
func (e *Engine) consumeURL(start int) *token.Token {
	e.skipWS()
	switch c := e.buf.At(0); {
	case c == 0:
		return e.newToken(token.URL, start, e.buf.Pos(), token.FlagNone)
	case c == '"' || c == '\'':
		return e.consumeQuotedURL(start, c)
	}

	for {
		c := e.buf.At(0)
		switch {
		case c == ')' || c == 0:
			if c == ')' {
				e.buf.Advance(1)
			}
			return e.newToken(token.URL, start, e.buf.Pos(), token.FlagNone)
		case classify.IsWS(c):
			e.skipWS()
			if nc := e.buf.At(0); nc == ')' || nc == 0 {
				if nc == ')' {
					e.buf.Advance(1)
				}
				return e.newToken(token.URL, start, e.buf.Pos(), token.FlagNone)
			}
			e.consumeBadURLRemainder()
			return e.newToken(token.BadURL, start, e.buf.Pos(), token.FlagNone)
		case c == '"' || c == '\'' || c == '(' || classify.IsNonPrintable(c):
			e.consumeBadURLRemainder()
			return e.newToken(token.BadURL, start, e.buf.Pos(), token.FlagNone)
		case c == '\\':
			if classify.StartsValidEscape(e.buf) {
				classify.ConsumeEscape(e.buf)
				continue
			}
			e.consumeBadURLRemainder()
			return e.newToken(token.BadURL, start, e.buf.Pos(), token.FlagNone)
		default:
			e.buf.Advance(1)
		}
	}
}

// consumeQuotedURL handles url("...") / url('...'), delegating the string
// body to scanStringBody and then adopting I4's special (data=inner,
// info=quote) shape while pre-seeding User with the full raw span so
// preserve-mode output is correct even without a minifier installed.
func (e *Engine) consumeQuotedURL(start int, delim byte) *token.Token {
	e.buf.Advance(1) // opening quote
	innerStart := e.buf.Pos()

	switch e.scanStringBody(delim) {
	case strBadLF:
		e.consumeBadURLRemainder()
		return e.newToken(token.BadURL, start, e.buf.Pos(), token.FlagNone)
	case strEOF:
		inner := append([]byte(nil), e.buf.Slice(innerStart, e.buf.Pos())...)
		return e.finishQuotedURL(start, inner, delim)
	}

	inner := append([]byte(nil), e.buf.Slice(innerStart, e.buf.Pos()-1)...)

	e.skipWS()
	if c := e.buf.At(0); c == ')' || c == 0 {
		if c == ')' {
			e.buf.Advance(1)
		}
		return e.finishQuotedURL(start, inner, delim)
	}
	e.consumeBadURLRemainder()
	return e.newToken(token.BadURL, start, e.buf.Pos(), token.FlagNone)
}

func (e *Engine) finishQuotedURL(start int, inner []byte, delim byte) *token.Token {
	t := e.newToken(token.URL, start, e.buf.Pos(), token.FlagString)
	t.User = append([]byte(nil), t.Data...)
	t.Data = inner
	t.Info = []byte{delim}
	return t
}
