// Package token defines the classified CSS token and the doubly-linked list
// the tokenizer builds it into, adapted from the Token/TokenType split in
// the gorilla/css tokenizer (scanner/token.go) to the slice-based data model
// (data/info/user) described by the tokenizer specification.
package token

// Kind is the closed set of CSS Syntax Level 3 token kinds.
type Kind int

const (
	WS Kind = iota
	STRING
	BadString
	Hash
	Delim
	SuffixMatch
	SubstrMatch
	PrefixMatch
	DashMatch
	IncludeMatch
	Column
	BrRO // (
	BrRC // )
	BrSO // [
	BrSC // ]
	BrCO // {
	BrCC // }
	Comma
	Colon
	Semicolon
	CDO
	CDC
	Number
	Percentage
	Dimension
	Function
	Ident
	AtKeyword
	URL
	BadURL
	UnicodeRange
	Comment
	EOF
)

var kindNames = map[Kind]string{
	WS:           "WS",
	STRING:       "STRING",
	BadString:    "BAD_STRING",
	Hash:         "HASH",
	Delim:        "DELIM",
	SuffixMatch:  "SUFFIX_MATCH",
	SubstrMatch:  "SUBSTR_MATCH",
	PrefixMatch:  "PREFIX_MATCH",
	DashMatch:    "DASH_MATCH",
	IncludeMatch: "INCLUDE_MATCH",
	Column:       "COLUMN",
	BrRO:         "BR_RO",
	BrRC:         "BR_RC",
	BrSO:         "BR_SO",
	BrSC:         "BR_SC",
	BrCO:         "BR_CO",
	BrCC:         "BR_CC",
	Comma:        "COMMA",
	Colon:        "COLON",
	Semicolon:    "SEMICOLON",
	CDO:          "CDO",
	CDC:          "CDC",
	Number:       "NUMBER",
	Percentage:   "PERCENTAGE",
	Dimension:    "DIMENSION",
	Function:     "FUNCTION",
	Ident:        "IDENT",
	AtKeyword:    "AT_KEYWORD",
	URL:          "URL",
	BadURL:       "BAD_URL",
	UnicodeRange: "UNICODE_RANGE",
	Comment:      "COMMENT",
	EOF:          "EOF",
}

// String renders the kind's spec name, for debugging and test failures
// (mirrors TokenType.String in the teacher, used the same way).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Flag carries kind-dependent role information. Its meaning depends on the
// owning token's Kind.
type Flag int

const (
	FlagNone Flag = iota
	FlagInteger
	FlagNumber
	FlagID
	FlagUnrestricted
	FlagString
	FlagAtURLString
)

// Token is a single classified lexeme plus its structural links.
type Token struct {
	Kind Kind
	Flag Flag

	// Data is the raw textual form, always present.
	Data []byte
	// Info is kind-dependent auxiliary text: a dimension's unit, a
	// percentage's literal "%", or a string/url's original quote byte.
	Info []byte
	// User, when non-nil, overrides Data at serialization time.
	User []byte

	Prev, Next *Token
}

// Modifiable reports whether tokens of this kind carry textual content a
// modifier may rewrite (spec §4.5(b)). The engine does not consult it: the
// modifier callback runs for every emitted token, whatever its kind.
func (k Kind) Modifiable() bool {
	switch k {
	case WS, Comment, STRING, Hash, URL, Number, Percentage, Dimension, Ident, Function, AtKeyword:
		return true
	default:
		return false
	}
}

// Effective returns the text the serializer emits for this token: User if
// set, otherwise Data.
func (t *Token) Effective() []byte {
	if t.User != nil {
		return t.User
	}
	return t.Data
}

// SetUser installs an owned override (possibly empty, to elide the token
// entirely), copying src so later buffer mutations can't retroactively
// change already-serialized tokens.
func (t *Token) SetUser(src []byte) {
	t.User = append([]byte{}, src...)
}
