// Package context tracks the structural position of the token stream as it
// is emitted: stylesheet, at-rule prelude, declaration list, declaration
// value, function arguments, and block (spec §4.6). It is new relative to
// the teacher (gorilla/css has no notion of structural context — a pure
// tokenizer doesn't need one) and is grounded on the decl->first/decl->last
// tracking visible in the original C minifier's function.c, generalized to
// the full frame stack the specification calls for.
package context

import "github.com/andrewstuart/csstok/token"

// Kind identifies what a Frame represents.
type Kind int

const (
	Stylesheet Kind = iota
	AtRulePrelude
	Block
	Declaration
	FunctionArgs
)

// Frame is one entry of the context stack: a context kind plus the token
// that opened it.
type Frame struct {
	Kind   Kind
	Opener *token.Token
}

// Decl is the transient (first, last) view over the current declaration's
// property and value tokens, valid only while the stack's top is
// Declaration (or a FunctionArgs frame nested inside one).
type Decl struct {
	First *token.Token
	Last  *token.Token
}

// Stack is the ordered stack of context frames; Top reflects the current
// structural context (spec invariant I7: it only reflects tokens already
// emitted).
type Stack struct {
	frames  []Frame
	pending *token.Token // IDENT candidate awaiting a COLON
	decl    Decl
	inDecl  bool
}

// New returns a stack seeded with the top-level stylesheet context.
func New() *Stack {
	return &Stack{frames: []Frame{{Kind: Stylesheet}}}
}

// Top returns the innermost context kind.
func (s *Stack) Top() Kind {
	return s.frames[len(s.frames)-1].Kind
}

// Opener returns the token that opened the innermost context, if any.
func (s *Stack) Opener() *token.Token {
	f := s.frames[len(s.frames)-1]
	return f.Opener
}

// Declaration reports the current declaration view and whether one is
// active.
func (s *Stack) Declaration() (Decl, bool) {
	return s.decl, s.inDecl
}

func (s *Stack) push(f Frame) { s.frames = append(s.frames, f) }

func (s *Stack) pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *Stack) endDeclaration() {
	if s.Top() == Declaration {
		s.pop()
	}
	s.inDecl = false
	s.decl = Decl{}
}

// Update advances the context stack given the token that was just emitted.
// It must be called after the modifier callback has run for that token
// (spec §4.5), so a deletion the modifier performs (e.g. the rgb() collapse
// removing its argument tokens) is reflected before the next token's
// transition is computed.
//
// kind is passed separately from t.Kind because the modifier callback runs
// before Update and is allowed to retype t in place (the rgb()/rgba()
// collapse turns a BR_RC into a HASH); the structural transition must still
// follow the token's original role, not its post-rewrite one.
func (s *Stack) Update(kind token.Kind, t *token.Token) {
	switch kind {
	case token.WS, token.Comment:
		return // trivia never affects structure or the pending-ident lookahead

	case token.BrCO:
		if s.Top() == AtRulePrelude {
			s.pop()
		}
		s.push(Frame{Kind: Block, Opener: t})
		s.pending = nil
		return

	case token.BrCC:
		s.endDeclaration()
		if s.Top() == FunctionArgs {
			s.pop()
		}
		if s.Top() == Block {
			s.pop()
		}
		s.pending = nil
		return

	case token.AtKeyword:
		s.push(Frame{Kind: AtRulePrelude, Opener: t})
		s.pending = nil
		return

	case token.Semicolon:
		s.endDeclaration()
		if s.Top() == AtRulePrelude {
			s.pop()
		}
		s.pending = nil
		return

	case token.Function, token.BrRO:
		s.push(Frame{Kind: FunctionArgs, Opener: t})
		s.trackValue(t)
		return

	case token.BrRC:
		if s.Top() == FunctionArgs {
			s.pop()
		}
		s.trackValue(t)
		return

	case token.Colon:
		if !s.inDecl && s.pending != nil && (s.Top() == Block || s.Top() == Stylesheet) {
			s.push(Frame{Kind: Declaration, Opener: s.pending})
			s.inDecl = true
			s.decl = Decl{First: s.pending, Last: s.pending}
			s.pending = nil
			return
		}
		s.pending = nil
		s.trackValue(t)
		return

	case token.Ident:
		if !s.inDecl && (s.Top() == Block || s.Top() == Stylesheet) {
			s.pending = t
		} else {
			s.pending = nil
		}
		s.trackValue(t)
		return

	default:
		s.pending = nil
		s.trackValue(t)
	}
}

func (s *Stack) trackValue(t *token.Token) {
	if s.inDecl {
		s.decl.Last = t
	}
}
