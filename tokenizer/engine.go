package tokenizer

import (
	stdcontext "context"

	"github.com/andrewstuart/csstok/context"
	"github.com/andrewstuart/csstok/internal/buffer"
	"github.com/andrewstuart/csstok/internal/preprocess"
	"github.com/andrewstuart/csstok/token"
)

// Mode selects what Dump renders.
type Mode int

const (
	// Preserve names the unmodified rendering: when Tokenize ran with no
	// modifier registered, Dump reproduces the original input byte-for-byte
	// (after preprocessor normalization).
	Preserve Mode = iota
	// Minify renders using whatever modifier is currently registered; the
	// built-in minifier is expected to have been installed via
	// SetModifier for this to actually shrink the output.
	Minify
)

// Engine is the single-owner handle for one tokenization run: the working
// buffer, the resulting token list, the structural context stack, and the
// registered modifier. All of its state is released together by Release.
type Engine struct {
	buf      *buffer.Buffer
	list     *token.List
	ctx      *context.Stack
	modifier ModifierFunc
}

// New returns an Engine with no input installed yet.
func New() *Engine {
	return &Engine{}
}

// SetInput installs the source buffer, running it through the input
// preprocessing filter (CR/CRLF/FF -> LF, NUL -> U+FFFD). It resets any
// prior tokenization state.
func (e *Engine) SetInput(data []byte) error {
	if data == nil {
		return ErrNilInput
	}
	normalized, err := preprocess.Run(data)
	if err != nil {
		return ErrOutOfMemory
	}
	e.buf = buffer.New(normalized)
	e.list = token.New()
	e.ctx = context.New()
	return nil
}

// SetModifier registers the post-emission hook, replacing any prior one.
func (e *Engine) SetModifier(fn ModifierFunc) { e.modifier = fn }

// Tokenize runs the pipeline to EOF. ctx is polled between tokens (never
// mid-filler, preserving the "no suspension" rule of spec §5); a nil ctx is
// treated as context.Background().
func (e *Engine) Tokenize(ctx stdcontext.Context) error {
	if e.buf == nil {
		return ErrNilInput
	}
	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		t := e.scanOne()
		e.emit(t)
		if t.Kind == token.EOF {
			return nil
		}
	}
}

// emit appends t, applies the @import URL elevation, runs the modifier
// callback (which sees the context stack in its pre-update form), and only
// then advances the context stack — matching spec §4.5/§4.6's ordering
// guarantee.
func (e *Engine) emit(t *token.Token) {
	e.list.Append(t)
	e.elevateImportURL(t)
	origKind := t.Kind
	if e.modifier != nil {
		e.modifier(&Handle{list: e.list, cur: t, ctx: e.ctx})
	}
	e.ctx.Update(origKind, t)
}

// elevateImportURL implements spec §4.5(a): a STRING immediately preceded
// (ignoring WS/COMMENT) by an `@import` AT_KEYWORD is retyped to URL with
// flag AT_URL_STRING. Only the immediately preceding non-trivia token is
// consulted, per spec's stated (and deliberately unresolved) ambiguity
// about whether that token must be the first one of the at-rule prelude.
func (e *Engine) elevateImportURL(t *token.Token) {
	if t.Kind != token.STRING {
		return
	}
	prev := t.Prev
	for prev != nil && (prev.Kind == token.WS || prev.Kind == token.Comment) {
		prev = prev.Prev
	}
	if prev == nil || prev.Kind != token.AtKeyword || string(prev.Data) != "@import" {
		return
	}
	t.Kind = token.URL
	t.Flag = token.FlagAtURLString
	if len(t.Data) > 0 {
		t.Info = []byte{t.Data[0]}
	}
}

// Tokens returns the first token of the list built by Tokenize, or nil if
// no input has been tokenized yet. Callers that need the token stream
// itself (rather than a rendered byte slice) walk it via Token.Next.
func (e *Engine) Tokens() *token.Token {
	if e.list == nil {
		return nil
	}
	return e.list.First()
}

// Dump walks the final token list and returns each token's effective text
// (User if set, otherwise Data). mode does not change the result: all
// rewriting happens at emission time, so the output is minified exactly when
// a minifying modifier was registered via SetModifier before Tokenize,
// whichever mode is passed.
func (e *Engine) Dump(mode Mode) ([]byte, error) {
	if e.list == nil {
		return nil, ErrNilInput
	}
	return token.Render(e.list), nil
}

// Release frees all state owned by the engine.
func (e *Engine) Release() {
	e.buf = nil
	e.list = nil
	e.ctx = nil
	e.modifier = nil
}
