package tokenizer

import (
	"github.com/andrewstuart/csstok/context"
	"github.com/andrewstuart/csstok/token"
)

// ModifierFunc is the pluggable per-token rewrite hook (spec §4.5(b), §6).
// It is invoked once for every emitted token, in its final pre-context-
// update form, with the context stack still reflecting the state as of
// before that token (spec "Ordering guarantee").
//
// Rights: read any token reachable by walking Prev from the current one,
// replace the current token's User override, retype the current token,
// delete a range of predecessors, and insert a synthetic token after one of
// them.
//
// Prohibitions: the callback must not advance the reader (there is no
// method to do so) and must not mutate any token after the current one
// — those have not been scanned yet, so nothing enforces
// this beyond the callback's own discipline.
type ModifierFunc func(h *Handle)

// Handle is the capability object passed to a ModifierFunc, modeled as a
// reference type with documented rights rather than a free-function
// pointer carrying hidden state (spec §9 design notes).
type Handle struct {
	list *token.List
	cur  *token.Token
	ctx  *context.Stack
}

// Current returns the token that was just emitted.
func (h *Handle) Current() *token.Token { return h.cur }

// List exposes the token list for backward traversal via Prev.
func (h *Handle) List() *token.List { return h.list }

// Context returns the structural context stack as of just before the
// current token.
func (h *Handle) Context() *context.Stack { return h.ctx }

// Retype changes the current token's kind (used by the rgb()/rgba()
// collapse to turn the closing BR_RC into the HASH token that replaces the
// whole call).
func (h *Handle) Retype(k token.Kind) { h.cur.Kind = k }

// DeleteRange unlinks the inclusive run [from, to] from the list. from and
// to must both precede or equal the current token.
func (h *Handle) DeleteRange(from, to *token.Token) { h.list.RemoveRange(from, to) }

// InsertAfter links a synthetic token immediately after an existing one.
func (h *Handle) InsertAfter(after, t *token.Token) { h.list.InsertAfter(after, t) }
