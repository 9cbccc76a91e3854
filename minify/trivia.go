package minify

import (
	"bytes"

	"github.com/andrewstuart/csstok/internal/classify"
	"github.com/andrewstuart/csstok/token"
	"github.com/andrewstuart/csstok/tokenizer"
)

// resolveTrivia decides the fate of any WS/COMMENT run that immediately
// precedes the current (necessarily non-trivia) token. WS and COMMENT
// tokens are deferred — each reaches the modifier on its own emission, but
// its User override can't be decided until the token that follows it is
// known, so this walks backward from the first significant token after the
// run instead of acting when the trivia token itself is current.
//
// important comments (`/*! ... */`) are always kept, since they double as a
// license/attribution marker (the one case where a comment's content, not
// just its separating role, is required to survive minification).
func resolveTrivia(h *tokenizer.Handle) {
	t := h.Current()
	if t.Kind == token.WS || t.Kind == token.Comment {
		return
	}

	var run []*token.Token
	cur := t.Prev
	for cur != nil && (cur.Kind == token.WS || cur.Kind == token.Comment) {
		run = append(run, cur)
		cur = cur.Prev
	}
	prevSignificant := cur

	if len(run) == 0 {
		// No trivia between the two tokens at all: ordinarily guaranteed
		// safe, since the original tokenizer already placed the boundary
		// there. The one exception is a predecessor whose rendered form
		// was just changed by an earlier rewrite in this same pass (the
		// rgb()/rgba() collapse retypes a BR_RC into a HASH in place, so a
		// boundary that used to be ")X" can become "#abcX"). Re-check and
		// splice in a synthetic separator if the new boundary would fuse.
		if mergeRequired(prevSignificant, t) {
			h.InsertAfter(prevSignificant, &token.Token{Kind: token.WS, Data: []byte(" ")})
		}
		return
	}
	for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
		run[i], run[j] = run[j], run[i]
	}

	keptComment := false
	for _, tok := range run {
		if tok.Kind == token.Comment && isImportantComment(tok.Data) {
			keptComment = true
			break
		}
	}
	needSep := !keptComment && mergeRequired(prevSignificant, t)

	wroteSep := false
	for _, tok := range run {
		if tok.Kind == token.Comment && isImportantComment(tok.Data) {
			wroteSep = true
			continue
		}
		if needSep && !wroteSep {
			tok.SetUser([]byte(" "))
			wroteSep = true
			continue
		}
		tok.SetUser(nil)
	}
}

func isImportantComment(data []byte) bool {
	return bytes.HasPrefix(data, []byte("/*!"))
}

// mergeRequired reports whether dropping all whitespace between prev and
// next would change how the output retokenizes. This plays the same role as
// the teacher's commentInsertionRules adjacency table (there, a Kind-keyed
// table decides when a real separator — there, always a "/**/" comment —
// must be inserted to keep two tokens from fusing on re-scan), but is
// decided from the actual boundary bytes rather than a Kind-pair lookup: our
// token model doesn't always re-render a kind the same way (an
// AT_URL_STRING keeps its original quoted form rather than always
// expanding to "url(...)", for instance), so a Kind-only table would flag
// safe boundaries as unsafe.
//
// The general rule: if prev's last rendered byte and next's first raw byte
// are both name characters (letters, digits, '_', '-', or a UTF-8
// continuation byte), concatenating them would extend one lexeme into the
// other. Two narrower cases fall outside that rule and are checked
// explicitly: a bare '.' DELIM immediately before a number-like token would
// be reabsorbed as that number's decimal point, and a '?' immediately after
// a UNICODE_RANGE would be reabsorbed as one more of its wildcard digits.
func mergeRequired(prev, next *token.Token) bool {
	if prev == nil {
		return false
	}
	pe, ne := prev.Effective(), next.Data
	if len(pe) == 0 || len(ne) == 0 {
		return false
	}
	last, first := pe[len(pe)-1], ne[0]

	if last == '.' && isNumericStart(next.Kind) {
		return true
	}
	if prev.Kind == token.UnicodeRange && first == '?' {
		return true
	}
	return classify.IsName(last) && classify.IsName(first)
}

func isNumericStart(k token.Kind) bool {
	switch k {
	case token.Number, token.Percentage, token.Dimension:
		return true
	default:
		return false
	}
}

// elideRedundantSemicolon drops a declaration list's final semicolon, which
// is syntactically optional immediately before the closing brace.
func elideRedundantSemicolon(h *tokenizer.Handle) {
	cur := h.Current().Prev
	for cur != nil && (cur.Kind == token.WS || cur.Kind == token.Comment) {
		cur = cur.Prev
	}
	if cur != nil && cur.Kind == token.Semicolon {
		cur.SetUser(nil)
	}
}
