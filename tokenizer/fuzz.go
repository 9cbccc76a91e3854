package tokenizer

import (
	"context"
	"fmt"

	"github.com/andrewstuart/csstok/token"
)

// Fuzz tokenizes b, renders the result in preserve mode, and re-tokenizes
// that output, panicking if the two token-kind sequences disagree. Modeled
// directly on the teacher's tokenizer/fuzz.go Fuzz entry point, adapted from
// a one-token-at-a-time TokenRenderer/io.Pipe loop to a render-the-whole-
// list-then-retokenize comparison, since the new Engine always produces a
// complete list rather than a token stream.
//
// With no modifier installed this doubles as property P1/P2/P3's check:
// preserve-mode output must retokenize to an identical kind sequence.
func Fuzz(b []byte) int {
	e := New()
	if err := e.SetInput(b); err != nil {
		return 0
	}
	if err := e.Tokenize(context.Background()); err != nil {
		panic(err)
	}
	rendered := append([]byte{}, token.Render(e.list)...) // non-nil even when empty, so SetInput accepts it

	e2 := New()
	if err := e2.SetInput(rendered); err != nil {
		panic(err)
	}
	if err := e2.Tokenize(context.Background()); err != nil {
		panic(err)
	}

	a, c := e.list.First(), e2.list.First()
	for a != nil || c != nil {
		if a == nil || c == nil {
			panic(fmt.Sprintf("retokenization length mismatch for %q", b))
		}
		if a.Kind != c.Kind {
			panic(fmt.Sprintf("retokenizer gave %v, expected %v for %q", c.Kind, a.Kind, b))
		}
		if a.Kind != token.EOF && string(a.Effective()) != string(c.Effective()) {
			panic(fmt.Sprintf("retokenizer data %q, expected %q for %q", c.Effective(), a.Effective(), b))
		}
		a, c = a.Next, c.Next
	}
	return 1
}
