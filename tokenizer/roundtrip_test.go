package tokenizer

import "testing"

// TestRoundTripCorpus drives Fuzz over a hand-picked corpus, the same way
// the teacher's scanner_test.go calls Fuzz([]byte(s)) at the end of every
// checkMatch case rather than relying solely on `go test -fuzz`.
func TestRoundTripCorpus(t *testing.T) {
	cases := []string{
		"",
		"a{color:red}",
		"a { color: red; }",
		"/* comment */ a { color: red }",
		`a[href^="https://"]{color:red}`,
		"@import \"x.css\";",
		`content: "line\ABreak";`,
		"div{ background: rgba(100%, 0%, 0%, 1); }",
		"p { margin: 0.50px 0px; }",
		"a::before{content:'\\2014'}",
		"a{b:url(foo.png)}",
		"a{b:url( foo.png )}",
		"a{b:url(\"foo.png\")}",
		"a{b:url('foo.png')}",
		"a{b:url(bad url)}",
		"42px 4.2e3 .5% +1 -1",
		"U+0025-00FF",
		"a\\ b { }",
		"'unterminated",
		"\"also\nbad\"",
		"/* unterminated",
		"a|b c||d",
		"a$=b a^=b a*=b a~=b a|=b",
		"<!-- -->",
	}
	for _, c := range cases {
		c := c
		t.Run(c, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Fuzz panicked on %q: %v", c, r)
				}
			}()
			Fuzz([]byte(c))
		})
	}
}
