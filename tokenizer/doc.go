// Copyright 2024 The csstok Authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tokenizer implements the CSS Syntax Level 3 tokenizer, generalized
from the gorilla/css tokenizer into a buffer-owning engine that builds a
doubly-linked token list instead of handing tokens back one at a time.

To use it, install input, optionally register a modifier, and run the
pipeline to EOF:

	e := tokenizer.New()
	e.SetInput(src)
	e.SetModifier(minify.New())
	if err := e.Tokenize(context.Background()); err != nil {
		// ErrNilInput or ErrOutOfMemory; CSS-level errors never reach here
	}
	out, _ := e.Dump(tokenizer.Minify)

Tokenization never fails on malformed CSS: structural problems surface as
BAD_STRING, BAD_URL, or DELIM tokens in the list, and the stream always
reaches a terminal EOF token. Only resource exhaustion (ErrOutOfMemory) and
a nil input buffer (ErrNilInput) abort the run early.

See package minify for the built-in modifier that performs whitespace and
comment collapsing, numeric trimming, hash shortening, and the rgb()/rgba()
to #hash conversion.
*/
package tokenizer
