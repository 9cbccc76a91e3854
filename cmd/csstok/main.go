// Command csstok reads a CSS file (or stdin) and writes either the
// preserved or minified token-stream rendering to stdout, grounded on the
// flags.NewParser/ParseArgs usage in sqldef's cmd/mysqldef (gorilla/css
// itself ships no CLI at all).
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/andrewstuart/csstok/minify"
	"github.com/andrewstuart/csstok/tokenizer"
)

func main() {
	var opts struct {
		Minify bool   `long:"minify" description:"Minify the output instead of preserving it byte-for-byte"`
		Output string `short:"o" long:"output" description:"Write to this file instead of stdout" value-name:"path"`
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] [file]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	src, err := readInput(args)
	if err != nil {
		log.Fatalf("csstok: %v", err)
	}

	out, err := run(src, opts.Minify)
	if err != nil {
		log.Fatalf("csstok: %v", err)
	}

	if err := writeOutput(opts.Output, out); err != nil {
		log.Fatalf("csstok: %v", err)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func run(src []byte, doMinify bool) ([]byte, error) {
	e := tokenizer.New()
	if doMinify {
		e.SetModifier(minify.New())
	}
	if err := e.SetInput(src); err != nil {
		return nil, err
	}
	if err := e.Tokenize(context.Background()); err != nil {
		return nil, err
	}
	mode := tokenizer.Preserve
	if doMinify {
		mode = tokenizer.Minify
	}
	return e.Dump(mode)
}

func writeOutput(path string, out []byte) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprint(os.Stdout, string(out))
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
