// Command esparse parses ECMAScript source files and prints the resulting
// syntax tree (or token list) as JSON.
//
// Usage:
//
//	esparse [flags] [file ...]
//
// With no file arguments the source is read from standard input. Multiple
// files are parsed concurrently; with -tokenize they are tokenized one after
// another.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/esparse/esparse"
)

var (
	module   = flag.Bool("module", false, "parse as a module instead of a script")
	jsx      = flag.Bool("jsx", false, "enable the JSX syntax extension")
	tolerant = flag.Bool("tolerant", false, "record syntax errors instead of stopping at the first one")
	withLoc  = flag.Bool("loc", false, "attach line/column locations to nodes")
	withRange = flag.Bool("range", false, "attach source offsets to nodes")
	comments = flag.Bool("comment", false, "collect comments")
	tokens   = flag.Bool("tokens", false, "collect the token list")
	tokenize = flag.Bool("tokenize", false, "print the token list instead of the syntax tree")
	raw      = flag.Bool("raw", false, "retain the raw text of literals")
	compact  = flag.Bool("compact", false, "print compact JSON instead of indented output")
	debug    = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if *debug {
		esparse.SetDebug(true)
	}

	opts := &esparse.Options{
		JSX:      *jsx,
		Tolerant: *tolerant,
		Loc:      *withLoc,
		Range:    *withRange,
		Comment:  *comments,
		Tokens:   *tokens,
		Raw:      *raw,
	}
	if *module {
		opts.SourceType = "module"
	}

	if flag.NArg() == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		if err := run("<stdin>", string(source), opts); err != nil {
			fatalf("%v", err)
		}
		return
	}

	if *tokenize {
		failed := false
		for _, path := range flag.Args() {
			source, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "esparse: %v\n", err)
				failed = true
				continue
			}
			if err := run(path, string(source), opts); err != nil {
				fmt.Fprintf(os.Stderr, "esparse: %s: %v\n", path, err)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	failed := false
	for _, result := range esparse.ParseFiles(flag.Args(), opts) {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "esparse: %v\n", result.Err)
			failed = true
			continue
		}
		emit(result.Program)
	}
	if failed {
		os.Exit(1)
	}
}

func run(name, source string, opts *esparse.Options) error {
	if *tokenize {
		result, err := esparse.Tokenize(source, opts)
		if err != nil {
			return err
		}
		emit(result.Tokens)
		return nil
	}

	o := *opts
	o.Source = name
	program, err := esparse.Parse(source, &o, nil)
	if err != nil {
		return err
	}
	emit(program)
	return nil
}

func emit(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(v); err != nil {
		fatalf("encoding JSON: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "esparse: "+format+"\n", args...)
	os.Exit(1)
}
