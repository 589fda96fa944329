// Package esparse implements an ECMAScript (ES2017+) parser producing an
// ESTree-compatible syntax tree, with optional JSX support, token and
// comment collection, and a tolerant mode that records syntax errors
// instead of failing on the first one.
//
// A tiny example:
//
//	program, err := esparse.Parse(`var answer = 6 * 7;`, nil, nil)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(program.Body[0].(*esparse.VariableDeclaration).Kind) // Output: var
package esparse

import (
	"log"
	"os"

	"github.com/juju/errors"
	"github.com/sourcegraph/conc"
	"go.uber.org/multierr"
)

// Options controls parsing and tokenizing. The zero value parses a plain
// script with no extra metadata.
type Options struct {
	// JSX enables the JSX syntax extension.
	JSX bool

	// SourceType is "script" (default) or "module". Modules imply strict
	// mode and enable the import/export grammar.
	SourceType string

	// Range attaches [start, end) offsets to every node.
	Range bool

	// Loc attaches line/column locations to every node.
	Loc bool

	// Source is recorded on every node location, when Loc is set; token and
	// comment locations do not carry it.
	Source string

	// Tokens collects the token list onto the Program.
	Tokens bool

	// Comment collects comments onto the Program.
	Comment bool

	// AttachComment attaches leading/trailing/inner comments to nodes.
	// Implies Comment, Range.
	AttachComment bool

	// Raw retains the raw source text of literals.
	Raw bool

	// Tolerant records errors on the Program instead of aborting at the
	// first one.
	Tolerant bool
}

func (o *Options) toConfig() config {
	return config{
		Range:    o.Range,
		Loc:      o.Loc,
		Source:   o.Source,
		Tokens:   o.Tokens,
		Comment:  o.Comment,
		Tolerant: o.Tolerant,
		Raw:      o.Raw,
		JSX:      o.JSX,
	}
}

type esparseOptions struct {
	debug bool
}

var (
	options = esparseOptions{}
	logger  = log.New(os.Stdout, "[esparse] ", log.LstdFlags)
)

// SetDebug enables debug logging of facade-level activity.
func SetDebug(b bool) {
	options.debug = b
}

func logf(format string, items ...interface{}) {
	if options.debug {
		logger.Printf(format, items...)
	}
}

// recoverSyntaxError converts the panic raised by the error handler back
// into an ordinary error return.
func recoverSyntaxError(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*err = e
			return
		}
		panic(r)
	}
}

// Parse parses source text and returns the Program root. The optional
// delegate is invoked for every finalized node (and every comment when
// comment collection is on) with its source metadata.
func Parse(code string, opts *Options, delegate Delegate) (program *Program, err error) {
	defer recoverSyntaxError(&err)

	if opts == nil {
		opts = &Options{}
	}
	cfg := opts.toConfig()

	var handler *commentHandler
	if opts.Comment || opts.AttachComment {
		handler = newCommentHandler()
		handler.attach = opts.AttachComment
		cfg.Comment = true
		if opts.AttachComment {
			cfg.Range = true
		}
	}

	parserDelegate := delegate
	if handler != nil {
		inner := delegate
		parserDelegate = func(n interface{}, metadata NodeMetadata) {
			if inner != nil {
				inner(n, metadata)
			}
			handler.visit(n, metadata)
		}
	}

	p := newParserWith(code, cfg, parserDelegate)

	if opts.JSX {
		logf("parsing with the JSX overlay enabled")
	}

	if opts.SourceType == "module" {
		program = p.parseModuleBody()
	} else {
		program = p.parseScriptBody()
	}

	if handler != nil {
		program.Comments = handler.comments
	}
	if cfg.Tokens {
		program.Tokens = p.tokens
	}
	if cfg.Tolerant {
		program.Errors = p.handler.Errors
	}

	return program, nil
}

// ParseScript parses code as a Script.
func ParseScript(code string, opts *Options) (*Program, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.SourceType = "script"
	return Parse(code, &o, nil)
}

// ParseModule parses code as a Module; strict mode is implied.
func ParseModule(code string, opts *Options) (*Program, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.SourceType = "module"
	return Parse(code, &o, nil)
}

// TokenizeResult is the outcome of Tokenize: the token list plus, in
// tolerant mode, the errors encountered along the way.
type TokenizeResult struct {
	Tokens []*Token
	Errors []*Error
}

// Tokenize scans the whole input and returns the token list without
// building a syntax tree. Regular expressions are disambiguated from
// division by tracking the previous token.
func Tokenize(code string, opts *Options) (result *TokenizeResult, err error) {
	defer recoverSyntaxError(&err)

	if opts == nil {
		opts = &Options{}
	}
	t := newTokenizer(code, opts.toConfig())

	result = &TokenizeResult{Tokens: []*Token{}}
	func() {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(*Error); ok {
					t.handler.tolerate(e)
					return
				}
				panic(r)
			}
		}()
		for {
			token := t.getNextToken()
			if token == nil {
				break
			}
			result.Tokens = append(result.Tokens, token)
		}
	}()

	if t.handler.Tolerant {
		result.Errors = t.errors()
	}
	return result, nil
}

// CombinedError folds the tolerant-mode error list into one error value,
// nil when the list is empty.
func (prog *Program) CombinedError() error {
	var err error
	for _, e := range prog.Errors {
		err = multierr.Append(err, e)
	}
	return err
}

// FileResult is the outcome of parsing one file in a ParseFiles batch.
type FileResult struct {
	Path    string
	Program *Program
	Err     error
}

// ParseFiles parses several files concurrently, one parser instance per
// file. Parsers share nothing, so the batch needs no coordination beyond
// the final join.
func ParseFiles(paths []string, opts *Options) []FileResult {
	results := make([]FileResult, len(paths))

	var wg conc.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Go(func() {
			data, err := os.ReadFile(path)
			if err != nil {
				results[i] = FileResult{Path: path, Err: errors.Annotatef(err, "reading %q", path)}
				return
			}
			program, err := Parse(string(data), opts, nil)
			if err != nil {
				err = errors.Annotatef(err, "parsing %q", path)
			}
			results[i] = FileResult{Path: path, Program: program, Err: err}
		})
	}
	wg.Wait()

	logf("parsed %d file(s)", len(paths))
	return results
}

// Version is the released version of the esparse module.
const Version = "1.0.0"
