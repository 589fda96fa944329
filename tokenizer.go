package esparse

// reader watches the token stream to decide whether a `/` starts a regular
// expression or a division. It keeps punctuator/keyword values and tracks
// the most recent curly/paren openers, mirroring the previous-token state
// machine of the reference tokenizer.
type reader struct {
	values []string
	punct   []bool
	curly  int
	paren  int
}

func newReader() *reader {
	return &reader{curly: -1, paren: -1}
}

// beforeFunctionExpression reports whether t can precede a function
// expression, which makes a following `}` terminate an expression rather
// than a declaration body.
func (r *reader) beforeFunctionExpression(t string) bool {
	switch t {
	case "(", "{", "[", "in", "typeof", "instanceof", "new", "return",
		"case", "delete", "throw", "void",
		// assignment operators
		"=", "+=", "-=", "*=", "**=", "/=", "%=", "<<=", ">>=", ">>>=",
		"&=", "|=", "^=", ",",
		// binary/unary operators
		"+", "-", "*", "**", "/", "%", "++", "--", "<<", ">>", ">>>", "&",
		"|", "^", "!", "~", "&&", "||", "?", ":", "===", "==", ">=", "<=",
		"<", ">", "!=", "!==":
		return true
	}
	return false
}

// at returns the tracked value at index i, with ok=false for out-of-range
// or non-punctuator/keyword entries.
func (r *reader) at(i int) (string, bool) {
	if i < 0 || i >= len(r.values) {
		return "", false
	}
	return r.values[i], r.punct[i]
}

// isRegexStart decides, from the previous token, whether a slash starts a
// regular expression.
func (r *reader) isRegexStart() bool {
	if len(r.values) == 0 {
		return true
	}
	previous, isValue := r.values[len(r.values)-1], r.punct[len(r.values)-1]
	regex := isValue

	switch {
	case !isValue:
		// Identifier or literal before the slash: division.
	case previous == "this" || previous == "]":
		regex = false
	case previous == ")":
		// Only if, while, for and with allow a regex right after `)`.
		keyword, _ := r.at(r.paren - 1)
		regex = keyword == "if" || keyword == "while" || keyword == "for" || keyword == "with"
	case previous == "}":
		// Dividing a function by anything makes little sense,
		// but we have to check for that.
		regex = false
		if v, _ := r.at(r.curly - 3); v == "function" {
			// Anonymous function, e.g. function(){} /42
			check, ok := r.at(r.curly - 4)
			if ok {
				regex = !r.beforeFunctionExpression(check)
			}
		} else if v, _ := r.at(r.curly - 4); v == "function" {
			// Named function, e.g. function f(){} /42/
			check, ok := r.at(r.curly - 5)
			if ok {
				regex = !r.beforeFunctionExpression(check)
			} else {
				regex = true
			}
		}
	}

	return regex
}

func (r *reader) push(token rawToken) {
	if token.Type == TokenPunctuator || token.Type == TokenKeyword {
		if token.Value == "{" {
			r.curly = len(r.values)
		} else if token.Value == "(" {
			r.paren = len(r.values)
		}
		r.values = append(r.values, token.Value)
		r.punct = append(r.punct, true)
	} else {
		r.values = append(r.values, "")
		r.punct = append(r.punct, false)
	}
}

// tokenizer drives the scanner over the whole input, producing the public
// token list with regex/division disambiguation but no parsing.
type tokenizer struct {
	handler      *errorHandler
	scanner      *scanner
	reader       *reader
	trackRange   bool
	trackLoc     bool
	buffer       []*Token
}

func newTokenizer(code string, cfg config) *tokenizer {
	handler := newErrorHandler()
	handler.Tolerant = cfg.Tolerant

	sc := newScanner(code, handler)
	sc.trackComment = cfg.Comment

	return &tokenizer{
		handler:    handler,
		scanner:    sc,
		reader:     newReader(),
		trackRange: cfg.Range,
		trackLoc:   cfg.Loc,
	}
}

func (t *tokenizer) errors() []*Error {
	return t.handler.Errors
}

// scanMaybeRegex tries the slash as a regex first and falls back to the
// operator interpretation when the regex scan fails.
func (t *tokenizer) scanMaybeRegex() rawToken {
	state := t.scanner.saveState()
	token, ok := t.tryScanRegExp()
	if !ok {
		t.scanner.restoreState(state)
		return t.scanner.lex()
	}
	return token
}

func (t *tokenizer) tryScanRegExp() (token rawToken, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isError := r.(*Error); isError {
				ok = false
				return
			}
			panic(r)
		}
	}()
	return t.scanner.scanRegExp(), true
}

// getNextToken returns the next token entry, or nil at end of input.
func (t *tokenizer) getNextToken() *Token {
	if len(t.buffer) == 0 {
		comments := t.scanner.scanComments()
		if t.scanner.trackComment {
			for i := range comments {
				e := &comments[i]
				typ := "LineComment"
				if e.MultiLine {
					typ = "BlockComment"
				}
				entry := &Token{
					Type:  typ,
					Value: t.scanner.text(e.Slice[0], e.Slice[1]),
				}
				if t.trackRange {
					r := e.Range
					entry.Range = &r
				}
				if t.trackLoc {
					loc := e.Loc
					entry.Loc = &loc
				}
				t.buffer = append(t.buffer, entry)
			}
		}

		if !t.scanner.eof() {
			startLine := t.scanner.lineNumber
			startColumn := t.scanner.index - t.scanner.lineStart

			var token rawToken
			if t.scanner.source[t.scanner.index] == '/' && t.reader.isRegexStart() {
				token = t.scanMaybeRegex()
			} else {
				token = t.scanner.lex()
			}
			t.reader.push(token)

			entry := &Token{
				Type:  tokenName[token.Type],
				Value: t.scanner.text(token.Start, token.End),
			}
			if t.trackRange {
				entry.Range = &[2]int{token.Start, token.End}
			}
			if t.trackLoc {
				entry.Loc = &SourceLocation{
					Start: Position{Line: startLine, Column: startColumn},
					End:   Position{Line: t.scanner.lineNumber, Column: t.scanner.index - t.scanner.lineStart},
				}
			}
			if token.Type == TokenRegularExpression {
				entry.Regex = &RegexInfo{Pattern: token.Pattern, Flags: token.Flags}
			}
			t.buffer = append(t.buffer, entry)
		}
	}

	if len(t.buffer) == 0 {
		return nil
	}
	next := t.buffer[0]
	t.buffer = t.buffer[1:]
	return next
}
