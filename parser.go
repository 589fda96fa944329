package esparse

// config captures the per-parse options after normalisation by the facade.
type config struct {
	Range    bool
	Loc      bool
	Source   string
	Tokens   bool
	Comment  bool
	Tolerant bool
	Raw      bool
	JSX      bool
}

// parserContext is the flag set that steers context-sensitive productions.
// It is saved and restored wholesale on function/class/loop entry.
type parserContext struct {
	isModule             bool
	allowIn              bool
	allowStrictDirective bool
	allowYield           bool
	await                bool
	inFunctionBody       bool
	inIteration          bool
	inSwitch             bool
	labelSet             map[string]bool
	strict               bool

	isAssignmentTarget             bool
	isBindingElement               bool
	firstCoverInitializedNameError *rawToken
}

// MetaPosition is one end of the node metadata handed to the delegate.
type MetaPosition struct {
	Line   int
	Column int
	Offset int
}

// NodeMetadata brackets a finalized node for the delegate protocol.
type NodeMetadata struct {
	Start MetaPosition
	End   MetaPosition
}

// Delegate receives every finalized AST node and, when comment collection is
// enabled, every comment. The node argument is a Node for AST nodes and a
// *Comment for comments.
type Delegate func(node interface{}, metadata NodeMetadata)

// parser is a recursive-descent engine over the scanner. Errors unwind via
// panic with a *Error and are recovered at the public entry points; in
// tolerant mode most errors are recorded instead and parsing continues.
type parser struct {
	config   config
	delegate Delegate
	handler  *errorHandler
	scanner  *scanner

	lookahead         rawToken
	hasLineTerminator bool

	context parserContext
	tokens  []*Token

	// exportedNames backs the duplicate-export early error.
	exportedNames map[string]bool

	startMarker Marker
	lastMarker  Marker
}

func newParserWith(code string, cfg config, delegate Delegate) *parser {
	handler := newErrorHandler()
	handler.Tolerant = cfg.Tolerant

	sc := newScanner(code, handler)
	sc.trackComment = cfg.Comment

	p := &parser{
		config:   cfg,
		delegate: delegate,
		handler:  handler,
		scanner:  sc,
		lookahead: rawToken{
			Type:       TokenEOF,
			LineNumber: sc.lineNumber,
		},
		context: parserContext{
			allowIn:              true,
			allowStrictDirective: true,
			labelSet:             map[string]bool{},
		},
	}

	p.startMarker = Marker{Line: sc.lineNumber}
	p.lastMarker = Marker{Line: sc.lineNumber}
	p.nextToken()
	p.lastMarker = Marker{
		Index:  sc.index,
		Line:   sc.lineNumber,
		Column: sc.index - sc.lineStart,
	}
	return p
}

// --- error reporting -----------------------------------------------------

func (p *parser) throwError(messageFormat string, values ...interface{}) {
	msg := formatMessage(messageFormat, values...)
	panic(p.handler.createError(p.lastMarker.Index, p.lastMarker.Line, p.lastMarker.Column+1, msg))
}

func (p *parser) tolerateError(messageFormat string, values ...interface{}) {
	msg := formatMessage(messageFormat, values...)
	p.handler.tolerateError(p.lastMarker.Index, p.scanner.lineNumber, p.lastMarker.Column+1, msg)
}

// unexpectedTokenError builds the error for an unexpected token, picking a
// message specific to the token kind when the caller supplies none.
func (p *parser) unexpectedTokenError(token *rawToken, message string) *Error {
	msg := message
	if msg == "" {
		msg = msgUnexpectedToken
	}

	var value string
	if token != nil {
		if message == "" {
			switch token.Type {
			case TokenEOF:
				msg = msgUnexpectedEOS
			case TokenIdentifier:
				msg = msgUnexpectedIdentifier
			case TokenNumericLiteral:
				msg = msgUnexpectedNumber
			case TokenStringLiteral:
				msg = msgUnexpectedString
			case TokenTemplate:
				msg = msgUnexpectedTemplate
			}
			if token.Type == TokenKeyword {
				if isFutureReservedWord(token.Value) {
					msg = msgUnexpectedReserved
				} else if p.context.strict && isStrictModeReservedWord(token.Value) {
					msg = msgStrictReservedWord
				}
			}
		}
		value = token.Value
	} else {
		value = "ILLEGAL"
	}

	msg = formatMessage(msg, value)

	if token != nil && token.LineNumber > 0 {
		column := token.Start - token.LineStart + 1
		return p.handler.createError(token.Start, token.LineNumber, column, msg)
	}
	return p.handler.createError(p.lastMarker.Index, p.lastMarker.Line, p.lastMarker.Column+1, msg)
}

func (p *parser) throwUnexpectedToken(token *rawToken, message string) {
	panic(p.unexpectedTokenError(token, message))
}

func (p *parser) tolerateUnexpectedToken(token *rawToken, message string) {
	p.handler.tolerate(p.unexpectedTokenError(token, message))
}

// --- comments and token plumbing -----------------------------------------

func (p *parser) collectComments() {
	if !p.config.Comment {
		p.scanner.scanComments()
		return
	}

	comments := p.scanner.scanComments()
	for i := range comments {
		e := &comments[i]
		typ := "LineComment"
		if e.MultiLine {
			typ = "BlockComment"
		}
		c := &Comment{
			Type:  typ,
			Value: p.scanner.text(e.Slice[0], e.Slice[1]),
		}
		if p.config.Range {
			r := e.Range
			c.Range = &r
		}
		if p.config.Loc {
			loc := e.Loc
			c.Loc = &loc
		}
		if p.delegate != nil {
			metadata := NodeMetadata{
				Start: MetaPosition{Line: e.Loc.Start.Line, Column: e.Loc.Start.Column, Offset: e.Range[0]},
				End:   MetaPosition{Line: e.Loc.End.Line, Column: e.Loc.End.Column, Offset: e.Range[1]},
			}
			p.delegate(c, metadata)
		}
	}
}

// getTokenRaw returns the exact source text of a token.
func (p *parser) getTokenRaw(token rawToken) string {
	return p.scanner.text(token.Start, token.End)
}

func (p *parser) convertToken(token rawToken) *Token {
	t := &Token{
		Type:  tokenName[token.Type],
		Value: p.getTokenRaw(token),
	}
	if p.config.Range {
		t.Range = &[2]int{token.Start, token.End}
	}
	if p.config.Loc {
		t.Loc = &SourceLocation{
			Start: Position{Line: p.startMarker.Line, Column: p.startMarker.Column},
			End:   Position{Line: p.scanner.lineNumber, Column: p.scanner.index - p.scanner.lineStart},
		}
	}
	if token.Type == TokenRegularExpression {
		t.Regex = &RegexInfo{Pattern: token.Pattern, Flags: token.Flags}
	}
	return t
}

func (p *parser) nextToken() rawToken {
	token := p.lookahead

	p.lastMarker = Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}

	p.collectComments()

	if p.scanner.index != p.startMarker.Index {
		p.startMarker = Marker{
			Index:  p.scanner.index,
			Line:   p.scanner.lineNumber,
			Column: p.scanner.index - p.scanner.lineStart,
		}
	}

	next := p.scanner.lex()
	p.hasLineTerminator = token.LineNumber != next.LineNumber

	if p.context.strict && next.Type == TokenIdentifier && isStrictModeReservedWord(next.Value) {
		next.Type = TokenKeyword
	}
	p.lookahead = next

	if p.config.Tokens && next.Type != TokenEOF {
		p.tokens = append(p.tokens, p.convertToken(next))
	}

	return token
}

func (p *parser) nextRegexToken() rawToken {
	p.collectComments()
	token := p.scanner.scanRegExp()

	if p.config.Tokens {
		// Replace the previous token (the starting slash) with the full
		// regex token.
		if n := len(p.tokens); n > 0 {
			p.tokens = p.tokens[:n-1]
		}
		p.tokens = append(p.tokens, p.convertToken(token))
	}

	// Prime the next lookahead.
	p.lookahead = token
	p.nextToken()
	return token
}

// --- markers and node finalization ---------------------------------------

func (p *parser) createNode() Marker {
	return p.startMarker
}

func (p *parser) startNode(token rawToken) Marker {
	return p.startNodeAt(token, 0)
}

// startNodeAt corrects the column when a token begins on a line scanned
// past already (this happens for the right operands collected by the
// binary-expression stack).
func (p *parser) startNodeAt(token rawToken, lastLineStart int) Marker {
	column := token.Start - token.LineStart
	line := token.LineNumber
	if column < 0 {
		column += lastLineStart
		line--
	}
	return Marker{Index: token.Start, Line: line, Column: column}
}

// finalize decorates a freshly parsed node with range/loc metadata and
// hands it to the delegate.
func (p *parser) finalize(marker Marker, n Node) Node {
	b := n.base()

	if p.config.Range {
		b.Range = &[2]int{marker.Index, p.lastMarker.Index}
	}
	if p.config.Loc {
		loc := &SourceLocation{
			Start: Position{Line: marker.Line, Column: marker.Column},
			End:   Position{Line: p.lastMarker.Line, Column: p.lastMarker.Column},
		}
		if p.config.Source != "" {
			loc.Source = p.config.Source
		}
		b.Loc = loc
	}

	if p.delegate != nil {
		metadata := NodeMetadata{
			Start: MetaPosition{Line: marker.Line, Column: marker.Column, Offset: marker.Index},
			End:   MetaPosition{Line: p.lastMarker.Line, Column: p.lastMarker.Column, Offset: p.lastMarker.Index},
		}
		p.delegate(n, metadata)
	}

	return n
}

// --- token predicates ----------------------------------------------------

// expect consumes the next token when it is the given punctuator and
// reports an unexpected token otherwise.
func (p *parser) expect(value string) {
	token := p.nextToken()
	if token.Type != TokenPunctuator || token.Value != value {
		p.throwUnexpectedToken(&token, "")
	}
}

// expectCommaSeparator is expect(",") with tolerant-mode recovery for the
// common semicolon-for-comma typo.
func (p *parser) expectCommaSeparator() {
	if p.config.Tolerant {
		token := p.lookahead
		if token.Type == TokenPunctuator && token.Value == "," {
			p.nextToken()
		} else if token.Type == TokenPunctuator && token.Value == ";" {
			p.nextToken()
			p.tolerateUnexpectedToken(&token, "")
		} else {
			p.tolerateUnexpectedToken(&token, msgUnexpectedToken)
		}
	} else {
		p.expect(",")
	}
}

func (p *parser) expectKeyword(keyword string) {
	token := p.nextToken()
	if token.Type != TokenKeyword || token.Value != keyword {
		p.throwUnexpectedToken(&token, "")
	}
}

func (p *parser) match(value string) bool {
	return p.lookahead.Type == TokenPunctuator && p.lookahead.Value == value
}

func (p *parser) matchKeyword(keyword string) bool {
	return p.lookahead.Type == TokenKeyword && p.lookahead.Value == keyword
}

func (p *parser) matchContextualKeyword(keyword string) bool {
	return p.lookahead.Type == TokenIdentifier && p.lookahead.Value == keyword
}

func (p *parser) matchAssign() bool {
	if p.lookahead.Type != TokenPunctuator {
		return false
	}
	switch p.lookahead.Value {
	case "=", "*=", "**=", "/=", "%=", "+=", "-=",
		"<<=", ">>=", ">>>=", "&=", "^=", "|=":
		return true
	}
	return false
}

// --- cover grammar bookkeeping -------------------------------------------

// isolateCoverGrammar parses a production with fresh binding/assignment
// flags and flushes any buffered cover-grammar error before restoring them.
func (p *parser) isolateCoverGrammar(parseFn func() Node) Node {
	prevIsBindingElement := p.context.isBindingElement
	prevIsAssignmentTarget := p.context.isAssignmentTarget
	prevFirstCover := p.context.firstCoverInitializedNameError

	p.context.isBindingElement = true
	p.context.isAssignmentTarget = true
	p.context.firstCoverInitializedNameError = nil

	result := parseFn()
	if p.context.firstCoverInitializedNameError != nil {
		p.throwUnexpectedToken(p.context.firstCoverInitializedNameError, "")
	}

	p.context.isBindingElement = prevIsBindingElement
	p.context.isAssignmentTarget = prevIsAssignmentTarget
	p.context.firstCoverInitializedNameError = prevFirstCover
	return result
}

// inheritCoverGrammar parses a production whose binding/assignment flags
// merge into the surrounding production's.
func (p *parser) inheritCoverGrammar(parseFn func() Node) Node {
	prevIsBindingElement := p.context.isBindingElement
	prevIsAssignmentTarget := p.context.isAssignmentTarget
	prevFirstCover := p.context.firstCoverInitializedNameError

	p.context.isBindingElement = true
	p.context.isAssignmentTarget = true
	p.context.firstCoverInitializedNameError = nil

	result := parseFn()

	p.context.isBindingElement = p.context.isBindingElement && prevIsBindingElement
	p.context.isAssignmentTarget = p.context.isAssignmentTarget && prevIsAssignmentTarget
	if prevFirstCover != nil {
		p.context.firstCoverInitializedNameError = prevFirstCover
	}
	return result
}

// consumeSemicolon implements automatic semicolon insertion at statement
// boundaries.
func (p *parser) consumeSemicolon() {
	if p.match(";") {
		p.nextToken()
	} else if !p.hasLineTerminator {
		if p.lookahead.Type != TokenEOF && !p.match("}") {
			p.throwUnexpectedToken(&p.lookahead, "")
		}
		p.lastMarker = p.startMarker
	}
}

// --- primary expressions -------------------------------------------------

func (p *parser) parsePrimaryExpression() Node {
	marker := p.createNode()

	switch p.lookahead.Type {
	case TokenIdentifier:
		if (p.context.isModule || p.context.await) && p.lookahead.Value == "await" {
			p.tolerateUnexpectedToken(&p.lookahead, "")
		}
		if p.matchAsyncFunction() {
			return p.parseFunctionExpression()
		}
		token := p.nextToken()
		return p.finalize(marker, newIdentifier(token.Value))

	case TokenNumericLiteral, TokenStringLiteral:
		if p.context.strict && p.lookahead.Octal {
			p.tolerateUnexpectedToken(&p.lookahead, msgStrictOctalLiteral)
		}
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
		token := p.nextToken()
		raw := p.rawFor(token)
		if token.Type == TokenNumericLiteral {
			return p.finalize(marker, newLiteral(token.NumericValue, raw))
		}
		return p.finalize(marker, newLiteral(token.Value, raw))

	case TokenBooleanLiteral:
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
		token := p.nextToken()
		return p.finalize(marker, newLiteral(token.Value == "true", p.rawFor(token)))

	case TokenNullLiteral:
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
		token := p.nextToken()
		return p.finalize(marker, newLiteral(nil, p.rawFor(token)))

	case TokenTemplate:
		return p.parseTemplateLiteral()

	case TokenPunctuator:
		switch p.lookahead.Value {
		case "(":
			p.context.isBindingElement = false
			return p.inheritCoverGrammar(p.parseGroupExpression)
		case "[":
			return p.inheritCoverGrammar(p.parseArrayInitializer)
		case "{":
			return p.inheritCoverGrammar(p.parseObjectInitializer)
		case "/", "/=":
			p.context.isAssignmentTarget = false
			p.context.isBindingElement = false
			p.scanner.index = p.startMarker.Index
			token := p.nextRegexToken()
			return p.finalize(marker, newRegexLiteral(token.Pattern, token.Flags, p.rawFor(token)))
		case "<":
			if p.config.JSX {
				p.context.isAssignmentTarget = false
				p.context.isBindingElement = false
				return p.parseJSXRoot()
			}
			token := p.nextToken()
			p.throwUnexpectedToken(&token, "")
		default:
			token := p.nextToken()
			p.throwUnexpectedToken(&token, "")
		}

	case TokenKeyword:
		if !p.context.strict && p.context.allowYield && p.matchKeyword("yield") {
			return p.parseIdentifierName()
		} else if !p.context.strict && p.matchKeyword("let") {
			token := p.nextToken()
			return p.finalize(marker, newIdentifier(token.Value))
		}
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
		if p.matchKeyword("function") {
			return p.parseFunctionExpression()
		} else if p.matchKeyword("this") {
			p.nextToken()
			return p.finalize(marker, newThisExpression())
		} else if p.matchKeyword("class") {
			return p.parseClassExpression()
		} else if p.matchImportCall() {
			return p.parseImportCall()
		}
		token := p.nextToken()
		p.throwUnexpectedToken(&token, "")
	}

	token := p.nextToken()
	p.throwUnexpectedToken(&token, "")
	return nil
}

// rawFor returns the token's source text when raw retention is enabled.
func (p *parser) rawFor(token rawToken) string {
	if !p.config.Raw {
		return ""
	}
	return p.getTokenRaw(token)
}

// --- array and object initializers ---------------------------------------

func (p *parser) parseSpreadElement() Node {
	marker := p.createNode()
	p.expect("...")
	arg := p.inheritCoverGrammar(p.parseAssignmentExpression)
	return p.finalize(marker, newSpreadElement(arg))
}

func (p *parser) parseArrayInitializer() Node {
	marker := p.createNode()
	elements := []Node{}

	p.expect("[")
	for !p.match("]") {
		if p.match(",") {
			p.nextToken()
			elements = append(elements, nil)
		} else if p.match("...") {
			element := p.parseSpreadElement()
			if !p.match("]") {
				p.context.isAssignmentTarget = false
				p.context.isBindingElement = false
				p.expect(",")
			}
			elements = append(elements, element)
		} else {
			elements = append(elements, p.inheritCoverGrammar(p.parseAssignmentExpression))
			if !p.match("]") {
				p.expect(",")
			}
		}
	}
	p.expect("]")

	return p.finalize(marker, newArrayExpression(elements))
}

func (p *parser) parsePropertyMethod(params *formalParameters) Node {
	p.context.isAssignmentTarget = false
	p.context.isBindingElement = false

	prevStrict := p.context.strict
	prevAllowStrictDirective := p.context.allowStrictDirective
	p.context.allowStrictDirective = params.Simple

	body := p.isolateCoverGrammar(p.parseFunctionSourceElements)
	if p.context.strict && params.FirstRestricted != nil {
		p.tolerateUnexpectedToken(params.FirstRestricted, params.Message)
	}
	if p.context.strict && params.Stricted != nil {
		p.tolerateUnexpectedToken(params.Stricted, params.Message)
	}
	p.context.strict = prevStrict
	p.context.allowStrictDirective = prevAllowStrictDirective

	return body
}

func (p *parser) parsePropertyMethodFunction() Node {
	marker := p.createNode()

	prevAllowYield := p.context.allowYield
	p.context.allowYield = true
	params := p.parseFormalParameters(nil)
	method := p.parsePropertyMethod(params)
	p.context.allowYield = prevAllowYield

	return p.finalize(marker, newFunctionExpression(nil, params.Params, method, false, false))
}

func (p *parser) parsePropertyMethodAsyncFunction() Node {
	marker := p.createNode()

	prevAllowYield := p.context.allowYield
	prevAwait := p.context.await
	p.context.allowYield = false
	p.context.await = true
	params := p.parseFormalParameters(nil)
	method := p.parsePropertyMethod(params)
	p.context.allowYield = prevAllowYield
	p.context.await = prevAwait

	return p.finalize(marker, newFunctionExpression(nil, params.Params, method, false, true))
}

func (p *parser) parseObjectPropertyKey() Node {
	marker := p.createNode()
	token := p.nextToken()

	switch token.Type {
	case TokenStringLiteral:
		if p.context.strict && token.Octal {
			p.tolerateUnexpectedToken(&token, msgStrictOctalLiteral)
		}
		return p.finalize(marker, newLiteral(token.Value, p.rawFor(token)))

	case TokenNumericLiteral:
		if p.context.strict && token.Octal {
			p.tolerateUnexpectedToken(&token, msgStrictOctalLiteral)
		}
		return p.finalize(marker, newLiteral(token.NumericValue, p.rawFor(token)))

	case TokenIdentifier, TokenBooleanLiteral, TokenNullLiteral, TokenKeyword:
		return p.finalize(marker, newIdentifier(token.Value))

	case TokenPunctuator:
		if token.Value == "[" {
			key := p.isolateCoverGrammar(p.parseAssignmentExpression)
			p.expect("]")
			return key
		}
	}

	p.throwUnexpectedToken(&token, "")
	return nil
}

func isPropertyKey(key Node, value string) bool {
	switch k := key.(type) {
	case *Identifier:
		return k.Name == value
	case *Literal:
		s, ok := k.Value.(string)
		return ok && s == value
	}
	return false
}

func (p *parser) parseObjectProperty(hasProto *bool) Node {
	marker := p.createNode()
	token := p.lookahead

	var kind string
	var key Node
	var value Node
	computed := false
	method := false
	shorthand := false
	isAsync := false

	if token.Type == TokenIdentifier {
		id := token.Value
		p.nextToken()
		computed = p.match("[")
		isAsync = !p.hasLineTerminator && id == "async" &&
			!p.match(":") && !p.match("(") && !p.match("*") && !p.match(",")
		if isAsync {
			key = p.parseObjectPropertyKey()
		} else {
			key = p.finalize(marker, newIdentifier(id))
		}
	} else if p.match("*") {
		p.nextToken()
	} else {
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
	}

	lookaheadPropertyKey := p.qualifiedPropertyName(&p.lookahead)

	if token.Type == TokenIdentifier && !isAsync && token.Value == "get" && lookaheadPropertyKey {
		kind = "get"
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
		p.context.allowYield = false
		value = p.parseGetterMethod()
	} else if token.Type == TokenIdentifier && !isAsync && token.Value == "set" && lookaheadPropertyKey {
		kind = "set"
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
		p.context.allowYield = false
		value = p.parseSetterMethod()
	} else if token.Type == TokenPunctuator && token.Value == "*" && lookaheadPropertyKey {
		kind = "init"
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
		value = p.parseGeneratorMethod()
		method = true
	} else {
		if key == nil {
			p.throwUnexpectedToken(&p.lookahead, "")
		}

		kind = "init"
		if p.match(":") && !isAsync {
			if !computed && isPropertyKey(key, "__proto__") {
				if *hasProto {
					p.tolerateError(msgDuplicateProtoProperty)
				}
				*hasProto = true
			}
			p.nextToken()
			value = p.inheritCoverGrammar(p.parseAssignmentExpression)
		} else if p.match("(") {
			if isAsync {
				value = p.parsePropertyMethodAsyncFunction()
			} else {
				value = p.parsePropertyMethodFunction()
			}
			method = true
		} else if token.Type == TokenIdentifier {
			id := p.finalize(marker, newIdentifier(token.Value))
			if p.match("=") {
				p.context.firstCoverInitializedNameError = &p.lookahead
				p.nextToken()
				shorthand = true
				init := p.isolateCoverGrammar(p.parseAssignmentExpression)
				value = p.finalize(marker, newAssignmentPattern(id, init))
			} else {
				shorthand = true
				value = id
			}
		} else {
			next := p.nextToken()
			p.throwUnexpectedToken(&next, "")
		}
	}

	return p.finalize(marker, newProperty(kind, key, computed, value, method, shorthand))
}

func (p *parser) parseObjectInitializer() Node {
	marker := p.createNode()

	p.expect("{")
	properties := []Node{}
	hasProto := false
	for !p.match("}") {
		var prop Node
		if p.match("...") {
			prop = p.parseSpreadElement()
		} else {
			prop = p.parseObjectProperty(&hasProto)
		}
		properties = append(properties, prop)
		if !p.match("}") {
			p.expectCommaSeparator()
		}
	}
	p.expect("}")

	return p.finalize(marker, newObjectExpression(properties))
}

// --- template literals ---------------------------------------------------

func (p *parser) parseTemplateHead() *TemplateElement {
	// The caller guarantees the lookahead is a template head.
	marker := p.createNode()
	token := p.nextToken()
	element := newTemplateElement(token.Cooked, token.Value, token.Tail)
	return p.finalize(marker, element).(*TemplateElement)
}

func (p *parser) parseTemplateElement() *TemplateElement {
	if p.lookahead.Type != TokenTemplate {
		p.throwUnexpectedToken(&p.lookahead, "")
	}
	marker := p.createNode()
	token := p.nextToken()
	element := newTemplateElement(token.Cooked, token.Value, token.Tail)
	return p.finalize(marker, element).(*TemplateElement)
}

func (p *parser) parseTemplateLiteral() Node {
	marker := p.createNode()

	expressions := []Node{}
	var quasis []*TemplateElement

	quasi := p.parseTemplateHead()
	quasis = append(quasis, quasi)
	for !quasi.Tail {
		expressions = append(expressions, p.parseExpression())
		quasi = p.parseTemplateElement()
		quasis = append(quasis, quasi)
	}

	return p.finalize(marker, newTemplateLiteral(quasis, expressions))
}

// --- grouping and arrow covers -------------------------------------------

// reinterpretExpressionAsPattern rewrites an expression produced under the
// cover grammar into the pattern it actually denotes.
func (p *parser) reinterpretExpressionAsPattern(expr Node) Node {
	switch e := expr.(type) {
	case *SpreadElement:
		rest := &RestElement{baseNode: e.baseNode, Argument: p.reinterpretExpressionAsPattern(e.Argument)}
		rest.Type = SyntaxRestElement
		return rest
	case *ArrayExpression:
		pat := &ArrayPattern{baseNode: e.baseNode}
		pat.Type = SyntaxArrayPattern
		for _, el := range e.Elements {
			if el != nil {
				pat.Elements = append(pat.Elements, p.reinterpretExpressionAsPattern(el))
			} else {
				pat.Elements = append(pat.Elements, nil)
			}
		}
		return pat
	case *ObjectExpression:
		pat := &ObjectPattern{baseNode: e.baseNode}
		pat.Type = SyntaxObjectPattern
		for _, prop := range e.Properties {
			if sp, ok := prop.(*SpreadElement); ok {
				pat.Properties = append(pat.Properties, p.reinterpretExpressionAsPattern(sp))
			} else {
				property := prop.(*Property)
				property.Value = p.reinterpretExpressionAsPattern(property.Value)
				pat.Properties = append(pat.Properties, property)
			}
		}
		return pat
	case *AssignmentExpression:
		if e.Operator != "=" {
			p.throwError(msgInvalidLHSInAssignment)
		}
		pat := &AssignmentPattern{baseNode: e.baseNode, Right: e.Right}
		pat.Type = SyntaxAssignmentPattern
		pat.Left = p.reinterpretExpressionAsPattern(e.Left)
		return pat
	}
	// Identifiers, member expressions and existing patterns pass through;
	// anything else is rejected at commit time.
	return expr
}

func (p *parser) parseGroupExpression() Node {
	p.expect("(")
	if p.match(")") {
		p.nextToken()
		if !p.match("=>") {
			p.expect("=>")
		}
		return newArrowParameterPlaceHolder(nil, false)
	}

	startToken := p.lookahead
	var params []rawToken

	if p.match("...") {
		rest := p.parseRestElement(&params)
		p.expect(")")
		if !p.match("=>") {
			p.expect("=>")
		}
		return newArrowParameterPlaceHolder([]Node{rest}, false)
	}

	p.context.isBindingElement = true
	expr := p.inheritCoverGrammar(p.parseAssignmentExpression)

	if p.match(",") {
		var expressions []Node
		p.context.isAssignmentTarget = false
		expressions = append(expressions, expr)
		for p.lookahead.Type != TokenEOF {
			if !p.match(",") {
				break
			}
			p.nextToken()
			if p.match(")") {
				p.nextToken()
				for i, ex := range expressions {
					expressions[i] = p.reinterpretExpressionAsPattern(ex)
				}
				return newArrowParameterPlaceHolder(expressions, false)
			} else if p.match("...") {
				if !p.context.isBindingElement {
					p.throwUnexpectedToken(&p.lookahead, "")
				}
				rest := p.parseRestElement(&params)
				p.expect(")")
				if !p.match("=>") {
					p.expect("=>")
				}
				p.context.isBindingElement = false
				for i, ex := range expressions {
					expressions[i] = p.reinterpretExpressionAsPattern(ex)
				}
				expressions = append(expressions, rest)
				return newArrowParameterPlaceHolder(expressions, false)
			} else {
				expressions = append(expressions, p.inheritCoverGrammar(p.parseAssignmentExpression))
			}
		}
		expr = p.finalize(p.startNode(startToken), newSequenceExpression(expressions))
	}

	p.expect(")")
	if p.match("=>") {
		if id, ok := expr.(*Identifier); ok && id.Name == "yield" {
			return newArrowParameterPlaceHolder([]Node{expr}, false)
		}

		if !p.context.isBindingElement {
			p.throwUnexpectedToken(&p.lookahead, "")
		}

		if seq, ok := expr.(*SequenceExpression); ok {
			for i, ex := range seq.Expressions {
				seq.Expressions[i] = p.reinterpretExpressionAsPattern(ex)
			}
			return newArrowParameterPlaceHolder(seq.Expressions, false)
		}
		return newArrowParameterPlaceHolder([]Node{p.reinterpretExpressionAsPattern(expr)}, false)
	}
	p.context.isBindingElement = false

	return expr
}

// --- call and member expressions -----------------------------------------

func (p *parser) parseArguments() []Node {
	p.expect("(")
	args := []Node{}
	if !p.match(")") {
		for {
			var expr Node
			if p.match("...") {
				expr = p.parseSpreadElement()
			} else {
				expr = p.isolateCoverGrammar(p.parseAssignmentExpression)
			}
			args = append(args, expr)
			if p.match(")") {
				break
			}
			p.expectCommaSeparator()
			if p.match(")") {
				break
			}
		}
	}
	p.expect(")")
	return args
}

func isIdentifierName(token rawToken) bool {
	switch token.Type {
	case TokenIdentifier, TokenKeyword, TokenBooleanLiteral, TokenNullLiteral:
		return true
	}
	return false
}

func (p *parser) parseIdentifierName() Node {
	marker := p.createNode()
	token := p.nextToken()
	if !isIdentifierName(token) {
		p.throwUnexpectedToken(&token, "")
	}
	return p.finalize(marker, newIdentifier(token.Value))
}

func (p *parser) parseNewExpression() Node {
	marker := p.createNode()

	id := p.parseIdentifierName()

	var expr Node
	if p.match(".") {
		p.nextToken()
		if p.lookahead.Type == TokenIdentifier && p.context.inFunctionBody && p.lookahead.Value == "target" {
			property := p.parseIdentifierName()
			expr = newMetaProperty(id.(*Identifier), property.(*Identifier))
		} else {
			p.throwUnexpectedToken(&p.lookahead, "")
		}
	} else if p.matchKeyword("import") {
		p.throwUnexpectedToken(&p.lookahead, "")
	} else {
		callee := p.isolateCoverGrammar(p.parseLeftHandSideExpression)
		var args []Node
		if p.match("(") {
			args = p.parseArguments()
		}
		expr = newNewExpression(callee, args)
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
	}

	return p.finalize(marker, expr)
}

func (p *parser) parseAsyncArgument() Node {
	arg := p.parseAssignmentExpression()
	p.context.firstCoverInitializedNameError = nil
	return arg
}

func (p *parser) parseAsyncArguments() []Node {
	p.expect("(")
	args := []Node{}
	if !p.match(")") {
		for {
			var expr Node
			if p.match("...") {
				expr = p.parseSpreadElement()
			} else {
				expr = p.isolateCoverGrammar(p.parseAsyncArgument)
			}
			args = append(args, expr)
			if p.match(")") {
				break
			}
			p.expectCommaSeparator()
			if p.match(")") {
				break
			}
		}
	}
	p.expect(")")
	return args
}

func (p *parser) matchImportCall() bool {
	match := p.matchKeyword("import")
	if match {
		next := p.scanner.peek()
		match = next.Type == TokenPunctuator && next.Value == "("
	}
	return match
}

func (p *parser) parseImportCall() Node {
	marker := p.createNode()
	p.expectKeyword("import")
	return p.finalize(marker, newImportExpression())
}

func (p *parser) parseLeftHandSideExpressionAllowCall() Node {
	startToken := p.lookahead
	maybeAsync := p.matchContextualKeyword("async")

	prevAllowIn := p.context.allowIn
	p.context.allowIn = true

	var expr Node
	if p.matchKeyword("super") && p.context.inFunctionBody {
		marker := p.createNode()
		p.nextToken()
		expr = p.finalize(marker, newSuper())
		if !p.match("(") && !p.match(".") && !p.match("[") {
			p.throwUnexpectedToken(&p.lookahead, "")
		}
	} else if p.matchKeyword("new") {
		expr = p.inheritCoverGrammar(p.parseNewExpression)
	} else {
		expr = p.inheritCoverGrammar(p.parsePrimaryExpression)
	}

	for {
		if p.match(".") {
			p.context.isBindingElement = false
			p.context.isAssignmentTarget = true
			p.expect(".")
			property := p.parseIdentifierName()
			expr = p.finalize(p.startNode(startToken), newStaticMemberExpression(expr, property, false))
		} else if p.match("(") {
			asyncArrow := maybeAsync && startToken.LineNumber == p.lookahead.LineNumber
			p.context.isBindingElement = false
			p.context.isAssignmentTarget = false
			var args []Node
			if asyncArrow {
				args = p.parseAsyncArguments()
			} else {
				args = p.parseArguments()
			}
			if _, ok := expr.(*ImportExpression); ok && len(args) != 1 {
				p.tolerateError(msgUnexpectedToken, "import")
			}
			expr = p.finalize(p.startNode(startToken), newCallExpression(expr, args, false))
			if asyncArrow && p.match("=>") {
				for i, arg := range args {
					args[i] = p.reinterpretExpressionAsPattern(arg)
				}
				expr = newArrowParameterPlaceHolder(args, true)
			}
		} else if p.match("[") {
			p.context.isBindingElement = false
			p.context.isAssignmentTarget = true
			p.expect("[")
			property := p.isolateCoverGrammar(p.parseExpression)
			p.expect("]")
			expr = p.finalize(p.startNode(startToken), newComputedMemberExpression(expr, property, false))
		} else if p.match("?.") {
			p.context.isBindingElement = false
			p.context.isAssignmentTarget = false
			p.expect("?.")
			if p.match("(") {
				args := p.parseArguments()
				expr = p.finalize(p.startNode(startToken), newCallExpression(expr, args, true))
			} else if p.match("[") {
				p.expect("[")
				property := p.isolateCoverGrammar(p.parseExpression)
				p.expect("]")
				expr = p.finalize(p.startNode(startToken), newComputedMemberExpression(expr, property, true))
			} else {
				property := p.parseIdentifierName()
				expr = p.finalize(p.startNode(startToken), newStaticMemberExpression(expr, property, true))
			}
		} else if p.lookahead.Type == TokenTemplate && p.lookahead.Head {
			quasi := p.parseTemplateLiteral().(*TemplateLiteral)
			expr = p.finalize(p.startNode(startToken), newTaggedTemplateExpression(expr, quasi))
		} else {
			break
		}
	}
	p.context.allowIn = prevAllowIn

	return expr
}

func (p *parser) parseLeftHandSideExpression() Node {
	startToken := p.lookahead

	var expr Node
	if p.matchKeyword("super") && p.context.inFunctionBody {
		marker := p.createNode()
		p.nextToken()
		expr = p.finalize(marker, newSuper())
		if !p.match("[") && !p.match(".") {
			p.throwUnexpectedToken(&p.lookahead, "")
		}
	} else if p.matchKeyword("new") {
		expr = p.inheritCoverGrammar(p.parseNewExpression)
	} else {
		expr = p.inheritCoverGrammar(p.parsePrimaryExpression)
	}

	for {
		if p.match("[") {
			p.context.isBindingElement = false
			p.context.isAssignmentTarget = true
			p.expect("[")
			property := p.isolateCoverGrammar(p.parseExpression)
			p.expect("]")
			expr = p.finalize(p.startNode(startToken), newComputedMemberExpression(expr, property, false))
		} else if p.match(".") {
			p.context.isBindingElement = false
			p.context.isAssignmentTarget = true
			p.expect(".")
			property := p.parseIdentifierName()
			expr = p.finalize(p.startNode(startToken), newStaticMemberExpression(expr, property, false))
		} else if p.lookahead.Type == TokenTemplate && p.lookahead.Head {
			quasi := p.parseTemplateLiteral().(*TemplateLiteral)
			expr = p.finalize(p.startNode(startToken), newTaggedTemplateExpression(expr, quasi))
		} else {
			break
		}
	}

	return expr
}

// --- update, unary and binary expressions --------------------------------

func (p *parser) parseUpdateExpression() Node {
	var expr Node
	startToken := p.lookahead

	if p.match("++") || p.match("--") {
		marker := p.startNode(startToken)
		token := p.nextToken()
		expr = p.inheritCoverGrammar(p.parseUnaryExpression)
		if id, ok := expr.(*Identifier); ok && p.context.strict && isRestrictedWord(id.Name) {
			p.tolerateError(msgStrictLHSPrefix)
		}
		if !p.context.isAssignmentTarget {
			p.tolerateError(msgInvalidLHSInAssignment)
		}
		expr = p.finalize(marker, newUpdateExpression(token.Value, expr, true))
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
	} else {
		expr = p.inheritCoverGrammar(p.parseLeftHandSideExpressionAllowCall)
		if !p.hasLineTerminator && p.lookahead.Type == TokenPunctuator && (p.match("++") || p.match("--")) {
			if id, ok := expr.(*Identifier); ok && p.context.strict && isRestrictedWord(id.Name) {
				p.tolerateError(msgStrictLHSPostfix)
			}
			if !p.context.isAssignmentTarget {
				p.tolerateError(msgInvalidLHSInAssignment)
			}
			p.context.isAssignmentTarget = false
			p.context.isBindingElement = false
			operator := p.nextToken().Value
			expr = p.finalize(p.startNode(startToken), newUpdateExpression(operator, expr, false))
		}
	}

	return expr
}

func (p *parser) parseAwaitExpression() Node {
	marker := p.createNode()
	p.nextToken()
	argument := p.parseUnaryExpression()
	return p.finalize(marker, newAwaitExpression(argument))
}

func (p *parser) parseUnaryExpression() Node {
	if p.match("+") || p.match("-") || p.match("~") || p.match("!") ||
		p.matchKeyword("delete") || p.matchKeyword("void") || p.matchKeyword("typeof") {
		marker := p.startNode(p.lookahead)
		token := p.nextToken()
		expr := p.inheritCoverGrammar(p.parseUnaryExpression)
		unary := p.finalize(marker, newUnaryExpression(token.Value, expr)).(*UnaryExpression)
		if p.context.strict && unary.Operator == "delete" {
			if _, ok := unary.Argument.(*Identifier); ok {
				p.tolerateError(msgStrictDelete)
			}
		}
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
		return unary
	}
	if p.context.await && p.matchContextualKeyword("await") {
		return p.parseAwaitExpression()
	}
	return p.parseUpdateExpression()
}

func (p *parser) parseExponentiationExpression() Node {
	startToken := p.lookahead
	expr := p.inheritCoverGrammar(p.parseUnaryExpression)

	if _, isUnary := expr.(*UnaryExpression); !isUnary && p.match("**") {
		p.nextToken()
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
		left := expr
		right := p.isolateCoverGrammar(p.parseExponentiationExpression)
		expr = p.finalize(p.startNode(startToken), newBinaryExpression("**", left, right))
	}

	return expr
}

var operatorPrecedence = map[string]int{
	")": 0, ";": 0, ",": 0, "=": 0, "]": 0,
	"||": 1, "&&": 2, "|": 3, "^": 4, "&": 5,
	"==": 6, "!=": 6, "===": 6, "!==": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 11, "/": 11, "%": 11,
}

func (p *parser) binaryPrecedence(token rawToken) int {
	if token.Type == TokenPunctuator {
		return operatorPrecedence[token.Value]
	}
	if token.Type == TokenKeyword {
		if token.Value == "instanceof" || (p.context.allowIn && token.Value == "in") {
			return 7
		}
	}
	return 0
}

func (p *parser) parseBinaryExpression() Node {
	startToken := p.lookahead

	expr := p.inheritCoverGrammar(p.parseExponentiationExpression)

	token := p.lookahead
	prec := p.binaryPrecedence(token)
	if prec > 0 {
		p.nextToken()

		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false

		markers := []rawToken{startToken, p.lookahead}
		left := expr
		right := p.isolateCoverGrammar(p.parseExponentiationExpression)

		stack := []interface{}{left, token.Value, right}
		precedences := []int{prec}
		for {
			prec = p.binaryPrecedence(p.lookahead)
			if prec <= 0 {
				break
			}

			// Reduce: make a binary expression from the three topmost
			// entries.
			for len(stack) > 2 && prec <= precedences[len(precedences)-1] {
				right = stack[len(stack)-1].(Node)
				operator := stack[len(stack)-2].(string)
				left = stack[len(stack)-3].(Node)
				stack = stack[:len(stack)-3]
				precedences = precedences[:len(precedences)-1]
				markers = markers[:len(markers)-1]
				marker := p.startNode(markers[len(markers)-1])
				stack = append(stack, p.finalize(marker, newBinaryExpression(operator, left, right)))
			}

			// Shift.
			stack = append(stack, p.nextToken().Value)
			precedences = append(precedences, prec)
			markers = append(markers, p.lookahead)
			stack = append(stack, p.isolateCoverGrammar(p.parseExponentiationExpression))
		}

		// Final reduce to clean up the stack.
		i := len(stack) - 1
		expr = stack[i].(Node)
		lastMarker := markers[len(markers)-1]
		markers = markers[:len(markers)-1]
		for i > 1 {
			marker := markers[len(markers)-1]
			markers = markers[:len(markers)-1]
			operator := stack[i-1].(string)
			expr = p.finalize(p.startNodeAt(marker, lastMarker.LineStart), newBinaryExpression(operator, stack[i-2].(Node), expr))
			i -= 2
			lastMarker = marker
		}
	}

	return expr
}

func (p *parser) parseConditionalExpression() Node {
	startToken := p.lookahead

	expr := p.inheritCoverGrammar(p.parseBinaryExpression)
	if p.match("?") {
		p.nextToken()

		prevAllowIn := p.context.allowIn
		p.context.allowIn = true
		consequent := p.isolateCoverGrammar(p.parseAssignmentExpression)
		p.context.allowIn = prevAllowIn

		p.expect(":")
		alternate := p.isolateCoverGrammar(p.parseAssignmentExpression)

		expr = p.finalize(p.startNode(startToken), newConditionalExpression(expr, consequent, alternate))
		p.context.isAssignmentTarget = false
		p.context.isBindingElement = false
	}

	return expr
}

// --- arrow commit --------------------------------------------------------

// formalParameters is the result of parsing a parameter list plus the
// bookkeeping needed to report strict-mode violations at the right token.
type formalParameters struct {
	Simple          bool
	Params          []Node
	ParamSet        map[string]bool
	Stricted        *rawToken
	FirstRestricted *rawToken
	Message         string
}

// validateParam records strict-mode parameter violations without aborting;
// they surface once the function body's strictness is known.
func (p *parser) validateParam(options *formalParameters, param *rawToken, name string) {
	key := "$" + name
	tok := param
	if tok == nil {
		t := p.lookahead
		tok = &t
	}
	if p.context.strict {
		if isRestrictedWord(name) {
			options.Stricted = tok
			options.Message = msgStrictParamName
		}
		if options.ParamSet[key] {
			options.Stricted = tok
			options.Message = msgStrictParamDupe
		}
	} else if options.FirstRestricted == nil {
		if isRestrictedWord(name) {
			options.FirstRestricted = tok
			options.Message = msgStrictParamName
		} else if isStrictModeReservedWord(name) {
			options.FirstRestricted = tok
			options.Message = msgStrictReservedWord
		} else if options.ParamSet[key] {
			options.Stricted = tok
			options.Message = msgStrictParamDupe
		}
	}
	options.ParamSet[key] = true
}

func (p *parser) checkPatternParam(options *formalParameters, param Node) {
	switch e := param.(type) {
	case *Identifier:
		p.validateParam(options, nil, e.Name)
	case *RestElement:
		p.checkPatternParam(options, e.Argument)
	case *AssignmentPattern:
		p.checkPatternParam(options, e.Left)
	case *ArrayPattern:
		for _, el := range e.Elements {
			if el != nil {
				p.checkPatternParam(options, el)
			}
		}
	case *ObjectPattern:
		for _, prop := range e.Properties {
			if property, ok := prop.(*Property); ok {
				p.checkPatternParam(options, property.Value)
			} else {
				p.checkPatternParam(options, prop)
			}
		}
	}
	options.Simple = options.Simple && isSimpleParam(param)
}

func isSimpleParam(param Node) bool {
	_, ok := param.(*Identifier)
	return ok
}

// reinterpretAsCoverFormalsList validates and converts an arrow cover into
// its parameter list, or reports the buffered cover error.
func (p *parser) reinterpretAsCoverFormalsList(expr Node) *formalParameters {
	var params []Node
	asyncArrow := false

	switch e := expr.(type) {
	case *Identifier:
		params = []Node{expr}
	case *arrowParameterPlaceHolder:
		params = e.Params
		asyncArrow = e.Async
	default:
		return nil
	}

	options := &formalParameters{
		Simple:   true,
		ParamSet: map[string]bool{},
	}

	for i, param := range params {
		if ap, ok := param.(*AssignmentPattern); ok {
			if ye, ok := ap.Right.(*YieldExpression); ok {
				if ye.Argument != nil {
					p.throwUnexpectedToken(&p.lookahead, "")
				}
				id := &Identifier{baseNode: ye.baseNode, Name: "yield"}
				id.Type = SyntaxIdentifier
				ap.Right = id
			}
		} else if asyncArrow {
			if id, ok := param.(*Identifier); ok && id.Name == "await" {
				p.throwUnexpectedToken(&p.lookahead, "")
			}
		}
		pat := p.reinterpretExpressionAsPattern(param)
		params[i] = pat
		p.checkPatternParam(options, pat)
	}

	if p.context.strict || !p.context.allowYield {
		for _, param := range params {
			if _, ok := param.(*YieldExpression); ok {
				p.throwUnexpectedToken(&p.lookahead, "")
			}
		}
	}

	if options.Message == msgStrictParamDupe {
		token := options.Stricted
		if !p.context.strict {
			token = options.FirstRestricted
		}
		p.throwUnexpectedToken(token, options.Message)
	}

	options.Params = params
	return options
}

func (p *parser) parseAssignmentExpression() Node {
	var expr Node

	if !p.context.allowYield && p.matchKeyword("yield") {
		expr = p.parseYieldExpression()
	} else {
		startToken := p.lookahead
		token := startToken
		expr = p.parseConditionalExpression()

		if token.Type == TokenIdentifier && token.LineNumber == p.lookahead.LineNumber && token.Value == "async" {
			if p.lookahead.Type == TokenIdentifier || p.matchKeyword("yield") {
				arg := p.parsePrimaryExpression()
				arg = p.reinterpretExpressionAsPattern(arg)
				expr = newArrowParameterPlaceHolder([]Node{arg}, true)
			}
		}

		if isPlaceholder(expr) || p.match("=>") {
			// AssignmentExpression: ArrowFunction
			p.context.isAssignmentTarget = false
			p.context.isBindingElement = false
			isAsync := false
			if ph, ok := expr.(*arrowParameterPlaceHolder); ok {
				isAsync = ph.Async
			}
			list := p.reinterpretAsCoverFormalsList(expr)

			if list != nil {
				if p.hasLineTerminator {
					p.tolerateUnexpectedToken(&p.lookahead, "")
				}
				p.context.firstCoverInitializedNameError = nil

				prevStrict := p.context.strict
				prevAllowStrictDirective := p.context.allowStrictDirective
				p.context.allowStrictDirective = list.Simple

				prevAllowYield := p.context.allowYield
				prevAwait := p.context.await
				p.context.allowYield = true
				p.context.await = isAsync

				marker := p.startNode(startToken)
				p.expect("=>")

				var body Node
				expression := false
				if p.match("{") {
					prevAllowIn := p.context.allowIn
					p.context.allowIn = true
					body = p.parseFunctionSourceElements()
					p.context.allowIn = prevAllowIn
				} else {
					body = p.isolateCoverGrammar(p.parseAssignmentExpression)
					expression = true
				}

				if p.context.strict && list.FirstRestricted != nil {
					p.throwUnexpectedToken(list.FirstRestricted, list.Message)
				}
				if p.context.strict && list.Stricted != nil {
					p.tolerateUnexpectedToken(list.Stricted, list.Message)
				}

				expr = p.finalize(marker, newArrowFunctionExpression(list.Params, body, expression, isAsync))

				p.context.strict = prevStrict
				p.context.allowStrictDirective = prevAllowStrictDirective
				p.context.allowYield = prevAllowYield
				p.context.await = prevAwait
			}
		} else if p.matchAssign() {
			if !p.context.isAssignmentTarget {
				p.tolerateError(msgInvalidLHSInAssignment)
			}

			if p.context.strict {
				if id, ok := expr.(*Identifier); ok {
					if isRestrictedWord(id.Name) {
						p.tolerateUnexpectedToken(&token, msgStrictLHSAssignment)
					}
					if isStrictModeReservedWord(id.Name) {
						p.tolerateUnexpectedToken(&token, msgStrictReservedWord)
					}
				}
			}

			if p.match("=") {
				expr = p.reinterpretExpressionAsPattern(expr)
			} else {
				p.context.isAssignmentTarget = false
				p.context.isBindingElement = false
			}

			operator := p.nextToken().Value
			right := p.isolateCoverGrammar(p.parseAssignmentExpression)
			expr = p.finalize(p.startNode(startToken), newAssignmentExpression(operator, expr, right))
			p.context.firstCoverInitializedNameError = nil
		}
	}

	return expr
}

func isPlaceholder(n Node) bool {
	_, ok := n.(*arrowParameterPlaceHolder)
	return ok
}

func (p *parser) parseExpression() Node {
	startToken := p.lookahead
	expr := p.isolateCoverGrammar(p.parseAssignmentExpression)

	if p.match(",") {
		expressions := []Node{expr}
		for p.lookahead.Type != TokenEOF {
			if !p.match(",") {
				break
			}
			p.nextToken()
			expressions = append(expressions, p.isolateCoverGrammar(p.parseAssignmentExpression))
		}
		expr = p.finalize(p.startNode(startToken), newSequenceExpression(expressions))
	}

	return expr
}
