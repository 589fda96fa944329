package esparse

// --- blocks and declarations ---------------------------------------------

func (p *parser) parseStatementListItem() Node {
	var statement Node
	p.context.isAssignmentTarget = true
	p.context.isBindingElement = true

	if p.match("@") {
		decorators := p.parseDecorators()
		return p.parseClassDeclarationWithDecorators(false, decorators)
	}

	if p.lookahead.Type == TokenKeyword {
		switch p.lookahead.Value {
		case "export":
			if !p.context.isModule {
				p.tolerateUnexpectedToken(&p.lookahead, msgIllegalExportDeclaration)
			}
			statement = p.parseExportDeclaration()
		case "import":
			if p.matchImportCall() {
				statement = p.parseExpressionStatement()
			} else {
				if !p.context.isModule {
					p.tolerateUnexpectedToken(&p.lookahead, msgIllegalImportDeclaration)
				}
				statement = p.parseImportDeclaration()
			}
		case "const":
			statement = p.parseLexicalDeclaration(false)
		case "function":
			statement = p.parseFunctionDeclaration(false)
		case "class":
			statement = p.parseClassDeclaration(false)
		case "let":
			if p.isLexicalDeclaration() {
				statement = p.parseLexicalDeclaration(false)
			} else {
				statement = p.parseStatement()
			}
		default:
			statement = p.parseStatement()
		}
	} else {
		statement = p.parseStatement()
	}

	return statement
}

func (p *parser) parseBlock() Node {
	marker := p.createNode()

	p.expect("{")
	body := []Node{}
	for {
		if p.match("}") {
			break
		}
		body = append(body, p.parseStatementListItem())
	}
	p.expect("}")

	return p.finalize(marker, newBlockStatement(body))
}

func (p *parser) isLexicalDeclaration() bool {
	next := p.scanner.peek()

	return next.Type == TokenIdentifier ||
		(next.Type == TokenPunctuator && next.Value == "[") ||
		(next.Type == TokenPunctuator && next.Value == "{") ||
		(next.Type == TokenKeyword && next.Value == "let") ||
		(next.Type == TokenKeyword && next.Value == "yield")
}

func (p *parser) parseLexicalBinding(kind string, inFor bool) Node {
	marker := p.createNode()
	var params []rawToken
	id := p.parsePattern(&params, kind)

	if ident, ok := id.(*Identifier); ok && p.context.strict && isRestrictedWord(ident.Name) {
		p.tolerateError(msgStrictVarName)
	}

	var init Node
	if kind == "const" {
		if !p.matchKeyword("in") && !p.matchContextualKeyword("of") {
			if p.match("=") {
				p.nextToken()
				init = p.isolateCoverGrammar(p.parseAssignmentExpression)
			} else {
				p.throwError(msgDeclarationMissingInit, "const")
			}
		}
	} else if (!inFor && !isSimpleParam(id)) || p.match("=") {
		p.expect("=")
		init = p.isolateCoverGrammar(p.parseAssignmentExpression)
	}

	return p.finalize(marker, newVariableDeclarator(id, init))
}

func (p *parser) parseBindingList(kind string, inFor bool) []Node {
	list := []Node{p.parseLexicalBinding(kind, inFor)}
	for p.match(",") {
		p.nextToken()
		list = append(list, p.parseLexicalBinding(kind, inFor))
	}
	return list
}

func (p *parser) parseLexicalDeclaration(inFor bool) Node {
	marker := p.createNode()
	kind := p.nextToken().Value

	declarations := p.parseBindingList(kind, inFor)
	p.consumeSemicolon()

	return p.finalize(marker, newVariableDeclaration(declarations, kind))
}

// --- patterns ------------------------------------------------------------

func (p *parser) parseBindingRestElement(params *[]rawToken, kind string) Node {
	marker := p.createNode()

	p.expect("...")
	arg := p.parsePattern(params, kind)

	return p.finalize(marker, newRestElement(arg))
}

func (p *parser) parseArrayPattern(params *[]rawToken, kind string) Node {
	marker := p.createNode()

	p.expect("[")
	elements := []Node{}
	for !p.match("]") {
		if p.match(",") {
			p.nextToken()
			elements = append(elements, nil)
		} else {
			if p.match("...") {
				elements = append(elements, p.parseBindingRestElement(params, kind))
				break
			}
			elements = append(elements, p.parsePatternWithDefault(params, kind))
			if !p.match("]") {
				p.expect(",")
			}
		}
	}
	p.expect("]")

	return p.finalize(marker, newArrayPattern(elements))
}

func (p *parser) parsePropertyPattern(params *[]rawToken, kind string) Node {
	marker := p.createNode()

	computed := false
	shorthand := false
	var key Node
	var value Node

	if p.lookahead.Type == TokenIdentifier {
		keyToken := p.lookahead
		key = p.parseVariableIdentifier("")
		init := p.finalize(marker, newIdentifier(keyToken.Value))
		if p.match("=") {
			*params = append(*params, keyToken)
			shorthand = true
			p.nextToken()
			expr := p.parseAssignmentExpression()
			value = p.finalize(p.startNode(keyToken), newAssignmentPattern(init, expr))
		} else if !p.match(":") {
			*params = append(*params, keyToken)
			shorthand = true
			value = init
		} else {
			p.expect(":")
			value = p.parsePatternWithDefault(params, kind)
		}
	} else {
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
		p.expect(":")
		value = p.parsePatternWithDefault(params, kind)
	}

	return p.finalize(marker, newProperty("init", key, computed, value, false, shorthand))
}

func (p *parser) parseRestProperty(params *[]rawToken) Node {
	marker := p.createNode()
	p.expect("...")
	arg := p.parsePattern(params, "")
	if p.match("=") {
		p.throwError(msgDefaultRestParameter)
	}
	if !p.match("}") {
		p.throwError(msgParameterAfterRestParameter)
	}
	return p.finalize(marker, newRestElement(arg))
}

func (p *parser) parseObjectPattern(params *[]rawToken, kind string) Node {
	marker := p.createNode()
	properties := []Node{}

	p.expect("{")
	for !p.match("}") {
		if p.match("...") {
			properties = append(properties, p.parseRestProperty(params))
		} else {
			properties = append(properties, p.parsePropertyPattern(params, kind))
		}
		if !p.match("}") {
			p.expect(",")
		}
	}
	p.expect("}")

	return p.finalize(marker, newObjectPattern(properties))
}

func (p *parser) parsePattern(params *[]rawToken, kind string) Node {
	if p.match("[") {
		return p.parseArrayPattern(params, kind)
	}
	if p.match("{") {
		return p.parseObjectPattern(params, kind)
	}
	if p.matchKeyword("let") && (kind == "const" || kind == "let") {
		p.tolerateUnexpectedToken(&p.lookahead, msgLetInLexicalBinding)
	}
	*params = append(*params, p.lookahead)
	return p.parseVariableIdentifier(kind)
}

func (p *parser) parsePatternWithDefault(params *[]rawToken, kind string) Node {
	startToken := p.lookahead

	pattern := p.parsePattern(params, kind)
	if p.match("=") {
		p.nextToken()
		prevAllowYield := p.context.allowYield
		p.context.allowYield = true
		right := p.isolateCoverGrammar(p.parseAssignmentExpression)
		p.context.allowYield = prevAllowYield
		pattern = p.finalize(p.startNode(startToken), newAssignmentPattern(pattern, right))
	}

	return pattern
}

// --- variable statements -------------------------------------------------

func (p *parser) parseVariableIdentifier(kind string) Node {
	marker := p.createNode()

	token := p.nextToken()
	if token.Type == TokenKeyword && token.Value == "yield" {
		if p.context.strict {
			p.tolerateUnexpectedToken(&token, msgStrictReservedWord)
		} else if !p.context.allowYield {
			p.throwUnexpectedToken(&token, "")
		}
	} else if token.Type != TokenIdentifier {
		if p.context.strict && token.Type == TokenKeyword && isStrictModeReservedWord(token.Value) {
			p.tolerateUnexpectedToken(&token, msgStrictReservedWord)
		} else if p.context.strict || token.Value != "let" || kind != "var" {
			p.throwUnexpectedToken(&token, "")
		}
	} else if (p.context.isModule || p.context.await) && token.Type == TokenIdentifier && token.Value == "await" {
		p.tolerateUnexpectedToken(&token, "")
	}

	return p.finalize(marker, newIdentifier(token.Value))
}

func (p *parser) parseVariableDeclaration(inFor bool) Node {
	marker := p.createNode()

	var params []rawToken
	id := p.parsePattern(&params, "var")

	if ident, ok := id.(*Identifier); ok && p.context.strict && isRestrictedWord(ident.Name) {
		p.tolerateError(msgStrictVarName)
	}

	var init Node
	if p.match("=") {
		p.nextToken()
		init = p.isolateCoverGrammar(p.parseAssignmentExpression)
	} else if !isSimpleParam(id) && !inFor {
		p.expect("=")
	}

	return p.finalize(marker, newVariableDeclarator(id, init))
}

func (p *parser) parseVariableDeclarationList(inFor bool) []Node {
	list := []Node{p.parseVariableDeclaration(inFor)}
	for p.match(",") {
		p.nextToken()
		list = append(list, p.parseVariableDeclaration(inFor))
	}
	return list
}

func (p *parser) parseVariableStatement() Node {
	marker := p.createNode()
	p.expectKeyword("var")
	declarations := p.parseVariableDeclarationList(false)
	p.consumeSemicolon()
	return p.finalize(marker, newVariableDeclaration(declarations, "var"))
}

// --- simple statements ---------------------------------------------------

func (p *parser) parseEmptyStatement() Node {
	marker := p.createNode()
	p.expect(";")
	return p.finalize(marker, newEmptyStatement())
}

func (p *parser) parseExpressionStatement() Node {
	marker := p.createNode()
	expr := p.parseExpression()
	p.consumeSemicolon()
	return p.finalize(marker, newExpressionStatement(expr))
}

func (p *parser) parseIfClause() Node {
	if p.context.strict && p.matchKeyword("function") {
		p.tolerateError(msgStrictFunction)
	}
	return p.parseStatement()
}

func (p *parser) parseIfStatement() Node {
	marker := p.createNode()
	var consequent Node
	var alternate Node

	p.expectKeyword("if")
	p.expect("(")
	test := p.parseExpression()

	if !p.match(")") && p.config.Tolerant {
		token := p.nextToken()
		p.tolerateUnexpectedToken(&token, "")
		consequent = p.finalize(p.createNode(), newEmptyStatement())
	} else {
		p.expect(")")
		consequent = p.parseIfClause()
		if p.matchKeyword("else") {
			p.nextToken()
			alternate = p.parseIfClause()
		}
	}

	return p.finalize(marker, newIfStatement(test, consequent, alternate))
}

func (p *parser) parseDoWhileStatement() Node {
	marker := p.createNode()
	p.expectKeyword("do")

	prevInIteration := p.context.inIteration
	p.context.inIteration = true
	body := p.parseStatement()
	p.context.inIteration = prevInIteration

	p.expectKeyword("while")
	p.expect("(")
	test := p.parseExpression()

	if !p.match(")") && p.config.Tolerant {
		token := p.nextToken()
		p.tolerateUnexpectedToken(&token, "")
	} else {
		p.expect(")")
		if p.match(";") {
			p.nextToken()
		}
	}

	return p.finalize(marker, newDoWhileStatement(body, test))
}

func (p *parser) parseWhileStatement() Node {
	marker := p.createNode()
	var body Node

	p.expectKeyword("while")
	p.expect("(")
	test := p.parseExpression()

	if !p.match(")") && p.config.Tolerant {
		token := p.nextToken()
		p.tolerateUnexpectedToken(&token, "")
		body = p.finalize(p.createNode(), newEmptyStatement())
	} else {
		p.expect(")")

		prevInIteration := p.context.inIteration
		p.context.inIteration = true
		body = p.parseStatement()
		p.context.inIteration = prevInIteration
	}

	return p.finalize(marker, newWhileStatement(test, body))
}

func (p *parser) parseForStatement() Node {
	var init Node
	var test Node
	var update Node
	var left Node
	var right Node
	forIn := true

	marker := p.createNode()
	p.expectKeyword("for")
	p.expect("(")

	if p.match(";") {
		p.nextToken()
	} else {
		if p.matchKeyword("var") {
			initMarker := p.createNode()
			p.nextToken()

			prevAllowIn := p.context.allowIn
			p.context.allowIn = false
			declarations := p.parseVariableDeclarationList(true)
			p.context.allowIn = prevAllowIn

			if len(declarations) == 1 && p.matchKeyword("in") {
				decl := declarations[0].(*VariableDeclarator)
				if decl.Init != nil {
					_, isArray := decl.Id.(*ArrayPattern)
					_, isObject := decl.Id.(*ObjectPattern)
					if isArray || isObject || p.context.strict {
						p.tolerateError(msgForInOfLoopInitializer, "for-in")
					}
				}
				init = p.finalize(initMarker, newVariableDeclaration(declarations, "var"))
				p.nextToken()
				left = init
				right = p.parseExpression()
				init = nil
			} else if len(declarations) == 1 && declarations[0].(*VariableDeclarator).Init == nil && p.matchContextualKeyword("of") {
				init = p.finalize(initMarker, newVariableDeclaration(declarations, "var"))
				p.nextToken()
				left = init
				right = p.parseAssignmentExpression()
				init = nil
				forIn = false
			} else {
				init = p.finalize(initMarker, newVariableDeclaration(declarations, "var"))
				p.expect(";")
			}
		} else if p.matchKeyword("const") || p.matchKeyword("let") {
			initMarker := p.createNode()
			kind := p.nextToken().Value

			if !p.context.strict && p.lookahead.Value == "in" {
				init = p.finalize(initMarker, newIdentifier(kind))
				p.nextToken()
				left = init
				right = p.parseExpression()
				init = nil
			} else {
				prevAllowIn := p.context.allowIn
				p.context.allowIn = false
				declarations := p.parseBindingList(kind, true)
				p.context.allowIn = prevAllowIn

				if len(declarations) == 1 && declarations[0].(*VariableDeclarator).Init == nil && p.matchKeyword("in") {
					init = p.finalize(initMarker, newVariableDeclaration(declarations, kind))
					p.nextToken()
					left = init
					right = p.parseExpression()
					init = nil
				} else if len(declarations) == 1 && declarations[0].(*VariableDeclarator).Init == nil && p.matchContextualKeyword("of") {
					init = p.finalize(initMarker, newVariableDeclaration(declarations, kind))
					p.nextToken()
					left = init
					right = p.parseAssignmentExpression()
					init = nil
					forIn = false
				} else {
					p.consumeSemicolon()
					init = p.finalize(initMarker, newVariableDeclaration(declarations, kind))
				}
			}
		} else {
			initStartToken := p.lookahead
			prevAllowIn := p.context.allowIn
			p.context.allowIn = false
			init = p.inheritCoverGrammar(p.parseAssignmentExpression)
			p.context.allowIn = prevAllowIn

			if p.matchKeyword("in") {
				if !p.context.isAssignmentTarget || isAssignmentExpression(init) {
					p.tolerateError(msgInvalidLHSInForIn)
				}
				p.nextToken()
				left = p.reinterpretExpressionAsPattern(init)
				right = p.parseExpression()
				init = nil
			} else if p.matchContextualKeyword("of") {
				if !p.context.isAssignmentTarget || isAssignmentExpression(init) {
					p.tolerateError(msgInvalidLHSInForLoop)
				}
				p.nextToken()
				left = p.reinterpretExpressionAsPattern(init)
				right = p.parseAssignmentExpression()
				init = nil
				forIn = false
			} else {
				if p.match(",") {
					initSeq := []Node{init}
					for p.match(",") {
						p.nextToken()
						initSeq = append(initSeq, p.isolateCoverGrammar(p.parseAssignmentExpression))
					}
					init = p.finalize(p.startNode(initStartToken), newSequenceExpression(initSeq))
				}
				p.expect(";")
			}
		}
	}

	if left == nil {
		if !p.match(";") {
			test = p.parseExpression()
		}
		p.expect(";")
		if !p.match(")") {
			update = p.parseExpression()
		}
	}

	var body Node
	if !p.match(")") && p.config.Tolerant {
		token := p.nextToken()
		p.tolerateUnexpectedToken(&token, "")
		body = p.finalize(p.createNode(), newEmptyStatement())
	} else {
		p.expect(")")

		prevInIteration := p.context.inIteration
		p.context.inIteration = true
		body = p.isolateCoverGrammar(p.parseStatement)
		p.context.inIteration = prevInIteration
	}

	if left == nil {
		return p.finalize(marker, newForStatement(init, test, update, body))
	}
	if forIn {
		return p.finalize(marker, newForInStatement(left, right, body))
	}
	return p.finalize(marker, newForOfStatement(left, right, body))
}

func isAssignmentExpression(n Node) bool {
	_, ok := n.(*AssignmentExpression)
	return ok
}

func (p *parser) parseContinueStatement() Node {
	marker := p.createNode()
	p.expectKeyword("continue")

	var label Node
	if p.lookahead.Type == TokenIdentifier && !p.hasLineTerminator {
		id := p.parseVariableIdentifier("").(*Identifier)
		label = id
		if !p.context.labelSet["$"+id.Name] {
			p.throwError(msgUnknownLabel, id.Name)
		}
	}

	p.consumeSemicolon()
	if label == nil && !p.context.inIteration {
		p.throwError(msgIllegalContinue)
	}

	return p.finalize(marker, newContinueStatement(label))
}

func (p *parser) parseBreakStatement() Node {
	marker := p.createNode()
	p.expectKeyword("break")

	var label Node
	if p.lookahead.Type == TokenIdentifier && !p.hasLineTerminator {
		id := p.parseVariableIdentifier("").(*Identifier)
		if !p.context.labelSet["$"+id.Name] {
			p.throwError(msgUnknownLabel, id.Name)
		}
		label = id
	}

	p.consumeSemicolon()
	if label == nil && !p.context.inIteration && !p.context.inSwitch {
		p.throwError(msgIllegalBreak)
	}

	return p.finalize(marker, newBreakStatement(label))
}

func (p *parser) parseReturnStatement() Node {
	if !p.context.inFunctionBody {
		p.tolerateError(msgIllegalReturn)
	}

	marker := p.createNode()
	p.expectKeyword("return")

	hasArgument := (!p.match(";") && !p.match("}") && !p.hasLineTerminator && p.lookahead.Type != TokenEOF) ||
		p.lookahead.Type == TokenStringLiteral ||
		p.lookahead.Type == TokenTemplate

	var argument Node
	if hasArgument {
		argument = p.parseExpression()
	}
	p.consumeSemicolon()

	return p.finalize(marker, newReturnStatement(argument))
}

func (p *parser) parseWithStatement() Node {
	if p.context.strict {
		p.tolerateError(msgStrictModeWith)
	}

	marker := p.createNode()
	var body Node

	p.expectKeyword("with")
	p.expect("(")
	object := p.parseExpression()

	if !p.match(")") && p.config.Tolerant {
		token := p.nextToken()
		p.tolerateUnexpectedToken(&token, "")
		body = p.finalize(p.createNode(), newEmptyStatement())
	} else {
		p.expect(")")
		body = p.parseStatement()
	}

	return p.finalize(marker, newWithStatement(object, body))
}

func (p *parser) parseSwitchCase() *SwitchCase {
	marker := p.createNode()

	var test Node
	if p.matchKeyword("default") {
		p.nextToken()
	} else {
		p.expectKeyword("case")
		test = p.parseExpression()
	}
	p.expect(":")

	consequent := []Node{}
	for {
		if p.match("}") || p.matchKeyword("default") || p.matchKeyword("case") {
			break
		}
		consequent = append(consequent, p.parseStatementListItem())
	}

	return p.finalize(marker, newSwitchCase(test, consequent)).(*SwitchCase)
}

func (p *parser) parseSwitchStatement() Node {
	marker := p.createNode()
	p.expectKeyword("switch")

	p.expect("(")
	discriminant := p.parseExpression()
	p.expect(")")

	prevInSwitch := p.context.inSwitch
	p.context.inSwitch = true

	cases := []*SwitchCase{}
	defaultFound := false
	p.expect("{")
	for {
		if p.match("}") {
			break
		}
		clause := p.parseSwitchCase()
		if clause.Test == nil {
			if defaultFound {
				p.throwError(msgMultipleDefaultsInSwitch)
			}
			defaultFound = true
		}
		cases = append(cases, clause)
	}
	p.expect("}")

	p.context.inSwitch = prevInSwitch

	return p.finalize(marker, newSwitchStatement(discriminant, cases))
}

func (p *parser) parseLabelledStatement() Node {
	marker := p.createNode()
	expr := p.parseExpression()

	id, isIdent := expr.(*Identifier)
	if isIdent && p.match(":") {
		p.nextToken()

		key := "$" + id.Name
		if p.context.labelSet[key] {
			p.throwError(msgLabelRedeclaration, id.Name)
		}
		p.context.labelSet[key] = true

		var body Node
		if p.matchKeyword("class") {
			p.tolerateUnexpectedToken(&p.lookahead, "")
			body = p.parseClassDeclaration(false)
		} else if p.matchKeyword("function") {
			token := p.lookahead
			declaration := p.parseFunctionDeclaration(false)
			if p.context.strict {
				p.tolerateUnexpectedToken(&token, msgStrictFunction)
			} else if declaration.(*FunctionDeclaration).Generator {
				p.tolerateUnexpectedToken(&token, msgGeneratorInLegacyContext)
			}
			body = declaration
		} else {
			body = p.parseStatement()
		}
		delete(p.context.labelSet, key)

		return p.finalize(marker, newLabeledStatement(id, body))
	}

	p.consumeSemicolon()
	return p.finalize(marker, newExpressionStatement(expr))
}

func (p *parser) parseThrowStatement() Node {
	marker := p.createNode()
	p.expectKeyword("throw")

	if p.hasLineTerminator {
		p.throwError(msgNewlineAfterThrow)
	}

	argument := p.parseExpression()
	p.consumeSemicolon()

	return p.finalize(marker, newThrowStatement(argument))
}

func (p *parser) parseCatchClause() *CatchClause {
	marker := p.createNode()

	p.expectKeyword("catch")
	p.expect("(")
	if p.match(")") {
		p.throwUnexpectedToken(&p.lookahead, "")
	}

	var params []rawToken
	param := p.parsePattern(&params, "")
	paramMap := map[string]bool{}
	for i := range params {
		key := "$" + params[i].Value
		if paramMap[key] {
			p.tolerateError(msgDuplicateBinding, params[i].Value)
		}
		paramMap[key] = true
	}

	if ident, ok := param.(*Identifier); ok && p.context.strict && isRestrictedWord(ident.Name) {
		p.tolerateError(msgStrictCatchVariable)
	}

	p.expect(")")
	body := p.parseBlock()

	return p.finalize(marker, newCatchClause(param, body)).(*CatchClause)
}

func (p *parser) parseFinallyClause() Node {
	p.expectKeyword("finally")
	return p.parseBlock()
}

func (p *parser) parseTryStatement() Node {
	marker := p.createNode()
	p.expectKeyword("try")

	block := p.parseBlock()

	var handler *CatchClause
	if p.matchKeyword("catch") {
		handler = p.parseCatchClause()
	}
	var finalizer Node
	if p.matchKeyword("finally") {
		finalizer = p.parseFinallyClause()
	}

	if handler == nil && finalizer == nil {
		p.throwError(msgNoCatchOrFinally)
	}

	return p.finalize(marker, newTryStatement(block, handler, finalizer))
}

func (p *parser) parseDebuggerStatement() Node {
	marker := p.createNode()
	p.expectKeyword("debugger")
	p.consumeSemicolon()
	return p.finalize(marker, newDebuggerStatement())
}

func (p *parser) parseStatement() Node {
	switch p.lookahead.Type {
	case TokenBooleanLiteral, TokenNullLiteral, TokenNumericLiteral,
		TokenStringLiteral, TokenTemplate, TokenRegularExpression:
		return p.parseExpressionStatement()

	case TokenPunctuator:
		switch p.lookahead.Value {
		case "{":
			return p.parseBlock()
		case "(":
			return p.parseExpressionStatement()
		case ";":
			return p.parseEmptyStatement()
		default:
			return p.parseExpressionStatement()
		}

	case TokenIdentifier:
		if p.matchAsyncFunction() {
			return p.parseFunctionDeclaration(false)
		}
		return p.parseLabelledStatement()

	case TokenKeyword:
		switch p.lookahead.Value {
		case "break":
			return p.parseBreakStatement()
		case "continue":
			return p.parseContinueStatement()
		case "debugger":
			return p.parseDebuggerStatement()
		case "do":
			return p.parseDoWhileStatement()
		case "for":
			return p.parseForStatement()
		case "function":
			return p.parseFunctionDeclaration(false)
		case "if":
			return p.parseIfStatement()
		case "return":
			return p.parseReturnStatement()
		case "switch":
			return p.parseSwitchStatement()
		case "throw":
			return p.parseThrowStatement()
		case "try":
			return p.parseTryStatement()
		case "var":
			return p.parseVariableStatement()
		case "while":
			return p.parseWhileStatement()
		case "with":
			return p.parseWithStatement()
		default:
			return p.parseExpressionStatement()
		}
	}

	p.throwUnexpectedToken(&p.lookahead, "")
	return nil
}

// --- functions -----------------------------------------------------------

func (p *parser) parseFunctionSourceElements() Node {
	marker := p.createNode()

	p.expect("{")
	body := p.parseDirectivePrologues()

	prevLabelSet := p.context.labelSet
	prevInIteration := p.context.inIteration
	prevInSwitch := p.context.inSwitch
	prevInFunctionBody := p.context.inFunctionBody

	p.context.labelSet = map[string]bool{}
	p.context.inIteration = false
	p.context.inSwitch = false
	p.context.inFunctionBody = true

	for p.lookahead.Type != TokenEOF {
		if p.match("}") {
			break
		}
		body = append(body, p.parseStatementListItem())
	}
	p.expect("}")

	p.context.labelSet = prevLabelSet
	p.context.inIteration = prevInIteration
	p.context.inSwitch = prevInSwitch
	p.context.inFunctionBody = prevInFunctionBody

	return p.finalize(marker, newBlockStatement(body))
}

func (p *parser) parseRestElement(params *[]rawToken) Node {
	marker := p.createNode()

	p.expect("...")
	arg := p.parsePattern(params, "")
	if p.match("=") {
		p.throwError(msgDefaultRestParameter)
	}
	if !p.match(")") {
		p.throwError(msgParameterAfterRestParameter)
	}

	return p.finalize(marker, newRestElement(arg))
}

func (p *parser) parseFormalParameter(options *formalParameters) {
	var params []rawToken
	var param Node
	if p.match("...") {
		param = p.parseRestElement(&params)
	} else {
		param = p.parsePatternWithDefault(&params, "")
	}
	for i := range params {
		p.validateParam(options, &params[i], params[i].Value)
	}
	options.Simple = options.Simple && isSimpleParam(param)
	options.Params = append(options.Params, param)
}

func (p *parser) parseFormalParameters(firstRestricted *rawToken) *formalParameters {
	options := &formalParameters{
		Simple:          true,
		ParamSet:        map[string]bool{},
		FirstRestricted: firstRestricted,
	}

	p.expect("(")
	if !p.match(")") {
		for p.lookahead.Type != TokenEOF {
			p.parseFormalParameter(options)
			if p.match(")") {
				break
			}
			p.expect(",")
			if p.match(")") {
				break
			}
		}
	}
	p.expect(")")

	if options.Params == nil {
		options.Params = []Node{}
	}
	return options
}

func (p *parser) matchAsyncFunction() bool {
	match := p.matchContextualKeyword("async")
	if match {
		line := p.scanner.lineNumber
		next := p.scanner.peek()
		match = line == next.LineNumber && next.Type == TokenKeyword && next.Value == "function"
	}
	return match
}

func (p *parser) parseFunctionDeclaration(identifierIsOptional bool) Node {
	marker := p.createNode()

	isAsync := p.matchContextualKeyword("async")
	if isAsync {
		p.nextToken()
	}

	p.expectKeyword("function")

	isGenerator := !isAsync && p.match("*")
	if isGenerator {
		p.nextToken()
	}

	var message string
	var id Node
	var firstRestricted *rawToken

	if !identifierIsOptional || !p.match("(") {
		token := p.lookahead
		id = p.parseVariableIdentifier("")
		if p.context.strict {
			if isRestrictedWord(token.Value) {
				p.tolerateUnexpectedToken(&token, msgStrictFunctionName)
			}
		} else {
			if isRestrictedWord(token.Value) {
				firstRestricted = &token
				message = msgStrictFunctionName
			} else if isStrictModeReservedWord(token.Value) {
				firstRestricted = &token
				message = msgStrictReservedWord
			}
		}
	}

	prevAwait := p.context.await
	prevAllowYield := p.context.allowYield
	p.context.await = isAsync
	p.context.allowYield = !isGenerator

	params := p.parseFormalParameters(firstRestricted)
	firstRestricted = params.FirstRestricted
	if params.Message != "" {
		message = params.Message
	}

	prevStrict := p.context.strict
	prevAllowStrictDirective := p.context.allowStrictDirective
	p.context.allowStrictDirective = params.Simple
	body := p.parseFunctionSourceElements()
	if p.context.strict && firstRestricted != nil {
		p.throwUnexpectedToken(firstRestricted, message)
	}
	if p.context.strict && params.Stricted != nil {
		p.tolerateUnexpectedToken(params.Stricted, message)
	}

	p.context.strict = prevStrict
	p.context.allowStrictDirective = prevAllowStrictDirective
	p.context.await = prevAwait
	p.context.allowYield = prevAllowYield

	return p.finalize(marker, newFunctionDeclaration(id, params.Params, body, isGenerator, isAsync))
}

func (p *parser) parseFunctionExpression() Node {
	marker := p.createNode()

	isAsync := p.matchContextualKeyword("async")
	if isAsync {
		p.nextToken()
	}

	p.expectKeyword("function")

	isGenerator := !isAsync && p.match("*")
	if isGenerator {
		p.nextToken()
	}

	var message string
	var id Node
	var firstRestricted *rawToken

	prevAwait := p.context.await
	prevAllowYield := p.context.allowYield
	p.context.await = isAsync
	p.context.allowYield = !isGenerator

	if !p.match("(") {
		token := p.lookahead
		if !p.context.strict && !isGenerator && p.matchKeyword("yield") {
			id = p.parseIdentifierName()
		} else {
			id = p.parseVariableIdentifier("")
		}
		if p.context.strict {
			if isRestrictedWord(token.Value) {
				p.tolerateUnexpectedToken(&token, msgStrictFunctionName)
			}
		} else {
			if isRestrictedWord(token.Value) {
				firstRestricted = &token
				message = msgStrictFunctionName
			} else if isStrictModeReservedWord(token.Value) {
				firstRestricted = &token
				message = msgStrictReservedWord
			}
		}
	}

	params := p.parseFormalParameters(firstRestricted)
	firstRestricted = params.FirstRestricted
	if params.Message != "" {
		message = params.Message
	}

	prevStrict := p.context.strict
	prevAllowStrictDirective := p.context.allowStrictDirective
	p.context.allowStrictDirective = params.Simple
	body := p.parseFunctionSourceElements()
	if p.context.strict && firstRestricted != nil {
		p.throwUnexpectedToken(firstRestricted, message)
	}
	if p.context.strict && params.Stricted != nil {
		p.tolerateUnexpectedToken(params.Stricted, message)
	}
	p.context.strict = prevStrict
	p.context.allowStrictDirective = prevAllowStrictDirective
	p.context.await = prevAwait
	p.context.allowYield = prevAllowYield

	return p.finalize(marker, newFunctionExpression(id, params.Params, body, isGenerator, isAsync))
}

// --- directives ----------------------------------------------------------

func (p *parser) parseDirective() (Node, bool) {
	token := p.lookahead

	marker := p.createNode()
	expr := p.parseExpression()
	_, isLiteral := expr.(*Literal)
	p.consumeSemicolon()

	if isLiteral {
		directive := p.getTokenRaw(token)
		directive = directive[1 : len(directive)-1]
		return p.finalize(marker, newDirective(expr, directive)), true
	}
	return p.finalize(marker, newExpressionStatement(expr)), false
}

func (p *parser) parseDirectivePrologues() []Node {
	var firstRestricted *rawToken

	body := []Node{}
	for {
		token := p.lookahead
		if token.Type != TokenStringLiteral {
			break
		}

		statement, isDirective := p.parseDirective()
		body = append(body, statement)
		if !isDirective {
			break
		}
		directive := statement.(*ExpressionStatement).Directive

		if directive == "use strict" {
			p.context.strict = true
			if firstRestricted != nil {
				p.tolerateUnexpectedToken(firstRestricted, msgStrictOctalLiteral)
			}
			if !p.context.allowStrictDirective {
				p.tolerateUnexpectedToken(&token, msgIllegalLanguageModeDirective)
			}
		} else if firstRestricted == nil && token.Octal {
			firstRestricted = &token
		}
	}

	return body
}

// --- methods and accessors -----------------------------------------------

func (p *parser) qualifiedPropertyName(token *rawToken) bool {
	switch token.Type {
	case TokenIdentifier, TokenStringLiteral, TokenBooleanLiteral,
		TokenNullLiteral, TokenNumericLiteral, TokenKeyword:
		return true
	case TokenPunctuator:
		return token.Value == "["
	}
	return false
}

func (p *parser) parseGetterMethod() Node {
	marker := p.createNode()

	prevAllowYield := p.context.allowYield
	p.context.allowYield = true
	params := p.parseFormalParameters(nil)
	if len(params.Params) > 0 {
		p.tolerateError(msgBadGetterArity)
	}
	method := p.parsePropertyMethod(params)
	p.context.allowYield = prevAllowYield

	return p.finalize(marker, newFunctionExpression(nil, params.Params, method, false, false))
}

func (p *parser) parseSetterMethod() Node {
	marker := p.createNode()

	prevAllowYield := p.context.allowYield
	p.context.allowYield = true
	params := p.parseFormalParameters(nil)
	if len(params.Params) != 1 {
		p.tolerateError(msgBadSetterArity)
	} else if _, ok := params.Params[0].(*RestElement); ok {
		p.tolerateError(msgBadSetterRestParameter)
	}
	method := p.parsePropertyMethod(params)
	p.context.allowYield = prevAllowYield

	return p.finalize(marker, newFunctionExpression(nil, params.Params, method, false, false))
}

func (p *parser) parseGeneratorMethod() Node {
	marker := p.createNode()

	prevAllowYield := p.context.allowYield
	p.context.allowYield = true
	params := p.parseFormalParameters(nil)
	p.context.allowYield = false
	method := p.parsePropertyMethod(params)
	p.context.allowYield = prevAllowYield

	return p.finalize(marker, newFunctionExpression(nil, params.Params, method, true, false))
}

// --- yield ---------------------------------------------------------------

func (p *parser) isStartOfExpression() bool {
	start := true

	switch p.lookahead.Type {
	case TokenPunctuator:
		switch p.lookahead.Value {
		case "[", "(", "{", "+", "-", "!", "~", "++", "--", "/", "/=":
			start = true
		default:
			start = false
		}
	case TokenKeyword:
		switch p.lookahead.Value {
		case "class", "delete", "function", "let", "new", "super",
			"this", "typeof", "void", "yield":
			start = true
		default:
			start = false
		}
	}

	return start
}

func (p *parser) parseYieldExpression() Node {
	marker := p.createNode()
	p.expectKeyword("yield")

	var argument Node
	delegate := false
	if !p.hasLineTerminator {
		prevAllowYield := p.context.allowYield
		p.context.allowYield = false
		delegate = p.match("*")
		if delegate {
			p.nextToken()
			argument = p.parseAssignmentExpression()
		} else if p.isStartOfExpression() {
			argument = p.parseAssignmentExpression()
		}
		p.context.allowYield = prevAllowYield
	}

	return p.finalize(marker, newYieldExpression(argument, delegate))
}

// --- classes -------------------------------------------------------------

func (p *parser) parseDecorators() []*Decorator {
	var decorators []*Decorator
	for p.match("@") {
		marker := p.createNode()
		p.nextToken()
		expr := p.isolateCoverGrammar(p.parseLeftHandSideExpressionAllowCall)
		decorators = append(decorators, p.finalize(marker, newDecorator(expr)).(*Decorator))
	}
	return decorators
}

func (p *parser) parseClassElement(hasConstructor *bool) Node {
	token := p.lookahead
	marker := p.createNode()

	var kind string
	var key Node
	var value Node
	computed := false
	method := false
	isStatic := false
	isAsync := false

	if p.match("*") {
		p.nextToken()
	} else {
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
		if id, ok := key.(*Identifier); ok && id.Name == "static" &&
			(p.qualifiedPropertyName(&p.lookahead) || p.match("*")) {
			token = p.lookahead
			isStatic = true
			computed = p.match("[")
			if p.match("*") {
				p.nextToken()
			} else {
				key = p.parseObjectPropertyKey()
			}
		}
		if token.Type == TokenIdentifier && !p.hasLineTerminator && token.Value == "async" {
			punctuator := p.lookahead.Value
			if punctuator != ":" && punctuator != "(" && punctuator != "*" && punctuator != "=" && punctuator != ";" {
				isAsync = true
				token = p.lookahead
				key = p.parseObjectPropertyKey()
				if token.Type == TokenIdentifier && token.Value == "constructor" {
					p.tolerateUnexpectedToken(&token, msgConstructorIsAsync)
				}
			}
		}
	}

	lookaheadPropertyKey := p.qualifiedPropertyName(&p.lookahead)
	if token.Type == TokenIdentifier {
		if token.Value == "get" && lookaheadPropertyKey {
			kind = "get"
			computed = p.match("[")
			key = p.parseObjectPropertyKey()
			p.context.allowYield = false
			value = p.parseGetterMethod()
		} else if token.Value == "set" && lookaheadPropertyKey {
			kind = "set"
			computed = p.match("[")
			key = p.parseObjectPropertyKey()
			p.context.allowYield = false
			value = p.parseSetterMethod()
		}
	} else if token.Type == TokenPunctuator && token.Value == "*" && lookaheadPropertyKey {
		kind = "init"
		computed = p.match("[")
		key = p.parseObjectPropertyKey()
		value = p.parseGeneratorMethod()
		method = true
	}

	if kind == "" && key != nil && p.match("(") {
		kind = "init"
		if isAsync {
			value = p.parsePropertyMethodAsyncFunction()
		} else {
			value = p.parsePropertyMethodFunction()
		}
		method = true
	}

	if kind == "" && key != nil {
		// Class field, with an optional initializer.
		var init Node
		if p.match("=") {
			p.nextToken()
			init = p.isolateCoverGrammar(p.parseAssignmentExpression)
		}
		p.consumeSemicolon()
		return p.finalize(marker, newClassProperty(key, computed, init, isStatic))
	}

	if kind == "" {
		p.throwUnexpectedToken(&p.lookahead, "")
	}

	if kind == "init" {
		kind = "method"
	}

	if !computed {
		if isStatic && isPropertyKey(key, "prototype") {
			p.throwUnexpectedToken(&token, msgStaticPrototype)
		}
		if !isStatic && isPropertyKey(key, "constructor") {
			generator := false
			if fe, ok := value.(*FunctionExpression); ok {
				generator = fe.Generator
			}
			if kind != "method" || !method || generator {
				p.throwUnexpectedToken(&token, msgConstructorSpecialMethod)
			}
			if *hasConstructor {
				p.throwUnexpectedToken(&token, msgDuplicateConstructor)
			}
			*hasConstructor = true
			kind = "constructor"
		}
	}

	return p.finalize(marker, newMethodDefinition(key, computed, value, kind, isStatic))
}

func (p *parser) parseClassElementList() []Node {
	body := []Node{}
	hasConstructor := false

	p.expect("{")
	for !p.match("}") {
		if p.match(";") {
			p.nextToken()
		} else {
			body = append(body, p.parseClassElement(&hasConstructor))
		}
	}
	p.expect("}")

	return body
}

func (p *parser) parseClassBody() *ClassBody {
	marker := p.createNode()
	elementList := p.parseClassElementList()
	return p.finalize(marker, newClassBody(elementList)).(*ClassBody)
}

func (p *parser) parseClassDeclaration(identifierIsOptional bool) Node {
	return p.parseClassDeclarationWithDecorators(identifierIsOptional, nil)
}

func (p *parser) parseClassDeclarationWithDecorators(identifierIsOptional bool, decorators []*Decorator) Node {
	marker := p.createNode()

	prevStrict := p.context.strict
	p.context.strict = true
	p.expectKeyword("class")

	var id Node
	if !identifierIsOptional || p.lookahead.Type == TokenIdentifier {
		id = p.parseVariableIdentifier("")
	}
	var superClass Node
	if p.matchKeyword("extends") {
		p.nextToken()
		superClass = p.isolateCoverGrammar(p.parseLeftHandSideExpressionAllowCall)
	}
	classBody := p.parseClassBody()
	p.context.strict = prevStrict

	return p.finalize(marker, newClassDeclaration(id, superClass, classBody, decorators))
}

func (p *parser) parseClassExpression() Node {
	marker := p.createNode()

	var decorators []*Decorator
	if p.match("@") {
		decorators = p.parseDecorators()
	}

	prevStrict := p.context.strict
	p.context.strict = true
	p.expectKeyword("class")

	var id Node
	if p.lookahead.Type == TokenIdentifier {
		id = p.parseVariableIdentifier("")
	}
	var superClass Node
	if p.matchKeyword("extends") {
		p.nextToken()
		superClass = p.isolateCoverGrammar(p.parseLeftHandSideExpressionAllowCall)
	}
	classBody := p.parseClassBody()
	p.context.strict = prevStrict

	return p.finalize(marker, newClassExpression(id, superClass, classBody, decorators))
}

// --- modules -------------------------------------------------------------

func (p *parser) parseModuleSpecifier() *Literal {
	marker := p.createNode()

	if p.lookahead.Type != TokenStringLiteral {
		p.throwError(msgInvalidModuleSpecifier)
	}

	token := p.nextToken()
	return p.finalize(marker, newLiteral(token.Value, p.rawFor(token))).(*Literal)
}

// import {<foo as bar>} ...
func (p *parser) parseImportSpecifier() Node {
	marker := p.createNode()

	var imported *Identifier
	var local *Identifier
	if p.lookahead.Type == TokenIdentifier {
		imported = p.parseVariableIdentifier("").(*Identifier)
		local = imported
		if p.matchContextualKeyword("as") {
			p.nextToken()
			local = p.parseVariableIdentifier("").(*Identifier)
		}
	} else {
		imported = p.parseIdentifierName().(*Identifier)
		local = imported
		if p.matchContextualKeyword("as") {
			p.nextToken()
			local = p.parseVariableIdentifier("").(*Identifier)
		} else {
			token := p.nextToken()
			p.throwUnexpectedToken(&token, "")
		}
	}

	return p.finalize(marker, newImportSpecifier(local, imported))
}

// {foo, bar as bas}
func (p *parser) parseNamedImports() []Node {
	p.expect("{")
	specifiers := []Node{}
	for !p.match("}") {
		specifiers = append(specifiers, p.parseImportSpecifier())
		if !p.match("}") {
			p.expect(",")
		}
	}
	p.expect("}")
	return specifiers
}

// import <foo> ...
func (p *parser) parseImportDefaultSpecifier() Node {
	marker := p.createNode()
	local := p.parseIdentifierName().(*Identifier)
	return p.finalize(marker, newImportDefaultSpecifier(local))
}

// import <* as foo> ...
func (p *parser) parseImportNamespaceSpecifier() Node {
	marker := p.createNode()

	p.expect("*")
	if !p.matchContextualKeyword("as") {
		p.throwError(msgNoAsAfterImportNamespace)
	}
	p.nextToken()
	local := p.parseIdentifierName().(*Identifier)

	return p.finalize(marker, newImportNamespaceSpecifier(local))
}

func (p *parser) parseImportDeclaration() Node {
	if p.context.inFunctionBody {
		p.throwError(msgIllegalImportDeclaration)
	}

	marker := p.createNode()
	p.expectKeyword("import")

	var src *Literal
	specifiers := []Node{}
	if p.lookahead.Type == TokenStringLiteral {
		// import 'foo';
		src = p.parseModuleSpecifier()
	} else {
		if p.match("{") {
			// import {bar}
			specifiers = append(specifiers, p.parseNamedImports()...)
		} else if p.match("*") {
			// import * as foo
			specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
		} else if isIdentifierName(p.lookahead) && !p.matchKeyword("default") {
			// import foo
			specifiers = append(specifiers, p.parseImportDefaultSpecifier())
			if p.match(",") {
				p.nextToken()
				if p.match("*") {
					// import foo, * as bar
					specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
				} else if p.match("{") {
					// import foo, {bar}
					specifiers = append(specifiers, p.parseNamedImports()...)
				} else {
					p.throwUnexpectedToken(&p.lookahead, "")
				}
			}
		} else {
			token := p.nextToken()
			p.throwUnexpectedToken(&token, "")
		}

		if !p.matchContextualKeyword("from") {
			message := msgMissingFromClause
			if p.lookahead.Value != "" {
				message = msgUnexpectedToken
			}
			p.throwError(message, p.lookahead.Value)
		}
		p.nextToken()
		src = p.parseModuleSpecifier()
	}
	p.consumeSemicolon()

	return p.finalize(marker, newImportDeclaration(specifiers, src))
}

func (p *parser) parseExportSpecifier() Node {
	marker := p.createNode()

	local := p.parseIdentifierName().(*Identifier)
	exported := local
	if p.matchContextualKeyword("as") {
		p.nextToken()
		exported = p.parseIdentifierName().(*Identifier)
	}

	return p.finalize(marker, newExportSpecifier(local, exported))
}

// checkDuplicateExport records every exported name and reports a
// redeclaration when the same name is exported twice from one module.
func (p *parser) checkDuplicateExport(name string) {
	if p.exportedNames == nil {
		p.exportedNames = map[string]bool{}
	}
	if p.exportedNames[name] {
		p.tolerateError(msgRedeclaration, "Export", name)
	}
	p.exportedNames[name] = true
}

func (p *parser) parseExportDeclaration() Node {
	if p.context.inFunctionBody {
		p.throwError(msgIllegalExportDeclaration)
	}

	marker := p.createNode()
	p.expectKeyword("export")

	if p.matchKeyword("default") {
		// export default ...
		p.nextToken()
		p.checkDuplicateExport("default")
		var declaration Node
		if p.matchKeyword("function") {
			// export default function foo () {} / function () {}
			declaration = p.parseFunctionDeclaration(true)
		} else if p.matchKeyword("class") {
			declaration = p.parseClassDeclaration(true)
		} else if p.matchContextualKeyword("async") {
			// export default async function f () {} / async () => ...
			if p.matchAsyncFunction() {
				declaration = p.parseFunctionDeclaration(true)
			} else {
				declaration = p.parseAssignmentExpression()
				p.consumeSemicolon()
			}
		} else {
			if p.matchContextualKeyword("from") {
				p.throwError(msgUnexpectedToken, p.lookahead.Value)
			}
			// export default {}; / []; / (1 + 2);
			if p.match("{") {
				declaration = p.parseObjectInitializer()
			} else if p.match("[") {
				declaration = p.parseArrayInitializer()
			} else {
				declaration = p.parseAssignmentExpression()
			}
			p.consumeSemicolon()
		}
		return p.finalize(marker, newExportDefaultDeclaration(declaration))
	}

	if p.match("*") {
		// export * from 'foo';
		p.nextToken()
		if !p.matchContextualKeyword("from") {
			message := msgMissingFromClause
			if p.lookahead.Value != "" {
				message = msgUnexpectedToken
			}
			p.throwError(message, p.lookahead.Value)
		}
		p.nextToken()
		src := p.parseModuleSpecifier()
		p.consumeSemicolon()
		return p.finalize(marker, newExportAllDeclaration(src))
	}

	if p.lookahead.Type == TokenKeyword {
		// export var f = 1;
		var declaration Node
		switch p.lookahead.Value {
		case "let", "const":
			declaration = p.parseLexicalDeclaration(false)
		case "var", "class", "function":
			declaration = p.parseStatementListItem()
		default:
			p.throwUnexpectedToken(&p.lookahead, "")
		}
		p.recordDeclarationExports(declaration)
		return p.finalize(marker, newExportNamedDeclaration(declaration, []Node{}, nil))
	}

	if p.matchAsyncFunction() {
		declaration := p.parseFunctionDeclaration(false)
		p.recordDeclarationExports(declaration)
		return p.finalize(marker, newExportNamedDeclaration(declaration, []Node{}, nil))
	}

	specifiers := []Node{}
	var src *Literal
	isExportFromIdentifier := false

	p.expect("{")
	for !p.match("}") {
		isExportFromIdentifier = isExportFromIdentifier || p.matchKeyword("default")
		specifiers = append(specifiers, p.parseExportSpecifier())
		if !p.match("}") {
			p.expect(",")
		}
	}
	p.expect("}")

	if p.matchContextualKeyword("from") {
		// export {default} from 'foo';
		p.nextToken()
		src = p.parseModuleSpecifier()
		p.consumeSemicolon()
	} else if isExportFromIdentifier {
		// export {default}; // missing fromClause
		message := msgMissingFromClause
		if p.lookahead.Value != "" {
			message = msgUnexpectedToken
		}
		p.throwError(message, p.lookahead.Value)
	} else {
		p.consumeSemicolon()
		for _, s := range specifiers {
			p.checkDuplicateExport(s.(*ExportSpecifier).Exported.Name)
		}
	}

	return p.finalize(marker, newExportNamedDeclaration(nil, specifiers, src))
}

// recordDeclarationExports feeds the names bound by an exported declaration
// into the duplicate-export check.
func (p *parser) recordDeclarationExports(declaration Node) {
	switch d := declaration.(type) {
	case *VariableDeclaration:
		for _, decl := range d.Declarations {
			if id, ok := decl.(*VariableDeclarator).Id.(*Identifier); ok {
				p.checkDuplicateExport(id.Name)
			}
		}
	case *FunctionDeclaration:
		if id, ok := d.Id.(*Identifier); ok {
			p.checkDuplicateExport(id.Name)
		}
	case *ClassDeclaration:
		if id, ok := d.Id.(*Identifier); ok {
			p.checkDuplicateExport(id.Name)
		}
	}
}

// --- entry points --------------------------------------------------------

func (p *parser) parseScriptBody() *Program {
	marker := p.createNode()
	body := p.parseDirectivePrologues()
	for p.lookahead.Type != TokenEOF {
		body = append(body, p.parseStatementListItem())
	}
	return p.finalize(marker, newProgram(body, "script")).(*Program)
}

func (p *parser) parseModuleBody() *Program {
	p.context.strict = true
	p.context.isModule = true

	marker := p.createNode()
	body := p.parseDirectivePrologues()
	for p.lookahead.Type != TokenEOF {
		body = append(body, p.parseStatementListItem())
	}
	return p.finalize(marker, newProgram(body, "module")).(*Program)
}
