package esparse

import "strconv"

// xhtmlEntities is the XHTML 1.0 named-entity table used when decoding
// JSX text and attribute values (Latin-1 plus the special set).
var xhtmlEntities = map[string]rune{
	"quot": 0x0022, "amp": 0x0026, "apos": 0x0027, "gt": 0x003E, "lt": 0x003C,
	"nbsp": 0x00A0, "iexcl": 0x00A1, "cent": 0x00A2, "pound": 0x00A3,
	"curren": 0x00A4, "yen": 0x00A5, "brvbar": 0x00A6, "sect": 0x00A7,
	"uml": 0x00A8, "copy": 0x00A9, "ordf": 0x00AA, "laquo": 0x00AB,
	"not": 0x00AC, "shy": 0x00AD, "reg": 0x00AE, "macr": 0x00AF,
	"deg": 0x00B0, "plusmn": 0x00B1, "sup2": 0x00B2, "sup3": 0x00B3,
	"acute": 0x00B4, "micro": 0x00B5, "para": 0x00B6, "middot": 0x00B7,
	"cedil": 0x00B8, "sup1": 0x00B9, "ordm": 0x00BA, "raquo": 0x00BB,
	"frac14": 0x00BC, "frac12": 0x00BD, "frac34": 0x00BE, "iquest": 0x00BF,
	"Agrave": 0x00C0, "Aacute": 0x00C1, "Acirc": 0x00C2, "Atilde": 0x00C3,
	"Auml": 0x00C4, "Aring": 0x00C5, "AElig": 0x00C6, "Ccedil": 0x00C7,
	"Egrave": 0x00C8, "Eacute": 0x00C9, "Ecirc": 0x00CA, "Euml": 0x00CB,
	"Igrave": 0x00CC, "Iacute": 0x00CD, "Icirc": 0x00CE, "Iuml": 0x00CF,
	"ETH": 0x00D0, "Ntilde": 0x00D1, "Ograve": 0x00D2, "Oacute": 0x00D3,
	"Ocirc": 0x00D4, "Otilde": 0x00D5, "Ouml": 0x00D6, "times": 0x00D7,
	"Oslash": 0x00D8, "Ugrave": 0x00D9, "Uacute": 0x00DA, "Ucirc": 0x00DB,
	"Uuml": 0x00DC, "Yacute": 0x00DD, "THORN": 0x00DE, "szlig": 0x00DF,
	"agrave": 0x00E0, "aacute": 0x00E1, "acirc": 0x00E2, "atilde": 0x00E3,
	"auml": 0x00E4, "aring": 0x00E5, "aelig": 0x00E6, "ccedil": 0x00E7,
	"egrave": 0x00E8, "eacute": 0x00E9, "ecirc": 0x00EA, "euml": 0x00EB,
	"igrave": 0x00EC, "iacute": 0x00ED, "icirc": 0x00EE, "iuml": 0x00EF,
	"eth": 0x00F0, "ntilde": 0x00F1, "ograve": 0x00F2, "oacute": 0x00F3,
	"ocirc": 0x00F4, "otilde": 0x00F5, "ouml": 0x00F6, "divide": 0x00F7,
	"oslash": 0x00F8, "ugrave": 0x00F9, "uacute": 0x00FA, "ucirc": 0x00FB,
	"uuml": 0x00FC, "yacute": 0x00FD, "thorn": 0x00FE, "yuml": 0x00FF,
	"OElig": 0x0152, "oelig": 0x0153, "Scaron": 0x0160, "scaron": 0x0161,
	"Yuml": 0x0178, "fnof": 0x0192, "circ": 0x02C6, "tilde": 0x02DC,
	"ensp": 0x2002, "emsp": 0x2003, "thinsp": 0x2009, "zwnj": 0x200C,
	"zwj": 0x200D, "lrm": 0x200E, "rlm": 0x200F, "ndash": 0x2013,
	"mdash": 0x2014, "lsquo": 0x2018, "rsquo": 0x2019, "sbquo": 0x201A,
	"ldquo": 0x201C, "rdquo": 0x201D, "bdquo": 0x201E, "dagger": 0x2020,
	"Dagger": 0x2021, "bull": 0x2022, "hellip": 0x2026, "permil": 0x2030,
	"prime": 0x2032, "Prime": 0x2033, "lsaquo": 0x2039, "rsaquo": 0x203A,
	"oline": 0x203E, "frasl": 0x2044, "euro": 0x20AC, "trade": 0x2122,
	"alefsym": 0x2135, "larr": 0x2190, "uarr": 0x2191, "rarr": 0x2192,
	"darr": 0x2193, "harr": 0x2194, "minus": 0x2212, "infin": 0x221E,
	"ne": 0x2260, "le": 0x2264, "ge": 0x2265, "spades": 0x2660,
	"clubs": 0x2663, "hearts": 0x2665, "diams": 0x2666,
}

// metaJSXElement tracks a partially parsed element while its children are
// being consumed.
type metaJSXElement struct {
	marker   Marker
	opening  *JSXOpeningElement
	closing  Node
	children []Node
}

// --- JSX scanning --------------------------------------------------------

// startJSX rewinds the scanner to the start marker so JSX lexing picks up
// at the `<` that triggered the overlay.
func (p *parser) startJSX() {
	p.scanner.index = p.startMarker.Index
	p.scanner.lineNumber = p.startMarker.Line
	p.scanner.lineStart = p.startMarker.Index - p.startMarker.Column
}

func (p *parser) finishJSX() {
	// Prime the next lookahead.
	p.nextToken()
}

func (p *parser) reenterJSX() {
	p.startJSX()
	p.expectJSX("}")

	// Pop the closing '}' added to the token collection.
	if p.config.Tokens {
		if n := len(p.tokens); n > 0 {
			p.tokens = p.tokens[:n-1]
		}
	}
}

func (p *parser) createJSXNode() Marker {
	p.collectComments()
	return Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}
}

func (p *parser) createJSXChildNode() Marker {
	return Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}
}

// scanXHTMLEntity decodes one &entity; reference while scanning a JSX text
// or attribute run. Unknown references are kept verbatim.
func (p *parser) scanXHTMLEntity(quote rune) string {
	result := "&"

	valid := true
	terminated := false
	str := ""
	for !p.scanner.eof() {
		ch := p.scanner.source[p.scanner.index]
		if ch == quote {
			break
		}
		// In text position the reference is also bounded by the next
		// element or expression boundary.
		if quote == 0 && (ch == '<' || ch == '{') {
			break
		}
		p.scanner.index++
		if ch == ';' {
			terminated = true
			break
		}
		str += string(ch)
		result += string(ch)
		if len(str) > 10 {
			break
		}
	}

	if terminated {
		if len(str) > 1 && str[0] == '#' {
			numeric := str[1:]
			hex := len(numeric) > 0 && (numeric[0] == 'x' || numeric[0] == 'X')
			base := 10
			if hex {
				numeric = numeric[1:]
				base = 16
			}
			if code, err := strconv.ParseUint(numeric, base, 32); err == nil && code <= 0x10FFFF {
				return string(rune(code))
			}
			valid = false
		} else if ch, ok := xhtmlEntities[str]; ok {
			return string(ch)
		}
		if !valid {
			return result + ";"
		}
		result += ";"
	}

	return result
}

// lexJSX produces the next token under the JSX grammar: the boundary
// punctuators, string attribute values, and dash-friendly identifiers.
func (p *parser) lexJSX() rawToken {
	ch := p.scanner.at(p.scanner.index)

	switch ch {
	case '<', '>', '/', ':', '=', '{', '}':
		start := p.scanner.index
		p.scanner.index++
		return rawToken{
			Type:       TokenPunctuator,
			Value:      string(ch),
			LineNumber: p.scanner.lineNumber,
			LineStart:  p.scanner.lineStart,
			Start:      start,
			End:        p.scanner.index,
		}

	case '"', '\'':
		start := p.scanner.index
		quote := p.scanner.source[p.scanner.index]
		p.scanner.index++
		str := ""
		for !p.scanner.eof() {
			c := p.scanner.source[p.scanner.index]
			p.scanner.index++
			if c == quote {
				break
			} else if c == '&' {
				str += p.scanXHTMLEntity(quote)
			} else {
				str += string(c)
			}
		}
		return rawToken{
			Type:       TokenStringLiteral,
			Value:      str,
			LineNumber: p.scanner.lineNumber,
			LineStart:  p.scanner.lineStart,
			Start:      start,
			End:        p.scanner.index,
		}

	case '.':
		// Spread operator inside an attribute: {...object}
		if p.scanner.at(p.scanner.index+1) == '.' && p.scanner.at(p.scanner.index+2) == '.' {
			start := p.scanner.index
			p.scanner.index += 3
			return rawToken{
				Type:       TokenPunctuator,
				Value:      "...",
				LineNumber: p.scanner.lineNumber,
				LineStart:  p.scanner.lineStart,
				Start:      start,
				End:        p.scanner.index,
			}
		}
		// Separator of a member-expression element name: <a.b.c>
		start := p.scanner.index
		p.scanner.index++
		return rawToken{
			Type:       TokenPunctuator,
			Value:      ".",
			LineNumber: p.scanner.lineNumber,
			LineStart:  p.scanner.lineStart,
			Start:      start,
			End:        p.scanner.index,
		}

	case '`':
		// Only placeholder, since it will be rescanned as a real
		// assignment expression.
		return rawToken{
			Type:       TokenTemplate,
			LineNumber: p.scanner.lineNumber,
			LineStart:  p.scanner.lineStart,
			Start:      p.scanner.index,
			End:        p.scanner.index,
		}
	}

	if isIdentifierStart(ch) && ch != '\\' {
		start := p.scanner.index
		p.scanner.index++
		for !p.scanner.eof() {
			c := p.scanner.source[p.scanner.index]
			if (isIdentifierPart(c) && c != '\\') || c == '-' {
				p.scanner.index++
			} else {
				break
			}
		}
		return rawToken{
			Type:       TokenJSXIdentifier,
			Value:      p.scanner.text(start, p.scanner.index),
			LineNumber: p.scanner.lineNumber,
			LineStart:  p.scanner.lineStart,
			Start:      start,
			End:        p.scanner.index,
		}
	}

	p.scanner.throwUnexpectedToken(msgUnexpectedTokenIllegal)
	return rawToken{}
}

func (p *parser) nextJSXToken() rawToken {
	p.collectComments()

	p.startMarker = Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}
	token := p.lexJSX()
	p.lastMarker = Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}

	if p.config.Tokens {
		p.tokens = append(p.tokens, p.convertToken(token))
	}

	return token
}

// nextJSXText consumes raw text up to the next `{` or `<` boundary.
func (p *parser) nextJSXText() rawToken {
	p.startMarker = Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}

	start := p.scanner.index

	text := ""
	for !p.scanner.eof() {
		ch := p.scanner.source[p.scanner.index]
		if ch == '{' || ch == '<' {
			break
		}
		p.scanner.index++
		if ch == '&' {
			text += p.scanXHTMLEntity(0)
			continue
		}
		text += string(ch)
		if isLineTerminator(ch) {
			p.scanner.lineNumber++
			if ch == '\r' && p.scanner.at(p.scanner.index) == '\n' {
				p.scanner.index++
				text += "\n"
			}
			p.scanner.lineStart = p.scanner.index
		}
	}

	p.lastMarker = Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}

	token := rawToken{
		Type:       TokenJSXText,
		Value:      text,
		LineNumber: p.scanner.lineNumber,
		LineStart:  p.scanner.lineStart,
		Start:      start,
		End:        p.scanner.index,
	}

	if text != "" && p.config.Tokens {
		p.tokens = append(p.tokens, p.convertToken(token))
	}

	return token
}

func (p *parser) peekJSXToken() rawToken {
	state := p.scanner.saveState()
	p.scanner.scanComments()
	next := p.lexJSX()
	p.scanner.restoreState(state)
	return next
}

// expectJSX consumes the next JSX token when it is the given punctuator and
// reports an unexpected token otherwise.
func (p *parser) expectJSX(value string) {
	token := p.nextJSXToken()
	if token.Type != TokenPunctuator || token.Value != value {
		p.throwUnexpectedToken(&token, "")
	}
}

func (p *parser) matchJSX(value string) bool {
	next := p.peekJSXToken()
	return next.Type == TokenPunctuator && next.Value == value
}

// --- JSX grammar ---------------------------------------------------------

func (p *parser) parseJSXIdentifier() *JSXIdentifier {
	marker := p.createJSXNode()
	token := p.nextJSXToken()
	if token.Type != TokenJSXIdentifier {
		p.throwUnexpectedToken(&token, "")
	}
	return p.finalize(marker, newJSXIdentifier(token.Value)).(*JSXIdentifier)
}

func (p *parser) parseJSXElementName() Node {
	marker := p.createJSXNode()
	var elementName Node = p.parseJSXIdentifier()

	if p.matchJSX(":") {
		namespace := elementName.(*JSXIdentifier)
		p.expectJSX(":")
		name := p.parseJSXIdentifier()
		elementName = p.finalize(marker, newJSXNamespacedName(namespace, name))
	} else if p.matchJSX(".") {
		for p.matchJSX(".") {
			object := elementName
			p.expectJSX(".")
			property := p.parseJSXIdentifier()
			elementName = p.finalize(marker, newJSXMemberExpression(object, property))
		}
	}

	return elementName
}

func (p *parser) parseJSXAttributeName() Node {
	marker := p.createJSXNode()

	identifier := p.parseJSXIdentifier()
	if p.matchJSX(":") {
		namespace := identifier
		p.expectJSX(":")
		name := p.parseJSXIdentifier()
		return p.finalize(marker, newJSXNamespacedName(namespace, name))
	}

	return identifier
}

func (p *parser) parseJSXStringLiteralAttribute() Node {
	marker := p.createJSXNode()
	token := p.nextJSXToken()
	if token.Type != TokenStringLiteral {
		p.throwUnexpectedToken(&token, "")
	}
	return p.finalize(marker, newLiteral(token.Value, p.rawFor(token)))
}

func (p *parser) parseJSXExpressionAttribute() Node {
	marker := p.createJSXNode()

	p.expectJSX("{")
	p.finishJSX()

	if p.match("}") {
		p.tolerateError("JSX attributes must only be assigned a non-empty expression")
	}

	expression := p.parseAssignmentExpression()
	p.reenterJSX()

	return p.finalize(marker, newJSXExpressionContainer(expression))
}

func (p *parser) parseJSXAttributeValue() Node {
	if p.matchJSX("{") {
		return p.parseJSXExpressionAttribute()
	}
	if p.matchJSX("<") {
		return p.parseJSXElement()
	}
	return p.parseJSXStringLiteralAttribute()
}

func (p *parser) parseJSXNameValueAttribute() Node {
	marker := p.createJSXNode()
	name := p.parseJSXAttributeName()

	var value Node
	if p.matchJSX("=") {
		p.expectJSX("=")
		value = p.parseJSXAttributeValue()
	}

	return p.finalize(marker, newJSXAttribute(name, value))
}

func (p *parser) parseJSXSpreadAttribute() Node {
	marker := p.createJSXNode()
	p.expectJSX("{")
	p.expectJSX("...")

	p.finishJSX()
	argument := p.parseAssignmentExpression()
	p.reenterJSX()

	return p.finalize(marker, newJSXSpreadAttribute(argument))
}

func (p *parser) parseJSXAttributes() []Node {
	attributes := []Node{}

	for !p.matchJSX("/") && !p.matchJSX(">") {
		if p.matchJSX("{") {
			attributes = append(attributes, p.parseJSXSpreadAttribute())
		} else {
			attributes = append(attributes, p.parseJSXNameValueAttribute())
		}
	}

	return attributes
}

func (p *parser) parseJSXOpeningElement() *JSXOpeningElement {
	marker := p.createJSXNode()

	p.expectJSX("<")
	name := p.parseJSXElementName()
	attributes := p.parseJSXAttributes()
	selfClosing := p.matchJSX("/")
	if selfClosing {
		p.expectJSX("/")
	}
	p.expectJSX(">")

	return p.finalize(marker, newJSXOpeningElement(name, selfClosing, attributes)).(*JSXOpeningElement)
}

// parseJSXBoundaryElement parses either a closing element or a nested
// opening element at a `<` boundary.
func (p *parser) parseJSXBoundaryElement() Node {
	marker := p.createJSXNode()

	p.expectJSX("<")
	if p.matchJSX("/") {
		p.expectJSX("/")
		name := p.parseJSXElementName()
		p.expectJSX(">")
		return p.finalize(marker, newJSXClosingElement(name))
	}

	name := p.parseJSXElementName()
	attributes := p.parseJSXAttributes()
	selfClosing := p.matchJSX("/")
	if selfClosing {
		p.expectJSX("/")
	}
	p.expectJSX(">")

	return p.finalize(marker, newJSXOpeningElement(name, selfClosing, attributes))
}

func (p *parser) parseJSXEmptyExpression() Node {
	marker := p.createJSXChildNode()
	p.collectComments()
	p.lastMarker = Marker{
		Index:  p.scanner.index,
		Line:   p.scanner.lineNumber,
		Column: p.scanner.index - p.scanner.lineStart,
	}
	return p.finalize(marker, newJSXEmptyExpression())
}

func (p *parser) parseJSXExpressionContainer() Node {
	marker := p.createJSXNode()
	p.expectJSX("{")

	var expression Node
	if p.matchJSX("}") {
		expression = p.parseJSXEmptyExpression()
		p.expectJSX("}")
	} else {
		p.finishJSX()
		expression = p.parseAssignmentExpression()
		p.reenterJSX()
	}

	return p.finalize(marker, newJSXExpressionContainer(expression))
}

func (p *parser) parseJSXChildren() []Node {
	children := []Node{}

	for !p.scanner.eof() {
		marker := p.createJSXChildNode()
		token := p.nextJSXText()
		if token.Start < token.End {
			raw := p.getTokenRaw(token)
			child := p.finalize(marker, newJSXText(token.Value, raw))
			children = append(children, child)
		}
		if p.scanner.at(p.scanner.index) == '{' {
			container := p.parseJSXExpressionContainer()
			children = append(children, container)
		} else {
			break
		}
	}

	return children
}

func (p *parser) parseComplexJSXElement(el *metaJSXElement) *metaJSXElement {
	var stack []*metaJSXElement

	for !p.scanner.eof() {
		el.children = append(el.children, p.parseJSXChildren()...)
		marker := p.createJSXChildNode()
		element := p.parseJSXBoundaryElement()
		if opening, ok := element.(*JSXOpeningElement); ok {
			if opening.SelfClosing {
				child := p.finalize(marker, newJSXElement(opening, []Node{}, nil))
				el.children = append(el.children, child)
			} else {
				stack = append(stack, el)
				el = &metaJSXElement{marker: marker, opening: opening}
			}
		}
		if closing, ok := element.(*JSXClosingElement); ok {
			el.closing = closing
			open := getQualifiedElementName(el.opening.Name)
			close := getQualifiedElementName(closing.Name)
			if open != close {
				p.tolerateError("Expected corresponding JSX closing tag for %0", open)
			}
			if len(stack) > 0 {
				child := p.finalize(el.marker, newJSXElement(el.opening, el.children, el.closing))
				el = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				el.children = append(el.children, child)
			} else {
				break
			}
		}
	}

	return el
}

// getQualifiedElementName flattens a JSX element name for the tag-matching
// check.
func getQualifiedElementName(elementName Node) string {
	switch e := elementName.(type) {
	case *JSXIdentifier:
		return e.Name
	case *JSXNamespacedName:
		return getQualifiedElementName(e.Namespace) + ":" + getQualifiedElementName(e.Name)
	case *JSXMemberExpression:
		return getQualifiedElementName(e.Object) + "." + getQualifiedElementName(e.Property)
	}
	return ""
}

func (p *parser) parseJSXElement() Node {
	marker := p.createJSXNode()

	opening := p.parseJSXOpeningElement()
	children := []Node{}
	var closing Node

	if !opening.SelfClosing {
		el := p.parseComplexJSXElement(&metaJSXElement{marker: marker, opening: opening})
		children = el.children
		closing = el.closing
	}

	return p.finalize(marker, newJSXElement(opening, children, closing))
}

// parseJSXRoot is the entry from the core expression grammar when a `<` is
// seen in expression position with JSX enabled.
func (p *parser) parseJSXRoot() Node {
	// Pop the opening '<' of the tag added to the token collection.
	if p.config.Tokens {
		if n := len(p.tokens); n > 0 {
			p.tokens = p.tokens[:n-1]
		}
	}

	p.startJSX()
	element := p.parseJSXElement()
	p.finishJSX()

	return element
}
