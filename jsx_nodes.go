package esparse

// JSX token kinds, layered on top of the core scanner's set.
const (
	TokenJSXIdentifier TokenType = 100 + iota
	TokenJSXText
)

func init() {
	tokenName[TokenJSXIdentifier] = "JSXIdentifier"
	tokenName[TokenJSXText] = "JSXText"
}

type JSXIdentifier struct {
	baseNode
	Name string `json:"name"`
}

func newJSXIdentifier(name string) *JSXIdentifier {
	return &JSXIdentifier{baseNode: node(SyntaxJSXIdentifier), Name: name}
}

type JSXNamespacedName struct {
	baseNode
	Namespace *JSXIdentifier `json:"namespace"`
	Name      *JSXIdentifier `json:"name"`
}

func newJSXNamespacedName(namespace, name *JSXIdentifier) *JSXNamespacedName {
	return &JSXNamespacedName{baseNode: node(SyntaxJSXNamespacedName), Namespace: namespace, Name: name}
}

type JSXMemberExpression struct {
	baseNode
	Object   Node           `json:"object"`
	Property *JSXIdentifier `json:"property"`
}

func newJSXMemberExpression(object Node, property *JSXIdentifier) *JSXMemberExpression {
	return &JSXMemberExpression{baseNode: node(SyntaxJSXMemberExpression), Object: object, Property: property}
}

type JSXAttribute struct {
	baseNode
	Name  Node `json:"name"`
	Value Node `json:"value"`
}

func newJSXAttribute(name, value Node) *JSXAttribute {
	return &JSXAttribute{baseNode: node(SyntaxJSXAttribute), Name: name, Value: value}
}

type JSXSpreadAttribute struct {
	baseNode
	Argument Node `json:"argument"`
}

func newJSXSpreadAttribute(argument Node) *JSXSpreadAttribute {
	return &JSXSpreadAttribute{baseNode: node(SyntaxJSXSpreadAttribute), Argument: argument}
}

type JSXExpressionContainer struct {
	baseNode
	Expression Node `json:"expression"`
}

func newJSXExpressionContainer(expression Node) *JSXExpressionContainer {
	return &JSXExpressionContainer{baseNode: node(SyntaxJSXExpressionContainer), Expression: expression}
}

type JSXEmptyExpression struct {
	baseNode
}

func newJSXEmptyExpression() *JSXEmptyExpression {
	return &JSXEmptyExpression{baseNode: node(SyntaxJSXEmptyExpression)}
}

type JSXText struct {
	baseNode
	Value string `json:"value"`
	Raw   string `json:"raw,omitempty"`
}

func newJSXText(value, raw string) *JSXText {
	return &JSXText{baseNode: node(SyntaxJSXText), Value: value, Raw: raw}
}

type JSXOpeningElement struct {
	baseNode
	Name        Node   `json:"name"`
	SelfClosing bool   `json:"selfClosing"`
	Attributes  []Node `json:"attributes"`
}

func newJSXOpeningElement(name Node, selfClosing bool, attributes []Node) *JSXOpeningElement {
	return &JSXOpeningElement{baseNode: node(SyntaxJSXOpeningElement), Name: name, SelfClosing: selfClosing, Attributes: attributes}
}

type JSXClosingElement struct {
	baseNode
	Name Node `json:"name"`
}

func newJSXClosingElement(name Node) *JSXClosingElement {
	return &JSXClosingElement{baseNode: node(SyntaxJSXClosingElement), Name: name}
}

type JSXElement struct {
	baseNode
	OpeningElement *JSXOpeningElement `json:"openingElement"`
	Children       []Node             `json:"children"`
	ClosingElement Node               `json:"closingElement"`
}

func newJSXElement(openingElement *JSXOpeningElement, children []Node, closingElement Node) *JSXElement {
	return &JSXElement{
		baseNode:       node(SyntaxJSXElement),
		OpeningElement: openingElement,
		Children:       children,
		ClosingElement: closingElement,
	}
}
