package esparse

import (
	. "gopkg.in/check.v1"
)

type JSXSuite struct{}

var _ = Suite(&JSXSuite{})

func jsxParse(c *C, code string) *Program {
	program, err := Parse(code, &Options{JSX: true}, nil)
	c.Assert(err, IsNil)
	return program
}

func (s *JSXSuite) TestSimpleElement(c *C) {
	program := jsxParse(c, `var x = <div></div>;`)

	init := program.Body[0].(*VariableDeclaration).Declarations[0].(*VariableDeclarator).Init
	element := init.(*JSXElement)
	c.Check(element.OpeningElement.Name.(*JSXIdentifier).Name, Equals, "div")
	c.Check(element.OpeningElement.SelfClosing, Equals, false)
	c.Assert(element.ClosingElement, NotNil)
	c.Check(element.Children, HasLen, 0)
}

func (s *JSXSuite) TestSelfClosingElement(c *C) {
	program := jsxParse(c, `<br />`)

	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	c.Check(element.OpeningElement.SelfClosing, Equals, true)
	c.Check(element.ClosingElement, IsNil)
}

func (s *JSXSuite) TestAttributes(c *C) {
	program := jsxParse(c, `<a href="https://example.com" data-active hidden={flag} {...rest} />`)

	attrs := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement).OpeningElement.Attributes
	c.Assert(attrs, HasLen, 4)

	href := attrs[0].(*JSXAttribute)
	c.Check(href.Name.(*JSXIdentifier).Name, Equals, "href")
	c.Check(href.Value.(*Literal).Value, Equals, "https://example.com")

	// Dashes are legal in JSX identifiers.
	dataActive := attrs[1].(*JSXAttribute)
	c.Check(dataActive.Name.(*JSXIdentifier).Name, Equals, "data-active")
	c.Check(dataActive.Value, IsNil)

	hidden := attrs[2].(*JSXAttribute)
	container := hidden.Value.(*JSXExpressionContainer)
	c.Check(container.Expression.(*Identifier).Name, Equals, "flag")

	spread := attrs[3].(*JSXSpreadAttribute)
	c.Check(spread.Argument.(*Identifier).Name, Equals, "rest")
}

func (s *JSXSuite) TestTextAndExpressionChildren(c *C) {
	program := jsxParse(c, `<p>Hello {name}!</p>`)

	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	c.Assert(element.Children, HasLen, 3)

	text := element.Children[0].(*JSXText)
	c.Check(text.Value, Equals, "Hello ")

	container := element.Children[1].(*JSXExpressionContainer)
	c.Check(container.Expression.(*Identifier).Name, Equals, "name")

	bang := element.Children[2].(*JSXText)
	c.Check(bang.Value, Equals, "!")
}

func (s *JSXSuite) TestNestedElements(c *C) {
	program := jsxParse(c, `<ul><li>one</li><li>two</li></ul>`)

	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	var items []*JSXElement
	for _, child := range element.Children {
		if li, ok := child.(*JSXElement); ok {
			items = append(items, li)
		}
	}
	c.Assert(items, HasLen, 2)
	c.Check(items[0].Children[0].(*JSXText).Value, Equals, "one")
	c.Check(items[1].Children[0].(*JSXText).Value, Equals, "two")
}

func (s *JSXSuite) TestNamespacedAndMemberNames(c *C) {
	program := jsxParse(c, `<svg:rect />`)
	name := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement).OpeningElement.Name.(*JSXNamespacedName)
	c.Check(name.Namespace.Name, Equals, "svg")
	c.Check(name.Name.Name, Equals, "rect")

	program = jsxParse(c, `<UI.Button.Primary />`)
	member := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement).OpeningElement.Name.(*JSXMemberExpression)
	c.Check(member.Property.Name, Equals, "Primary")
	inner := member.Object.(*JSXMemberExpression)
	c.Check(inner.Object.(*JSXIdentifier).Name, Equals, "UI")
	c.Check(inner.Property.Name, Equals, "Button")
}

func (s *JSXSuite) TestEntityDecoding(c *C) {
	program := jsxParse(c, `<p>&amp;&hellip;&#65;&#x42;&unknown;</p>`)

	text := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement).Children[0].(*JSXText)
	c.Check(text.Value, Equals, "&…AB&unknown;")
}

func (s *JSXSuite) TestEmptyExpressionContainer(c *C) {
	program := jsxParse(c, `<div>{/* placeholder */}</div>`)

	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	container := element.Children[0].(*JSXExpressionContainer)
	_, isEmpty := container.Expression.(*JSXEmptyExpression)
	c.Check(isEmpty, Equals, true)
}

func (s *JSXSuite) TestMismatchedClosingTagRejected(c *C) {
	_, err := Parse(`<a></b>`, &Options{JSX: true}, nil)
	c.Assert(err, NotNil)
}

func (s *JSXSuite) TestMismatchedClosingTagTolerated(c *C) {
	program, err := Parse(`<a></b>`, &Options{JSX: true, Tolerant: true}, nil)
	c.Assert(err, IsNil)
	c.Assert(program.Errors, HasLen, 1)
}

func (s *JSXSuite) TestJSXDisabledByDefault(c *C) {
	_, err := Parse(`<div></div>`, nil, nil)
	c.Assert(err, NotNil)
}

func (s *JSXSuite) TestElementAsArrowBody(c *C) {
	program := jsxParse(c, `const render = props => <span>{props.label}</span>;`)

	arrow := program.Body[0].(*VariableDeclaration).Declarations[0].(*VariableDeclarator).Init.(*ArrowFunctionExpression)
	element := arrow.Body.(*JSXElement)
	c.Check(element.OpeningElement.Name.(*JSXIdentifier).Name, Equals, "span")
}
