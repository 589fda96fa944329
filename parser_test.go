package esparse

import (
	"encoding/json"
	"os"
	"testing"

	. "gopkg.in/check.v1"
)

func writeFile(c *C, path, content string) {
	c.Assert(os.WriteFile(path, []byte(content), 0o644), IsNil)
}

// Hook up gocheck into the "go test" runner.

func Test(t *testing.T) { TestingT(t) }

type ParserSuite struct{}

var _ = Suite(&ParserSuite{})

func (s *ParserSuite) TestVariableDeclaration(c *C) {
	program, err := Parse(`var $ = "Hello!"`, &Options{Raw: true}, nil)
	c.Assert(err, IsNil)
	c.Assert(program.SourceType, Equals, "script")
	c.Assert(program.Body, HasLen, 1)

	decl, ok := program.Body[0].(*VariableDeclaration)
	c.Assert(ok, Equals, true)
	c.Check(decl.Kind, Equals, "var")
	c.Assert(decl.Declarations, HasLen, 1)

	d := decl.Declarations[0].(*VariableDeclarator)
	c.Check(d.Id.(*Identifier).Name, Equals, "$")

	literal := d.Init.(*Literal)
	c.Check(literal.Value, Equals, "Hello!")
	c.Check(literal.Raw, Equals, `"Hello!"`)
}

func (s *ParserSuite) TestDivisionAfterIdentifier(c *C) {
	// A leading identifier forbids a regex, so both slashes divide.
	program, err := Parse(`a/b/g`, nil, nil)
	c.Assert(err, IsNil)

	expr := program.Body[0].(*ExpressionStatement).Expression.(*BinaryExpression)
	c.Check(expr.Operator, Equals, "/")
	c.Check(expr.Right.(*Identifier).Name, Equals, "g")

	inner := expr.Left.(*BinaryExpression)
	c.Check(inner.Operator, Equals, "/")
	c.Check(inner.Left.(*Identifier).Name, Equals, "a")
	c.Check(inner.Right.(*Identifier).Name, Equals, "b")
}

func (s *ParserSuite) TestRegexLiteral(c *C) {
	program, err := Parse(`/a/g`, nil, nil)
	c.Assert(err, IsNil)

	literal := program.Body[0].(*ExpressionStatement).Expression.(*Literal)
	c.Assert(literal.Regex, NotNil)
	c.Check(literal.Regex.Pattern, Equals, "a")
	c.Check(literal.Regex.Flags, Equals, "g")
	c.Check(literal.Value, IsNil)
}

func (s *ParserSuite) TestArrowFunction(c *C) {
	program, err := Parse(`(a, b) => a + b`, nil, nil)
	c.Assert(err, IsNil)

	arrow := program.Body[0].(*ExpressionStatement).Expression.(*ArrowFunctionExpression)
	c.Assert(arrow.Params, HasLen, 2)
	c.Check(arrow.Params[0].(*Identifier).Name, Equals, "a")
	c.Check(arrow.Params[1].(*Identifier).Name, Equals, "b")
	c.Check(arrow.Expression, Equals, true)
	c.Check(arrow.Async, Equals, false)

	body := arrow.Body.(*BinaryExpression)
	c.Check(body.Operator, Equals, "+")
}

func (s *ParserSuite) TestAsyncFunctionAwait(c *C) {
	program, err := Parse(`async function f(){ await x; }`, nil, nil)
	c.Assert(err, IsNil)

	fn := program.Body[0].(*FunctionDeclaration)
	c.Check(fn.Async, Equals, true)
	c.Check(fn.Generator, Equals, false)
	c.Check(fn.Id.(*Identifier).Name, Equals, "f")

	body := fn.Body.(*BlockStatement)
	await := body.Body[0].(*ExpressionStatement).Expression.(*AwaitExpression)
	c.Check(await.Argument.(*Identifier).Name, Equals, "x")
}

func (s *ParserSuite) TestAsyncArrow(c *C) {
	program, err := Parse(`async (a) => await a`, nil, nil)
	c.Assert(err, IsNil)

	arrow := program.Body[0].(*ExpressionStatement).Expression.(*ArrowFunctionExpression)
	c.Check(arrow.Async, Equals, true)
	c.Assert(arrow.Params, HasLen, 1)
	_, isAwait := arrow.Body.(*AwaitExpression)
	c.Check(isAwait, Equals, true)
}

func (s *ParserSuite) TestImportRejectedInScript(c *C) {
	_, err := Parse(`import x from "m"`, &Options{SourceType: "script"}, nil)
	c.Assert(err, NotNil)

	syntaxErr, ok := err.(*Error)
	c.Assert(ok, Equals, true)
	c.Check(syntaxErr.Name, Equals, "SyntaxError")
}

func (s *ParserSuite) TestImportDeclarationInModule(c *C) {
	program, err := Parse(`import x from "m"`, &Options{SourceType: "module"}, nil)
	c.Assert(err, IsNil)
	c.Check(program.SourceType, Equals, "module")

	decl := program.Body[0].(*ImportDeclaration)
	c.Assert(decl.Specifiers, HasLen, 1)
	spec := decl.Specifiers[0].(*ImportDefaultSpecifier)
	c.Check(spec.Local.Name, Equals, "x")
	c.Check(decl.Source.Value, Equals, "m")
}

func (s *ParserSuite) TestNamedAndNamespaceImports(c *C) {
	program, err := ParseModule(`import d, { a, b as c } from "m"; import * as ns from "n";`, nil)
	c.Assert(err, IsNil)

	first := program.Body[0].(*ImportDeclaration)
	c.Assert(first.Specifiers, HasLen, 3)
	c.Check(first.Specifiers[0].(*ImportDefaultSpecifier).Local.Name, Equals, "d")
	c.Check(first.Specifiers[1].(*ImportSpecifier).Imported.Name, Equals, "a")
	c.Check(first.Specifiers[2].(*ImportSpecifier).Local.Name, Equals, "c")

	second := program.Body[1].(*ImportDeclaration)
	c.Check(second.Specifiers[0].(*ImportNamespaceSpecifier).Local.Name, Equals, "ns")
}

func (s *ParserSuite) TestExportDeclarations(c *C) {
	program, err := ParseModule(`export default 42; export const a = 1; export { a as b } from "m"; export * from "n";`, nil)
	c.Assert(err, IsNil)
	c.Assert(program.Body, HasLen, 4)

	def := program.Body[0].(*ExportDefaultDeclaration)
	c.Check(def.Declaration.(*Literal).Value, Equals, 42.0)

	named := program.Body[1].(*ExportNamedDeclaration)
	c.Check(named.Declaration.(*VariableDeclaration).Kind, Equals, "const")

	reexport := program.Body[2].(*ExportNamedDeclaration)
	c.Assert(reexport.Specifiers, HasLen, 1)
	c.Check(reexport.Specifiers[0].(*ExportSpecifier).Exported.Name, Equals, "b")
	c.Check(reexport.Source.Value, Equals, "m")

	all := program.Body[3].(*ExportAllDeclaration)
	c.Check(all.Source.Value, Equals, "n")
}

func (s *ParserSuite) TestDuplicateExport(c *C) {
	_, err := ParseModule(`export default 1; export default 2;`, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestScriptAndModuleAgreeWithoutModuleSyntax(c *C) {
	// For input without import/export the two entry points must produce
	// identical trees modulo sourceType.
	code := `var a = [1, 2, 3]; function f(x) { return x * 2; }`

	script, err := ParseScript(code, nil)
	c.Assert(err, IsNil)
	module, err := ParseModule(code, nil)
	c.Assert(err, IsNil)

	scriptBody, err := json.Marshal(script.Body)
	c.Assert(err, IsNil)
	moduleBody, err := json.Marshal(module.Body)
	c.Assert(err, IsNil)
	c.Check(string(scriptBody), Equals, string(moduleBody))

	c.Check(script.SourceType, Equals, "script")
	c.Check(module.SourceType, Equals, "module")
}

func (s *ParserSuite) TestTemplateLiteral(c *C) {
	program, err := Parse("tag`a${b}c`", nil, nil)
	c.Assert(err, IsNil)

	tagged := program.Body[0].(*ExpressionStatement).Expression.(*TaggedTemplateExpression)
	c.Check(tagged.Tag.(*Identifier).Name, Equals, "tag")

	quasi := tagged.Quasi
	c.Assert(quasi.Quasis, HasLen, 2)
	c.Check(*quasi.Quasis[0].Value.Cooked, Equals, "a")
	c.Check(quasi.Quasis[0].Tail, Equals, false)
	c.Check(*quasi.Quasis[1].Value.Cooked, Equals, "c")
	c.Check(quasi.Quasis[1].Tail, Equals, true)
	c.Assert(quasi.Expressions, HasLen, 1)
	c.Check(quasi.Expressions[0].(*Identifier).Name, Equals, "b")
}

func (s *ParserSuite) TestTemplateInvalidEscapeCooksToNil(c *C) {
	program, err := Parse("tag`\\u{110000}${x}`", nil, nil)
	c.Assert(err, NotNil)
	c.Check(program, IsNil)

	// A \x escape without two hex digits cooks to nil but keeps the raw
	// text for the tag.
	program, err = Parse("tag`\\xZZ`", nil, nil)
	c.Assert(err, IsNil)
	quasi := program.Body[0].(*ExpressionStatement).Expression.(*TaggedTemplateExpression).Quasi
	c.Check(quasi.Quasis[0].Value.Cooked, IsNil)
	c.Check(quasi.Quasis[0].Value.Raw, Equals, `\xZZ`)
}

func (s *ParserSuite) TestObjectDestructuring(c *C) {
	program, err := Parse(`var { a, b: { c } = {}, ...rest } = obj;`, nil, nil)
	c.Assert(err, IsNil)

	d := program.Body[0].(*VariableDeclaration).Declarations[0].(*VariableDeclarator)
	pattern := d.Id.(*ObjectPattern)
	c.Assert(pattern.Properties, HasLen, 3)

	shorthand := pattern.Properties[0].(*Property)
	c.Check(shorthand.Shorthand, Equals, true)

	nested := pattern.Properties[1].(*Property)
	def := nested.Value.(*AssignmentPattern)
	_, isObject := def.Left.(*ObjectPattern)
	c.Check(isObject, Equals, true)

	rest := pattern.Properties[2].(*RestElement)
	c.Check(rest.Argument.(*Identifier).Name, Equals, "rest")
}

func (s *ParserSuite) TestArrayDestructuringWithHoles(c *C) {
	program, err := Parse(`var [a, , b = 1, ...c] = xs;`, nil, nil)
	c.Assert(err, IsNil)

	pattern := program.Body[0].(*VariableDeclaration).Declarations[0].(*VariableDeclarator).Id.(*ArrayPattern)
	c.Assert(pattern.Elements, HasLen, 4)
	c.Check(pattern.Elements[1], IsNil)
	_, isDefault := pattern.Elements[2].(*AssignmentPattern)
	c.Check(isDefault, Equals, true)
	_, isRest := pattern.Elements[3].(*RestElement)
	c.Check(isRest, Equals, true)
}

func (s *ParserSuite) TestAssignmentPatternReinterpretation(c *C) {
	program, err := Parse(`[a, b] = [b, a]`, nil, nil)
	c.Assert(err, IsNil)

	assign := program.Body[0].(*ExpressionStatement).Expression.(*AssignmentExpression)
	_, isPattern := assign.Left.(*ArrayPattern)
	c.Check(isPattern, Equals, true)
	_, isArray := assign.Right.(*ArrayExpression)
	c.Check(isArray, Equals, true)
}

func (s *ParserSuite) TestClassDeclaration(c *C) {
	program, err := Parse(`class A extends B {
		constructor() { super(); }
		static create() { return new A(); }
		get value() { return 1; }
		*gen() { yield 1; }
	}`, nil, nil)
	c.Assert(err, IsNil)

	class := program.Body[0].(*ClassDeclaration)
	c.Check(class.Id.(*Identifier).Name, Equals, "A")
	c.Check(class.SuperClass.(*Identifier).Name, Equals, "B")

	body := class.Body.Body
	c.Assert(body, HasLen, 4)
	c.Check(body[0].(*MethodDefinition).Kind, Equals, "constructor")
	c.Check(body[1].(*MethodDefinition).Static, Equals, true)
	c.Check(body[2].(*MethodDefinition).Kind, Equals, "get")
	c.Check(body[3].(*MethodDefinition).Value.(*FunctionExpression).Generator, Equals, true)
}

func (s *ParserSuite) TestDuplicateConstructorRejected(c *C) {
	_, err := Parse(`class A { constructor() {} constructor() {} }`, nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestClassFieldsAndDecorators(c *C) {
	program, err := Parse(`@frozen class A { count = 0; static kind = "a"; }`, nil, nil)
	c.Assert(err, IsNil)

	class := program.Body[0].(*ClassDeclaration)
	c.Assert(class.Decorators, HasLen, 1)
	c.Check(class.Decorators[0].Expression.(*Identifier).Name, Equals, "frozen")

	field := class.Body.Body[0].(*ClassProperty)
	c.Check(field.Key.(*Identifier).Name, Equals, "count")
	c.Check(field.Value.(*Literal).Value, Equals, 0.0)
	c.Check(field.Static, Equals, false)

	static := class.Body.Body[1].(*ClassProperty)
	c.Check(static.Static, Equals, true)
}

func (s *ParserSuite) TestGeneratorYield(c *C) {
	program, err := Parse(`function* g() { yield* inner(); yield; }`, nil, nil)
	c.Assert(err, IsNil)

	fn := program.Body[0].(*FunctionDeclaration)
	c.Check(fn.Generator, Equals, true)

	body := fn.Body.(*BlockStatement).Body
	first := body[0].(*ExpressionStatement).Expression.(*YieldExpression)
	c.Check(first.Delegate, Equals, true)
	second := body[1].(*ExpressionStatement).Expression.(*YieldExpression)
	c.Check(second.Delegate, Equals, false)
	c.Check(second.Argument, IsNil)
}

func (s *ParserSuite) TestForOfAndForIn(c *C) {
	program, err := Parse(`for (const x of xs) {} for (var k in o) {}`, nil, nil)
	c.Assert(err, IsNil)

	forOf := program.Body[0].(*ForOfStatement)
	c.Check(forOf.Left.(*VariableDeclaration).Kind, Equals, "const")
	c.Check(forOf.Right.(*Identifier).Name, Equals, "xs")

	forIn := program.Body[1].(*ForInStatement)
	c.Check(forIn.Left.(*VariableDeclaration).Kind, Equals, "var")
}

func (s *ParserSuite) TestInOperatorDisabledInForHeader(c *C) {
	// `in` must bind as the for-in separator, not as a relational operator.
	program, err := Parse(`for (x in o) {}`, nil, nil)
	c.Assert(err, IsNil)
	_, isForIn := program.Body[0].(*ForInStatement)
	c.Check(isForIn, Equals, true)

	program, err = Parse(`x = "a" in o`, nil, nil)
	c.Assert(err, IsNil)
	assign := program.Body[0].(*ExpressionStatement).Expression.(*AssignmentExpression)
	binary := assign.Right.(*BinaryExpression)
	c.Check(binary.Operator, Equals, "in")
}

func (s *ParserSuite) TestLabelledBreakContinue(c *C) {
	program, err := Parse(`outer: for (;;) { for (;;) { continue outer; } break outer; }`, nil, nil)
	c.Assert(err, IsNil)

	labeled := program.Body[0].(*LabeledStatement)
	c.Check(labeled.Label.Name, Equals, "outer")
}

func (s *ParserSuite) TestUndefinedLabelRejected(c *C) {
	_, err := Parse(`for (;;) { break missing; }`, nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestBreakOutsideIterationRejected(c *C) {
	_, err := Parse(`break;`, nil, nil)
	c.Assert(err, NotNil)
	_, err = Parse(`continue;`, nil, nil)
	c.Assert(err, NotNil)
	_, err = Parse(`return 1;`, nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestSwitchStatement(c *C) {
	program, err := Parse(`switch (x) { case 1: a(); break; default: b(); }`, nil, nil)
	c.Assert(err, IsNil)

	sw := program.Body[0].(*SwitchStatement)
	c.Assert(sw.Cases, HasLen, 2)
	c.Check(sw.Cases[0].Test.(*Literal).Value, Equals, 1.0)
	c.Check(sw.Cases[1].Test, IsNil)
}

func (s *ParserSuite) TestMultipleDefaultsRejected(c *C) {
	_, err := Parse(`switch (x) { default: a(); default: b(); }`, nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestTryCatchFinally(c *C) {
	program, err := Parse(`try { a(); } catch (e) { b(); } finally { c(); }`, nil, nil)
	c.Assert(err, IsNil)

	try := program.Body[0].(*TryStatement)
	c.Check(try.Handler.Param.(*Identifier).Name, Equals, "e")
	c.Assert(try.Finalizer, NotNil)
}

func (s *ParserSuite) TestTryWithoutHandlerRejected(c *C) {
	_, err := Parse(`try { a(); }`, nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestConditionalAndSequence(c *C) {
	program, err := Parse(`a ? b : c, d`, nil, nil)
	c.Assert(err, IsNil)

	seq := program.Body[0].(*ExpressionStatement).Expression.(*SequenceExpression)
	c.Assert(seq.Expressions, HasLen, 2)
	_, isConditional := seq.Expressions[0].(*ConditionalExpression)
	c.Check(isConditional, Equals, true)
}

func (s *ParserSuite) TestOperatorPrecedence(c *C) {
	program, err := Parse(`1 + 2 * 3 === 7 && ok`, nil, nil)
	c.Assert(err, IsNil)

	logical := program.Body[0].(*ExpressionStatement).Expression.(*LogicalExpression)
	c.Check(logical.Operator, Equals, "&&")

	eq := logical.Left.(*BinaryExpression)
	c.Check(eq.Operator, Equals, "===")
	add := eq.Left.(*BinaryExpression)
	c.Check(add.Operator, Equals, "+")
	mul := add.Right.(*BinaryExpression)
	c.Check(mul.Operator, Equals, "*")
}

func (s *ParserSuite) TestExponentiationRightAssociative(c *C) {
	program, err := Parse(`a ** b ** c`, nil, nil)
	c.Assert(err, IsNil)

	outer := program.Body[0].(*ExpressionStatement).Expression.(*BinaryExpression)
	c.Check(outer.Operator, Equals, "**")
	c.Check(outer.Left.(*Identifier).Name, Equals, "a")
	inner := outer.Right.(*BinaryExpression)
	c.Check(inner.Operator, Equals, "**")
}

func (s *ParserSuite) TestNewAndMetaProperty(c *C) {
	program, err := Parse(`new A(1); function f() { return new.target; }`, nil, nil)
	c.Assert(err, IsNil)

	call := program.Body[0].(*ExpressionStatement).Expression.(*NewExpression)
	c.Check(call.Callee.(*Identifier).Name, Equals, "A")
	c.Assert(call.Arguments, HasLen, 1)

	fn := program.Body[1].(*FunctionDeclaration)
	ret := fn.Body.(*BlockStatement).Body[0].(*ReturnStatement)
	meta := ret.Argument.(*MetaProperty)
	c.Check(meta.Meta.Name, Equals, "new")
	c.Check(meta.Property.Name, Equals, "target")
}

func (s *ParserSuite) TestOptionalChaining(c *C) {
	program, err := Parse(`a?.b?.[c]?.()`, nil, nil)
	c.Assert(err, IsNil)

	call := program.Body[0].(*ExpressionStatement).Expression.(*CallExpression)
	c.Check(call.Optional, Equals, true)
	computed := call.Callee.(*MemberExpression)
	c.Check(computed.Computed, Equals, true)
	c.Check(computed.Optional, Equals, true)
	static := computed.Object.(*MemberExpression)
	c.Check(static.Optional, Equals, true)
}

func (s *ParserSuite) TestDirectivePrologue(c *C) {
	program, err := Parse("\"use strict\";\nvar x = 1;", nil, nil)
	c.Assert(err, IsNil)

	directive := program.Body[0].(*ExpressionStatement)
	c.Check(directive.Directive, Equals, "use strict")
}

func (s *ParserSuite) TestStrictModeOctalRejected(c *C) {
	_, err := Parse("\"use strict\"; var n = 017;", nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestStrictModeWithRejected(c *C) {
	_, err := Parse("\"use strict\"; with (x) {}", nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestStrictModeDuplicateParamsRejected(c *C) {
	_, err := Parse("\"use strict\"; function f(a, a) {}", nil, nil)
	c.Assert(err, NotNil)

	// Legal outside strict mode.
	_, err = Parse("function f(a, a) {}", nil, nil)
	c.Assert(err, IsNil)
}

func (s *ParserSuite) TestStrictModeDeleteRejected(c *C) {
	_, err := Parse("\"use strict\"; delete x;", nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestStrictModeEvalBindingRejected(c *C) {
	_, err := Parse("\"use strict\"; var eval = 1;", nil, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestModuleImpliesStrict(c *C) {
	_, err := ParseModule(`with (x) {}`, nil)
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestRangesCoverTokens(c *C) {
	code := `var answer = 6 * 7;`
	program, err := Parse(code, &Options{Range: true, Tokens: true}, nil)
	c.Assert(err, IsNil)

	// Node ranges nest inside the source.
	c.Assert(program.Range, NotNil)
	c.Check(program.Range[0], Equals, 0)
	c.Check(program.Range[1], Equals, len(code))

	// Token ranges are ordered, disjoint and echo the source text.
	prevEnd := 0
	for _, token := range program.Tokens {
		c.Assert(token.Range, NotNil)
		c.Check(token.Range[0] >= prevEnd, Equals, true)
		c.Check(token.Range[1] > token.Range[0], Equals, true)
		c.Check(code[token.Range[0]:token.Range[1]], Equals, token.Value)
		prevEnd = token.Range[1]
	}
}

func (s *ParserSuite) TestLocTracksLines(c *C) {
	program, err := Parse("var a;\nvar b;", &Options{Loc: true, Source: "test.js"}, nil)
	c.Assert(err, IsNil)

	first := program.Body[0].(*VariableDeclaration)
	c.Check(first.Loc.Start.Line, Equals, 1)
	c.Check(first.Loc.Source, Equals, "test.js")

	second := program.Body[1].(*VariableDeclaration)
	c.Check(second.Loc.Start.Line, Equals, 2)
	c.Check(second.Loc.Start.Column, Equals, 0)
}

func (s *ParserSuite) TestDelegateSeesEveryNode(c *C) {
	var count int
	var last interface{}
	_, err := Parse(`f(1)`, nil, func(n interface{}, metadata NodeMetadata) {
		count++
		last = n
		c.Check(metadata.End.Offset >= metadata.Start.Offset, Equals, true)
	})
	c.Assert(err, IsNil)
	// Identifier, Literal, CallExpression, ExpressionStatement, Program.
	c.Check(count, Equals, 5)
	_, isProgram := last.(*Program)
	c.Check(isProgram, Equals, true)
}

func (s *ParserSuite) TestNumericLiteralForms(c *C) {
	program, err := Parse(`[0x1f, 0b101, 0o17, 3.14e2, .5]`, nil, nil)
	c.Assert(err, IsNil)

	elements := program.Body[0].(*ExpressionStatement).Expression.(*ArrayExpression).Elements
	values := []float64{31, 5, 15, 314, 0.5}
	for i, want := range values {
		c.Check(elements[i].(*Literal).Value, Equals, want)
	}
}

func (s *ParserSuite) TestParseFiles(c *C) {
	dir := c.MkDir()
	good := dir + "/good.js"
	bad := dir + "/bad.js"
	writeFile(c, good, "var ok = true;")
	writeFile(c, bad, "var broken = ;")

	results := ParseFiles([]string{good, bad}, nil)
	c.Assert(results, HasLen, 2)
	c.Check(results[0].Err, IsNil)
	c.Check(results[0].Program.Body, HasLen, 1)
	c.Check(results[1].Err, NotNil)
}
