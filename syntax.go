package esparse

// AST node type tags, one per ESTree variant the parser produces.
const (
	SyntaxArrayExpression         = "ArrayExpression"
	SyntaxArrayPattern            = "ArrayPattern"
	SyntaxArrowFunctionExpression = "ArrowFunctionExpression"
	SyntaxAssignmentExpression    = "AssignmentExpression"
	SyntaxAssignmentPattern       = "AssignmentPattern"
	SyntaxAwaitExpression         = "AwaitExpression"
	SyntaxBinaryExpression        = "BinaryExpression"
	SyntaxBlockStatement          = "BlockStatement"
	SyntaxBreakStatement          = "BreakStatement"
	SyntaxCallExpression          = "CallExpression"
	SyntaxCatchClause             = "CatchClause"
	SyntaxClassBody               = "ClassBody"
	SyntaxClassDeclaration        = "ClassDeclaration"
	SyntaxClassExpression         = "ClassExpression"
	SyntaxClassProperty           = "ClassProperty"
	SyntaxConditionalExpression   = "ConditionalExpression"
	SyntaxContinueStatement       = "ContinueStatement"
	SyntaxDebuggerStatement       = "DebuggerStatement"
	SyntaxDecorator               = "Decorator"
	SyntaxDoWhileStatement        = "DoWhileStatement"
	SyntaxEmptyStatement          = "EmptyStatement"
	SyntaxExportAllDeclaration    = "ExportAllDeclaration"
	SyntaxExportDefaultDeclaration = "ExportDefaultDeclaration"
	SyntaxExportNamedDeclaration  = "ExportNamedDeclaration"
	SyntaxExportSpecifier         = "ExportSpecifier"
	SyntaxExpressionStatement     = "ExpressionStatement"
	SyntaxForInStatement          = "ForInStatement"
	SyntaxForOfStatement          = "ForOfStatement"
	SyntaxForStatement            = "ForStatement"
	SyntaxFunctionDeclaration     = "FunctionDeclaration"
	SyntaxFunctionExpression      = "FunctionExpression"
	SyntaxIdentifier              = "Identifier"
	SyntaxIfStatement             = "IfStatement"
	SyntaxImport                  = "Import"
	SyntaxImportDeclaration       = "ImportDeclaration"
	SyntaxImportDefaultSpecifier  = "ImportDefaultSpecifier"
	SyntaxImportNamespaceSpecifier = "ImportNamespaceSpecifier"
	SyntaxImportSpecifier         = "ImportSpecifier"
	SyntaxLabeledStatement        = "LabeledStatement"
	SyntaxLiteral                 = "Literal"
	SyntaxLogicalExpression       = "LogicalExpression"
	SyntaxMemberExpression        = "MemberExpression"
	SyntaxMetaProperty            = "MetaProperty"
	SyntaxMethodDefinition        = "MethodDefinition"
	SyntaxNewExpression           = "NewExpression"
	SyntaxObjectExpression        = "ObjectExpression"
	SyntaxObjectPattern           = "ObjectPattern"
	SyntaxProgram                 = "Program"
	SyntaxProperty                = "Property"
	SyntaxRestElement             = "RestElement"
	SyntaxReturnStatement         = "ReturnStatement"
	SyntaxSequenceExpression      = "SequenceExpression"
	SyntaxSpreadElement           = "SpreadElement"
	SyntaxSuper                   = "Super"
	SyntaxSwitchCase              = "SwitchCase"
	SyntaxSwitchStatement         = "SwitchStatement"
	SyntaxTaggedTemplateExpression = "TaggedTemplateExpression"
	SyntaxTemplateElement         = "TemplateElement"
	SyntaxTemplateLiteral         = "TemplateLiteral"
	SyntaxThisExpression          = "ThisExpression"
	SyntaxThrowStatement          = "ThrowStatement"
	SyntaxTryStatement            = "TryStatement"
	SyntaxUnaryExpression         = "UnaryExpression"
	SyntaxUpdateExpression        = "UpdateExpression"
	SyntaxVariableDeclaration     = "VariableDeclaration"
	SyntaxVariableDeclarator      = "VariableDeclarator"
	SyntaxWhileStatement          = "WhileStatement"
	SyntaxWithStatement           = "WithStatement"
	SyntaxYieldExpression         = "YieldExpression"

	SyntaxJSXAttribute            = "JSXAttribute"
	SyntaxJSXClosingElement       = "JSXClosingElement"
	SyntaxJSXElement              = "JSXElement"
	SyntaxJSXEmptyExpression      = "JSXEmptyExpression"
	SyntaxJSXExpressionContainer  = "JSXExpressionContainer"
	SyntaxJSXIdentifier           = "JSXIdentifier"
	SyntaxJSXMemberExpression     = "JSXMemberExpression"
	SyntaxJSXNamespacedName       = "JSXNamespacedName"
	SyntaxJSXOpeningElement       = "JSXOpeningElement"
	SyntaxJSXSpreadAttribute      = "JSXSpreadAttribute"
	SyntaxJSXText                 = "JSXText"
)
