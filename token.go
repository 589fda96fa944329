package esparse

// TokenType classifies the lexical elements produced by the scanner.
type TokenType int

const (
	// TokenBooleanLiteral is `true` or `false`.
	TokenBooleanLiteral TokenType = iota + 1

	// TokenEOF marks the end of the source.
	TokenEOF

	// TokenIdentifier is a non-reserved IdentifierName.
	TokenIdentifier

	// TokenKeyword is a reserved word in the current context.
	TokenKeyword

	// TokenNullLiteral is `null`.
	TokenNullLiteral

	// TokenNumericLiteral covers decimal, hex, octal and binary literals.
	TokenNumericLiteral

	// TokenPunctuator is an operator or punctuation symbol.
	TokenPunctuator

	// TokenStringLiteral is a single- or double-quoted string.
	TokenStringLiteral

	// TokenRegularExpression is a regular-expression literal.
	TokenRegularExpression

	// TokenTemplate is one piece of a template literal, delimited by
	// backticks and ${ } boundaries.
	TokenTemplate
)

// tokenName maps token types to the names exposed on tokenizer output.
var tokenName = map[TokenType]string{
	TokenBooleanLiteral:     "Boolean",
	TokenEOF:                "<end>",
	TokenIdentifier:         "Identifier",
	TokenKeyword:            "Keyword",
	TokenNullLiteral:        "Null",
	TokenNumericLiteral:     "Numeric",
	TokenPunctuator:         "Punctuator",
	TokenStringLiteral:      "String",
	TokenRegularExpression:  "RegularExpression",
	TokenTemplate:           "Template",
}

// rawToken is the scanner's output record. Value holds the literal or
// decoded text; numeric decoding and template cooking live in dedicated
// fields so the parser can rebuild node values without rescanning.
type rawToken struct {
	Type  TokenType
	Value string

	// NumericValue is the decoded value of a numeric literal.
	NumericValue float64

	// Octal is set for legacy-octal numeric and string literals; the
	// parser turns it into a strict-mode error.
	Octal bool

	// Template piece fields. Cooked is nil when the piece contains an
	// invalid escape (legal only in tagged templates).
	Cooked *string
	Head   bool
	Tail   bool

	// Regex literal fields.
	Pattern string
	Flags   string

	LineNumber int
	LineStart  int
	Start      int
	End        int
}

// Position is a line/column pair. Lines are 1-based, columns 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation brackets a token or node between two positions. Source is
// only set when the caller supplied a source name in the options.
type SourceLocation struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Source string   `json:"source,omitempty"`
}

// Marker bookmarks a scanner position so that a finished node can be
// decorated with its range and location.
type Marker struct {
	Index  int
	Line   int
	Column int
}

// Token is the public shape handed out by Tokenize and collected on the
// Program node when token collection is enabled.
type Token struct {
	Type  string          `json:"type"`
	Value string          `json:"value"`
	Range *[2]int         `json:"range,omitempty"`
	Loc   *SourceLocation `json:"loc,omitempty"`
	Regex *RegexInfo      `json:"regex,omitempty"`
}

// RegexInfo carries the split pattern/flags of a regex literal.
type RegexInfo struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}
