package esparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []*Token) []string {
	types := make([]string, len(tokens))
	for i, token := range tokens {
		types[i] = token.Type
	}
	return types
}

func TestTokenizeSimple(t *testing.T) {
	result, err := Tokenize(`answer = 42`, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"Identifier", "Punctuator", "Numeric"}, tokenTypes(result.Tokens))
	require.Equal(t, "answer", result.Tokens[0].Value)
	require.Equal(t, "=", result.Tokens[1].Value)
	require.Equal(t, "42", result.Tokens[2].Value)
}

func TestTokenizeDivisionAfterIdentifier(t *testing.T) {
	result, err := Tokenize(`a/b/g`, nil)
	require.NoError(t, err)

	require.Equal(t, []string{
		"Identifier", "Punctuator", "Identifier", "Punctuator", "Identifier",
	}, tokenTypes(result.Tokens))
}

func TestTokenizeRegexAtExpressionPosition(t *testing.T) {
	result, err := Tokenize(`/a/g`, nil)
	require.NoError(t, err)

	require.Len(t, result.Tokens, 1)
	token := result.Tokens[0]
	require.Equal(t, "RegularExpression", token.Type)
	require.NotNil(t, token.Regex)
	require.Equal(t, "a", token.Regex.Pattern)
	require.Equal(t, "g", token.Regex.Flags)
}

func TestTokenizeRegexAfterOperators(t *testing.T) {
	cases := []struct {
		input string
		regex bool
	}{
		{`x = /a/`, true},
		{`x + /a/`, true},
		{`(x) ? /a/ : 0`, true},
		{`x[0] /a/ b`, false},
		{`this /a/ b`, false},
		{`if (x) /a/.test(x)`, true},
		{`function f() {} /regex/`, true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := Tokenize(tc.input, nil)
			require.NoError(t, err)

			var sawRegex bool
			for _, token := range result.Tokens {
				if token.Type == "RegularExpression" {
					sawRegex = true
				}
			}
			require.Equal(t, tc.regex, sawRegex)
		})
	}
}

func TestTokenizeWithRangeAndLoc(t *testing.T) {
	code := "let x =\n  10"
	result, err := Tokenize(code, &Options{Range: true, Loc: true})
	require.NoError(t, err)

	prevEnd := 0
	for _, token := range result.Tokens {
		require.NotNil(t, token.Range)
		require.GreaterOrEqual(t, token.Range[0], prevEnd)
		require.Equal(t, code[token.Range[0]:token.Range[1]], token.Value)
		prevEnd = token.Range[1]
	}

	last := result.Tokens[len(result.Tokens)-1]
	require.Equal(t, 2, last.Loc.Start.Line)
	require.Equal(t, "10", last.Value)
}

func TestTokenizeComments(t *testing.T) {
	result, err := Tokenize("// hi\nx /* there */ = 1", &Options{Comment: true})
	require.NoError(t, err)

	types := tokenTypes(result.Tokens)
	require.Equal(t, []string{"LineComment", "Identifier", "BlockComment", "Punctuator", "Numeric"}, types)
	require.Equal(t, " hi", result.Tokens[0].Value)
	require.Equal(t, " there ", result.Tokens[2].Value)
}

func TestTokenizeTolerantRecordsErrors(t *testing.T) {
	result, err := Tokenize(`var x = "unterminated`, &Options{Tolerant: true})
	require.NoError(t, err)

	require.NotEmpty(t, result.Errors)
	require.Equal(t, "SyntaxError", result.Errors[0].Name)
	// Tokens before the failure are still delivered.
	require.GreaterOrEqual(t, len(result.Tokens), 3)
}

func TestTokenizeStrictFailsFast(t *testing.T) {
	_, err := Tokenize(`"unterminated`, nil)
	require.Error(t, err)
}
