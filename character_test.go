package esparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhiteSpace(t *testing.T) {
	for _, ch := range []rune{' ', '\t', '\v', '\f', 0xA0, 0x1680, 0x2000, 0x200A, 0x202F, 0x205F, 0x3000, 0xFEFF} {
		require.True(t, isWhiteSpace(ch), "U+%04X", ch)
	}
	for _, ch := range []rune{'\n', '\r', 'a', '0', 0x200B} {
		require.False(t, isWhiteSpace(ch), "U+%04X", ch)
	}
}

func TestLineTerminator(t *testing.T) {
	for _, ch := range []rune{'\n', '\r', 0x2028, 0x2029} {
		require.True(t, isLineTerminator(ch), "U+%04X", ch)
	}
	require.False(t, isLineTerminator(' '))
	require.False(t, isLineTerminator('\v'))
}

func TestIdentifierStart(t *testing.T) {
	for _, ch := range []rune{'$', '_', '\\', 'a', 'Z', 'é', 'λ', '中', 'Ⅻ'} {
		require.True(t, isIdentifierStart(ch), "%c", ch)
	}
	for _, ch := range []rune{'0', '-', ' ', '!', 0x0300} {
		require.False(t, isIdentifierStart(ch), "U+%04X", ch)
	}
}

func TestIdentifierPart(t *testing.T) {
	// Continuation additionally admits digits, combining marks,
	// connector punctuation and the zero-width joiners.
	for _, ch := range []rune{'0', '9', 0x0300, 0x200C, 0x200D, '_', 'x'} {
		require.True(t, isIdentifierPart(ch), "U+%04X", ch)
	}
	require.False(t, isIdentifierPart('-'))
	require.False(t, isIdentifierPart(' '))
}

func TestDigitPredicates(t *testing.T) {
	require.True(t, isDecimalDigit('0'))
	require.True(t, isDecimalDigit('9'))
	require.False(t, isDecimalDigit('a'))

	require.True(t, isOctalDigit('7'))
	require.False(t, isOctalDigit('8'))

	for _, ch := range []rune{'0', '9', 'a', 'f', 'A', 'F'} {
		require.True(t, isHexDigit(ch), "%c", ch)
	}
	require.False(t, isHexDigit('g'))
}

func TestHexValue(t *testing.T) {
	require.Equal(t, 0, hexValue('0'))
	require.Equal(t, 10, hexValue('a'))
	require.Equal(t, 15, hexValue('F'))
	require.Equal(t, -1, hexValue('z'))
}

func TestFromCodePoint(t *testing.T) {
	require.Equal(t, "A", fromCodePoint('A'))
	require.Equal(t, "\U0001F600", fromCodePoint(0x1F600))
}
