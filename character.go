package esparse

import "unicode"

// EOF is returned by the scanner's character accessors once the source is
// exhausted. The value -1 cannot appear in valid input.
const EOF rune = -1

// identifierStartTables covers the Unicode categories the language allows as
// the first code point of an identifier (Lu, Ll, Lt, Lm, Lo, Nl).
var identifierStartTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
}

// identifierPartTables adds the continuation-only categories
// (Mn, Mc, Nd, Pc) on top of identifierStartTables.
var identifierPartTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
}

// isWhiteSpace reports whether ch is an ECMAScript WhiteSpace code point.
func isWhiteSpace(ch rune) bool {
	switch ch {
	case 0x20, 0x09, 0x0B, 0x0C, 0xA0, 0xFEFF:
		return true
	}
	return ch >= 0x1680 && (ch == 0x1680 ||
		(ch >= 0x2000 && ch <= 0x200A) ||
		ch == 0x202F || ch == 0x205F || ch == 0x3000)
}

// isLineTerminator reports whether ch is a LineTerminator code point
// (LF, CR, LS, PS).
func isLineTerminator(ch rune) bool {
	return ch == 0x0A || ch == 0x0D || ch == 0x2028 || ch == 0x2029
}

// isIdentifierStart reports whether ch may begin an IdentifierName.
// Backslash is included so that scanIdentifier picks up \u escapes.
func isIdentifierStart(ch rune) bool {
	if ch == '$' || ch == '_' || ch == '\\' {
		return true
	}
	if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
		return true
	}
	return ch >= 0x80 && unicode.In(ch, identifierStartTables...)
}

// isIdentifierPart reports whether ch may continue an IdentifierName.
func isIdentifierPart(ch rune) bool {
	if ch == '$' || ch == '_' || ch == '\\' {
		return true
	}
	if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' {
		return true
	}
	if ch == 0x200C || ch == 0x200D {
		return true
	}
	return ch >= 0x80 && unicode.In(ch, identifierPartTables...)
}

func isDecimalDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isHexDigit(ch rune) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

// hexValue converts a hex digit to its numeric value, -1 if ch is not one.
func hexValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}

// octalValue converts an octal digit to its numeric value.
func octalValue(ch rune) int {
	return int(ch - '0')
}

// fromCodePoint renders a code point as text. Go strings are UTF-8, so this
// is a plain rune conversion; surrogate halves from \u escapes are combined
// by the scanner before reaching here.
func fromCodePoint(code rune) string {
	return string(code)
}
