package esparse

import (
	"strings"
	"testing"
)

// BenchmarkScanner measures raw tokenization throughput.
func BenchmarkScanner(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"identifiers", "alpha beta gamma delta epsilon zeta"},
		{"numbers", "1 2.5 0x1f 0b101 0o17 6.02e23"},
		{"strings", `"one" 'two' "with \"escapes\" inside"`},
		{"punctuators", "a >>>= b >>> c >>= d >> e > f"},
		{"template", "`head${a}middle${b}tail`"},
		{"mixed", `var total = price * quantity + tax;`},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				handler := newErrorHandler()
				handler.Tolerant = true
				s := newScanner(tc.input, handler)
				for {
					s.scanComments()
					if s.lex().Type == TokenEOF {
						break
					}
				}
			}
		})
	}
}

// BenchmarkParse measures end-to-end parsing performance.
func BenchmarkParse(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"declaration", `var answer = 6 * 7;`},
		{"function", `function add(a, b) { return a + b; }`},
		{"arrow_chain", `xs.map(x => x * 2).filter(x => x > 10).reduce((a, x) => a + x, 0)`},
		{"class", `class Point { constructor(x, y) { this.x = x; this.y = y; } get len() { return 0; } }`},
		{"destructuring", `const { a, b: [c, d = 1], ...rest } = input;`},
		{"large", strings.Repeat("var x = f(1, 2) + g(3); ", 50)},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(tc.input, nil, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkParseWithMetadata isolates the cost of range/loc/token
// collection.
func BenchmarkParseWithMetadata(b *testing.B) {
	input := strings.Repeat("function f(a, b) { return a.x + b[0]; } ", 25)
	opts := &Options{Range: true, Loc: true, Tokens: true, Comment: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input, opts, nil); err != nil {
			b.Fatal(err)
		}
	}
}
