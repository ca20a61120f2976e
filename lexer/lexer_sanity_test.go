// ==============================================================================================
// FILE: lexer/lexer_sanity_test.go
// ==============================================================================================
// PURPOSE: Cross-cutting lexer properties: every stream ends in Eof, token
//          spans index the original source, and concatenating lexemes
//          reproduces the source up to whitespace and comments.
// ==============================================================================================

package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justfreddev/pyru/token"
)

var sanityPrograms = []string{
	"",
	"let a = 1; print(a);",
	"let s = \"some string\";",
	"print(1 + 2 * 3 - 4 / 5);",
	"for i in 0..5 step 2:\n    print(i);",
	"def fib(n):\n    if n < 2:\n        return n;\n    return fib(n - 1) + fib(n - 2);\nprint(fib(8));",
	"let a = [1, 2, 3];\nprint(a[1:3]);\nprint(4 not in a);",
	"// leading comment\nlet a = 1; // trailing comment\nprint(a);",
	"while i < 5:\n    print(i++);\n",
}

func TestStreamsEndInEof(t *testing.T) {
	for _, source := range sanityPrograms {
		tokens := lex(t, source)
		require.NotEmpty(t, tokens, source)
		assert.Equal(t, token.Type(token.Eof), tokens[len(tokens)-1].Type, source)
	}
}

func TestSpansIndexTheSource(t *testing.T) {
	for _, source := range sanityPrograms {
		for _, tk := range lex(t, source) {
			switch tk.Type {
			case token.Eof, token.Indent, token.Dedent:
				continue
			}
			require.LessOrEqual(t, tk.Start, tk.End, source)
			require.LessOrEqual(t, tk.End, len(source), source)
			assert.Equal(t, source[tk.Start:tk.End], tk.Lexeme, source)
		}
	}
}

func TestLexemesReproduceTheSource(t *testing.T) {
	// Concatenating lexemes equals the source with whitespace and
	// comments stripped. Sources with string literals are skipped: the
	// strip below cannot tell quoted whitespace apart.
	for _, source := range sanityPrograms {
		if strings.Contains(source, "\"") {
			continue
		}
		var lexemes strings.Builder
		for _, tk := range lex(t, source) {
			lexemes.WriteString(tk.Lexeme)
		}

		stripped := strings.Builder{}
		for _, line := range strings.Split(source, "\n") {
			if i := strings.Index(line, "//"); i >= 0 {
				line = line[:i]
			}
			for _, c := range line {
				switch c {
				case ' ', '\t', '\r':
				default:
					stripped.WriteRune(c)
				}
			}
		}
		assert.Equal(t, stripped.String(), lexemes.String(), source)
	}
}

func TestIndentsAndDedentsBalance(t *testing.T) {
	for _, source := range sanityPrograms {
		depth := 0
		for _, tk := range lex(t, source) {
			switch tk.Type {
			case token.Indent:
				depth++
			case token.Dedent:
				depth--
			}
			require.GreaterOrEqual(t, depth, 0, source)
		}
		assert.Zero(t, depth, source)
	}
}
