// ==============================================================================================
// FILE: lexer/lexer_unit_test.go
// ==============================================================================================
// PURPOSE: Validates token kinds, lexemes, literals and byte offsets for
//          every lexical form, plus the lexing error cases.
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/justfreddev/pyru/token"
)

func lex(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, err := New(source, DefaultIndentSize).Run()
	require.NoError(t, err)
	return tokens
}

func lexErr(t *testing.T, source string) *Error {
	t.Helper()
	_, err := New(source, DefaultIndentSize).Run()
	require.Error(t, err)
	lexError, ok := err.(*Error)
	require.True(t, ok, "expected a lexer error, got %T", err)
	return lexError
}

func tok(tt token.Type, lexeme, literal string, line, start, end int) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme, Literal: literal, Line: line, Start: start, End: end}
}

func TestComments(t *testing.T) {
	got := lex(t, "// Comment body")
	want := []token.Token{
		tok(token.Eof, "", "", 1, 15, 15),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleSymbols(t *testing.T) {
	got := lex(t, "-- ++ != == <= >= ..")
	want := []token.Token{
		tok(token.Decr, "--", "", 1, 0, 2),
		tok(token.Incr, "++", "", 1, 3, 5),
		tok(token.BangEqual, "!=", "", 1, 6, 8),
		tok(token.EqualEqual, "==", "", 1, 9, 11),
		tok(token.LessEqual, "<=", "", 1, 12, 14),
		tok(token.GreaterEqual, ">=", "", 1, 15, 17),
		tok(token.DotDot, "..", "", 1, 18, 20),
		tok(token.Eof, "", "", 1, 20, 20),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Token
	}{
		{
			source: "identifier;",
			want: []token.Token{
				tok(token.Identifier, "identifier", "", 1, 0, 10),
				tok(token.Semicolon, ";", "", 1, 10, 11),
				tok(token.Eof, "", "", 1, 11, 11),
			},
		},
		{
			source: "identifier_2;",
			want: []token.Token{
				tok(token.Identifier, "identifier_2", "", 1, 0, 12),
				tok(token.Semicolon, ";", "", 1, 12, 13),
				tok(token.Eof, "", "", 1, 13, 13),
			},
		},
		{
			source: "boundary identifier;",
			want: []token.Token{
				tok(token.Identifier, "boundary", "", 1, 0, 8),
				tok(token.Identifier, "identifier", "", 1, 9, 19),
				tok(token.Semicolon, ";", "", 1, 19, 20),
				tok(token.Eof, "", "", 1, 20, 20),
			},
		},
		{
			source: "erroneous-identifier;",
			want: []token.Token{
				tok(token.Identifier, "erroneous", "", 1, 0, 9),
				tok(token.Minus, "-", "", 1, 9, 10),
				tok(token.Identifier, "identifier", "", 1, 10, 20),
				tok(token.Semicolon, ";", "", 1, 20, 21),
				tok(token.Eof, "", "", 1, 21, 21),
			},
		},
	}

	for _, test := range tests {
		got := lex(t, test.source)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q token mismatch (-want +got):\n%s", test.source, diff)
		}
	}
}

func TestKeywords(t *testing.T) {
	got := lex(t, "and def else false for if let not null or print return step true while")
	want := []token.Token{
		tok(token.And, "and", "", 1, 0, 3),
		tok(token.Def, "def", "", 1, 4, 7),
		tok(token.Else, "else", "", 1, 8, 12),
		tok(token.False, "false", "", 1, 13, 18),
		tok(token.For, "for", "", 1, 19, 22),
		tok(token.If, "if", "", 1, 23, 25),
		tok(token.Let, "let", "", 1, 26, 29),
		tok(token.Not, "not", "", 1, 30, 33),
		tok(token.Null, "null", "", 1, 34, 38),
		tok(token.Or, "or", "", 1, 39, 41),
		tok(token.Print, "print", "", 1, 42, 47),
		tok(token.Return, "return", "", 1, 48, 54),
		tok(token.Step, "step", "", 1, 55, 59),
		tok(token.True, "true", "", 1, 60, 64),
		tok(token.While, "while", "", 1, 65, 70),
		tok(token.Eof, "", "", 1, 70, 70),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLines(t *testing.T) {
	got := lex(t, "print(\n123\n);")
	want := []token.Token{
		tok(token.Print, "print", "", 1, 0, 5),
		tok(token.LParen, "(", "", 1, 5, 6),
		tok(token.Num, "123", "123", 2, 7, 10),
		tok(token.RParen, ")", "", 3, 11, 12),
		tok(token.Semicolon, ";", "", 3, 12, 13),
		tok(token.Eof, "", "", 3, 13, 13),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}

	got = lex(t, "print(\r\n123\r\n);")
	want = []token.Token{
		tok(token.Print, "print", "", 1, 0, 5),
		tok(token.LParen, "(", "", 1, 5, 6),
		tok(token.Num, "123", "123", 2, 8, 11),
		tok(token.RParen, ")", "", 3, 13, 14),
		tok(token.Semicolon, ";", "", 3, 14, 15),
		tok(token.Eof, "", "", 3, 15, 15),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestNums(t *testing.T) {
	err := lexErr(t, "123.")
	require.Equal(t, UnexpectedCharacter, err.Kind)

	got := lex(t, ".123;")
	want := []token.Token{
		tok(token.Dot, ".", "", 1, 0, 1),
		tok(token.Num, "123", "123", 1, 1, 4),
		tok(token.Semicolon, ";", "", 1, 4, 5),
		tok(token.Eof, "", "", 1, 5, 5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}

	got = lex(t, "print(123.456);")
	want = []token.Token{
		tok(token.Print, "print", "", 1, 0, 5),
		tok(token.LParen, "(", "", 1, 5, 6),
		tok(token.Num, "123.456", "123.456", 1, 6, 13),
		tok(token.RParen, ")", "", 1, 13, 14),
		tok(token.Semicolon, ";", "", 1, 14, 15),
		tok(token.Eof, "", "", 1, 15, 15),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}

	got = lex(t, "print(-0.001);")
	want = []token.Token{
		tok(token.Print, "print", "", 1, 0, 5),
		tok(token.LParen, "(", "", 1, 5, 6),
		tok(token.Minus, "-", "", 1, 6, 7),
		tok(token.Num, "0.001", "0.001", 1, 7, 12),
		tok(token.RParen, ")", "", 1, 12, 13),
		tok(token.Semicolon, ";", "", 1, 13, 14),
		tok(token.Eof, "", "", 1, 14, 14),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}

	// A number may run straight into a range operator.
	got = lex(t, "0..3")
	want = []token.Token{
		tok(token.Num, "0", "0", 1, 0, 1),
		tok(token.DotDot, "..", "", 1, 1, 3),
		tok(token.Num, "3", "3", 1, 3, 4),
		tok(token.Eof, "", "", 1, 4, 4),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleSymbols(t *testing.T) {
	got := lex(t, "( ) { } , . : ; * / - + ! = < >")
	want := []token.Token{
		tok(token.LParen, "(", "", 1, 0, 1),
		tok(token.RParen, ")", "", 1, 2, 3),
		tok(token.LBrace, "{", "", 1, 4, 5),
		tok(token.RBrace, "}", "", 1, 6, 7),
		tok(token.Comma, ",", "", 1, 8, 9),
		tok(token.Dot, ".", "", 1, 10, 11),
		tok(token.Colon, ":", "", 1, 12, 13),
		tok(token.Semicolon, ";", "", 1, 14, 15),
		tok(token.Asterisk, "*", "", 1, 16, 17),
		tok(token.FSlash, "/", "", 1, 18, 19),
		tok(token.Minus, "-", "", 1, 20, 21),
		tok(token.Plus, "+", "", 1, 22, 23),
		tok(token.Bang, "!", "", 1, 24, 25),
		tok(token.Equal, "=", "", 1, 26, 27),
		tok(token.Less, "<", "", 1, 28, 29),
		tok(token.Greater, ">", "", 1, 30, 31),
		tok(token.Eof, "", "", 1, 31, 31),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestStrings(t *testing.T) {
	got := lex(t, `"string";`)
	want := []token.Token{
		tok(token.String, `"string"`, "string", 1, 0, 8),
		tok(token.Semicolon, ";", "", 1, 8, 9),
		tok(token.Eof, "", "", 1, 9, 9),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}

	err := lexErr(t, `"Unterminated`)
	require.Equal(t, UnterminatedString, err.Kind)

	err = lexErr(t, "\"New\n\rline\";")
	require.Equal(t, UnterminatedString, err.Kind)
}

func TestUnexpectedCharacter(t *testing.T) {
	err := lexErr(t, "let a = 1 @ 2;")
	require.Equal(t, UnexpectedCharacter, err.Kind)
	require.Equal(t, byte('@'), err.Char)
	require.Equal(t, 1, err.Line)
}
