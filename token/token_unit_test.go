// ==============================================================================================
// FILE: token/token_unit_test.go
// ==============================================================================================
// PURPOSE: Validates keyword lookup and the literal value model: equality,
//          truthiness and print formatting.
// ==============================================================================================

package token

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	keywords := map[string]Type{
		"and":    And,
		"def":    Def,
		"else":   Else,
		"false":  False,
		"for":    For,
		"if":     If,
		"in":     In,
		"let":    Let,
		"not":    Not,
		"null":   Null,
		"or":     Or,
		"print":  Print,
		"return": Return,
		"step":   Step,
		"true":   True,
		"while":  While,
	}
	for word, want := range keywords {
		assert.Equal(t, want, LookupIdent(word), word)
	}

	assert.Equal(t, Type(Identifier), LookupIdent("identifier"))
	assert.Equal(t, Type(Identifier), LookupIdent("Let"), "keywords are case sensitive")
	assert.Equal(t, Type(Identifier), LookupIdent("lets"))
}

func TestLiteralEqual(t *testing.T) {
	assert.True(t, NumLiteral(1).Equal(NumLiteral(1)))
	assert.False(t, NumLiteral(1).Equal(NumLiteral(2)))
	assert.True(t, StrLiteral("str").Equal(StrLiteral("str")))
	assert.False(t, StrLiteral("str").Equal(StrLiteral("ing")))
	assert.True(t, TrueLiteral.Equal(TrueLiteral))
	assert.True(t, NullLiteral.Equal(NullLiteral))

	// Mixed kinds never compare equal.
	assert.False(t, TrueLiteral.Equal(NumLiteral(1)))
	assert.False(t, FalseLiteral.Equal(NumLiteral(0)))
	assert.False(t, FalseLiteral.Equal(NullLiteral))
	assert.False(t, NumLiteral(0).Equal(StrLiteral("0")))

	// IEEE-754: NaN is not equal to itself.
	nan := NumLiteral(math.NaN())
	assert.False(t, nan.Equal(nan))
}

func TestLiteralIsTruthy(t *testing.T) {
	assert.False(t, FalseLiteral.IsTruthy())
	assert.False(t, NullLiteral.IsTruthy())

	assert.True(t, TrueLiteral.IsTruthy())
	assert.True(t, NumLiteral(0).IsTruthy())
	assert.True(t, StrLiteral("").IsTruthy())
}

func TestLiteralString(t *testing.T) {
	assert.Equal(t, "3", NumLiteral(3).String())
	assert.Equal(t, "123.456", NumLiteral(123.456).String())
	assert.Equal(t, "-333", NumLiteral(-333).String())
	assert.Equal(t, "NaN", NumLiteral(math.NaN()).String())
	assert.Equal(t, "-0", NumLiteral(math.Copysign(0, -1)).String())
	assert.Equal(t, "some string", StrLiteral("some string").String())
	assert.Equal(t, "true", TrueLiteral.String())
	assert.Equal(t, "false", FalseLiteral.String())
	assert.Equal(t, "null", NullLiteral.String())
}

func TestTokenString(t *testing.T) {
	tk := Token{Type: Num, Lexeme: "123", Literal: "123", Line: 2, Start: 7, End: 10}
	assert.Equal(t, "Token{Num, 123, 123, 2, 7, 10}", tk.String())
}
