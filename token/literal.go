// ==============================================================================================
// FILE: token/literal.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: The literal value model shared by the parser's AST and the runtime.
//          A LiteralType is one of Str, Num, True, False or Null; numbers are
//          IEEE-754 doubles, so NaN != NaN holds throughout the language.
// ==============================================================================================

package token

import (
	"math"
	"strconv"
	"strings"
)

// LiteralKind discriminates the variants of a LiteralType.
type LiteralKind int

const (
	LitStr LiteralKind = iota
	LitNum
	LitTrue
	LitFalse
	LitNull
)

// LiteralType is a plain value record: the payload fields are only
// meaningful for the kind that owns them (Str for LitStr, Num for LitNum).
type LiteralType struct {
	Kind LiteralKind
	Str  string
	Num  float64
}

func StrLiteral(s string) LiteralType  { return LiteralType{Kind: LitStr, Str: s} }
func NumLiteral(n float64) LiteralType { return LiteralType{Kind: LitNum, Num: n} }

var (
	TrueLiteral  = LiteralType{Kind: LitTrue}
	FalseLiteral = LiteralType{Kind: LitFalse}
	NullLiteral  = LiteralType{Kind: LitNull}
)

// BoolLiteral maps a native bool onto the True/False literals.
func BoolLiteral(b bool) LiteralType {
	if b {
		return TrueLiteral
	}
	return FalseLiteral
}

// Equal compares two literals structurally. Numbers follow IEEE-754
// semantics, so a NaN literal is not equal to itself. Mixed kinds are
// always unequal.
func (l LiteralType) Equal(o LiteralType) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case LitStr:
		return l.Str == o.Str
	case LitNum:
		return l.Num == o.Num
	default:
		return true
	}
}

// IsTruthy reports the truthiness of a literal: everything except False
// and Null is truthy, including empty strings and zero.
func (l LiteralType) IsTruthy() bool {
	return l.Kind != LitFalse && l.Kind != LitNull
}

// String renders a literal the way print does: numbers in shortest
// round-trip decimal form with any ".0" suffix stripped, strings as their
// raw text, and the three unit literals as their keywords.
func (l LiteralType) String() string {
	switch l.Kind {
	case LitStr:
		return l.Str
	case LitNum:
		return FormatNum(l.Num)
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	default:
		return "null"
	}
}

// FormatNum produces the decimal form of a number. NaN prints as "NaN"
// and negative zero keeps its sign.
func FormatNum(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	text := strconv.FormatFloat(n, 'f', -1, 64)
	text = strings.TrimSuffix(text, ".0")
	return text
}
