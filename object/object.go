// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The runtime value model. A Value is a literal, a list, a
//          function or a native function. Equality is structural with
//          IEEE-754 numeric semantics; truthiness treats everything except
//          false and null as truthy.
// ==============================================================================================

package object

import "github.com/justfreddev/pyru/token"

// Type identifies the kind of a runtime value.
type Type string

const (
	LiteralType        Type = "LITERAL"
	ListType           Type = "LIST"
	FunctionType       Type = "FUNCTION"
	NativeFunctionType Type = "NATIVE_FUNCTION"
)

// Value is the interface every runtime value implements. String returns
// the display form used by print.
type Value interface {
	Type() Type
	String() string
}

// Literal wraps one of the five literal kinds.
type Literal struct {
	Value token.LiteralType
}

func (l *Literal) Type() Type     { return LiteralType }
func (l *Literal) String() string { return l.Value.String() }

// Shared instances for the unit literals; equality is structural, so
// callers may also allocate their own.
var (
	True  = &Literal{Value: token.TrueLiteral}
	False = &Literal{Value: token.FalseLiteral}
	Null  = &Literal{Value: token.NullLiteral}
)

func NewNum(n float64) *Literal { return &Literal{Value: token.NumLiteral(n)} }
func NewStr(s string) *Literal  { return &Literal{Value: token.StrLiteral(s)} }

// Bool maps a native bool onto the shared true/false values.
func Bool(b bool) *Literal {
	if b {
		return True
	}
	return False
}

// IsTruthy reports the truthiness of any value. Only the false and null
// literals are falsey; every other value, lists and functions included,
// is truthy.
func IsTruthy(v Value) bool {
	if l, ok := v.(*Literal); ok {
		return l.Value.IsTruthy()
	}
	return true
}

// Equal compares two values structurally. Literals compare by kind and
// payload (with NaN != NaN), lists compare element-wise, and function
// values compare by identity. Mixed kinds are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case *Literal:
		bl, ok := b.(*Literal)
		return ok && a.Value.Equal(bl.Value)
	case *List:
		bl, ok := b.(*List)
		if !ok || len(a.Values) != len(bl.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], bl.Values[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// display renders a value the way it appears inside a list: strings keep
// their quotes so `["a", "b"]` is distinguishable from `[a, b]`.
func display(v Value) string {
	if l, ok := v.(*Literal); ok && l.Value.Kind == token.LitStr {
		return "\"" + l.Value.Str + "\""
	}
	return v.String()
}
