// ==============================================================================================
// FILE: object/errors.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Typed runtime errors. A runtime error unwinds the current
//          top-level statement; where a variable reference caused the
//          failure the error carries its name and source position.
// ==============================================================================================

package object

import "fmt"

// RuntimeErrorKind discriminates the evaluation failures.
type RuntimeErrorKind int

const (
	UndefinedVariable RuntimeErrorKind = iota
	ExpectedNumber
	UnableToNegate
	ExpectedFunctionOrClass
	ArgsDifferFromArity
	IndexOutOfRange
	ExpectedIndexToBeANum
	ValueWasNotAList
	InvalidListMethod
	CannotCompareValues
	CannotHashValue
	ItemNotFound
	ExpectedToPrintLiteralValue
	ExpectedValidBinaryOperator
	ExpectedAlterationToken
)

// RuntimeError is an evaluation failure. Name/Line/Start/End are set for
// kinds caused by a specific variable reference, Args/Arity for arity
// mismatches.
type RuntimeError struct {
	Kind  RuntimeErrorKind
	Name  string
	Line  int
	Start int
	End   int
	Args  int
	Arity int
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable %s on line %d", e.Name, e.Line)
	case ExpectedNumber:
		return "Expected a number"
	case UnableToNegate:
		return "Unable to negate number"
	case ExpectedFunctionOrClass:
		return "Expected to call a function/class, not a literal value"
	case ArgsDifferFromArity:
		return fmt.Sprintf("Expected %d arguments but got %d", e.Arity, e.Args)
	case IndexOutOfRange:
		return "Index out of range"
	case ExpectedIndexToBeANum:
		return "Expected the index to be a num"
	case ValueWasNotAList:
		return "The value was not a list"
	case InvalidListMethod:
		return fmt.Sprintf("%s is not a valid list method", e.Name)
	case CannotCompareValues:
		return "Cannot compare the values in the list"
	case CannotHashValue:
		return "Can only hash strings"
	case ItemNotFound:
		return "The item could not be found in the list"
	case ExpectedToPrintLiteralValue:
		return "Expected to print out a literal value"
	case ExpectedValidBinaryOperator:
		return "Expected a valid binary operator"
	default:
		return "Expected an alteration token"
	}
}
