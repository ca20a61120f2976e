// ==============================================================================================
// FILE: parser/errors.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Typed parse errors. Every error carries the offending token so
//          diagnostics can point at a line and byte span. The parser
//          recovers via synchronize and keeps going, but a parse with any
//          recorded error is a failed parse.
// ==============================================================================================

package parser

import (
	"fmt"

	"github.com/justfreddev/pyru/token"
)

// ErrorKind discriminates the parse failures.
type ErrorKind int

const (
	ExpectedVariableName ErrorKind = iota
	ExpectedSemicolonAfterVariableDeclaration
	ExpectedSemicolonAfterExpression
	ExpectedSemicolonAfterPrintValue
	ExpectedSemicolonAfterReturnValue
	ExpectedLParenAfterPrint
	ExpectedRParenAfterPrintValue
	ExpectedRParenAfterExpression
	ExpectedRParenAfterArguments
	ExpectedRParenAfterParameters
	ExpectedExpression
	ExpectedFunctionName
	ExpectedLParenAfterFunctionName
	ExpectedParameterName
	ExpectedColonBeforeBlock
	ExpectedIndentedBlock
	ExpectedDedentAfterBlock
	ExpectedRBrackAfterItems
	ExpectedLoopVariableName
	ExpectedInAfterLoopVariable
	ExpectedRangeInForLoop
	ExpectedInAfterNot
	TooManyArguments
	TooManyParameters
	InvalidAssignmentTarget
	InvalidAlterationTarget
	UnableToParseLiteralToFloat
)

// Error is a parse failure pinned to the token where it was detected.
type Error struct {
	Kind  ErrorKind
	Token token.Token
}

func (e *Error) Error() string {
	t := e.Token
	switch e.Kind {
	case ExpectedVariableName:
		return fmt.Sprintf("Expected variable name after %s of type %s on line %d", t.Lexeme, t.Type, t.Line)
	case ExpectedSemicolonAfterVariableDeclaration:
		return fmt.Sprintf("Expected semicolon after variable declaration on line %d", t.Line)
	case ExpectedSemicolonAfterExpression:
		return fmt.Sprintf("Expect ';' after expression on line %d", t.Line)
	case ExpectedSemicolonAfterPrintValue:
		return fmt.Sprintf("Expect ';' after print value on line %d", t.Line)
	case ExpectedSemicolonAfterReturnValue:
		return fmt.Sprintf("Expect ';' after return value on line %d", t.Line)
	case ExpectedLParenAfterPrint:
		return fmt.Sprintf("Expect '(' after 'print' on line %d", t.Line)
	case ExpectedRParenAfterPrintValue:
		return fmt.Sprintf("Expect ')' after print value on line %d", t.Line)
	case ExpectedRParenAfterExpression:
		return fmt.Sprintf("Expect ')' after expression on line %d", t.Line)
	case ExpectedRParenAfterArguments:
		return fmt.Sprintf("Expect ')' after arguments on line %d", t.Line)
	case ExpectedRParenAfterParameters:
		return fmt.Sprintf("Expect ')' after parameters on line %d", t.Line)
	case ExpectedExpression:
		return fmt.Sprintf("Expect expression on line %d (commonly due to mispelling keywords)", t.Line)
	case ExpectedFunctionName:
		return fmt.Sprintf("Expect function name on line %d", t.Line)
	case ExpectedLParenAfterFunctionName:
		return fmt.Sprintf("Expect '(' after function name on line %d", t.Line)
	case ExpectedParameterName:
		return fmt.Sprintf("Expect a parameter name on line %d", t.Line)
	case ExpectedColonBeforeBlock:
		return fmt.Sprintf("Expect ':' before block on line %d", t.Line)
	case ExpectedIndentedBlock:
		return fmt.Sprintf("Expect an indented block on line %d", t.Line)
	case ExpectedDedentAfterBlock:
		return fmt.Sprintf("Expect block to end on line %d", t.Line)
	case ExpectedRBrackAfterItems:
		return fmt.Sprintf("Expect ']' after list items on line %d", t.Line)
	case ExpectedLoopVariableName:
		return fmt.Sprintf("Expect loop variable name after 'for' on line %d", t.Line)
	case ExpectedInAfterLoopVariable:
		return fmt.Sprintf("Expect 'in' after loop variable on line %d", t.Line)
	case ExpectedRangeInForLoop:
		return fmt.Sprintf("Expect '..' range in for loop on line %d", t.Line)
	case ExpectedInAfterNot:
		return fmt.Sprintf("Expect 'in' after 'not' on line %d", t.Line)
	case TooManyArguments:
		return fmt.Sprintf("More than 255 arguments have been passed on line %d", t.Line)
	case TooManyParameters:
		return fmt.Sprintf("More than 255 parameters have been passed on line %d", t.Line)
	case InvalidAssignmentTarget:
		return fmt.Sprintf("Invalid assignment target on line %d", t.Line)
	case InvalidAlterationTarget:
		return fmt.Sprintf("Invalid alteration target on line %d", t.Line)
	case UnableToParseLiteralToFloat:
		return fmt.Sprintf("Unable to parse literal to a float on line %d", t.Line)
	default:
		return fmt.Sprintf("Unknown parser error on line %d", t.Line)
	}
}
