// ==============================================================================================
// FILE: ast/stmt.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Statement nodes of the abstract syntax tree. Blocks never appear
//          as their own node: every construct that owns a block carries the
//          statement list directly, bracketed by Indent/Dedent in the source.
// ==============================================================================================

package ast

import (
	"fmt"
	"strings"

	"github.com/justfreddev/pyru/token"
)

// Stmt is the interface implemented by every statement variant.
type Stmt interface {
	fmt.Stringer
	stmtNode()
}

// Expression is an expression evaluated for its side effects.
type Expression struct {
	Expression Expr
}

// Print evaluates its expression and writes the stringified value to
// standard output.
type Print struct {
	Expression Expr
}

// Let declares a variable; Initializer is nil when the declaration carries
// no `= expression` part.
type Let struct {
	Name        token.Token
	Initializer Expr
}

// If branches on the truthiness of Condition. ElseBranch is nil when there
// is no else; an `else if` chain is an ElseBranch holding a single nested If.
type If struct {
	Condition  Expr
	ThenBranch []Stmt
	ElseBranch []Stmt
}

// While loops while Condition is truthy.
type While struct {
	Condition Expr
	Body      []Stmt
}

// For is the desugared numeric range loop: the initializer declares the
// loop variable, the condition bounds it and the step advances it (an
// increment by default).
type For struct {
	Initializer Stmt
	Condition   Expr
	Step        Expr
	Body        []Stmt
}

// Function declares a named function.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Return unwinds to the nearest call frame; Value is nil for a bare
// `return;`, which yields null. Keyword is kept for error positions.
type Return struct {
	Keyword token.Token
	Value   Expr
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Let) stmtNode()        {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*For) stmtNode()        {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}

func joinStmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func (s *Expression) String() string {
	return fmt.Sprintf("Expression(%s)", s.Expression)
}

func (s *Print) String() string {
	return fmt.Sprintf("Print(%s)", s.Expression)
}

func (s *Let) String() string {
	if s.Initializer != nil {
		return fmt.Sprintf("Let(%s %s)", s.Name.Lexeme, s.Initializer)
	}
	return fmt.Sprintf("Let(%s)", s.Name.Lexeme)
}

func (s *If) String() string {
	if s.ElseBranch != nil {
		return fmt.Sprintf("If(%s [%s] [%s])", s.Condition, joinStmts(s.ThenBranch), joinStmts(s.ElseBranch))
	}
	return fmt.Sprintf("If(%s [%s])", s.Condition, joinStmts(s.ThenBranch))
}

func (s *While) String() string {
	return fmt.Sprintf("While(%s [%s])", s.Condition, joinStmts(s.Body))
}

func (s *For) String() string {
	return fmt.Sprintf("For(%s %s %s [%s])", s.Initializer, s.Condition, s.Step, joinStmts(s.Body))
}

func (s *Function) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return fmt.Sprintf("Function(%s (%s) [%s])", s.Name.Lexeme, strings.Join(params, ", "), joinStmts(s.Body))
}

func (s *Return) String() string {
	if s.Value != nil {
		return fmt.Sprintf("Return(%s)", s.Value)
	}
	return "Return()"
}
