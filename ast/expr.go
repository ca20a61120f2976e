// ==============================================================================================
// FILE: ast/expr.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Expression nodes of the abstract syntax tree. Each variant is a
//          plain struct; Expr is the closed sum over them. Dispatch to the
//          analyser and evaluator goes through AcceptExpr in visitor.go.
// ==============================================================================================

package ast

import (
	"fmt"
	"strings"

	"github.com/justfreddev/pyru/token"
)

// Expr is the interface implemented by every expression variant.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Binary is an infix arithmetic, comparison or equality expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Grouping is a parenthesised expression.
type Grouping struct {
	Expression Expr
}

// Literal is a constant value baked in at parse time.
type Literal struct {
	Value token.LiteralType
}

// Unary is a prefix `!` or `-` expression.
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Var is a variable reference.
type Var struct {
	Name token.Token
}

// Assign writes a value to an existing variable and yields it, which is
// what makes chains like `a = b = c` work.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Logical is a short-circuiting `and`/`or` expression.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Alteration is a postfix `++` or `--` on a variable. AlterationType is
// token.Incr or token.Decr.
type Alteration struct {
	Name           token.Token
	AlterationType token.Type
}

// Call invokes a function or native function with its arguments.
type Call struct {
	Callee    Expr
	Arguments []Expr
}

// List is a list literal.
type List struct {
	Items []Expr
}

// ListMethodCall invokes a list method on a named binding; Call is the
// underlying call expression whose callee names the method.
type ListMethodCall struct {
	Object token.Token
	Call   Expr
}

// Splice is an index or slice on a named list binding. IsSplice
// distinguishes `l[i:j]` (and its open-ended forms) from plain `l[i]`;
// Start and End are nil when omitted.
type Splice struct {
	List     token.Token
	IsSplice bool
	Start    Expr
	End      Expr
}

// Membership is an `in` / `not in` test against a list.
type Membership struct {
	Left    Expr
	Negated bool
	Right   Expr
}

func (*Binary) exprNode()         {}
func (*Grouping) exprNode()       {}
func (*Literal) exprNode()        {}
func (*Unary) exprNode()          {}
func (*Var) exprNode()            {}
func (*Assign) exprNode()         {}
func (*Logical) exprNode()        {}
func (*Alteration) exprNode()     {}
func (*Call) exprNode()           {}
func (*List) exprNode()           {}
func (*ListMethodCall) exprNode() {}
func (*Splice) exprNode()         {}
func (*Membership) exprNode()     {}

func (e *Binary) String() string {
	return fmt.Sprintf("Binary(%s %s %s)", e.Left, e.Operator.Lexeme, e.Right)
}

func (e *Grouping) String() string {
	return fmt.Sprintf("Grouping(%s)", e.Expression)
}

func (e *Literal) String() string {
	return fmt.Sprintf("Literal(%s)", e.Value)
}

func (e *Unary) String() string {
	return fmt.Sprintf("Unary(%s %s)", e.Operator.Lexeme, e.Right)
}

func (e *Var) String() string {
	return fmt.Sprintf("Var(%s)", e.Name.Lexeme)
}

func (e *Assign) String() string {
	return fmt.Sprintf("Assign(%s = %s)", e.Name.Lexeme, e.Value)
}

func (e *Logical) String() string {
	return fmt.Sprintf("Logical(%s %s %s)", e.Left, e.Operator.Lexeme, e.Right)
}

func (e *Alteration) String() string {
	return fmt.Sprintf("Alteration(%s %s)", e.Name.Lexeme, e.AlterationType)
}

func (e *Call) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("Call(%s [%s])", e.Callee, strings.Join(args, ", "))
}

func (e *List) String() string {
	items := make([]string, len(e.Items))
	for i, item := range e.Items {
		items[i] = item.String()
	}
	return fmt.Sprintf("List([%s])", strings.Join(items, ", "))
}

func (e *ListMethodCall) String() string {
	return fmt.Sprintf("ListMethodCall(%s.%s)", e.Object.Lexeme, e.Call)
}

func (e *Splice) String() string {
	start, end := "", ""
	if e.Start != nil {
		start = e.Start.String()
	}
	if e.End != nil {
		end = e.End.String()
	}
	if !e.IsSplice {
		return fmt.Sprintf("Splice(%s[%s])", e.List.Lexeme, start)
	}
	return fmt.Sprintf("Splice(%s[%s:%s])", e.List.Lexeme, start, end)
}

func (e *Membership) String() string {
	if e.Negated {
		return fmt.Sprintf("Membership(%s not in %s)", e.Left, e.Right)
	}
	return fmt.Sprintf("Membership(%s in %s)", e.Left, e.Right)
}
