// ==============================================================================================
// FILE: analyser/analyser.go
// ==============================================================================================
// PACKAGE: analyser
// PURPOSE: The semantic analyser. It walks the AST with a stack of symbol
//          tables (name -> initialised flag) and a function-context tag,
//          rejecting duplicate declarations, references to unknown names
//          and returns outside of functions. It never rewrites the tree;
//          its only effect is to accept or reject.
// ==============================================================================================

package analyser

import (
	"github.com/samber/lo"

	"github.com/justfreddev/pyru/ast"
	"github.com/justfreddev/pyru/token"
)

// functionType tags whether the walk is currently inside a function body.
type functionType int

const (
	funcNone functionType = iota
	funcFunction
)

// reservedNames are the global built-ins and list method names. A
// reference to one of them is accepted even when no open scope declares
// it.
var reservedNames = []string{
	"clock", "hash",
	"push", "pop", "remove", "insertAt", "index", "len", "sort",
}

// Analyser holds the scope stack and the current function context. The
// stack always contains at least the global table, and it survives across
// Run calls so a session can analyse source incrementally.
type Analyser struct {
	scopes   []map[string]bool
	funcType functionType
}

// New initialises an Analyser with an empty global scope.
func New() *Analyser {
	return &Analyser{scopes: []map[string]bool{{}}}
}

// Run analyses a statement list, stopping at the first semantic error.
func (a *Analyser) Run(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := ast.AcceptStmt[error](a, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyser) beginScope() {
	a.scopes = append(a.scopes, map[string]bool{})
}

func (a *Analyser) endScope() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *Analyser) current() map[string]bool {
	return a.scopes[len(a.scopes)-1]
}

// declared reports whether name is registered in any open scope, walking
// from the innermost outwards.
func (a *Analyser) declared(name string) bool {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if _, ok := a.scopes[i][name]; ok {
			return true
		}
	}
	return false
}

// resolveName accepts a reference if the name is declared somewhere on the
// scope stack or reserved for a built-in.
func (a *Analyser) resolveName(name token.Token) error {
	if a.declared(name.Lexeme) {
		return nil
	}
	if lo.Contains(reservedNames, name.Lexeme) {
		return nil
	}
	return &Error{Kind: VariableNotFound, Name: name.Lexeme}
}

// ----------------------------------------------------------------------------------------------
// STATEMENTS
// ----------------------------------------------------------------------------------------------

func (a *Analyser) VisitExpressionStmt(s *ast.Expression) error {
	return ast.AcceptExpr[error](a, s.Expression)
}

func (a *Analyser) VisitForStmt(s *ast.For) error {
	if err := ast.AcceptStmt[error](a, s.Initializer); err != nil {
		return err
	}
	if err := ast.AcceptExpr[error](a, s.Condition); err != nil {
		return err
	}
	if err := ast.AcceptExpr[error](a, s.Step); err != nil {
		return err
	}
	for _, stmt := range s.Body {
		if err := ast.AcceptStmt[error](a, stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitFunctionStmt registers the function name, then analyses parameters
// and body in a fresh scope. The function context stays Function for a
// nested declaration, which is what lets closures return to the analyser
// context of their enclosing function.
func (a *Analyser) VisitFunctionStmt(s *ast.Function) error {
	if _, ok := a.current()[s.Name.Lexeme]; ok {
		return &Error{Kind: VariableAlreadyAssignedInScope, Name: s.Name.Lexeme}
	}
	a.current()[s.Name.Lexeme] = true

	a.beginScope()
	isClosure := a.funcType == funcFunction
	a.funcType = funcFunction

	for _, param := range s.Params {
		if _, ok := a.current()[param.Lexeme]; ok {
			return &Error{Kind: VariableAlreadyAssignedInScope, Name: param.Lexeme}
		}
		a.current()[param.Lexeme] = true
	}

	for _, stmt := range s.Body {
		if err := ast.AcceptStmt[error](a, stmt); err != nil {
			return err
		}
	}

	a.endScope()
	if !isClosure {
		a.funcType = funcNone
	}
	return nil
}

func (a *Analyser) VisitIfStmt(s *ast.If) error {
	if err := ast.AcceptExpr[error](a, s.Condition); err != nil {
		return err
	}
	for _, stmt := range s.ThenBranch {
		if err := ast.AcceptStmt[error](a, stmt); err != nil {
			return err
		}
	}
	for _, stmt := range s.ElseBranch {
		if err := ast.AcceptStmt[error](a, stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitLetStmt rejects a redeclaration only when the existing registration
// was initialised, so `let a;` after `let a = 1;` fails but declaring over
// an uninitialised slot does not.
func (a *Analyser) VisitLetStmt(s *ast.Let) error {
	if a.current()[s.Name.Lexeme] {
		return &Error{Kind: VariableAlreadyAssignedInScope, Name: s.Name.Lexeme}
	}
	if s.Initializer != nil {
		if err := ast.AcceptExpr[error](a, s.Initializer); err != nil {
			return err
		}
	}
	a.current()[s.Name.Lexeme] = s.Initializer != nil
	return nil
}

func (a *Analyser) VisitPrintStmt(s *ast.Print) error {
	return ast.AcceptExpr[error](a, s.Expression)
}

func (a *Analyser) VisitReturnStmt(s *ast.Return) error {
	if a.funcType == funcNone {
		return &Error{Kind: CannotReturnOutsideFunction}
	}
	if s.Value != nil {
		return ast.AcceptExpr[error](a, s.Value)
	}
	return nil
}

func (a *Analyser) VisitWhileStmt(s *ast.While) error {
	if err := ast.AcceptExpr[error](a, s.Condition); err != nil {
		return err
	}
	for _, stmt := range s.Body {
		if err := ast.AcceptStmt[error](a, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ----------------------------------------------------------------------------------------------
// EXPRESSIONS
// ----------------------------------------------------------------------------------------------

func (a *Analyser) VisitAlterationExpr(e *ast.Alteration) error {
	if a.declared(e.Name.Lexeme) {
		return nil
	}
	return &Error{Kind: VariableNotFound, Name: e.Name.Lexeme}
}

func (a *Analyser) VisitAssignExpr(e *ast.Assign) error {
	if err := ast.AcceptExpr[error](a, e.Value); err != nil {
		return err
	}
	if a.declared(e.Name.Lexeme) {
		return nil
	}
	return &Error{Kind: VariableNotFound, Name: e.Name.Lexeme}
}

func (a *Analyser) VisitBinaryExpr(e *ast.Binary) error {
	if err := ast.AcceptExpr[error](a, e.Left); err != nil {
		return err
	}
	return ast.AcceptExpr[error](a, e.Right)
}

func (a *Analyser) VisitCallExpr(e *ast.Call) error {
	if err := ast.AcceptExpr[error](a, e.Callee); err != nil {
		return err
	}
	for _, arg := range e.Arguments {
		if err := ast.AcceptExpr[error](a, arg); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyser) VisitGroupingExpr(e *ast.Grouping) error {
	return ast.AcceptExpr[error](a, e.Expression)
}

func (a *Analyser) VisitListExpr(e *ast.List) error {
	for _, item := range e.Items {
		if err := ast.AcceptExpr[error](a, item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyser) VisitListMethodCallExpr(e *ast.ListMethodCall) error {
	if err := a.resolveName(e.Object); err != nil {
		return err
	}
	return ast.AcceptExpr[error](a, e.Call)
}

func (a *Analyser) VisitLiteralExpr(e *ast.Literal) error {
	return nil
}

func (a *Analyser) VisitLogicalExpr(e *ast.Logical) error {
	if err := ast.AcceptExpr[error](a, e.Left); err != nil {
		return err
	}
	return ast.AcceptExpr[error](a, e.Right)
}

func (a *Analyser) VisitMembershipExpr(e *ast.Membership) error {
	if err := ast.AcceptExpr[error](a, e.Left); err != nil {
		return err
	}
	return ast.AcceptExpr[error](a, e.Right)
}

func (a *Analyser) VisitSpliceExpr(e *ast.Splice) error {
	if err := a.resolveName(e.List); err != nil {
		return err
	}
	if e.Start != nil {
		if err := ast.AcceptExpr[error](a, e.Start); err != nil {
			return err
		}
	}
	if e.End != nil {
		if err := ast.AcceptExpr[error](a, e.End); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyser) VisitUnaryExpr(e *ast.Unary) error {
	return ast.AcceptExpr[error](a, e.Right)
}

func (a *Analyser) VisitVarExpr(e *ast.Var) error {
	return a.resolveName(e.Name)
}
