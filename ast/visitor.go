// ==============================================================================================
// FILE: ast/visitor.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Visitor dispatch over the two AST sums. A visitor over a result
//          type T implements one method per variant; AcceptExpr/AcceptStmt
//          are the exhaustive dispatchers that route a node to its method.
//          The semantic analyser and the evaluator are the two visitors,
//          instantiated at different result types.
// ==============================================================================================

package ast

// ExprVisitor is implemented by anything that folds expressions into a T.
type ExprVisitor[T any] interface {
	VisitAlterationExpr(e *Alteration) T
	VisitAssignExpr(e *Assign) T
	VisitBinaryExpr(e *Binary) T
	VisitCallExpr(e *Call) T
	VisitGroupingExpr(e *Grouping) T
	VisitListExpr(e *List) T
	VisitListMethodCallExpr(e *ListMethodCall) T
	VisitLiteralExpr(e *Literal) T
	VisitLogicalExpr(e *Logical) T
	VisitMembershipExpr(e *Membership) T
	VisitSpliceExpr(e *Splice) T
	VisitUnaryExpr(e *Unary) T
	VisitVarExpr(e *Var) T
}

// StmtVisitor is implemented by anything that folds statements into a T.
type StmtVisitor[T any] interface {
	VisitExpressionStmt(s *Expression) T
	VisitForStmt(s *For) T
	VisitFunctionStmt(s *Function) T
	VisitIfStmt(s *If) T
	VisitLetStmt(s *Let) T
	VisitPrintStmt(s *Print) T
	VisitReturnStmt(s *Return) T
	VisitWhileStmt(s *While) T
}

// AcceptExpr routes an expression to its visitor method. The type switch
// is exhaustive over the expression variants.
func AcceptExpr[T any](v ExprVisitor[T], e Expr) T {
	switch e := e.(type) {
	case *Alteration:
		return v.VisitAlterationExpr(e)
	case *Assign:
		return v.VisitAssignExpr(e)
	case *Binary:
		return v.VisitBinaryExpr(e)
	case *Call:
		return v.VisitCallExpr(e)
	case *Grouping:
		return v.VisitGroupingExpr(e)
	case *List:
		return v.VisitListExpr(e)
	case *ListMethodCall:
		return v.VisitListMethodCallExpr(e)
	case *Literal:
		return v.VisitLiteralExpr(e)
	case *Logical:
		return v.VisitLogicalExpr(e)
	case *Membership:
		return v.VisitMembershipExpr(e)
	case *Splice:
		return v.VisitSpliceExpr(e)
	case *Unary:
		return v.VisitUnaryExpr(e)
	case *Var:
		return v.VisitVarExpr(e)
	}
	panic("ast: unknown expression variant")
}

// AcceptStmt routes a statement to its visitor method. The type switch is
// exhaustive over the statement variants.
func AcceptStmt[T any](v StmtVisitor[T], s Stmt) T {
	switch s := s.(type) {
	case *Expression:
		return v.VisitExpressionStmt(s)
	case *For:
		return v.VisitForStmt(s)
	case *Function:
		return v.VisitFunctionStmt(s)
	case *If:
		return v.VisitIfStmt(s)
	case *Let:
		return v.VisitLetStmt(s)
	case *Print:
		return v.VisitPrintStmt(s)
	case *Return:
		return v.VisitReturnStmt(s)
	case *While:
		return v.VisitWhileStmt(s)
	}
	panic("ast: unknown statement variant")
}
