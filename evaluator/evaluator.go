// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The runtime execution engine. It walks the analysed AST as a
//          visitor, driving the environment chain and the value model.
//          Statement execution produces either normal completion, a
//          propagated return value, or an error; the return value is a
//          sentinel that unwinds untouched until a call frame catches it.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/justfreddev/pyru/ast"
	"github.com/justfreddev/pyru/object"
	"github.com/justfreddev/pyru/token"
)

// exprResult is the evaluator's expression fold: a value or an error.
type exprResult struct {
	value object.Value
	err   error
}

// stmtResult is the evaluator's statement fold. ret is non-nil only when
// a return statement fired; every construct except a function call
// forwards it unchanged.
type stmtResult struct {
	ret object.Value
	err error
}

// Evaluator executes statements against a chain of environments rooted at
// the globals.
type Evaluator struct {
	globals     *object.Environment
	environment *object.Environment
	output      []string
}

// New initialises an Evaluator whose global scope holds the built-in
// functions.
func New() *Evaluator {
	globals := object.Globals()
	return &Evaluator{globals: globals, environment: globals}
}

// Interpret executes the statements in order and returns the transcript
// of everything printed. The first runtime error aborts execution;
// statements after it do not run.
func (ev *Evaluator) Interpret(statements []ast.Stmt) ([]string, error) {
	for _, stmt := range statements {
		if _, err := ev.execute(stmt); err != nil {
			return nil, err
		}
	}
	out := make([]string, len(ev.output))
	copy(out, ev.output)
	return out, nil
}

func (ev *Evaluator) evaluate(e ast.Expr) (object.Value, error) {
	r := ast.AcceptExpr[exprResult](ev, e)
	return r.value, r.err
}

func (ev *Evaluator) execute(s ast.Stmt) (object.Value, error) {
	r := ast.AcceptStmt[stmtResult](ev, s)
	return r.ret, r.err
}

// executeBlock runs statements in the given environment, restoring the
// previous one on every exit path, including return propagation.
func (ev *Evaluator) executeBlock(statements []ast.Stmt, env *object.Environment) (object.Value, error) {
	previous := ev.environment
	ev.environment = env
	defer func() { ev.environment = previous }()

	for _, stmt := range statements {
		ret, err := ev.execute(stmt)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

// callFunction builds the call frame as a child of the function's
// closure, not of the caller, which is what makes lexical scoping work.
// A return sentinel surfacing from the body becomes the call's value.
func (ev *Evaluator) callFunction(f *object.Func, args []object.Value) (object.Value, error) {
	env := object.NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	ret, err := ev.executeBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if ret != nil {
		return ret, nil
	}
	return object.Null, nil
}

// ----------------------------------------------------------------------------------------------
// EXPRESSIONS
// ----------------------------------------------------------------------------------------------

func (ev *Evaluator) VisitAlterationExpr(e *ast.Alteration) exprResult {
	current, err := ev.environment.Get(e.Name)
	if err != nil {
		return exprResult{err: err}
	}

	n, ok := numValue(current)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedNumber}}
	}

	switch e.AlterationType {
	case token.Incr:
		n++
	case token.Decr:
		n--
	default:
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedAlterationToken}}
	}

	value, err := ev.environment.Assign(e.Name, object.NewNum(n))
	return exprResult{value: value, err: err}
}

func (ev *Evaluator) VisitAssignExpr(e *ast.Assign) exprResult {
	value, err := ev.evaluate(e.Value)
	if err != nil {
		return exprResult{err: err}
	}
	assigned, err := ev.environment.Assign(e.Name, value)
	return exprResult{value: assigned, err: err}
}

func (ev *Evaluator) VisitBinaryExpr(e *ast.Binary) exprResult {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return exprResult{err: err}
	}
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return exprResult{err: err}
	}

	switch e.Operator.Type {
	case token.Greater:
		return compareNums(left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return compareNums(left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return compareNums(left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return compareNums(left, right, func(a, b float64) bool { return a <= b })
	case token.BangEqual:
		return exprResult{value: object.Bool(!object.Equal(left, right))}
	case token.EqualEqual:
		return exprResult{value: object.Bool(object.Equal(left, right))}
	case token.Plus:
		if ln, ok := numValue(left); ok {
			if rn, ok := numValue(right); ok {
				return exprResult{value: object.NewNum(ln + rn)}
			}
		}
		if ls, ok := strValue(left); ok {
			if rs, ok := strValue(right); ok {
				return exprResult{value: object.NewStr(ls + rs)}
			}
		}
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedNumber}}
	case token.Minus:
		return arithmetic(left, right, func(a, b float64) float64 { return a - b })
	case token.FSlash:
		return arithmetic(left, right, func(a, b float64) float64 { return a / b })
	case token.Asterisk:
		return arithmetic(left, right, func(a, b float64) float64 { return a * b })
	}
	return exprResult{err: &object.RuntimeError{Kind: object.ExpectedValidBinaryOperator}}
}

func (ev *Evaluator) VisitCallExpr(e *ast.Call) exprResult {
	callee, err := ev.evaluate(e.Callee)
	if err != nil {
		return exprResult{err: err}
	}

	args := make([]object.Value, 0, len(e.Arguments))
	for _, argument := range e.Arguments {
		arg, err := ev.evaluate(argument)
		if err != nil {
			return exprResult{err: err}
		}
		args = append(args, arg)
	}

	switch f := callee.(type) {
	case *object.Func:
		if len(args) != f.Arity {
			return exprResult{err: &object.RuntimeError{Kind: object.ArgsDifferFromArity, Args: len(args), Arity: f.Arity}}
		}
		value, err := ev.callFunction(f, args)
		return exprResult{value: value, err: err}
	case *object.NativeFunc:
		if len(args) != f.Arity {
			return exprResult{err: &object.RuntimeError{Kind: object.ArgsDifferFromArity, Args: len(args), Arity: f.Arity}}
		}
		value, err := f.Fn(args)
		return exprResult{value: value, err: err}
	}
	return exprResult{err: &object.RuntimeError{Kind: object.ExpectedFunctionOrClass}}
}

func (ev *Evaluator) VisitGroupingExpr(e *ast.Grouping) exprResult {
	value, err := ev.evaluate(e.Expression)
	return exprResult{value: value, err: err}
}

func (ev *Evaluator) VisitListExpr(e *ast.List) exprResult {
	values := make([]object.Value, 0, len(e.Items))
	for _, item := range e.Items {
		value, err := ev.evaluate(item)
		if err != nil {
			return exprResult{err: err}
		}
		values = append(values, value)
	}
	return exprResult{value: object.NewList(values)}
}

// VisitListMethodCallExpr resolves the receiver from the environment,
// dispatches on the method name, and writes the receiver back into its
// binding after a mutating method. sort both rebinds and yields the
// freshly sorted list.
func (ev *Evaluator) VisitListMethodCallExpr(e *ast.ListMethodCall) exprResult {
	call, ok := e.Call.(*ast.Call)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.InvalidListMethod}}
	}
	callee, ok := call.Callee.(*ast.Var)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.InvalidListMethod}}
	}

	args := make([]object.Value, 0, len(call.Arguments))
	for _, argument := range call.Arguments {
		arg, err := ev.evaluate(argument)
		if err != nil {
			return exprResult{err: err}
		}
		args = append(args, arg)
	}

	value, err := ev.environment.Get(e.Object)
	if err != nil {
		return exprResult{err: err}
	}
	list, ok := value.(*object.List)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ValueWasNotAList}}
	}

	switch callee.Name.Lexeme {
	case "push":
		if err := list.Push(args); err != nil {
			return exprResult{err: err}
		}
		return ev.rebind(e.Object, list, object.Null)
	case "pop":
		popped := list.Pop()
		if popped == nil {
			popped = object.Null
		}
		return ev.rebind(e.Object, list, popped)
	case "remove":
		removed, err := list.Remove(args)
		if err != nil {
			return exprResult{err: err}
		}
		return ev.rebind(e.Object, list, removed)
	case "insertAt":
		if err := list.InsertAt(args); err != nil {
			return exprResult{err: err}
		}
		return ev.rebind(e.Object, list, object.Null)
	case "index":
		i, err := list.Index(args)
		if err != nil {
			return exprResult{err: err}
		}
		return exprResult{value: object.NewNum(float64(i))}
	case "len":
		if len(args) != 0 {
			return exprResult{err: &object.RuntimeError{Kind: object.ArgsDifferFromArity, Args: len(args), Arity: 0}}
		}
		return exprResult{value: object.NewNum(float64(list.Len()))}
	case "sort":
		if len(args) != 0 {
			return exprResult{err: &object.RuntimeError{Kind: object.ArgsDifferFromArity, Args: len(args), Arity: 0}}
		}
		sorted, err := list.TimSort()
		if err != nil {
			return exprResult{err: err}
		}
		return ev.rebind(e.Object, sorted, sorted)
	}
	return exprResult{err: &object.RuntimeError{Kind: object.InvalidListMethod, Name: callee.Name.Lexeme}}
}

// rebind writes a list back into its binding and yields the method's
// result.
func (ev *Evaluator) rebind(name token.Token, list *object.List, result object.Value) exprResult {
	if _, err := ev.environment.Assign(name, list); err != nil {
		return exprResult{err: err}
	}
	return exprResult{value: result}
}

func (ev *Evaluator) VisitLiteralExpr(e *ast.Literal) exprResult {
	return exprResult{value: &object.Literal{Value: e.Value}}
}

// VisitLogicalExpr short-circuits and yields the deciding operand value
// itself, never a coerced boolean.
func (ev *Evaluator) VisitLogicalExpr(e *ast.Logical) exprResult {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return exprResult{err: err}
	}

	if e.Operator.Type == token.Or {
		if object.IsTruthy(left) {
			return exprResult{value: left}
		}
	} else {
		if !object.IsTruthy(left) {
			return exprResult{value: left}
		}
	}

	value, err := ev.evaluate(e.Right)
	return exprResult{value: value, err: err}
}

func (ev *Evaluator) VisitMembershipExpr(e *ast.Membership) exprResult {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return exprResult{err: err}
	}
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return exprResult{err: err}
	}

	list, ok := right.(*object.List)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ValueWasNotAList}}
	}

	found := lo.ContainsBy(list.Values, func(v object.Value) bool {
		return object.Equal(v, left)
	})
	return exprResult{value: object.Bool(found != e.Negated)}
}

// VisitSpliceExpr handles both plain indexing and the three slice forms.
// Slice bounds are inclusive at both ends; every slice yields a fresh
// list.
func (ev *Evaluator) VisitSpliceExpr(e *ast.Splice) exprResult {
	start, hasStart, err := ev.spliceBound(e.Start)
	if err != nil {
		return exprResult{err: err}
	}
	end, hasEnd, err := ev.spliceBound(e.End)
	if err != nil {
		return exprResult{err: err}
	}

	value, err := ev.environment.Get(e.List)
	if err != nil {
		return exprResult{err: err}
	}
	list, ok := value.(*object.List)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ValueWasNotAList}}
	}

	if !e.IsSplice {
		if start < 0 || start >= len(list.Values) {
			return exprResult{err: &object.RuntimeError{Kind: object.IndexOutOfRange}}
		}
		return exprResult{value: list.Values[start]}
	}

	if hasEnd {
		if end < 0 || end >= len(list.Values) {
			return exprResult{err: &object.RuntimeError{Kind: object.IndexOutOfRange}}
		}
		if !hasStart {
			start = 0
		}
		if start < 0 || start > end+1 {
			return exprResult{err: &object.RuntimeError{Kind: object.IndexOutOfRange}}
		}
		return exprResult{value: freshList(list.Values[start : end+1])}
	}

	if start < 0 || start >= len(list.Values) {
		return exprResult{err: &object.RuntimeError{Kind: object.IndexOutOfRange}}
	}
	return exprResult{value: freshList(list.Values[start:])}
}

// spliceBound evaluates an optional index expression down to an int.
func (ev *Evaluator) spliceBound(e ast.Expr) (int, bool, error) {
	if e == nil {
		return 0, false, nil
	}
	value, err := ev.evaluate(e)
	if err != nil {
		return 0, false, err
	}
	n, ok := numValue(value)
	if !ok {
		return 0, false, &object.RuntimeError{Kind: object.ExpectedIndexToBeANum}
	}
	return int(n), true, nil
}

func freshList(values []object.Value) *object.List {
	fresh := make([]object.Value, len(values))
	copy(fresh, values)
	return object.NewList(fresh)
}

func (ev *Evaluator) VisitUnaryExpr(e *ast.Unary) exprResult {
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return exprResult{err: err}
	}

	switch e.Operator.Type {
	case token.Bang:
		return exprResult{value: object.Bool(!object.IsTruthy(right))}
	case token.Minus:
		n, ok := numValue(right)
		if !ok {
			return exprResult{err: &object.RuntimeError{Kind: object.UnableToNegate}}
		}
		return exprResult{value: object.NewNum(-n)}
	}
	return exprResult{err: &object.RuntimeError{Kind: object.ExpectedValidBinaryOperator}}
}

func (ev *Evaluator) VisitVarExpr(e *ast.Var) exprResult {
	value, err := ev.environment.Get(e.Name)
	return exprResult{value: value, err: err}
}

// ----------------------------------------------------------------------------------------------
// STATEMENTS
// ----------------------------------------------------------------------------------------------

func (ev *Evaluator) VisitExpressionStmt(s *ast.Expression) stmtResult {
	_, err := ev.evaluate(s.Expression)
	return stmtResult{err: err}
}

// VisitForStmt runs the initializer once in the enclosing environment, so
// the loop variable stays visible to the condition, the step and the
// statements after the loop; each body iteration gets its own scope.
func (ev *Evaluator) VisitForStmt(s *ast.For) stmtResult {
	if ret, err := ev.execute(s.Initializer); err != nil || ret != nil {
		return stmtResult{ret: ret, err: err}
	}

	for {
		condition, err := ev.evaluate(s.Condition)
		if err != nil {
			return stmtResult{err: err}
		}
		if !object.IsTruthy(condition) {
			return stmtResult{}
		}

		ret, err := ev.executeBlock(s.Body, object.NewEnvironment(ev.environment))
		if err != nil || ret != nil {
			return stmtResult{ret: ret, err: err}
		}

		if _, err := ev.evaluate(s.Step); err != nil {
			return stmtResult{err: err}
		}
	}
}

func (ev *Evaluator) VisitFunctionStmt(s *ast.Function) stmtResult {
	function := object.NewFunc(s, ev.environment)
	ev.environment.Define(s.Name.Lexeme, function)
	return stmtResult{}
}

func (ev *Evaluator) VisitIfStmt(s *ast.If) stmtResult {
	condition, err := ev.evaluate(s.Condition)
	if err != nil {
		return stmtResult{err: err}
	}

	if object.IsTruthy(condition) {
		ret, err := ev.executeBlock(s.ThenBranch, object.NewEnvironment(ev.environment))
		return stmtResult{ret: ret, err: err}
	}
	if s.ElseBranch != nil {
		ret, err := ev.executeBlock(s.ElseBranch, object.NewEnvironment(ev.environment))
		return stmtResult{ret: ret, err: err}
	}
	return stmtResult{}
}

func (ev *Evaluator) VisitLetStmt(s *ast.Let) stmtResult {
	value := object.Value(object.Null)
	if s.Initializer != nil {
		evaluated, err := ev.evaluate(s.Initializer)
		if err != nil {
			return stmtResult{err: err}
		}
		value = evaluated
	}
	ev.environment.Define(s.Name.Lexeme, value)
	return stmtResult{}
}

func (ev *Evaluator) VisitPrintStmt(s *ast.Print) stmtResult {
	value, err := ev.evaluate(s.Expression)
	if err != nil {
		return stmtResult{err: err}
	}

	switch value.(type) {
	case *object.Literal, *object.List:
		line := value.String()
		fmt.Println(line)
		ev.output = append(ev.output, line)
		return stmtResult{}
	}
	return stmtResult{err: &object.RuntimeError{Kind: object.ExpectedToPrintLiteralValue}}
}

func (ev *Evaluator) VisitReturnStmt(s *ast.Return) stmtResult {
	value := object.Value(object.Null)
	if s.Value != nil {
		evaluated, err := ev.evaluate(s.Value)
		if err != nil {
			return stmtResult{err: err}
		}
		value = evaluated
	}
	return stmtResult{ret: value}
}

func (ev *Evaluator) VisitWhileStmt(s *ast.While) stmtResult {
	for {
		condition, err := ev.evaluate(s.Condition)
		if err != nil {
			return stmtResult{err: err}
		}
		if !object.IsTruthy(condition) {
			return stmtResult{}
		}

		ret, err := ev.executeBlock(s.Body, object.NewEnvironment(ev.environment))
		if err != nil || ret != nil {
			return stmtResult{ret: ret, err: err}
		}
	}
}

// ----------------------------------------------------------------------------------------------
// OPERAND HELPERS
// ----------------------------------------------------------------------------------------------

func numValue(v object.Value) (float64, bool) {
	l, ok := v.(*object.Literal)
	if !ok || l.Value.Kind != token.LitNum {
		return 0, false
	}
	return l.Value.Num, true
}

func strValue(v object.Value) (string, bool) {
	l, ok := v.(*object.Literal)
	if !ok || l.Value.Kind != token.LitStr {
		return "", false
	}
	return l.Value.Str, true
}

func arithmetic(left, right object.Value, op func(a, b float64) float64) exprResult {
	ln, ok := numValue(left)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedNumber}}
	}
	rn, ok := numValue(right)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedNumber}}
	}
	return exprResult{value: object.NewNum(op(ln, rn))}
}

func compareNums(left, right object.Value, op func(a, b float64) bool) exprResult {
	ln, ok := numValue(left)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedNumber}}
	}
	rn, ok := numValue(right)
	if !ok {
		return exprResult{err: &object.RuntimeError{Kind: object.ExpectedNumber}}
	}
	return exprResult{value: object.Bool(op(ln, rn))}
}
