// ==============================================================================================
// FILE: object/callable.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Callable values. A Func bundles a function declaration with the
//          environment in force at its definition site (its closure); the
//          evaluator builds the call frame. A NativeFunc wraps a Go
//          function behind the same arity contract.
// ==============================================================================================

package object

import (
	"fmt"

	"github.com/justfreddev/pyru/ast"
)

// Func is a user-defined function value.
type Func struct {
	Name        string
	Arity       int
	Declaration *ast.Function
	Closure     *Environment
}

// NewFunc captures a declaration together with its defining environment.
func NewFunc(declaration *ast.Function, closure *Environment) *Func {
	return &Func{
		Name:        declaration.Name.Lexeme,
		Arity:       len(declaration.Params),
		Declaration: declaration,
		Closure:     closure,
	}
}

func (f *Func) Type() Type { return FunctionType }

func (f *Func) String() string {
	return fmt.Sprintf("Function(%s/%d)", f.Name, f.Arity)
}

// NativeFn is the Go-side implementation of a built-in function.
type NativeFn func(args []Value) (Value, error)

// NativeFunc is a built-in function value.
type NativeFunc struct {
	Name  string
	Arity int
	Fn    NativeFn
}

func (nf *NativeFunc) Type() Type { return NativeFunctionType }

func (nf *NativeFunc) String() string {
	return fmt.Sprintf("NativeFunction(%s/%d)", nf.Name, nf.Arity)
}
