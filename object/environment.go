// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The lexical environment: a name -> value table with a link to
//          the enclosing scope. Environments are shared between the
//          evaluator and closures; a scope lives as long as any closure
//          or call frame still holds it. Single-threaded use only.
// ==============================================================================================

package object

import "github.com/justfreddev/pyru/token"

// Environment is one scope in the chain. The global scope has a nil
// enclosing link.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a scope nested inside enclosing; pass nil for
// the global scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Define unconditionally binds a name in this scope, shadowing any outer
// binding of the same name.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get resolves a name to the innermost scope that binds it.
func (e *Environment) Get(name token.Token) (Value, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{
		Kind:  UndefinedVariable,
		Name:  name.Lexeme,
		Line:  name.Line,
		Start: name.Start,
		End:   name.End,
	}
}

// Assign updates the nearest scope that already binds the name and
// returns the assigned value, which is what makes assignment chains
// evaluate to their right-hand side.
func (e *Environment) Assign(name token.Token, value Value) (Value, error) {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return nil, &RuntimeError{
		Kind:  UndefinedVariable,
		Name:  name.Lexeme,
		Line:  name.Line,
		Start: name.Start,
		End:   name.End,
	}
}
