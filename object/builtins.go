// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The native functions pre-registered in the global environment.
// ==============================================================================================

package object

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/justfreddev/pyru/token"
)

// Builtins lists the native functions every program starts with.
var Builtins = []*NativeFunc{
	{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []Value) (Value, error) {
			seconds := float64(time.Now().UnixNano()) / float64(time.Second)
			return NewNum(seconds), nil
		},
	},
	{
		Name:  "hash",
		Arity: 1,
		Fn: func(args []Value) (Value, error) {
			l, ok := args[0].(*Literal)
			if !ok || l.Value.Kind != token.LitStr {
				return nil, &RuntimeError{Kind: CannotHashValue}
			}
			digest := sha256.Sum256([]byte(l.Value.Str))
			return NewStr(fmt.Sprintf("%x", digest)), nil
		},
	},
}

// Globals builds the root environment with every built-in defined.
func Globals() *Environment {
	env := NewEnvironment(nil)
	for _, builtin := range Builtins {
		env.Define(builtin.Name, builtin)
	}
	return env
}
