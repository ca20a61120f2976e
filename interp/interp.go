// ==============================================================================================
// FILE: interp/interp.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The public driver. It runs a source string through the four
//          phases (lex, parse, analyse, evaluate) and returns the recorded
//          print output. When any phase fails, the diagnostic goes to
//          stderr and the returned sequence holds just the formatted error
//          text.
// ==============================================================================================

package interp

import (
	"fmt"
	"os"

	"github.com/justfreddev/pyru/analyser"
	"github.com/justfreddev/pyru/evaluator"
	"github.com/justfreddev/pyru/lexer"
	"github.com/justfreddev/pyru/parser"
)

// Run executes source with the default indent unit and returns the output
// lines, or a single-element sequence holding the error text.
func Run(source string, debug bool) []string {
	output, err := Exec(source, lexer.DefaultIndentSize, debug)
	if err != nil {
		return []string{err.Error()}
	}
	return output
}

// Exec executes source with an explicit indent unit. The error identifies
// the failing phase on stderr and is returned for the caller's exit
// handling.
func Exec(source string, indentSize int, debug bool) ([]string, error) {
	if debug {
		fmt.Printf("%q\n", source)
	}

	l := lexer.New(source, indentSize)
	tokens, err := l.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "A lexer error occured: %v\n", err)
		return nil, err
	}

	if debug {
		fmt.Println("Tokens:")
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}

	p := parser.New(tokens)
	program, err := p.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "A parser error occured: %v\n", err)
		return nil, err
	}

	if debug {
		fmt.Println("AST:")
		for _, stmt := range program {
			fmt.Println(stmt)
		}
	}

	if err := analyser.New().Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "A semantic error occured: %v\n", err)
		return nil, err
	}

	output, err := evaluator.New().Interpret(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "An evaluator error occured: %v\n", err)
		return nil, err
	}
	return output, nil
}
