// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. It feeds user input through the
//          lexer -> parser -> analyser -> evaluator pipeline while keeping
//          the analyser's symbol tables and the evaluator's environment
//          alive across lines. Block statements are entered by ending a
//          line with ':' and closed with a blank line.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/justfreddev/pyru/analyser"
	"github.com/justfreddev/pyru/evaluator"
	"github.com/justfreddev/pyru/lexer"
	"github.com/justfreddev/pyru/parser"
)

const prompt = ">> "
const continuationPrompt = ".. "

// Start launches the loop, reading from in and writing prompts and
// diagnostics to out. Program output still goes to stdout, exactly as in
// script mode.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	sess := newSession(lexer.DefaultIndentSize)

	fmt.Fprintln(out, "pyru interactive session")
	printHelp(out)

	var buffer []string
	for {
		if len(buffer) == 0 {
			fmt.Fprint(out, prompt)
		} else {
			fmt.Fprint(out, continuationPrompt)
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if len(buffer) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ".") {
				if quit := sess.command(out, trimmed); quit {
					return
				}
				continue
			}
			if strings.HasSuffix(trimmed, ":") {
				buffer = append(buffer, line)
				continue
			}
			sess.run(out, line)
			continue
		}

		// Inside a block: a blank line closes and submits it.
		if strings.TrimSpace(line) == "" {
			source := strings.Join(buffer, "\n")
			buffer = nil
			sess.run(out, source)
			continue
		}
		buffer = append(buffer, line)
	}
}

// session is the persistent interpreter state behind the loop.
type session struct {
	analyser   *analyser.Analyser
	evaluator  *evaluator.Evaluator
	indentSize int
	debug      bool
}

func newSession(indentSize int) *session {
	return &session{
		analyser:   analyser.New(),
		evaluator:  evaluator.New(),
		indentSize: indentSize,
	}
}

// command handles the dot-commands; it reports whether the loop should
// exit.
func (s *session) command(out io.Writer, line string) bool {
	switch line {
	case ".exit":
		fmt.Fprintln(out, "Goodbye!")
		return true
	case ".clear":
		s.analyser = analyser.New()
		s.evaluator = evaluator.New()
		fmt.Fprintln(out, "Session cleared.")
	case ".debug":
		s.debug = !s.debug
		status := "off"
		if s.debug {
			status = "on"
		}
		fmt.Fprintf(out, "Debug mode %s\n", status)
	case ".help":
		printHelp(out)
	default:
		fmt.Fprintf(out, "Unknown command: %s. Type .help for info.\n", line)
	}
	return false
}

// run pushes one chunk of source through the pipeline against the
// persistent state.
func (s *session) run(out io.Writer, source string) {
	tokens, err := lexer.New(source, s.indentSize).Run()
	if err != nil {
		fmt.Fprintf(out, "lexer error: %v\n", err)
		return
	}

	if s.debug {
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintf(out, "parser error: %v\n", err)
		return
	}

	if s.debug {
		for _, stmt := range program {
			fmt.Fprintln(out, stmt)
		}
	}

	if err := s.analyser.Run(program); err != nil {
		fmt.Fprintf(out, "semantic error: %v\n", err)
		return
	}

	if _, err := s.evaluator.Interpret(program); err != nil {
		fmt.Fprintf(out, "runtime error: %v\n", err)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  .exit   Quit the session")
	fmt.Fprintln(out, "  .clear  Reset all session state")
	fmt.Fprintln(out, "  .debug  Toggle token/AST tracing")
	fmt.Fprintln(out, "  .help   Show this message")
	fmt.Fprintln(out, "End a line with ':' to open a block; a blank line closes it.")
	fmt.Fprintln(out)
}
