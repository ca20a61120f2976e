// ==============================================================================================
// FILE: main.go
// ==============================================================================================
// PURPOSE: The command-line entry point. With a script argument the file
//          is executed and the process exits non-zero on any phase error;
//          without one an interactive session starts.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justfreddev/pyru/interp"
	"github.com/justfreddev/pyru/lexer"
	"github.com/justfreddev/pyru/repl"
)

func main() {
	var (
		debug      bool
		indentSize int
	)

	rootCmd := &cobra.Command{
		Use:   "pyru [script]",
		Short: "Run pyru programs or start an interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repl.Start(os.Stdin, os.Stdout)
				return nil
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading script: %w", err)
			}

			if _, err := interp.Exec(string(data), indentSize, debug); err != nil {
				// The driver has already reported the diagnostic.
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Trace source, tokens and AST before running")
	rootCmd.PersistentFlags().IntVar(&indentSize, "indent", lexer.DefaultIndentSize, "Indent unit in spaces (the width of a leading tab)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
