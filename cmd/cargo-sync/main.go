// Package main is the entry point for the cargo-sync CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cargosync/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Check if the error carries a specific exit code
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already logged it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Non-ExitError: unexpected, print it
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
