package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargosync/cli/internal/reconcile"
)

// Diff command flags.
var diffExitCodeFlag bool

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show drift between installed packages and the manifest",
		Long: `Compute the install/update/remove sets without dispatching anything.

Useful for scripting: with --exit-code the command exits non-zero when
the installed packages have drifted from the manifest.

Examples:
  # Report pending actions
  cargo-sync diff

  # Fail a CI job on drift
  cargo-sync diff --exit-code`,
		RunE: runDiffCmd,
	}

	cmd.Flags().BoolVar(&diffExitCodeFlag, "exit-code", false,
		"Exit with a non-zero code when packages are out of sync")

	return cmd
}

// runDiffCmd executes the diff command.
func runDiffCmd(_ *cobra.Command, _ []string) error {
	res, err := loadAndReconcile(reconcile.Options{BinDir: GetBinDir()})
	if err != nil {
		return err
	}

	printActionReport(res)

	if diffExitCodeFlag && !res.Empty() {
		return &ExitError{
			Code:    ExitDrift,
			Err:     fmt.Errorf("%d package(s) out of sync", res.Total()),
			Printed: true,
		}
	}

	return nil
}
