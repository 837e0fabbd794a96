package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/executor"
	"github.com/cargosync/cli/internal/manifest"
	"github.com/cargosync/cli/internal/output"
	"github.com/cargosync/cli/internal/reconcile"
)

// Sync command flags.
var (
	syncSkipInstallFlag bool
	syncSkipUpdateFlag  bool
	syncSkipRemoveFlag  bool
	syncYesFlag         bool
	syncDryRunFlag      bool
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Converge installed packages to the manifest",
		Long: `Reconcile the packages cargo reports installed against the manifest
and drive cargo to apply the difference.

The three reconciliation passes can be disabled independently:
  - install: manifest packages that are missing (or whose declared
    binaries have gone missing) are installed
  - update:  manifest packages newer than the installed version are
    upgraded; downgrades are never performed
  - remove:  installed packages absent from the manifest are uninstalled

Git-sourced packages are outside reconciliation and left untouched.

Examples:
  # Show the plan and apply it after confirmation
  cargo-sync sync

  # Apply without prompting
  cargo-sync sync --yes

  # Only remove packages that are no longer declared
  cargo-sync sync --skip-install --skip-update

  # Show what would happen without touching anything
  cargo-sync sync --dry-run`,
		RunE: runSync,
	}

	cmd.Flags().BoolVar(&syncSkipInstallFlag, "skip-install", false,
		"Skip the install pass")
	cmd.Flags().BoolVar(&syncSkipUpdateFlag, "skip-update", false,
		"Skip the update pass")
	cmd.Flags().BoolVar(&syncSkipRemoveFlag, "skip-remove", false,
		"Skip the remove pass")
	cmd.Flags().BoolVarP(&syncYesFlag, "yes", "y", false,
		"Skip confirmation prompt")
	cmd.Flags().BoolVar(&syncDryRunFlag, "dry-run", false,
		"Compute and report actions without dispatching cargo")

	return cmd
}

// runSync executes the sync command.
func runSync(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	res, err := loadAndReconcile(reconcile.Options{
		SkipInstall: syncSkipInstallFlag,
		SkipUpdate:  syncSkipUpdateFlag,
		SkipRemove:  syncSkipRemoveFlag,
		BinDir:      GetBinDir(),
	})
	if err != nil {
		return err
	}

	printActionReport(res)

	if res.Empty() {
		return nil
	}

	if syncDryRunFlag {
		output.Info(fmt.Sprintf("dry run - %d action(s) not dispatched", res.Total()))
		return nil
	}

	if !syncYesFlag && !confirmApply(res.ActionSet) {
		output.Info("sync canceled")
		return nil
	}

	exec := executor.New(executor.Options{CargoPath: GetCargoPath()})

	var applyRes *executor.ApplyResult
	spinErr := output.RunWithSpinner(ctx, func() error {
		applyRes = exec.Apply(ctx, res.ActionSet)
		return nil
	}, output.WithTitle(fmt.Sprintf("Applying %d action(s)...", res.Total())))
	if spinErr != nil {
		return &ExitError{Code: ExitGeneralError, Err: spinErr}
	}

	for _, pkgErr := range applyRes.Errors {
		output.Error("apply failed", "package", pkgErr.Name, "error", pkgErr.Err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf(
		"%d installed, %d updated, %d removed",
		applyRes.Installed, applyRes.Updated, applyRes.Removed)))

	if len(applyRes.Errors) > 0 {
		return &ExitError{
			Code:    ExitApplyError,
			Err:     fmt.Errorf("%d package(s) failed to apply", len(applyRes.Errors)),
			Printed: true,
		}
	}

	return nil
}

// loadAndReconcile loads both state lists and computes the action sets.
func loadAndReconcile(opts reconcile.Options) (reconcile.Result, error) {
	desired, err := manifest.Load(GetManifestPath())
	if err != nil {
		output.Error("loading manifest", "path", GetManifestPath(), "error", err)
		return reconcile.Result{}, &ExitError{Code: ExitCodeFromError(err), Err: err, Printed: true}
	}

	actual, err := crates.LoadInstalled(GetRecordPath())
	if err != nil {
		output.Error("loading install record", "path", GetRecordPath(), "error", err)
		return reconcile.Result{}, &ExitError{Code: ExitCodeFromError(err), Err: err, Printed: true}
	}

	output.Debug("reconciling", "desired", len(desired), "installed", len(actual))

	return reconcile.Reconcile(desired, actual, opts), nil
}

// confirmApply prompts the user for confirmation.
func confirmApply(set reconcile.ActionSet) bool {
	output.Prompt(fmt.Sprintf("Apply %d action(s)? [y/N]: ", set.Total()))
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
	return false
}
