package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/manifest"
	"github.com/cargosync/cli/internal/output"
	"github.com/cargosync/cli/internal/remote"
)

// Backup command flags.
var backupLatestFlag bool

// NewBackupCmd creates the backup command.
func NewBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot installed packages into the manifest",
		Long: `Write the packages cargo currently reports installed to the manifest.

Git-sourced packages are not recorded; they are outside reconciliation.

With --latest, each recorded version is replaced by the newest version
published on crates.io, so the next sync upgrades everything.

Examples:
  # Snapshot the current state
  cargo-sync backup

  # Snapshot with every package pinned to its newest release
  cargo-sync backup --latest`,
		RunE: runBackup,
	}

	cmd.Flags().BoolVar(&backupLatestFlag, "latest", false,
		"Record the newest crates.io version instead of the installed one")

	return cmd
}

// runBackup executes the backup command.
func runBackup(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	installed, err := crates.LoadInstalled(GetRecordPath())
	if err != nil {
		output.Error("loading install record", "path", GetRecordPath(), "error", err)
		return &ExitError{Code: ExitCodeFromError(err), Err: err, Printed: true}
	}

	if backupLatestFlag {
		if err := pinLatestVersions(ctx, installed); err != nil {
			return &ExitError{Code: ExitGeneralError, Err: err}
		}
	}

	path := GetManifestPath()
	if err := manifest.Save(path, installed); err != nil {
		output.Error("writing manifest", "path", path, "error", err)
		return &ExitError{Code: ExitGeneralError, Err: err, Printed: true}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf(
		"%d package(s) written to %s", len(installed), output.StyleNoun.Render(path))))

	return nil
}

// pinLatestVersions rewrites every registry package's version to the
// newest one on crates.io. Local-path packages keep their installed
// version; the registry knows nothing about them.
func pinLatestVersions(ctx context.Context, pkgs []crates.Package) error {
	client := remote.NewClient(remote.Options{})

	return output.RunWithSpinner(ctx, func() error {
		for i := range pkgs {
			if pkgs[i].SourcePath != nil {
				continue
			}
			latest, err := client.LatestVersion(ctx, pkgs[i].Name)
			if err != nil {
				return fmt.Errorf("resolving latest version of %q: %w", pkgs[i].Name, err)
			}
			if latest.GreaterThan(pkgs[i].Version) {
				output.Debug("pinning newer version",
					"package", pkgs[i].Name,
					"installed", pkgs[i].Version.String(),
					"latest", latest.String(),
				)
				pkgs[i].Version = latest
			}
		}
		return nil
	}, output.WithTitle("Resolving latest versions..."))
}
