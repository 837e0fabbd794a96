// Package executor drives the cargo binary to apply a computed action
// set. It is deliberately thin: all decisions are made upstream by the
// reconciliation engine.
package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/reconcile"
)

// runFunc invokes one cargo command. Replaced in tests.
type runFunc func(ctx context.Context, name string, args ...string) error

// Options configures an Executor.
type Options struct {
	// CargoPath is the cargo binary to invoke. Defaults to "cargo".
	CargoPath string

	// DryRun logs the commands without running anything.
	DryRun bool
}

// Executor applies action sets by spawning cargo.
type Executor struct {
	cargo  string
	dryRun bool
	run    runFunc
}

// New creates an Executor.
func New(opts Options) *Executor {
	cargo := opts.CargoPath
	if cargo == "" {
		cargo = "cargo"
	}

	return &Executor{
		cargo:  cargo,
		dryRun: opts.DryRun,
		run:    runCommand,
	}
}

// PackageError records a failure applying one package. Remaining
// packages are still attempted.
type PackageError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *PackageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *PackageError) Unwrap() error {
	return e.Err
}

// ApplyResult summarizes one Apply run.
type ApplyResult struct {
	Installed int
	Updated   int
	Removed   int
	Errors    []*PackageError
}

// Apply dispatches every action in the set. Install and update entries
// both run "cargo install" (idempotent: --force reinstalls in place);
// remove entries run "cargo uninstall". Failures are collected per
// package rather than aborting the run.
func (e *Executor) Apply(ctx context.Context, set reconcile.ActionSet) *ApplyResult {
	res := &ApplyResult{}

	for _, pkg := range set.Install {
		if err := e.install(ctx, pkg); err != nil {
			res.Errors = append(res.Errors, &PackageError{Name: pkg.Name, Err: err})
			continue
		}
		res.Installed++
	}

	for _, pkg := range set.Update {
		if err := e.install(ctx, pkg); err != nil {
			res.Errors = append(res.Errors, &PackageError{Name: pkg.Name, Err: err})
			continue
		}
		res.Updated++
	}

	for _, pkg := range set.Remove {
		if err := e.remove(ctx, pkg.Name); err != nil {
			res.Errors = append(res.Errors, &PackageError{Name: pkg.Name, Err: err})
			continue
		}
		res.Removed++
	}

	return res
}

func (e *Executor) install(ctx context.Context, pkg crates.Package) error {
	if e.dryRun {
		return nil
	}
	return e.run(ctx, e.cargo, InstallArgs(pkg)...)
}

func (e *Executor) remove(ctx context.Context, name string) error {
	if e.dryRun {
		return nil
	}
	return e.run(ctx, e.cargo, UninstallArgs(name)...)
}

// InstallArgs builds the cargo argument list to install or upgrade one
// package with its recorded features, profile and target. Local-path
// packages are installed from their source directory; registry packages
// by name and exact version. --force makes the operation idempotent
// when the package is already present.
func InstallArgs(pkg crates.Package) []string {
	args := []string{"install", "--force"}

	if pkg.SourcePath != nil {
		args = append(args, "--path", *pkg.SourcePath)
	} else {
		args = append(args, pkg.Name, "--version", pkg.Version.String())
	}

	if len(pkg.Features) > 0 {
		args = append(args, "--features", strings.Join(pkg.Features, ","))
	}
	if pkg.AllFeatures {
		args = append(args, "--all-features")
	}
	if pkg.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if pkg.Profile != "" {
		args = append(args, "--profile", pkg.Profile)
	}
	if pkg.Target != nil {
		args = append(args, "--target", *pkg.Target)
	}

	return args
}

// UninstallArgs builds the cargo argument list to uninstall a package
// by name.
func UninstallArgs(name string) []string {
	return []string{"uninstall", name}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
