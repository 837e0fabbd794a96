// Package reconcile computes the actions needed to converge the set of
// installed packages to a declared manifest.
package reconcile

import (
	"github.com/cargosync/cli/internal/crates"
)

// Options gates the three reconciliation passes independently.
type Options struct {
	// SkipInstall disables the install pass.
	SkipInstall bool

	// SkipUpdate disables the update pass.
	SkipUpdate bool

	// SkipRemove disables the remove pass.
	SkipRemove bool

	// BinDir is the directory checked for declared binaries.
	BinDir string
}

// ActionSet holds the three computed action lists. The lists are
// pairwise disjoint by name; a package in none of them is already in
// sync.
type ActionSet struct {
	Install []crates.Package
	Update  []crates.Package
	Remove  []crates.Package
}

// Empty reports whether no action is required.
func (s ActionSet) Empty() bool {
	return len(s.Install) == 0 && len(s.Update) == 0 && len(s.Remove) == 0
}

// Total returns the number of packages across all three lists.
func (s ActionSet) Total() int {
	return len(s.Install) + len(s.Update) + len(s.Remove)
}

// Result is the outcome of one reconciliation.
type Result struct {
	ActionSet

	// Reinstalls names packages flagged for reinstall because declared
	// binaries were missing from the binary directory.
	Reinstalls []string
}

// Reconcile diffs the desired package list against the actual one and
// returns the install/update/remove sets. It never mutates its inputs
// and is deterministic for identical inputs.
//
// Three independent passes:
//
//  1. Install: a desired package with no installed counterpart is a new
//     install. A matched package whose declared binaries are not all
//     present is reinstalled (the desired descriptor is queued, and the
//     reinstall is surfaced in Result.Reinstalls). A matched package
//     declaring no binaries takes no action: there is nothing to verify.
//  2. Update: a matched package whose desired version is strictly newer
//     than the installed one is updated to the desired descriptor.
//     Equal or lower desired versions do nothing; downgrades are not
//     supported.
//  3. Remove: an installed package with no desired counterpart is
//     removed.
//
// A package that is both broken and outdated appears only in Install;
// reinstalling already brings the desired version.
func Reconcile(desired, actual []crates.Package, opts Options) Result {
	var res Result

	installing := make(map[string]bool)

	if !opts.SkipInstall {
		for _, pkg := range desired {
			installed := crates.FindByName(actual, pkg.Name)
			if installed == nil {
				res.Install = append(res.Install, pkg)
				installing[pkg.Name] = true
				continue
			}
			if len(installed.Bins) > 0 && !crates.BinsInstalled(opts.BinDir, installed.Bins) {
				res.Install = append(res.Install, pkg)
				installing[pkg.Name] = true
				res.Reinstalls = append(res.Reinstalls, installed.Name)
			}
		}
	}

	if !opts.SkipUpdate {
		for _, installed := range actual {
			// Reinstalls already bring the desired version.
			if installing[installed.Name] {
				continue
			}
			pkg := crates.FindByName(desired, installed.Name)
			if pkg == nil {
				continue
			}
			if pkg.Version.GreaterThan(installed.Version) {
				res.Update = append(res.Update, *pkg)
			}
		}
	}

	if !opts.SkipRemove {
		for _, installed := range actual {
			if crates.FindByName(desired, installed.Name) == nil {
				res.Remove = append(res.Remove, installed)
			}
		}
	}

	return res
}
