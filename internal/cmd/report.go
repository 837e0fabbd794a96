package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/output"
	"github.com/cargosync/cli/internal/reconcile"
)

// inSyncMessage is printed when reconciliation finds nothing to do.
const inSyncMessage = "Nothing to install, update, or remove. Installed packages already match the manifest."

// printActionReport renders the reconciliation result: missing-binary
// warnings first, then one table of all pending actions sorted by name.
func printActionReport(res reconcile.Result) {
	for _, name := range res.Reinstalls {
		output.Println(output.FormatWarning(name, "binaries missing, will reinstall"))
	}

	if res.Empty() {
		output.Println(output.FormatCheckmark(inSyncMessage))
		return
	}

	t := output.NewTable("ACTION", "PACKAGE", "VERSION", "DETAILS")
	for _, row := range actionRows(res.ActionSet) {
		t.Row(row...)
	}
	output.Println(t.String())
	output.Println(output.StyleSummary.Render(fmt.Sprintf(
		"%d to install, %d to update, %d to remove",
		len(res.Install), len(res.Update), len(res.Remove))))
}

// actionRows flattens an action set into sorted table rows.
func actionRows(set reconcile.ActionSet) [][]string {
	var rows [][]string

	appendRows := func(action string, pkgs []crates.Package) {
		sorted := make([]crates.Package, len(pkgs))
		copy(sorted, pkgs)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

		styled := output.ActionStyle(action).Render(action)
		for _, pkg := range sorted {
			rows = append(rows, []string{
				styled,
				output.StyleNoun.Render(pkg.Name),
				pkg.Version.String(),
				packageDetails(pkg),
			})
		}
	}

	appendRows(output.ActionInstall, set.Install)
	appendRows(output.ActionUpdate, set.Update)
	appendRows(output.ActionRemove, set.Remove)

	return rows
}

// packageDetails summarizes the non-default install parameters.
func packageDetails(pkg crates.Package) string {
	var parts []string

	if len(pkg.Features) > 0 {
		parts = append(parts, "features: "+strings.Join(pkg.Features, ","))
	}
	if pkg.AllFeatures {
		parts = append(parts, "all-features")
	}
	if pkg.NoDefaultFeatures {
		parts = append(parts, "no-default-features")
	}
	if pkg.Profile != "" && pkg.Profile != "release" {
		parts = append(parts, "profile: "+pkg.Profile)
	}
	if pkg.Target != nil {
		parts = append(parts, "target: "+*pkg.Target)
	}
	if pkg.SourcePath != nil {
		parts = append(parts, "path: "+*pkg.SourcePath)
	}

	return strings.Join(parts, ", ")
}
