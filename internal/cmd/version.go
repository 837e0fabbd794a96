package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cargosync/cli/internal/output"
	"github.com/cargosync/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	output.Println(version.GetInfo().String())
	return nil
}
