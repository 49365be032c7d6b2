package cmd

import (
	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/output"
	"github.com/submitkit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.GetInfo().String())
			return nil
		},
	}
}
