package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config parent command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage submitkit configuration",
		Long:  `Manage the submitkit configuration file (~/.submitkit/config.yaml).`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}
