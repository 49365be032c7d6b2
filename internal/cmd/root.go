// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/config"
	"github.com/submitkit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (populated during PersistentPreRunE)
	kitConfig *config.Config
)

// NewRootCmd creates the root command for the submitkit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "submitkit",
		Short:         "Deliverable packaging for student project submissions",
		Long: `submitkit packages a project checkout for submission.

It provides commands to:
  - Generate the submission README and email draft from templates
  - Check that every required deliverable exists in the checkout
  - Repair missing deliverables with empty placeholders
  - Run the whole packaging sequence in one go`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: SUBMITKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewReadmeCmd())
	rootCmd.AddCommand(NewEmailCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands that don't need config still work
		loaded = config.DefaultConfig()
	}
	kitConfig = loaded

	// Resolve timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if kitConfig.Log.Timestamps != nil {
		logCfg.Timestamps = kitConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"deliverables", len(kitConfig.Deliverables),
		)
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if kitConfig == nil {
		return config.DefaultConfig()
	}
	return kitConfig
}
