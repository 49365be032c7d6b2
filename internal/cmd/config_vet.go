package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/config"
	oerrors "github.com/submitkit/cli/internal/errors"
	"github.com/submitkit/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the submitkit configuration file.

Checks that the student fields and repository URL are filled in, the
render policy is valid, and every deliverable entry is a relative path.

Examples:
  # Validate the default config file
  submitkit config vet

  # Validate a specific file
  submitkit config vet --config ./config.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	exists, err := config.ConfigFileExists(configFlag)
	if err != nil {
		return err
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"configuration file does not exist", configFlag,
			"Run 'submitkit config init' to create it.")
	}

	cfg := GetConfig()
	issues := cfg.Vet()

	if len(issues) == 0 {
		output.Println(output.StyleSummary.Render("Configuration is valid."))
		return nil
	}

	for _, issue := range issues {
		output.Error("config issue", "issue", issue)
	}

	return &oerrors.DetailError{
		Type:    "validation failed",
		Message: fmt.Sprintf("configuration has %d issue(s)", len(issues)),
		Hint:    "Edit ~/.submitkit/config.yaml and fill in the reported fields.",
		Cause:   oerrors.ErrValidation,
	}
}
