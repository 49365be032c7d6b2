package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/output"
	"github.com/submitkit/cli/internal/templates"
)

// NewReadmeCmd creates the readme command.
func NewReadmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme [path]",
		Short: "Generate the submission README",
		Long: `Generate README.md in the checkout from the embedded template.

Any existing README.md is overwritten: generated documents are always
regenerated, never merged.

Arguments:
  path    Path to checkout (default: current directory)

Examples:
  # Generate README.md in the current directory
  submitkit readme

  # Generate with explicit student info
  submitkit readme ~/work/prototype --name "Ada Lovelace" --university "Example University"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReadme,
	}

	addStudentFlags(cmd)

	return cmd
}

func runReadme(cmd *cobra.Command, args []string) error {
	repoPath := repoPathArg(args)
	cfg := GetConfig()

	target := filepath.Join(repoPath, "README.md")
	if err := newRenderer(cfg).RenderToFile(templates.README, target); err != nil {
		return err
	}

	output.Info("README.md saved", "path", target)
	return nil
}
