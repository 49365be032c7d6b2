package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/output"
	"github.com/submitkit/cli/internal/templates"
)

// NewEmailCmd creates the email command.
func NewEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email [path]",
		Short: "Draft the submission notification email",
		Long: `Generate email_draft.txt in the checkout from the embedded template.

The draft is plain text meant to be copy-pasted into a mail client;
nothing is sent. Recipients come from email.recipients in the config
file. Any existing draft is overwritten.

Arguments:
  path    Path to checkout (default: current directory)

Examples:
  # Draft the email in the current directory
  submitkit email

  # Draft with an explicit repository URL
  submitkit email --repo-url https://github.com/example/prototype`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEmail,
	}

	addStudentFlags(cmd)

	return cmd
}

func runEmail(cmd *cobra.Command, args []string) error {
	repoPath := repoPathArg(args)
	cfg := GetConfig()

	target := filepath.Join(repoPath, "email_draft.txt")
	if err := newRenderer(cfg).RenderToFile(templates.Email, target); err != nil {
		return err
	}

	output.Info("email draft saved", "path", target)
	return nil
}
