package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/deliverables"
	oerrors "github.com/submitkit/cli/internal/errors"
	"github.com/submitkit/cli/internal/output"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [path]",
		Short: "Verify the generated README carries the required fields",
		Long: `Check README.md in the checkout for the required sections and
fields (title, Student, University, Department, Deliverables, How to
run, Contact).

A README that misses any field fails verification.

Arguments:
  path    Path to checkout (default: current directory)`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	repoPath := repoPathArg(args)

	missing, err := deliverables.CheckReadme(repoPath)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		output.Println(output.StyleSummary.Render("README.md carries all required fields."))
		return nil
	}

	for _, field := range missing {
		output.Error("required field missing", "field", field)
	}

	return &oerrors.DetailError{
		Type:    "validation failed",
		Message: fmt.Sprintf("README.md is missing %d required field(s): %s", len(missing), strings.Join(missing, ", ")),
		Hint:    "Run 'submitkit readme' to regenerate it from the template.",
		Cause:   oerrors.ErrValidation,
	}
}
