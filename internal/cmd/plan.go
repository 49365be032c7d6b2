package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/deliverables"
	"github.com/submitkit/cli/internal/output"
	"github.com/submitkit/cli/internal/plan"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [path]",
		Short: "Show the submission plan for a checkout",
		Long: `Analyze the checkout and print the packaging steps that a run
would execute, without touching anything.

Arguments:
  path    Path to checkout (default: current directory)`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlan,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	repoPath := repoPathArg(args)
	cfg := GetConfig()
	spec := deliverables.NewSpec(cfg.Deliverables)

	p := plan.Build(repoPath, spec)

	output.Println(output.StyleSummary.Render("Submission plan for ") + output.StyleNoun.Render(repoPath))
	for i, step := range p.Steps {
		output.Println(output.StyleDim.Render(fmt.Sprintf("%d.", i+1)) + " " + step)
	}

	return nil
}
