package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/deliverables"
	"github.com/submitkit/cli/internal/output"
)

var checkFixFlag bool

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check that every required deliverable exists",
		Long: `Check the checkout against the required deliverable list.

Each entry of the list is reported as present or missing. A missing
deliverable is the expected, reportable condition this command exists
to detect; it never fails the command. With --fix, every missing entry
is repaired with an empty placeholder (directories get a .gitkeep
marker, files get a one-line placeholder body).

Arguments:
  path    Path to checkout (default: current directory)

Examples:
  # Report deliverable status
  submitkit check

  # Repair anything missing
  submitkit check --fix`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().BoolVar(&checkFixFlag, "fix", false,
		"Create placeholders for missing deliverables")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	repoPath := repoPathArg(args)
	cfg := GetConfig()
	spec := deliverables.NewSpec(cfg.Deliverables)

	missing := deliverables.Validate(repoPath, spec)
	missingSet := make(map[string]bool, len(missing))
	for _, p := range missing {
		missingSet[p] = true
	}

	entries := make([]output.StatusEntry, 0, len(spec.Entries))
	for _, e := range spec.Entries {
		status := output.StatusPresent
		if missingSet[e.Path] {
			status = output.StatusMissing
		}
		entries = append(entries, output.StatusEntry{Path: e.Path, Status: status})
	}

	output.Println(fmt.Sprintf("Deliverables in %s:", output.StyleNoun.Render(repoPath)))
	output.Print(output.RenderStatusList(entries, 30))

	if len(missing) == 0 {
		output.Println("")
		output.Println(output.StyleSummary.Render("All deliverables present."))
		return nil
	}

	if !checkFixFlag {
		output.Println("")
		output.Println(fmt.Sprintf("%d missing. Run 'submitkit check --fix' to create placeholders.", len(missing)))
		return nil
	}

	created, err := deliverables.Repair(repoPath, spec)
	if err != nil {
		return err
	}

	for _, p := range created {
		output.Info("placeholder created", "path", p)
	}
	output.Println("")
	output.Println(output.StyleSummary.Render(fmt.Sprintf("Repaired %d missing deliverable(s).", len(created))))

	return nil
}
