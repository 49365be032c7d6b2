package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/deliverables"
	oerrors "github.com/submitkit/cli/internal/errors"
	"github.com/submitkit/cli/internal/output"
	"github.com/submitkit/cli/internal/runlog"
	"github.com/submitkit/cli/internal/templates"
)

var runNoLogFlag bool

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Run the whole packaging sequence",
		Long: `Run the packaging sequence against the checkout:

  1. Generate README.md
  2. Ensure the deliverable directories exist
  3. Generate email_draft.txt
  4. Check deliverables and repair anything missing
  5. Record the run under interaction_logs/

The sequence is strictly linear and aborts on the first filesystem
error; files already written stay written.

Arguments:
  path    Path to checkout (default: current directory)

Examples:
  # Package the current directory
  submitkit run

  # Package a specific checkout
  submitkit run ~/work/prototype --name "Ada Lovelace"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}

	addStudentFlags(cmd)
	cmd.Flags().BoolVar(&runNoLogFlag, "no-log", false,
		"Skip writing the run record to interaction_logs/")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	repoPath := repoPathArg(args)
	cfg := GetConfig()
	spec := deliverables.NewSpec(cfg.Deliverables)
	renderer := newRenderer(cfg)
	record := runlog.NewRecord(repoPath)

	output.Println(output.StyleAction.Render("Packaging ") + output.StyleNoun.Render(repoPath))
	runErr := executeSequence(cmd.Context(), repoPath, spec, renderer, record)

	if !runNoLogFlag {
		if path, err := record.Write(); err != nil {
			if runErr == nil {
				return err
			}
			output.Warn("could not write run record", "error", err)
		} else {
			output.Debug("run record written", "path", path)
		}
	}

	if runErr != nil {
		return runErr
	}

	output.Println("")
	output.Println(output.StyleSummary.Render("✔ Packaging complete."))
	return nil
}

// executeSequence performs the packaging steps in order, appending a
// result per step. It stops at the first error; completed steps are not
// rolled back.
func executeSequence(ctx context.Context, repoPath string,
	spec deliverables.Spec, renderer *templates.Renderer, record *runlog.Record) error {

	rlog := output.RepoLogger(repoPath)

	// 1. README
	readmePath := filepath.Join(repoPath, "README.md")
	if err := renderer.RenderToFile(templates.README, readmePath); err != nil {
		record.Append(runlog.StepResult{Step: "render readme", Message: err.Error()})
		return err
	}
	record.Append(runlog.StepResult{Step: "render readme", OK: true, Message: readmePath})
	rlog.Info("README.md saved", "path", readmePath)

	// 2. Deliverable directories, created regardless of validator output
	for _, dir := range deliverableDirs(spec) {
		target := filepath.Join(repoPath, dir)
		if err := os.MkdirAll(target, 0o755); err != nil {
			err = oerrors.NewFilesystemError(
				fmt.Sprintf("could not create directory %s", dir), target, err)
			record.Append(runlog.StepResult{Step: "ensure directories", Message: err.Error()})
			return err
		}
	}
	record.Append(runlog.StepResult{Step: "ensure directories", OK: true})

	// 3. Email draft
	emailPath := filepath.Join(repoPath, "email_draft.txt")
	if err := renderer.RenderToFile(templates.Email, emailPath); err != nil {
		record.Append(runlog.StepResult{Step: "render email", Message: err.Error()})
		return err
	}
	record.Append(runlog.StepResult{Step: "render email", OK: true, Message: emailPath})
	rlog.Info("email draft saved", "path", emailPath)

	// 4. Check and repair
	var created []string
	err := output.RunWithSpinner(ctx, func() error {
		missing := deliverables.Validate(repoPath, spec)
		if len(missing) == 0 {
			return nil
		}
		output.Debug("missing deliverables", "paths", strings.Join(missing, ", "))
		var repairErr error
		created, repairErr = deliverables.Repair(repoPath, spec)
		return repairErr
	}, output.WithTitle("Checking deliverables..."))
	if err != nil {
		record.Append(runlog.StepResult{Step: "repair", Message: err.Error(), Created: created})
		return err
	}
	record.Append(runlog.StepResult{Step: "repair", OK: true, Created: created})
	for _, p := range created {
		rlog.Info("placeholder created", "path", p)
	}

	return nil
}

// deliverableDirs returns the directories a run ensures up front: every
// directory entry plus the parent of every file entry, in spec order
// without duplicates.
func deliverableDirs(spec deliverables.Spec) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		if d == "" || d == "." || seen[d] {
			return
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	for _, e := range spec.Entries {
		if e.IsDir() {
			add(strings.TrimSuffix(e.Path, "/"))
		} else {
			add(filepath.Dir(e.Path))
		}
	}
	return dirs
}
