// Package plan derives a step-by-step submission plan from the state of
// a checkout.
package plan

import (
	"fmt"
	"strings"

	"github.com/submitkit/cli/internal/deliverables"
)

// Status splits the deliverable list into present and missing entries.
type Status struct {
	Existing []string
	Missing  []string
}

// Analyze checks every spec entry under baseDir.
func Analyze(baseDir string, spec deliverables.Spec) Status {
	var st Status
	missing := make(map[string]bool)
	for _, p := range deliverables.Validate(baseDir, spec) {
		missing[p] = true
	}
	for _, e := range spec.Entries {
		if missing[e.Path] {
			st.Missing = append(st.Missing, e.Path)
		} else {
			st.Existing = append(st.Existing, e.Path)
		}
	}
	return st
}

// Plan is an ordered list of submission steps.
type Plan struct {
	Steps []string
}

// Build generates the execution plan for a checkout.
func Build(baseDir string, spec deliverables.Spec) Plan {
	st := Analyze(baseDir, spec)

	var steps []string
	steps = append(steps, "Check repository structure")
	if len(st.Existing) > 0 {
		steps = append(steps, fmt.Sprintf("Verify existing entries: %s", strings.Join(st.Existing, ", ")))
	}
	if len(st.Missing) > 0 {
		steps = append(steps, fmt.Sprintf("Create placeholders for: %s", strings.Join(st.Missing, ", ")))
	}
	steps = append(steps,
		"Generate README.md with student info and deliverables",
		"Generate email draft for submission",
		"Record the run under interaction_logs/",
	)

	return Plan{Steps: steps}
}

// String renders the plan as a numbered list.
func (p Plan) String() string {
	var b strings.Builder
	for i, step := range p.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}
