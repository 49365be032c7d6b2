package cmd

import (
	"github.com/spf13/cobra"

	"github.com/submitkit/cli/internal/config"
	"github.com/submitkit/cli/internal/output"
	"github.com/submitkit/cli/internal/templates"
)

// Student identity flags shared by readme, email, and run.
var (
	nameFlag         string
	universityFlag   string
	departmentFlag   string
	repoURLFlag      string
	contactEmailFlag string
)

// addStudentFlags registers the identity flags on a command.
func addStudentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&nameFlag, "name", "", "Student name (env: SUBMITKIT_NAME)")
	cmd.Flags().StringVar(&universityFlag, "university", "", "University (env: SUBMITKIT_UNIVERSITY)")
	cmd.Flags().StringVar(&departmentFlag, "department", "", "Department (env: SUBMITKIT_DEPARTMENT)")
	cmd.Flags().StringVar(&repoURLFlag, "repo-url", "", "Repository URL (env: SUBMITKIT_REPO_URL)")
	cmd.Flags().StringVar(&contactEmailFlag, "contact-email", "", "Contact email (env: SUBMITKIT_EMAIL)")
}

// repoPathArg returns the checkout path argument, defaulting to the
// current directory.
func repoPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// buildRenderContext resolves every identity field once (flag > env >
// config) and builds the render context shared by all renderer calls.
func buildRenderContext(cfg *config.Config) templates.RenderContext {
	resolved := config.ResolveStudent(config.StudentFlags{
		Name:         nameFlag,
		University:   universityFlag,
		Department:   departmentFlag,
		RepoURL:      repoURLFlag,
		ContactEmail: contactEmailFlag,
	}, cfg)

	ctx := make(templates.RenderContext, len(resolved))
	for _, v := range resolved {
		output.Debug("resolved field", "field", v.Name, "source", string(v.Source))
		if v.Value != "" {
			ctx[v.Name] = v.Value
		}
	}
	return ctx
}

// newRenderer builds a renderer from the loaded config and flag set.
func newRenderer(cfg *config.Config) *templates.Renderer {
	return templates.NewRenderer(
		buildRenderContext(cfg),
		templates.WithDeliverables(cfg.Deliverables),
		templates.WithRecipients(cfg.Email.Recipients),
		templates.WithMissingPolicy(templates.ParseMissingPolicy(cfg.Render.Missing)),
	)
}
