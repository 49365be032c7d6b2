// Package config provides configuration loading and management.
package config

// StudentConfig identifies the submitting student.
type StudentConfig struct {
	// Name is the student's full name.
	// Env: SUBMITKIT_NAME
	Name string `mapstructure:"name" yaml:"name,omitempty"`

	// University is the student's institution.
	// Env: SUBMITKIT_UNIVERSITY
	University string `mapstructure:"university" yaml:"university,omitempty"`

	// Department is the student's department.
	// Env: SUBMITKIT_DEPARTMENT
	Department string `mapstructure:"department" yaml:"department,omitempty"`

	// Email is the contact address rendered into the README.
	// Env: SUBMITKIT_EMAIL
	Email string `mapstructure:"email" yaml:"email,omitempty"`
}

// RepoConfig describes the submission repository.
type RepoConfig struct {
	// URL is the public repository URL rendered into the README and email.
	// Env: SUBMITKIT_REPO_URL
	URL string `mapstructure:"url" yaml:"url,omitempty"`
}

// EmailConfig controls the email draft generator.
type EmailConfig struct {
	// Recipients are the addresses listed on the draft's To: line.
	Recipients []string `mapstructure:"recipients" yaml:"recipients,omitempty"`
}

// RenderConfig controls template rendering.
type RenderConfig struct {
	// Missing selects the policy for fields absent from the render
	// context: "keep" leaves the placeholder literal, "empty" renders
	// the empty string. Default: "keep".
	Missing string `mapstructure:"missing" yaml:"missing,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the submitkit CLI configuration.
// Loaded from ~/.submitkit/config.yaml.
type Config struct {
	// Student identifies the submitting student.
	Student StudentConfig `mapstructure:"student" yaml:"student,omitempty"`

	// Repo describes the submission repository.
	Repo RepoConfig `mapstructure:"repo" yaml:"repo,omitempty"`

	// Deliverables is the ordered list of required paths. A trailing
	// slash marks a directory entry.
	Deliverables []string `mapstructure:"deliverables" yaml:"deliverables,omitempty"`

	// Email controls the email draft generator.
	Email EmailConfig `mapstructure:"email" yaml:"email,omitempty"`

	// Render controls template rendering.
	Render RenderConfig `mapstructure:"render" yaml:"render,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultDeliverables is the required path list used when the config
// file does not provide one.
var DefaultDeliverables = []string{
	"agent/",
	"docs/architecture.md",
	"docs/report.pdf",
	"interaction_logs/",
}

// DefaultRecipients is the draft's To: list when the config file does
// not provide one. Placeholder addresses, meant to be replaced with the
// actual course staff.
var DefaultRecipients = []string{
	"instructor@example.edu",
	"course-ta@example.edu",
}

// Render missing-field policies.
const (
	// MissingKeep leaves absent placeholders literal in the output.
	MissingKeep = "keep"

	// MissingEmpty renders absent placeholders as the empty string.
	MissingEmpty = "empty"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `submitkit config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Deliverables: append([]string(nil), DefaultDeliverables...),
		Email: EmailConfig{
			Recipients: append([]string(nil), DefaultRecipients...),
		},
		Render: RenderConfig{
			Missing: MissingKeep,
		},
	}
}

// WithDefaults returns a copy of the config with defaults applied to
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c
	if len(out.Deliverables) == 0 {
		out.Deliverables = append([]string(nil), DefaultDeliverables...)
	}
	if len(out.Email.Recipients) == 0 {
		out.Email.Recipients = append([]string(nil), DefaultRecipients...)
	}
	if out.Render.Missing == "" {
		out.Render.Missing = MissingKeep
	}
	return &out
}
