package config

import (
	"os"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from an environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from the config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Name is the field name (e.g. "name", "repo_url").
	Name string

	// Value is the resolved value; empty if nothing provided it.
	Value string

	// Source indicates where the value came from.
	Source Source
}

// ResolveField resolves one field using precedence:
// (1) command-line flag, (2) environment variable, (3) config file value.
func ResolveField(name, flagValue, envVar, configValue string) ResolvedValue {
	if flagValue != "" {
		return ResolvedValue{Name: name, Value: flagValue, Source: SourceFlag}
	}
	if env := os.Getenv(envVar); env != "" {
		return ResolvedValue{Name: name, Value: env, Source: SourceEnv}
	}
	if configValue != "" {
		return ResolvedValue{Name: name, Value: configValue, Source: SourceConfig}
	}
	return ResolvedValue{Name: name, Source: SourceDefault}
}

// StudentFlags carries the per-command identity flag values.
type StudentFlags struct {
	Name         string
	University   string
	Department   string
	RepoURL      string
	ContactEmail string
}

// ResolveStudent resolves every identity field against the loaded config,
// building the values once so each renderer call shares them.
func ResolveStudent(flags StudentFlags, cfg *Config) []ResolvedValue {
	if cfg == nil {
		cfg = &Config{}
	}
	return []ResolvedValue{
		ResolveField("name", flags.Name, "SUBMITKIT_NAME", cfg.Student.Name),
		ResolveField("university", flags.University, "SUBMITKIT_UNIVERSITY", cfg.Student.University),
		ResolveField("department", flags.Department, "SUBMITKIT_DEPARTMENT", cfg.Student.Department),
		ResolveField("repo_url", flags.RepoURL, "SUBMITKIT_REPO_URL", cfg.Repo.URL),
		ResolveField("contact_email", flags.ContactEmail, "SUBMITKIT_EMAIL", cfg.Student.Email),
	}
}
