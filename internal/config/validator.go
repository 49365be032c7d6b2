package config

import (
	"fmt"
	"strings"
)

// Vet checks a loaded config for problems. It returns the list of
// issues found; an empty list means the config is usable.
func (c *Config) Vet() []string {
	var issues []string

	if c.Student.Name == "" {
		issues = append(issues, "student.name is empty")
	}
	if c.Student.University == "" {
		issues = append(issues, "student.university is empty")
	}
	if c.Student.Department == "" {
		issues = append(issues, "student.department is empty")
	}
	if c.Repo.URL == "" {
		issues = append(issues, "repo.url is empty")
	}

	switch c.Render.Missing {
	case "", MissingKeep, MissingEmpty:
	default:
		issues = append(issues, fmt.Sprintf(
			"render.missing must be %q or %q, got %q", MissingKeep, MissingEmpty, c.Render.Missing))
	}

	for i, d := range c.Deliverables {
		if strings.TrimSuffix(d, "/") == "" {
			issues = append(issues, fmt.Sprintf("deliverables[%d] is empty", i))
			continue
		}
		if strings.HasPrefix(d, "/") {
			issues = append(issues, fmt.Sprintf("deliverables[%d] must be relative, got %q", i, d))
		}
	}

	return issues
}
