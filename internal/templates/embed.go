// Package templates provides embedded submission documents and rendering.
package templates

import (
	"embed"
	"fmt"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DocumentName identifies an embedded document template.
type DocumentName string

const (
	// README is the README.md template.
	README DocumentName = "readme.md"

	// Email is the email_draft.txt template.
	Email DocumentName = "email.txt"
)

// ValidDocuments returns all embedded document names.
func ValidDocuments() []string {
	return []string{
		string(README),
		string(Email),
	}
}

// Source returns the raw template text for a document.
func Source(name DocumentName) (string, error) {
	switch name {
	case README, Email:
		content, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.tmpl", name))
		if err != nil {
			return "", fmt.Errorf("reading embedded template %s: %w", name, err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unknown document: %s", name)
	}
}
