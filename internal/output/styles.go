package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: checkout paths, deliverable names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "present" and "created" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "missing" status (reportable, not fatal).
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (paths, deliverable entries).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (rendering, checking, repairing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (step numbers, separators).
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Deliverable status constants.
const (
	StatusPresent = "present"
	StatusMissing = "missing"
	StatusCreated = "created"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a deliverable status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPresent:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusMissing:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreenCheck)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}
