package deliverables

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	oerrors "github.com/submitkit/cli/internal/errors"
)

// readmeField is one required README section or field.
type readmeField struct {
	Name    string
	Pattern *regexp.Regexp
}

// requiredReadmeFields are the sections a submission README must carry.
var requiredReadmeFields = []readmeField{
	{"title", regexp.MustCompile(`(?m)^#\s+.*[Aa]gent.*[Pp]rototype`)},
	{"student", regexp.MustCompile(`(?i)\*\*Student:\*\*`)},
	{"university", regexp.MustCompile(`(?i)\*\*University:\*\*`)},
	{"department", regexp.MustCompile(`(?i)\*\*Department:\*\*`)},
	{"deliverables", regexp.MustCompile(`(?m)^##\s+.*[Dd]eliverables`)},
	{"how to run", regexp.MustCompile(`(?m)^##\s+.*[Hh]ow to run`)},
	{"contact", regexp.MustCompile(`(?m)^##\s+.*[Cc]ontact`)},
}

// ReadmeFieldNames returns the names of all required README fields.
func ReadmeFieldNames() []string {
	out := make([]string, 0, len(requiredReadmeFields))
	for _, f := range requiredReadmeFields {
		out = append(out, f.Name)
	}
	return out
}

// CheckReadme reads README.md under baseDir and returns the names of
// required fields that are absent, in declaration order. A missing
// README file is reported as a not-found error; missing fields are the
// reportable condition.
func CheckReadme(baseDir string) ([]string, error) {
	path := filepath.Join(baseDir, "README.md")

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"README.md does not exist", path,
				"Run 'submitkit readme' to generate it.")
		}
		return nil, oerrors.NewFilesystemError("could not read README.md", path, err)
	}

	var missing []string
	for _, f := range requiredReadmeFields {
		if !f.Pattern.Match(content) {
			missing = append(missing, f.Name)
		}
	}
	return missing, nil
}

// CheckReadmeContains verifies the README contains each of the given
// literal values (used to confirm the render context made it into the
// document).
func CheckReadmeContains(baseDir string, values []string) ([]string, error) {
	path := filepath.Join(baseDir, "README.md")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.NewFilesystemError("could not read README.md", path, err)
	}

	var missing []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if !bytes.Contains(content, []byte(v)) {
			missing = append(missing, fmt.Sprintf("%q", v))
		}
	}
	return missing, nil
}
