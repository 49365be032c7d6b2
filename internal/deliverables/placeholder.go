package deliverables

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/submitkit/cli/internal/errors"
)

// gitkeepName is the marker file written into placeholder directories so
// git tracks them.
const gitkeepName = ".gitkeep"

// CreatePlaceholder creates an empty stand-in for a missing entry.
// Directory entries are created with all missing ancestors plus a
// .gitkeep marker; file entries get their ancestors created and a
// one-line placeholder body. The call is idempotent: an entry that
// already exists is left alone and a second call is always safe.
func CreatePlaceholder(baseDir string, e Entry) error {
	target := e.Resolve(baseDir)

	if e.IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return oerrors.NewFilesystemError(
				fmt.Sprintf("could not create placeholder directory %s", e.Path), target, err)
		}
		keep := filepath.Join(target, gitkeepName)
		if _, err := os.Stat(keep); err == nil {
			return nil
		}
		if err := os.WriteFile(keep, nil, 0o644); err != nil {
			return oerrors.NewFilesystemError(
				fmt.Sprintf("could not create %s in %s", gitkeepName, e.Path), keep, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return oerrors.NewFilesystemError(
			fmt.Sprintf("could not create parent directories for %s", e.Path), target, err)
	}
	if _, err := os.Stat(target); err == nil {
		return nil
	}
	body := fmt.Sprintf("# Placeholder for %s\n", e.Path)
	if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
		return oerrors.NewFilesystemError(
			fmt.Sprintf("could not create placeholder file %s", e.Path), target, err)
	}
	return nil
}

// Repair creates placeholders for every missing entry of the spec and
// returns the raw paths it created, in spec order.
func Repair(baseDir string, spec Spec) ([]string, error) {
	var created []string
	for _, e := range spec.Entries {
		if Exists(baseDir, e) {
			continue
		}
		if err := CreatePlaceholder(baseDir, e); err != nil {
			return created, err
		}
		created = append(created, e.Path)
	}
	return created, nil
}
