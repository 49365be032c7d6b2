package deliverables

import (
	"os"
)

// Validate checks each entry of the spec under baseDir and returns the
// raw paths that do not exist, preserving input order. Directory entries
// require a directory, file entries a file. A missing entry is the
// normal, reportable condition, never an error.
func Validate(baseDir string, spec Spec) []string {
	var missing []string
	for _, e := range spec.Entries {
		if !Exists(baseDir, e) {
			missing = append(missing, e.Path)
		}
	}
	return missing
}

// Exists reports whether a single entry is present under baseDir with
// the expected kind.
func Exists(baseDir string, e Entry) bool {
	info, err := os.Stat(e.Resolve(baseDir))
	if err != nil {
		return false
	}
	if e.IsDir() {
		return info.IsDir()
	}
	return !info.IsDir()
}
