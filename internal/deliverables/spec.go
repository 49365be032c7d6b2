// Package deliverables validates a submission checkout against its
// required path list and repairs missing entries with placeholders.
package deliverables

import (
	"path/filepath"
	"strings"
)

// Entry is one required path. A trailing slash in the raw path marks a
// directory entry; everything else is a file entry.
type Entry struct {
	// Path is the raw relative path as listed, trailing slash included.
	Path string
}

// IsDir reports whether the entry denotes a directory.
func (e Entry) IsDir() bool {
	return strings.HasSuffix(e.Path, "/")
}

// Resolve returns the entry's absolute location under baseDir.
func (e Entry) Resolve(baseDir string) string {
	return filepath.Join(baseDir, strings.TrimSuffix(e.Path, "/"))
}

// Spec is an ordered list of required paths for a submission checkout.
type Spec struct {
	Entries []Entry
}

// NewSpec builds a Spec from raw path strings, preserving order.
func NewSpec(paths []string) Spec {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Entry{Path: p})
	}
	return Spec{Entries: entries}
}
