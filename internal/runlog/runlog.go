// Package runlog records run outcomes under interaction_logs/ so a
// submission carries a trace of how it was packaged.
package runlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	oerrors "github.com/submitkit/cli/internal/errors"
)

// logsDir is the directory run records are written to, relative to the
// checkout root. It is itself one of the default deliverables.
const logsDir = "interaction_logs"

// StepResult is the outcome of one step of a run.
type StepResult struct {
	// Step names the action (e.g. "render readme", "repair").
	Step string `yaml:"step"`

	// OK reports whether the step completed.
	OK bool `yaml:"ok"`

	// Message carries a short human-readable outcome.
	Message string `yaml:"message,omitempty"`

	// Created lists paths the step created, if any.
	Created []string `yaml:"created,omitempty"`
}

// Record is one full run of the packaging sequence.
type Record struct {
	// StartedAt is the run start time.
	StartedAt time.Time `yaml:"startedAt"`

	// RepoPath is the checkout the run operated on.
	RepoPath string `yaml:"repoPath"`

	// Steps are the per-step outcomes in execution order.
	Steps []StepResult `yaml:"steps"`
}

// NewRecord starts a record for a run against repoPath.
func NewRecord(repoPath string) *Record {
	return &Record{
		StartedAt: time.Now(),
		RepoPath:  repoPath,
	}
}

// Append adds a step outcome to the record.
func (r *Record) Append(step StepResult) {
	r.Steps = append(r.Steps, step)
}

// Write serializes the record as YAML into interaction_logs/ under
// repoPath and returns the file path. The directory is created if
// missing.
func (r *Record) Write() (string, error) {
	dir := filepath.Join(r.RepoPath, logsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", oerrors.NewFilesystemError("could not create interaction_logs directory", dir, err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshaling run record: %w", err)
	}

	base := fmt.Sprintf("run_%s", r.StartedAt.Format("20060102_150405"))
	for n := 0; ; n++ {
		name := base
		if n > 0 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		path := filepath.Join(dir, name+".yaml")

		// O_EXCL keeps a second run in the same second from clobbering
		// the first record; collisions get a numeric suffix.
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", oerrors.NewFilesystemError("could not write run record", path, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", oerrors.NewFilesystemError("could not write run record", path, err)
		}
		if err := f.Close(); err != nil {
			return "", oerrors.NewFilesystemError("could not write run record", path, err)
		}
		return path, nil
	}
}
