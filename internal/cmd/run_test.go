package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRun(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(resetStudentFlags)
	t.Cleanup(func() { runNoLogFlag = false })
	cmd := NewRunCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestRun_FullSequence(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execRun(t, dir,
		"--name", "ADITYA",
		"--university", "IIT Kanpur",
		"--department", "MSE",
		"--repo-url", "https://github.com/example/prototype",
	))

	// Rendered documents
	assert.FileExists(t, filepath.Join(dir, "README.md"))
	assert.FileExists(t, filepath.Join(dir, "email_draft.txt"))

	// Deliverable directories and placeholders
	assert.DirExists(t, filepath.Join(dir, "agent"))
	assert.DirExists(t, filepath.Join(dir, "docs"))
	assert.FileExists(t, filepath.Join(dir, "docs", "architecture.md"))
	assert.FileExists(t, filepath.Join(dir, "docs", "report.pdf"))
	assert.DirExists(t, filepath.Join(dir, "interaction_logs"))

	// Run record
	entries, err := os.ReadDir(filepath.Join(dir, "interaction_logs"))
	require.NoError(t, err)
	var records int
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".yaml" {
			records++
		}
	}
	assert.Equal(t, 1, records)
}

func TestRun_SecondRunFindsNothingMissing(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execRun(t, dir, "--name", "ADITYA", "--no-log"))
	require.NoError(t, execRun(t, dir, "--name", "ADITYA", "--no-log"))

	// Placeholders were not duplicated or overwritten
	content, err := os.ReadFile(filepath.Join(dir, "docs", "architecture.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Placeholder for docs/architecture.md\n", string(content))
}

func TestRun_NoLog(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execRun(t, dir, "--name", "ADITYA", "--no-log"))

	entries, err := os.ReadDir(filepath.Join(dir, "interaction_logs"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".yaml", filepath.Ext(e.Name()))
	}
}

func TestRun_RenderedReadmePassesVerify(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execRun(t, dir,
		"--name", "ADITYA",
		"--university", "IIT Kanpur",
		"--department", "MSE",
		"--repo-url", "https://github.com/example/prototype",
		"--contact-email", "student@example.edu",
		"--no-log",
	))

	verify := NewVerifyCmd()
	verify.SetArgs([]string{dir})
	verify.SetOut(&bytes.Buffer{})
	verify.SetErr(&bytes.Buffer{})

	assert.NoError(t, verify.Execute())
}
