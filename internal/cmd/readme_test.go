package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetStudentFlags clears the shared identity flag values between tests.
func resetStudentFlags() {
	nameFlag = ""
	universityFlag = ""
	departmentFlag = ""
	repoURLFlag = ""
	contactEmailFlag = ""
}

func TestNewReadmeCmd(t *testing.T) {
	cmd := NewReadmeCmd()

	assert.Equal(t, "readme [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("name"))
	assert.NotNil(t, cmd.Flags().Lookup("university"))
	assert.NotNil(t, cmd.Flags().Lookup("repo-url"))
}

func TestReadme_RendersStudentInfo(t *testing.T) {
	t.Cleanup(resetStudentFlags)
	dir := t.TempDir()

	cmd := NewReadmeCmd()
	cmd.SetArgs([]string{dir,
		"--name", "ADITYA",
		"--university", "IIT Kanpur",
		"--department", "MSE",
		"--repo-url", "https://github.com/example/prototype",
		"--contact-email", "student@example.edu",
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "**Student:** ADITYA")
	assert.Contains(t, string(content), "**University:** IIT Kanpur")
	assert.Contains(t, string(content), "**Department:** MSE")
	assert.Contains(t, string(content), "https://github.com/example/prototype")
}

func TestReadme_OverwritesExisting(t *testing.T) {
	t.Cleanup(resetStudentFlags)
	dir := t.TempDir()
	target := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(target, []byte("hand-written"), 0o644))

	cmd := NewReadmeCmd()
	cmd.SetArgs([]string{dir, "--name", "ADITYA"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hand-written")
}

func TestReadme_TooManyArgs(t *testing.T) {
	cmd := NewReadmeCmd()
	cmd.SetArgs([]string{"a", "b"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
