package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/submitkit/cli/internal/errors"
	"github.com/submitkit/cli/internal/testutil"
)

func execVerify(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewVerifyCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestVerify_NoReadme(t *testing.T) {
	err := execVerify(t, t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestVerify_IncompleteReadme(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", "# Notes\n\nsome text\n")

	err := execVerify(t, dir)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "required field")
}

func TestVerify_GeneratedReadme(t *testing.T) {
	t.Cleanup(resetStudentFlags)
	dir := t.TempDir()

	readme := NewReadmeCmd()
	readme.SetArgs([]string{dir,
		"--name", "ADITYA",
		"--university", "IIT Kanpur",
		"--department", "MSE",
	})
	readme.SetOut(&bytes.Buffer{})
	readme.SetErr(&bytes.Buffer{})
	require.NoError(t, readme.Execute())

	assert.NoError(t, execVerify(t, dir))
}
