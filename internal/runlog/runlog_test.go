package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecord_Write(t *testing.T) {
	dir := t.TempDir()

	rec := NewRecord(dir)
	rec.Append(StepResult{Step: "render readme", OK: true, Message: "README.md"})
	rec.Append(StepResult{Step: "repair", OK: true, Created: []string{"agent/", "docs/report.pdf"}})

	path, err := rec.Write()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "interaction_logs"), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "run_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Record
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, dir, got.RepoPath)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "render readme", got.Steps[0].Step)
	assert.True(t, got.Steps[0].OK)
	assert.Equal(t, []string{"agent/", "docs/report.pdf"}, got.Steps[1].Created)
}

func TestRecord_WriteSameSecondGetsDistinctFiles(t *testing.T) {
	dir := t.TempDir()

	rec := NewRecord(dir)
	rec.Append(StepResult{Step: "render readme", OK: true})

	first, err := rec.Write()
	require.NoError(t, err)

	// Same StartedAt, so the same base filename
	second, err := rec.Write()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.FileExists(t, first)
	assert.FileExists(t, second)
}

func TestRecord_WriteCreatesLogsDir(t *testing.T) {
	dir := t.TempDir()

	_, err := NewRecord(dir).Write()
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, "interaction_logs"))
}
