package deliverables

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/submitkit/cli/internal/errors"
	"github.com/submitkit/cli/internal/testutil"
)

const completeReadme = `# AI Agent Prototype - Deliverables Submission

**Student:** Ada Lovelace
**University:** Example University
**Department:** Mathematics

## Repository
https://github.com/example/prototype

## Deliverables included
- agent/

## How to run
1. See agent/.

## Contact
Ada Lovelace — [ada@example.edu](mailto:ada@example.edu)
`

func TestCheckReadme_Complete(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", completeReadme)

	missing, err := CheckReadme(dir)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCheckReadme_MissingFields(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", "# AI Agent Prototype\n\n**Student:** Ada\n")

	missing, err := CheckReadme(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"university",
		"department",
		"deliverables",
		"how to run",
		"contact",
	}, missing)
}

func TestCheckReadme_NoReadme(t *testing.T) {
	_, err := CheckReadme(t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestCheckReadmeContains(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", completeReadme)

	missing, err := CheckReadmeContains(dir, []string{"Ada Lovelace", "Example University", "Physics"})
	require.NoError(t, err)

	assert.Equal(t, []string{`"Physics"`}, missing)
}
