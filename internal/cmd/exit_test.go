package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/submitkit/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFromError(nil))
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(errors.New("boom")))
	assert.Equal(t, ExitValidationError, ExitCodeFromError(
		oerrors.NewValidationError("bad", "", "", "")))
	assert.Equal(t, ExitFilesystemError, ExitCodeFromError(
		oerrors.NewFilesystemError("write failed", "/x", errors.New("EACCES"))))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(
		oerrors.NewNotFoundError("missing", "/x", "")))
}

func TestExitCodeFromError_ExitErrorWins(t *testing.T) {
	err := oerrors.NewExitError(oerrors.NewValidationError("bad", "", "", ""), 42)

	assert.Equal(t, 42, ExitCodeFromError(err))
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Filesystem Error", ExitCodeName(ExitFilesystemError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
