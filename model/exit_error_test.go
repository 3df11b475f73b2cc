package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorWrapping(t *testing.T) {
	rootErr := errors.New("no UIScreen")
	exitErr := NewExitError(DisplayUnavailable, rootErr)

	require.NotNil(t, exitErr)
	assert.Equal(t, rootErr, exitErr.Err)
	assert.Contains(t, exitErr.Error(), "Exit code 2")
	assert.ErrorIs(t, exitErr, rootErr)

	code, cause := ExitCodeFromError(fmt.Errorf("resolve size: %w", exitErr))
	assert.Equal(t, DisplayUnavailable, code)
	assert.Equal(t, rootErr, cause)
}

func TestExitCodeFromNonExitError(t *testing.T) {
	plainErr := errors.New("plain")

	code, cause := ExitCodeFromError(plainErr)
	assert.Equal(t, UnknownError, code)
	assert.Equal(t, plainErr, cause)
}

func TestExitCodeFromNilError(t *testing.T) {
	code, cause := ExitCodeFromError(nil)
	assert.Equal(t, NoError, code)
	assert.Nil(t, cause)
}

func TestExitErrorWithoutCause(t *testing.T) {
	exitErr := NewExitError(InvalidInput, nil)

	assert.Equal(t, "Exit code 3", exitErr.Error())
	code, cause := ExitCodeFromError(exitErr)
	assert.Equal(t, InvalidInput, code)
	assert.Nil(t, cause)
}
