package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/models"
	listsvc "github.com/thenoetrevino/lista/internal/services/list"
	"github.com/thenoetrevino/lista/internal/testutil"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(map[string]any{"title": "Groceries"}))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Groceries", result["data"].(map[string]any)["title"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(mockDataWithID{ID: "1700000000000", Name: "Groceries"}))
	})
	assert.Equal(t, "1700000000000", strings.TrimSpace(output))

	// falls through to pretty print without GetID
	output = testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success([]string{"milk", "eggs"}))
	})
	assert.Equal(t, "milk\neggs\n", output)
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.ErrorWithSuggestion("TEST_ERROR", "error with \"quotes\"", "try again"))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, false, result["success"])

	errData := result["error"].(map[string]any)
	assert.Equal(t, "TEST_ERROR", errData["code"])
	assert.Equal(t, "error with \"quotes\"", errData["message"])
	assert.Equal(t, "try again", errData["suggestion"])
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		code     string
		exitCode int
	}{
		{models.ErrListNotFound, "LIST_NOT_FOUND", ExitNotFound},
		{fmt.Errorf("lookup: %w", models.ErrListNotFound), "LIST_NOT_FOUND", ExitNotFound},
		{models.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
		{models.ErrTitleTooLong, "VALIDATION_ERROR", ExitValidation},
		{models.ErrEmptyItem, "VALIDATION_ERROR", ExitValidation},
		{models.ErrIndexOutOfRange, "VALIDATION_ERROR", ExitValidation},
		{fmt.Errorf("%w: bad json", listsvc.ErrLoadFailed), "DATA_ERROR", ExitDataErr},
		{errors.New("disk full"), "STORAGE_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, exit, _ := Classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.exitCode, exit)
		})
	}
}

func TestFailCarriesExitCode(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	var err error
	testutil.CaptureOutput(t, func() {
		err = formatter.Fail(models.ErrListNotFound)
	})

	assert.ErrorIs(t, err, models.ErrListNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
}
