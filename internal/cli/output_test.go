package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipledger/shipledger/internal/ledger"
)

func TestFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &Formatter{Format: "json", Writer: buf}

	err := f.Emit(map[string]string{"result": "success"}, func(w io.Writer) error {
		t.Fatal("text function must not run in json mode")
		return nil
	})
	require.NoError(t, err)

	var resp response
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &Formatter{Format: "text", Writer: buf}

	err := f.Emit(nil, func(w io.Writer) error {
		_, err := io.WriteString(w, "all good\n")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "all good\n", buf.String())
}

func TestFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &Formatter{Format: "json", Writer: buf}

	err := f.Fail(errors.New("something broke"))
	require.Error(t, err)

	var resp response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &Formatter{Format: "text", Writer: buf}

	err := f.Fail(errors.New("something broke"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Error: something broke")
}

func TestFail_ExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"exit_error_kept", NewExitError(ExitFailure, "no match"), ExitFailure},
		{"command_exit_error_kept", NewExitError(ExitCommandError, "bad flag"), ExitCommandError},
		{"validation_is_failure", &ledger.DomainError{Code: ledger.ErrCodeValidation, Message: "quantity must be positive"}, ExitFailure},
		{"reference_is_failure", &ledger.DomainError{Code: ledger.ErrCodeReference, Message: "farmer 9 not found"}, ExitFailure},
		{"unknown_is_command_error", errors.New("disk on fire"), ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Formatter{Format: "text", Writer: &bytes.Buffer{}}
			err := f.Fail(tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.want, GetExitCode(err))
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "outer", errors.New("inner"))))
}

func TestExitError_UnwrapsCause(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapExitError(ExitCommandError, "open database", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "open database")
	assert.Contains(t, err.Error(), "root cause")
}
