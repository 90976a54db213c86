package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginDefaultCredential(t *testing.T) {
	opts := newTestOpts(t)

	out, err := runCommand(t, NewLoginCommand(opts), "-u", "admin", "-p", "password123")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, admin")
}

func TestLoginWrongPassword(t *testing.T) {
	opts := newTestOpts(t)

	out, err := runCommand(t, NewLoginCommand(opts), "-u", "admin", "-p", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "invalid username or password")
}

func TestLoginUnknownUser(t *testing.T) {
	opts := newTestOpts(t)

	_, err := runCommand(t, NewLoginCommand(opts), "-u", "intruder", "-p", "password123")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLoginMissingFlags(t *testing.T) {
	opts := newTestOpts(t)

	out, err := runCommand(t, NewLoginCommand(opts), "-u", "admin")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "required")
}

func TestPasswdThenLogin(t *testing.T) {
	opts := newTestOpts(t)

	out, err := runCommand(t, NewPasswdCommand(opts), "-u", "admin", "-p", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Password updated for admin")

	_, err = runCommand(t, NewLoginCommand(opts), "-u", "admin", "-p", "password123")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err = runCommand(t, NewLoginCommand(opts), "-u", "admin", "-p", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, admin")
}

func TestPasswdUnknownUser(t *testing.T) {
	opts := newTestOpts(t)

	_, err := runCommand(t, NewPasswdCommand(opts), "-u", "ghost", "-p", "whatever")
	require.Error(t, err)
}
