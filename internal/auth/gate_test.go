package auth

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipledger/shipledger/internal/store"
)

func newTestGate(t *testing.T) (*Gate, *bytes.Buffer) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	var logBuf bytes.Buffer
	return New(s, zerolog.New(&logBuf)), &logBuf
}

func TestVerify_SeededDefaultCredential(t *testing.T) {
	g, _ := newTestGate(t)
	assert.True(t, g.Verify(context.Background(), "admin", "password123"))
}

func TestVerify_WrongPassword(t *testing.T) {
	g, logBuf := newTestGate(t)

	assert.False(t, g.Verify(context.Background(), "admin", "hunter2"))

	logged := logBuf.String()
	assert.Contains(t, logged, "failed login attempt")
	assert.Contains(t, logged, "admin")
	assert.NotContains(t, logged, "hunter2", "attempted password must never be logged")
}

func TestVerify_UnknownUsername(t *testing.T) {
	g, logBuf := newTestGate(t)

	assert.False(t, g.Verify(context.Background(), "root", "password123"))
	assert.Contains(t, logBuf.String(), "root")
}

func TestSetPassword_ChangesCredential(t *testing.T) {
	g, _ := newTestGate(t)
	ctx := context.Background()

	require.NoError(t, g.SetPassword(ctx, "admin", "orchard-gate"))

	assert.False(t, g.Verify(ctx, "admin", "password123"))
	assert.True(t, g.Verify(ctx, "admin", "orchard-gate"))
}

func TestSetPassword_UnknownUsername(t *testing.T) {
	g, _ := newTestGate(t)
	require.Error(t, g.SetPassword(context.Background(), "nobody", "pw"))
}

func TestSetPassword_EmptyPassword(t *testing.T) {
	g, _ := newTestGate(t)
	require.Error(t, g.SetPassword(context.Background(), "admin", ""))
}

func TestHashPassword_MatchesKnownDigest(t *testing.T) {
	// sha256("password123"), the digest existing installs carry.
	assert.Equal(t,
		"ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f",
		HashPassword("password123"),
	)
}
