// Package auth implements the credential gate for the shipment ledger.
//
// This is NOT a security boundary. The scheme is a single shared account with
// an unsalted SHA-256 digest, kept exactly this weak for compatibility with
// the database files of existing installs. It gates a single-operator desktop
// tool against accidental use, nothing more; do not reuse it anywhere a real
// authentication scheme is called for.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shipledger/shipledger/internal/store"
)

// Gate verifies credentials against the store's users table.
type Gate struct {
	store *store.Store
	log   zerolog.Logger
}

// New constructs a Gate over the given store.
func New(s *store.Store, log zerolog.Logger) *Gate {
	return &Gate{store: s, log: log}
}

// Verify reports whether username and password match a stored credential.
// A failed attempt is logged at warn level with the username only - never
// the password. Storage errors also count as a failed attempt.
func (g *Gate) Verify(ctx context.Context, username, password string) bool {
	rows, err := g.store.Query(ctx,
		`SELECT password_hash FROM users WHERE username = ?`, username)
	if err != nil {
		g.log.Error().Err(err).Str("username", username).Msg("credential lookup failed")
		return false
	}
	if len(rows) != 1 {
		g.log.Warn().Str("username", username).Msg("failed login attempt")
		return false
	}

	stored, _ := rows[0]["password_hash"].(string)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(HashPassword(password))) != 1 {
		g.log.Warn().Str("username", username).Msg("failed login attempt")
		return false
	}
	return true
}

// SetPassword replaces the stored hash for an existing username. This is the
// normal post-seed path for changing the default password.
func (g *Gate) SetPassword(ctx context.Context, username, password string) error {
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	rows, err := g.store.Query(ctx, `SELECT id FROM users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("unknown username %q", username)
	}

	if _, err := g.store.Exec(ctx,
		`UPDATE users SET password_hash = ? WHERE username = ?`,
		HashPassword(password), username,
	); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// HashPassword returns the hex SHA-256 digest used by the users table.
// Unsalted on purpose - see the package comment.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}
