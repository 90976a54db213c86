package ledger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shipledger/shipledger/internal/store"
)

// newTestLedger opens a fresh seeded database in a temp dir. Every store
// starts with 3 products, 3 farmers, and one sample shipment (id 1) carrying
// one line and one purchase.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s, zerolog.Nop())
}
