package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// Default account seeded on first run. A single unsalted SHA-256 digest is
// deliberately weak: it matches the database files of existing installs and
// is a convenience gate for a single-operator desktop tool, not a security
// boundary.
const (
	DefaultUsername = "admin"
	defaultPassword = "password123"
)

// seed inserts first-run data inside one transaction:
//
//   - the default credential row, only if the username is absent
//   - sample catalog and ledger rows, only if the products table is empty
//     (the marker for a genuinely fresh database)
//
// Reopening an existing database is a no-op.
func (s *Store) seed(ctx context.Context) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		digest := sha256.Sum256([]byte(defaultPassword))
		hash := hex.EncodeToString(digest[:])
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (username, password_hash) VALUES (?, ?)`,
			DefaultUsername, hash,
		); err != nil {
			return fmt.Errorf("seed credential: %w", err)
		}

		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		if count > 0 {
			return nil
		}

		return seedSampleData(ctx, tx)
	})
}

// seedSampleData inserts the illustrative catalog and one example shipment.
// Quantities and prices are fixed: existing installs carry exactly these rows
// and behavioral parity depends on them.
func seedSampleData(ctx context.Context, tx *sql.Tx) error {
	for _, name := range []string{"Tomato", "Potato", "Onion"} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO products (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("seed product %q: %w", name, err)
		}
	}

	for _, name := range []string{"Farmer A", "Farmer B", "Farmer C"} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO farmers (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("seed farmer %q: %w", name, err)
		}
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO shipments (notes) VALUES (?)`, "Sample shipment")
	if err != nil {
		return fmt.Errorf("seed shipment: %w", err)
	}
	shipmentID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("seed shipment id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO shipment_products (shipment_id, product_id, unit_price, quantity, subtotal)
		 VALUES (?, 1, 50.00, 100, 5000.00)`,
		shipmentID,
	); err != nil {
		return fmt.Errorf("seed shipment line: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO farmer_purchases (shipment_id, farmer_id, product_id, quantity, unit_price, total_paid)
		 VALUES (?, 1, 1, 50, 65.00, 3250.00)`,
		shipmentID,
	); err != nil {
		return fmt.Errorf("seed farmer purchase: %w", err)
	}

	return nil
}
