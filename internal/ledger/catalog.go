package ledger

import (
	"context"
	"fmt"
	"strings"
)

// AddProduct inserts a named product. Names are unique and non-empty; a
// duplicate comes back as a validation error, never a second row.
func (l *Ledger) AddProduct(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, validationError("product name must not be empty")
	}
	id, err := l.store.Exec(ctx, `INSERT INTO products (name) VALUES (?)`, name)
	if err != nil {
		return 0, translate(err, "product", name)
	}
	l.log.Debug().Int64("product_id", id).Str("name", name).Msg("product added")
	return id, nil
}

// RenameProduct changes a product's name, the only mutation allowed once a
// product is referenced by transaction rows.
func (l *Ledger) RenameProduct(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("product name must not be empty")
	}
	if err := l.requireProduct(ctx, id); err != nil {
		return err
	}
	if _, err := l.store.Exec(ctx, `UPDATE products SET name = ? WHERE id = ?`, name, id); err != nil {
		return translate(err, "product", name)
	}
	return nil
}

// Products lists the catalog in name order.
func (l *Ledger) Products(ctx context.Context) ([]Product, error) {
	rows, err := l.store.Query(ctx, `SELECT id, name, created_at FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, Product{
			ID:        rowInt(r, "id"),
			Name:      rowString(r, "name"),
			CreatedAt: rowTime(r, "created_at"),
		})
	}
	return products, nil
}

// AddFarmer inserts a named farmer under the same uniqueness rules as
// AddProduct.
func (l *Ledger) AddFarmer(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, validationError("farmer name must not be empty")
	}
	id, err := l.store.Exec(ctx, `INSERT INTO farmers (name) VALUES (?)`, name)
	if err != nil {
		return 0, translate(err, "farmer", name)
	}
	l.log.Debug().Int64("farmer_id", id).Str("name", name).Msg("farmer added")
	return id, nil
}

// RenameFarmer changes a farmer's name.
func (l *Ledger) RenameFarmer(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("farmer name must not be empty")
	}
	if err := l.requireFarmer(ctx, id); err != nil {
		return err
	}
	if _, err := l.store.Exec(ctx, `UPDATE farmers SET name = ? WHERE id = ?`, name, id); err != nil {
		return translate(err, "farmer", name)
	}
	return nil
}

// Farmers lists the farmers in name order.
func (l *Ledger) Farmers(ctx context.Context) ([]Farmer, error) {
	rows, err := l.store.Query(ctx, `SELECT id, name, created_at FROM farmers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}

	farmers := make([]Farmer, 0, len(rows))
	for _, r := range rows {
		farmers = append(farmers, Farmer{
			ID:        rowInt(r, "id"),
			Name:      rowString(r, "name"),
			CreatedAt: rowTime(r, "created_at"),
		})
	}
	return farmers, nil
}
