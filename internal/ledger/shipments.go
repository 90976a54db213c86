package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// CreateShipment inserts a shipment header and its line items as one unit.
// Every line's subtotal is recomputed as unit_price times quantity; caller
// input is validated and references checked before anything is written. If
// any line insert fails, the whole shipment rolls back - a header with
// partial lines never exists.
func (l *Ledger) CreateShipment(ctx context.Context, note string, lines []LineInput) (int64, error) {
	if len(lines) == 0 {
		return 0, validationError("a shipment needs at least one line item")
	}
	for i, line := range lines {
		if err := l.checkInput(line); err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := l.requireProduct(ctx, line.ProductID); err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	var shipmentID int64
	err := l.store.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO shipments (notes) VALUES (?)`, note)
		if err != nil {
			return fmt.Errorf("insert shipment: %w", err)
		}
		shipmentID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("shipment id: %w", err)
		}

		for i, line := range lines {
			subtotal := lineSubtotal(line.UnitPrice, line.Quantity)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO shipment_products (shipment_id, product_id, unit_price, quantity, subtotal)
				 VALUES (?, ?, ?, ?, ?)`,
				shipmentID, line.ProductID, line.UnitPrice, line.Quantity, subtotal,
			); err != nil {
				return fmt.Errorf("insert line %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, translate(err, "shipment line", "")
	}

	l.log.Debug().Int64("shipment_id", shipmentID).Int("lines", len(lines)).Msg("shipment created")
	return shipmentID, nil
}

// DeleteShipment removes a shipment. Its line items and farmer purchases go
// with it via the cascade foreign keys. Deleting a missing id is a no-op.
func (l *Ledger) DeleteShipment(ctx context.Context, id int64) error {
	if _, err := l.store.Exec(ctx, `DELETE FROM shipments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete shipment %d: %w", id, err)
	}
	l.log.Debug().Int64("shipment_id", id).Msg("shipment deleted")
	return nil
}

// Shipment fetches one shipment header. A missing id is not an error: the
// second return value reports whether the shipment exists.
func (l *Ledger) Shipment(ctx context.Context, id int64) (Shipment, bool, error) {
	rows, err := l.store.Query(ctx,
		`SELECT id, created_at, notes FROM shipments WHERE id = ?`, id)
	if err != nil {
		return Shipment{}, false, fmt.Errorf("get shipment %d: %w", id, err)
	}
	if len(rows) == 0 {
		return Shipment{}, false, nil
	}
	r := rows[0]
	return Shipment{
		ID:        rowInt(r, "id"),
		CreatedAt: rowTime(r, "created_at"),
		Notes:     rowString(r, "notes"),
	}, true, nil
}

// Shipments lists all shipments, newest first.
func (l *Ledger) Shipments(ctx context.Context) ([]Shipment, error) {
	rows, err := l.store.Query(ctx,
		`SELECT id, created_at, notes FROM shipments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	shipments := make([]Shipment, 0, len(rows))
	for _, r := range rows {
		shipments = append(shipments, Shipment{
			ID:        rowInt(r, "id"),
			CreatedAt: rowTime(r, "created_at"),
			Notes:     rowString(r, "notes"),
		})
	}
	return shipments, nil
}

// ShipmentLines lists the line items of one shipment with product names
// joined in. An unknown shipment id yields an empty slice.
func (l *Ledger) ShipmentLines(ctx context.Context, shipmentID int64) ([]ShipmentLine, error) {
	rows, err := l.store.Query(ctx, `
		SELECT sp.id, sp.shipment_id, sp.product_id, p.name AS product, sp.unit_price, sp.quantity, sp.subtotal
		FROM shipment_products sp
		JOIN products p ON p.id = sp.product_id
		WHERE sp.shipment_id = ?
		ORDER BY sp.id ASC
	`, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment lines: %w", err)
	}

	lines := make([]ShipmentLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, ShipmentLine{
			ID:         rowInt(r, "id"),
			ShipmentID: rowInt(r, "shipment_id"),
			ProductID:  rowInt(r, "product_id"),
			Product:    rowString(r, "product"),
			UnitPrice:  rowFloat(r, "unit_price"),
			Quantity:   rowInt(r, "quantity"),
			Subtotal:   rowFloat(r, "subtotal"),
		})
	}
	return lines, nil
}

// ShipmentPurchases lists the farmer purchases recorded against one shipment,
// oldest first, with farmer and product names joined in.
func (l *Ledger) ShipmentPurchases(ctx context.Context, shipmentID int64) ([]FarmerPurchase, error) {
	rows, err := l.store.Query(ctx, `
		SELECT fp.id, fp.shipment_id, fp.farmer_id, f.name AS farmer, fp.product_id, p.name AS product,
		       fp.quantity, fp.unit_price, fp.total_paid, fp.created_at
		FROM farmer_purchases fp
		JOIN farmers f ON f.id = fp.farmer_id
		JOIN products p ON p.id = fp.product_id
		WHERE fp.shipment_id = ?
		ORDER BY fp.id ASC
	`, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment purchases: %w", err)
	}
	return scanPurchases(rows), nil
}

// lineSubtotal computes unit_price times quantity with decimal arithmetic so
// the stored subtotal is exact for the factors given.
func lineSubtotal(unitPrice float64, quantity int64) float64 {
	f, _ := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(quantity)).Float64()
	return f
}
