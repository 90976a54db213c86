package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shipledger/shipledger/internal/store"
)

// RecordFarmerPurchase records one farmer buying product against a shipment.
// total_paid is recomputed as quantity times unit_price.
func (l *Ledger) RecordFarmerPurchase(ctx context.Context, in PurchaseInput) (int64, error) {
	if err := l.checkInput(in); err != nil {
		return 0, err
	}
	if err := l.requireShipment(ctx, in.ShipmentID); err != nil {
		return 0, err
	}
	if err := l.requireFarmer(ctx, in.FarmerID); err != nil {
		return 0, err
	}
	if err := l.requireProduct(ctx, in.ProductID); err != nil {
		return 0, err
	}

	totalPaid := mulAmount(in.Quantity, in.UnitPrice)
	id, err := l.store.Exec(ctx,
		`INSERT INTO farmer_purchases (shipment_id, farmer_id, product_id, quantity, unit_price, total_paid)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.ShipmentID, in.FarmerID, in.ProductID, in.Quantity, in.UnitPrice, totalPaid,
	)
	if err != nil {
		return 0, translate(err, "farmer purchase", "")
	}

	l.log.Debug().Int64("purchase_id", id).Int64("shipment_id", in.ShipmentID).
		Float64("total_paid", totalPaid).Msg("farmer purchase recorded")
	return id, nil
}

// RecordTransfer appends a movement of product quantity between two distinct
// farmers. There is no update or delete path for transfers.
func (l *Ledger) RecordTransfer(ctx context.Context, in TransferInput) (int64, error) {
	if err := l.checkInput(in); err != nil {
		return 0, err
	}
	if err := l.requireFarmer(ctx, in.FromFarmerID); err != nil {
		return 0, err
	}
	if err := l.requireFarmer(ctx, in.ToFarmerID); err != nil {
		return 0, err
	}
	if err := l.requireProduct(ctx, in.ProductID); err != nil {
		return 0, err
	}

	id, err := l.store.Exec(ctx,
		`INSERT INTO transfers (from_farmer_id, to_farmer_id, product_id, quantity, note)
		 VALUES (?, ?, ?, ?, ?)`,
		in.FromFarmerID, in.ToFarmerID, in.ProductID, in.Quantity, in.Note,
	)
	if err != nil {
		return 0, translate(err, "transfer", "")
	}

	l.log.Debug().Int64("transfer_id", id).
		Int64("from", in.FromFarmerID).Int64("to", in.ToFarmerID).Msg("transfer recorded")
	return id, nil
}

// RecordReturn appends a farmer returning product quantity with its refund.
// There is no update or delete path for returns.
func (l *Ledger) RecordReturn(ctx context.Context, in ReturnInput) (int64, error) {
	if err := l.checkInput(in); err != nil {
		return 0, err
	}
	if err := l.requireFarmer(ctx, in.FarmerID); err != nil {
		return 0, err
	}
	if err := l.requireProduct(ctx, in.ProductID); err != nil {
		return 0, err
	}

	id, err := l.store.Exec(ctx,
		`INSERT INTO returns (farmer_id, product_id, quantity, refund_amount, note)
		 VALUES (?, ?, ?, ?, ?)`,
		in.FarmerID, in.ProductID, in.Quantity, in.RefundAmount, in.Note,
	)
	if err != nil {
		return 0, translate(err, "return", "")
	}

	l.log.Debug().Int64("return_id", id).Int64("farmer_id", in.FarmerID).Msg("return recorded")
	return id, nil
}

// Transfers lists all transfers, newest first, with names joined in.
func (l *Ledger) Transfers(ctx context.Context) ([]Transfer, error) {
	rows, err := l.store.Query(ctx, `
		SELECT t.id, t.from_farmer_id, ff.name AS from_farmer, t.to_farmer_id, tf.name AS to_farmer,
		       t.product_id, p.name AS product, t.quantity, t.note, t.created_at
		FROM transfers t
		JOIN farmers ff ON ff.id = t.from_farmer_id
		JOIN farmers tf ON tf.id = t.to_farmer_id
		JOIN products p ON p.id = t.product_id
		ORDER BY t.created_at DESC, t.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	transfers := make([]Transfer, 0, len(rows))
	for _, r := range rows {
		transfers = append(transfers, Transfer{
			ID:           rowInt(r, "id"),
			FromFarmerID: rowInt(r, "from_farmer_id"),
			FromFarmer:   rowString(r, "from_farmer"),
			ToFarmerID:   rowInt(r, "to_farmer_id"),
			ToFarmer:     rowString(r, "to_farmer"),
			ProductID:    rowInt(r, "product_id"),
			Product:      rowString(r, "product"),
			Quantity:     rowFloat(r, "quantity"),
			Note:         rowString(r, "note"),
			CreatedAt:    rowTime(r, "created_at"),
		})
	}
	return transfers, nil
}

// Returns lists all returns, newest first, with names joined in.
func (l *Ledger) Returns(ctx context.Context) ([]Return, error) {
	rows, err := l.store.Query(ctx, `
		SELECT r.id, r.farmer_id, f.name AS farmer, r.product_id, p.name AS product,
		       r.quantity, r.refund_amount, r.note, r.created_at
		FROM returns r
		JOIN farmers f ON f.id = r.farmer_id
		JOIN products p ON p.id = r.product_id
		ORDER BY r.created_at DESC, r.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}

	returns := make([]Return, 0, len(rows))
	for _, r := range rows {
		returns = append(returns, Return{
			ID:           rowInt(r, "id"),
			FarmerID:     rowInt(r, "farmer_id"),
			Farmer:       rowString(r, "farmer"),
			ProductID:    rowInt(r, "product_id"),
			Product:      rowString(r, "product"),
			Quantity:     rowFloat(r, "quantity"),
			RefundAmount: rowFloat(r, "refund_amount"),
			Note:         rowString(r, "note"),
			CreatedAt:    rowTime(r, "created_at"),
		})
	}
	return returns, nil
}

// scanPurchases converts joined purchase rows; shared by the shipment and
// global listings.
func scanPurchases(rows []store.Row) []FarmerPurchase {
	purchases := make([]FarmerPurchase, 0, len(rows))
	for _, r := range rows {
		purchases = append(purchases, FarmerPurchase{
			ID:         rowInt(r, "id"),
			ShipmentID: rowInt(r, "shipment_id"),
			FarmerID:   rowInt(r, "farmer_id"),
			Farmer:     rowString(r, "farmer"),
			ProductID:  rowInt(r, "product_id"),
			Product:    rowString(r, "product"),
			Quantity:   rowFloat(r, "quantity"),
			UnitPrice:  rowFloat(r, "unit_price"),
			TotalPaid:  rowFloat(r, "total_paid"),
			CreatedAt:  rowTime(r, "created_at"),
		})
	}
	return purchases
}

// mulAmount computes quantity times unit_price with decimal arithmetic.
func mulAmount(quantity, unitPrice float64) float64 {
	f, _ := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).Float64()
	return f
}
