package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// FarmerBalance computes a farmer's net position per product on demand:
// purchases minus returns, plus transfers in, minus transfers out, together
// with the monetary totals. Nothing here is stored, so the result can never
// drift from the underlying ledger rows.
//
// Products the farmer never touched are omitted. An unknown farmer id yields
// a referential error.
func (l *Ledger) FarmerBalance(ctx context.Context, farmerID int64) ([]BalanceLine, error) {
	if farmerID <= 0 {
		return nil, validationError("farmer id must be positive")
	}
	if err := l.requireFarmer(ctx, farmerID); err != nil {
		return nil, err
	}

	rows, err := l.store.Query(ctx, `
		SELECT p.id AS product_id, p.name AS product,
		       COALESCE(pur.qty, 0) AS purchased,
		       COALESCE(pur.paid, 0) AS total_paid,
		       COALESCE(ret.qty, 0) AS returned,
		       COALESCE(ret.refunded, 0) AS total_refunded,
		       COALESCE(tin.qty, 0) AS transferred_in,
		       COALESCE(tout.qty, 0) AS transferred_out
		FROM products p
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS qty, SUM(total_paid) AS paid
			FROM farmer_purchases WHERE farmer_id = ? GROUP BY product_id
		) pur ON pur.product_id = p.id
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS qty, SUM(refund_amount) AS refunded
			FROM returns WHERE farmer_id = ? GROUP BY product_id
		) ret ON ret.product_id = p.id
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS qty
			FROM transfers WHERE to_farmer_id = ? GROUP BY product_id
		) tin ON tin.product_id = p.id
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS qty
			FROM transfers WHERE from_farmer_id = ? GROUP BY product_id
		) tout ON tout.product_id = p.id
		WHERE pur.product_id IS NOT NULL
		   OR ret.product_id IS NOT NULL
		   OR tin.product_id IS NOT NULL
		   OR tout.product_id IS NOT NULL
		ORDER BY p.name ASC
	`, farmerID, farmerID, farmerID, farmerID)
	if err != nil {
		return nil, fmt.Errorf("farmer balance: %w", err)
	}

	lines := make([]BalanceLine, 0, len(rows))
	for _, r := range rows {
		line := BalanceLine{
			ProductID:      rowInt(r, "product_id"),
			Product:        rowString(r, "product"),
			Purchased:      rowFloat(r, "purchased"),
			Returned:       rowFloat(r, "returned"),
			TransferredIn:  rowFloat(r, "transferred_in"),
			TransferredOut: rowFloat(r, "transferred_out"),
			TotalPaid:      rowFloat(r, "total_paid"),
			TotalRefunded:  rowFloat(r, "total_refunded"),
		}
		net := decimal.NewFromFloat(line.Purchased).
			Sub(decimal.NewFromFloat(line.Returned)).
			Add(decimal.NewFromFloat(line.TransferredIn)).
			Sub(decimal.NewFromFloat(line.TransferredOut))
		line.NetQuantity, _ = net.Float64()
		lines = append(lines, line)
	}
	return lines, nil
}
