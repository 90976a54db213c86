// Package receipt renders printable receipts for shipments: the header, its
// line items, the farmer purchases recorded against it, and the derived
// totals. Output is plain text meant for printing or archiving next to the
// database file.
package receipt

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shipledger/shipledger/internal/ledger"
)

// Receipt is the assembled data for one shipment, ready to render.
type Receipt struct {
	Ref       string                  `json:"ref"`
	Shipment  ledger.Shipment         `json:"shipment"`
	Lines     []ledger.ShipmentLine   `json:"lines"`
	Purchases []ledger.FarmerPurchase `json:"purchases"`
	Total     float64                 `json:"total"`
	TotalPaid float64                 `json:"total_paid"`
	PrintedAt time.Time               `json:"printed_at"`
}

// Renderer builds receipts from the ledger. Now and NewRef are swappable for
// deterministic output in tests.
type Renderer struct {
	Ledger *ledger.Ledger
	Now    func() time.Time
	NewRef func() string
}

// NewRenderer constructs a Renderer with wall time and random references.
func NewRenderer(l *ledger.Ledger) *Renderer {
	return &Renderer{Ledger: l, Now: time.Now, NewRef: uuid.NewString}
}

// Build assembles the receipt for one shipment. A missing shipment id yields
// (nil, false, nil), mirroring the ledger's not-found convention.
func (r *Renderer) Build(ctx context.Context, shipmentID int64) (*Receipt, bool, error) {
	shipment, ok, err := r.Ledger.Shipment(ctx, shipmentID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	lines, err := r.Ledger.ShipmentLines(ctx, shipmentID)
	if err != nil {
		return nil, false, err
	}
	purchases, err := r.Ledger.ShipmentPurchases(ctx, shipmentID)
	if err != nil {
		return nil, false, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Subtotal))
	}
	totalPaid := decimal.Zero
	for _, p := range purchases {
		totalPaid = totalPaid.Add(decimal.NewFromFloat(p.TotalPaid))
	}

	totalF, _ := total.Float64()
	totalPaidF, _ := totalPaid.Float64()
	return &Receipt{
		Ref:       r.NewRef(),
		Shipment:  shipment,
		Lines:     lines,
		Purchases: purchases,
		Total:     totalF,
		TotalPaid: totalPaidF,
		PrintedAt: r.Now(),
	}, true, nil
}

// Render writes the plain-text form of the receipt.
func (rc *Receipt) Render(w io.Writer) error {
	p := message.NewPrinter(language.English)

	write := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := write("SHIPMENT RECEIPT #%d\n", rc.Shipment.ID); err != nil {
		return err
	}
	if err := write("Ref: %s\n", rc.Ref); err != nil {
		return err
	}
	if err := write("Date: %s\n", rc.Shipment.CreatedAt.Format("2006-01-02 15:04")); err != nil {
		return err
	}
	if rc.Shipment.Notes != "" {
		if err := write("Notes: %s\n", rc.Shipment.Notes); err != nil {
			return err
		}
	}

	if err := write("\nLine items:\n"); err != nil {
		return err
	}
	for _, line := range rc.Lines {
		if err := write("  - %s: %s x %s = %s\n",
			line.Product,
			p.Sprintf("%d", line.Quantity),
			p.Sprintf("%.2f", line.UnitPrice),
			p.Sprintf("%.2f", line.Subtotal),
		); err != nil {
			return err
		}
	}
	if err := write("Total: %s\n", p.Sprintf("%.2f", rc.Total)); err != nil {
		return err
	}

	if len(rc.Purchases) > 0 {
		if err := write("\nFarmer purchases:\n"); err != nil {
			return err
		}
		for _, purchase := range rc.Purchases {
			if err := write("  - %s / %s: %s x %s = %s\n",
				purchase.Farmer,
				purchase.Product,
				formatQuantity(purchase.Quantity),
				p.Sprintf("%.2f", purchase.UnitPrice),
				p.Sprintf("%.2f", purchase.TotalPaid),
			); err != nil {
				return err
			}
		}
		if err := write("Total paid: %s\n", p.Sprintf("%.2f", rc.TotalPaid)); err != nil {
			return err
		}
	}

	return write("\nPrinted: %s\n", rc.PrintedAt.Format("2006-01-02 15:04"))
}

// formatQuantity trims trailing zeros from decimal quantities ("50", "2.5").
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
