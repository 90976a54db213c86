package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShipment_ComputesSubtotals(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.CreateShipment(ctx, "Batch 1", []LineInput{
		{ProductID: 1, UnitPrice: 50.00, Quantity: 100},
	})
	require.NoError(t, err)

	lines, err := l.ShipmentLines(ctx, id)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 50.00, lines[0].UnitPrice)
	assert.Equal(t, int64(100), lines[0].Quantity)
	assert.Equal(t, 5000.00, lines[0].Subtotal)
}

func TestCreateShipment_MultipleLines(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.CreateShipment(ctx, "mixed crates", []LineInput{
		{ProductID: 1, UnitPrice: 12.75, Quantity: 4},
		{ProductID: 2, UnitPrice: 0.10, Quantity: 3},
		{ProductID: 3, UnitPrice: 8.00, Quantity: 0},
	})
	require.NoError(t, err)

	lines, err := l.ShipmentLines(ctx, id)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, 51.00, lines[0].Subtotal)
	assert.Equal(t, 0.30, lines[1].Subtotal, "decimal arithmetic must not leak float drift")
	assert.Equal(t, 0.00, lines[2].Subtotal)

	// Stored subtotal always equals the product of its stored factors.
	for _, line := range lines {
		assert.Equal(t, lineSubtotal(line.UnitPrice, line.Quantity), line.Subtotal)
	}
}

func TestCreateShipment_RejectsEmptyLines(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.CreateShipment(context.Background(), "nothing", nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateShipment_RejectsNegativePrice(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreateShipment(ctx, "bad", []LineInput{
		{ProductID: 1, UnitPrice: 10, Quantity: 5},
		{ProductID: 2, UnitPrice: -1, Quantity: 5},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Rejected before any write: no header row may exist.
	shipments, err := l.Shipments(ctx)
	require.NoError(t, err)
	assert.Len(t, shipments, 1, "only the seeded sample shipment should exist")
}

func TestCreateShipment_RejectsUnknownProduct(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreateShipment(ctx, "ghost", []LineInput{
		{ProductID: 999, UnitPrice: 10, Quantity: 5},
	})
	require.Error(t, err)
	assert.True(t, IsReference(err))

	shipments, err := l.Shipments(ctx)
	require.NoError(t, err)
	assert.Len(t, shipments, 1)
}

func TestShipments_NewestFirst(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	first, err := l.CreateShipment(ctx, "first", []LineInput{{ProductID: 1, UnitPrice: 1, Quantity: 1}})
	require.NoError(t, err)
	second, err := l.CreateShipment(ctx, "second", []LineInput{{ProductID: 1, UnitPrice: 1, Quantity: 1}})
	require.NoError(t, err)

	shipments, err := l.Shipments(ctx)
	require.NoError(t, err)
	require.Len(t, shipments, 3)

	assert.Equal(t, second, shipments[0].ID)
	assert.Equal(t, first, shipments[1].ID)
	assert.Equal(t, "Sample shipment", shipments[2].Notes)
}

func TestShipmentLines_UnknownShipmentIsEmpty(t *testing.T) {
	l := newTestLedger(t)

	lines, err := l.ShipmentLines(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestDeleteShipment_CascadeIsScoped(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	keep, err := l.CreateShipment(ctx, "keep", []LineInput{{ProductID: 2, UnitPrice: 3, Quantity: 7}})
	require.NoError(t, err)
	_, err = l.RecordFarmerPurchase(ctx, PurchaseInput{
		ShipmentID: keep, FarmerID: 2, ProductID: 2, Quantity: 7, UnitPrice: 4,
	})
	require.NoError(t, err)

	// Drop the seeded shipment; its line and purchase must go, keep's must not.
	require.NoError(t, l.DeleteShipment(ctx, 1))

	gone, err := l.ShipmentLines(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, gone)

	gonePurchases, err := l.ShipmentPurchases(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, gonePurchases)

	kept, err := l.ShipmentLines(ctx, keep)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	keptPurchases, err := l.ShipmentPurchases(ctx, keep)
	require.NoError(t, err)
	assert.Len(t, keptPurchases, 1)
}

func TestDeleteShipment_MissingIDIsNoop(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.DeleteShipment(context.Background(), 999))
}
