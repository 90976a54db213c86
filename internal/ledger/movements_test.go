package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFarmerPurchase_ComputesTotalPaid(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.RecordFarmerPurchase(ctx, PurchaseInput{
		ShipmentID: 1, FarmerID: 1, ProductID: 1, Quantity: 50, UnitPrice: 65.00,
	})
	require.NoError(t, err)

	purchases, err := l.ShipmentPurchases(ctx, 1)
	require.NoError(t, err)
	require.Len(t, purchases, 2, "seeded purchase plus the new one")

	var found bool
	for _, p := range purchases {
		if p.ID == id {
			found = true
			assert.Equal(t, 3250.00, p.TotalPaid)
			assert.Equal(t, "Farmer A", p.Farmer)
			assert.Equal(t, "Tomato", p.Product)
		}
	}
	assert.True(t, found, "recorded purchase not in listing")
}

func TestRecordFarmerPurchase_RejectsNegativeQuantity(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.RecordFarmerPurchase(context.Background(), PurchaseInput{
		ShipmentID: 1, FarmerID: 1, ProductID: 1, Quantity: -5, UnitPrice: 10,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRecordFarmerPurchase_RejectsUnknownReferences(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	cases := []PurchaseInput{
		{ShipmentID: 999, FarmerID: 1, ProductID: 1, Quantity: 1, UnitPrice: 1},
		{ShipmentID: 1, FarmerID: 999, ProductID: 1, Quantity: 1, UnitPrice: 1},
		{ShipmentID: 1, FarmerID: 1, ProductID: 999, Quantity: 1, UnitPrice: 1},
	}
	for _, in := range cases {
		_, err := l.RecordFarmerPurchase(ctx, in)
		require.Error(t, err)
		assert.True(t, IsReference(err), "input %+v should be a referential error, got %v", in, err)
	}
}

func TestRecordTransfer_RejectsSelfTransfer(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.RecordTransfer(context.Background(), TransferInput{
		FromFarmerID: 1, ToFarmerID: 1, ProductID: 1, Quantity: 5,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRecordTransfer_AppendsAndLists(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.RecordTransfer(ctx, TransferInput{
		FromFarmerID: 1, ToFarmerID: 2, ProductID: 1, Quantity: 5, Note: "crates swap",
	})
	require.NoError(t, err)
	second, err := l.RecordTransfer(ctx, TransferInput{
		FromFarmerID: 2, ToFarmerID: 3, ProductID: 2, Quantity: 2.5,
	})
	require.NoError(t, err)

	transfers, err := l.Transfers(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 2)

	// Newest first.
	assert.Equal(t, second, transfers[0].ID)
	assert.Equal(t, "Farmer B", transfers[0].FromFarmer)
	assert.Equal(t, "Farmer C", transfers[0].ToFarmer)
	assert.Equal(t, 2.5, transfers[0].Quantity)
	assert.Equal(t, "crates swap", transfers[1].Note)
}

func TestRecordTransfer_RejectsUnknownFarmer(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.RecordTransfer(context.Background(), TransferInput{
		FromFarmerID: 1, ToFarmerID: 999, ProductID: 1, Quantity: 5,
	})
	require.Error(t, err)
	assert.True(t, IsReference(err))
}

func TestRecordReturn_AppendsAndLists(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.RecordReturn(ctx, ReturnInput{
		FarmerID: 1, ProductID: 1, Quantity: 10, RefundAmount: 650.00, Note: "spoiled",
	})
	require.NoError(t, err)

	returns, err := l.Returns(ctx)
	require.NoError(t, err)
	require.Len(t, returns, 1)

	assert.Equal(t, id, returns[0].ID)
	assert.Equal(t, "Farmer A", returns[0].Farmer)
	assert.Equal(t, "Tomato", returns[0].Product)
	assert.Equal(t, 650.00, returns[0].RefundAmount)
	assert.Equal(t, "spoiled", returns[0].Note)
}

func TestRecordReturn_RejectsNegativeRefund(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.RecordReturn(context.Background(), ReturnInput{
		FarmerID: 1, ProductID: 1, Quantity: 1, RefundAmount: -10,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
