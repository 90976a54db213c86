package ledger

import "time"

// Product is a catalog entry referenced by transaction rows.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Farmer is a catalog entry referenced by purchases, transfers, and returns.
type Farmer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Shipment is one incoming delivery event: a header that aggregates line
// items and the farmer purchases recorded against it.
type Shipment struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Notes     string    `json:"notes"`
}

// ShipmentLine is one product position within a shipment. Subtotal is always
// unit_price times quantity; the stored value is recomputed on every write.
type ShipmentLine struct {
	ID         int64   `json:"id"`
	ShipmentID int64   `json:"shipment_id"`
	ProductID  int64   `json:"product_id"`
	Product    string  `json:"product"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int64   `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// FarmerPurchase records a farmer buying a quantity of product against a
// shipment. TotalPaid is always quantity times unit_price.
type FarmerPurchase struct {
	ID         int64     `json:"id"`
	ShipmentID int64     `json:"shipment_id"`
	FarmerID   int64     `json:"farmer_id"`
	Farmer     string    `json:"farmer"`
	ProductID  int64     `json:"product_id"`
	Product    string    `json:"product"`
	Quantity   float64   `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalPaid  float64   `json:"total_paid"`
	CreatedAt  time.Time `json:"created_at"`
}

// Transfer records movement of product quantity between two farmers,
// independent of any shipment.
type Transfer struct {
	ID           int64     `json:"id"`
	FromFarmerID int64     `json:"from_farmer_id"`
	FromFarmer   string    `json:"from_farmer"`
	ToFarmerID   int64     `json:"to_farmer_id"`
	ToFarmer     string    `json:"to_farmer"`
	ProductID    int64     `json:"product_id"`
	Product      string    `json:"product"`
	Quantity     float64   `json:"quantity"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

// Return records a farmer returning product quantity with a refund.
type Return struct {
	ID           int64     `json:"id"`
	FarmerID     int64     `json:"farmer_id"`
	Farmer       string    `json:"farmer"`
	ProductID    int64     `json:"product_id"`
	Product      string    `json:"product"`
	Quantity     float64   `json:"quantity"`
	RefundAmount float64   `json:"refund_amount"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

// BalanceLine is one product's net position for a farmer, computed on demand
// from purchases, returns, and transfers. Never stored.
type BalanceLine struct {
	ProductID      int64   `json:"product_id"`
	Product        string  `json:"product"`
	Purchased      float64 `json:"purchased"`
	Returned       float64 `json:"returned"`
	TransferredIn  float64 `json:"transferred_in"`
	TransferredOut float64 `json:"transferred_out"`
	NetQuantity    float64 `json:"net_quantity"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRefunded  float64 `json:"total_refunded"`
}

// LineInput is one requested shipment line. The caller never supplies the
// subtotal.
type LineInput struct {
	ProductID int64   `validate:"required,gt=0"`
	UnitPrice float64 `validate:"gte=0"`
	Quantity  int64   `validate:"gte=0"`
}

// PurchaseInput is a requested farmer purchase. The caller never supplies
// total_paid.
type PurchaseInput struct {
	ShipmentID int64   `validate:"required,gt=0"`
	FarmerID   int64   `validate:"required,gt=0"`
	ProductID  int64   `validate:"required,gt=0"`
	Quantity   float64 `validate:"gte=0"`
	UnitPrice  float64 `validate:"gte=0"`
}

// TransferInput is a requested farmer-to-farmer transfer. The two farmers
// must differ.
type TransferInput struct {
	FromFarmerID int64   `validate:"required,gt=0"`
	ToFarmerID   int64   `validate:"required,gt=0,nefield=FromFarmerID"`
	ProductID    int64   `validate:"required,gt=0"`
	Quantity     float64 `validate:"gte=0"`
	Note         string
}

// ReturnInput is a requested product return.
type ReturnInput struct {
	FarmerID     int64   `validate:"required,gt=0"`
	ProductID    int64   `validate:"required,gt=0"`
	Quantity     float64 `validate:"gte=0"`
	RefundAmount float64 `validate:"gte=0"`
	Note         string
}
