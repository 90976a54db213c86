// Package ledger implements the domain operations of the shipment ledger:
// shipment creation, farmer purchases, transfers, returns, catalog
// maintenance, and the read-only projections the presentation shell renders.
//
// All monetary and quantity arithmetic happens here. Derived values
// (subtotal, total_paid) are recomputed from their stored factors on every
// write and never trusted from caller input. Inputs are validated before any
// write reaches the store; multi-row units run inside one transaction so a
// failed line insert never leaves a dangling shipment header.
//
// Transfers and returns are append-only: they are a historical record with no
// update or delete path.
package ledger
