// Package store provides SQLite-backed durable storage for the shipment
// ledger.
//
// The store is a thin, domain-free query executor over one database file:
//   - Open applies pragmas, the embedded idempotent schema, and first-run
//     seed data (default credential, sample catalog)
//   - Query runs a read statement with positional parameters and returns
//     rows as column-name-to-value mappings
//   - Exec runs a write statement and returns the last inserted row id
//   - WithTx wraps multi-row units in one explicit transaction
//
// Domain logic lives in internal/ledger and is expressed as parametrized
// statements passed through these primitives; nothing here knows what a
// shipment is.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Referential integrity and cascade deletes
//
// Constraint violations surface as *ConstraintError with a Kind so callers
// can translate them into user-facing validation errors.
package store
