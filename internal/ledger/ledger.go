package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/shipledger/shipledger/internal/store"
)

// Ledger exposes the domain operations over one persistent store.
type Ledger struct {
	store    *store.Store
	validate *validator.Validate
	log      zerolog.Logger
}

// New constructs a Ledger over the given store.
func New(s *store.Store, log zerolog.Logger) *Ledger {
	return &Ledger{
		store:    s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// checkInput runs struct validation and converts the first failure into a
// DomainError the shell can show verbatim.
func (l *Ledger) checkInput(in any) error {
	err := l.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "nefield":
		return validationError("%s must differ from %s", fe.Field(), fe.Param())
	case "gte":
		return validationError("%s must not be negative", fe.Field())
	default:
		return validationError("%s is required", fe.Field())
	}
}

// translate maps known constraint violations onto domain errors. entity names
// the unique-constrained table ("product", "farmer") for duplicate messages.
func translate(err error, entity, name string) error {
	if err == nil {
		return nil
	}
	if store.IsConstraint(err, store.ConstraintUnique) {
		return &DomainError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("%s %q already exists", entity, name),
			Err:     err,
		}
	}
	if store.IsConstraint(err, store.ConstraintForeignKey) {
		return &DomainError{
			Code:    ErrCodeReference,
			Message: fmt.Sprintf("%s references a row that does not exist", entity),
			Err:     err,
		}
	}
	return err
}

// exists reports whether an id is present in the given table. Referential
// errors are rejected here, before any write, rather than left to the engine.
func (l *Ledger) exists(ctx context.Context, table string, id int64) (bool, error) {
	rows, err := l.store.Query(ctx, `SELECT 1 FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("check %s id %d: %w", table, id, err)
	}
	return len(rows) > 0, nil
}

func (l *Ledger) requireProduct(ctx context.Context, id int64) error {
	ok, err := l.exists(ctx, "products", id)
	if err != nil {
		return err
	}
	if !ok {
		return referenceError("product %d does not exist", id)
	}
	return nil
}

func (l *Ledger) requireFarmer(ctx context.Context, id int64) error {
	ok, err := l.exists(ctx, "farmers", id)
	if err != nil {
		return err
	}
	if !ok {
		return referenceError("farmer %d does not exist", id)
	}
	return nil
}

func (l *Ledger) requireShipment(ctx context.Context, id int64) error {
	ok, err := l.exists(ctx, "shipments", id)
	if err != nil {
		return err
	}
	if !ok {
		return referenceError("shipment %d does not exist", id)
	}
	return nil
}

// Row field accessors. The driver hands back int64/float64/string/time.Time
// depending on the declared column type; aggregates and nullable columns may
// be NULL. These helpers normalize without panicking on NULL.

func rowInt(r store.Row, col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func rowFloat(r store.Row, col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func rowString(r store.Row, col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func rowTime(r store.Row, col string) time.Time {
	if v, ok := r[col].(time.Time); ok {
		return v
	}
	return time.Time{}
}
