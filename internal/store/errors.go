package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ConstraintKind categorizes a constraint violation.
type ConstraintKind string

const (
	// ConstraintUnique indicates a UNIQUE constraint failed (duplicate name).
	ConstraintUnique ConstraintKind = "UNIQUE"

	// ConstraintForeignKey indicates a referenced row does not exist.
	ConstraintForeignKey ConstraintKind = "FOREIGN_KEY"

	// ConstraintNotNull indicates a required column was missing.
	ConstraintNotNull ConstraintKind = "NOT_NULL"

	// ConstraintOther covers the remaining constraint classes (CHECK etc.).
	ConstraintOther ConstraintKind = "OTHER"
)

// ConstraintError wraps a storage-engine constraint violation so domain code
// can translate it (e.g. a unique violation on products.name becomes a
// duplicate-name validation error) without string-matching engine messages.
type ConstraintError struct {
	Kind ConstraintKind
	Err  error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation (%s): %v", e.Kind, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsConstraint reports whether err is a constraint violation of the given
// kind. Uses errors.As to handle wrapped errors.
func IsConstraint(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// classify converts sqlite3 constraint errors into *ConstraintError and
// passes everything else through untouched.
func classify(err error) error {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return err
	}
	if serr.Code != sqlite3.ErrConstraint {
		return err
	}

	kind := ConstraintOther
	switch serr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		kind = ConstraintUnique
	case sqlite3.ErrConstraintForeignKey:
		kind = ConstraintForeignKey
	case sqlite3.ErrConstraintNotNull:
		kind = ConstraintNotNull
	}
	return &ConstraintError{Kind: kind, Err: err}
}
