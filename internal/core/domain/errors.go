package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent export failures.
// These are distinct from infrastructure errors.
var (
	// ErrNameMissing indicates a declared mapping has no name field.
	ErrNameMissing = errors.New("name missing")

	// ErrTypeMissing indicates a declared mapping has no type field.
	ErrTypeMissing = errors.New("type missing")

	// ErrUnknownType indicates a declared type outside the four supported ones.
	ErrUnknownType = errors.New("unknown entry type")

	// ErrUnknownField indicates a declared field name that is not in the
	// entry type's field table, even after alias resolution.
	ErrUnknownField = errors.New("unknown field")

	// ErrMalformedExpiration indicates an expiration date that does not
	// split into a numeric month and year.
	ErrMalformedExpiration = errors.New("malformed expiration date")

	// ErrMalformedFieldBlock indicates an inline field block that does
	// not parse as key/value lines.
	ErrMalformedFieldBlock = errors.New("malformed field block")

	// ErrInvalidFieldValue indicates a resolved value whose shape does
	// not fit the declared field.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrExpansion indicates a value expression that failed to expand.
	ErrExpansion = errors.New("expansion failed")

	// ErrDuplicateAccount indicates two accounts sharing one name.
	ErrDuplicateAccount = errors.New("duplicate account name")
)

// ExportError tags a failure with the account, and optionally the
// declared field, being exported when it happened. The underlying
// cause chain is preserved through Unwrap.
type ExportError struct {
	// Account is the source store name of the failing account.
	Account string

	// Field is the declared field being processed, empty for failures
	// outside field processing.
	Field string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("account %s, field %s: %v", e.Account, e.Field, e.Err)
	}
	return fmt.Sprintf("account %s: %v", e.Account, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}
