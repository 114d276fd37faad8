package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRate        = errors.New("invalid GST rate")
	ErrMissingState       = errors.New("state code is required")
	ErrInvalidStateCode   = errors.New("invalid state code")
	ErrInvalidGSTIN       = errors.New("invalid GSTIN")
	ErrEmptyDocument      = errors.New("document has no line items")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidCategory    = errors.New("invalid transaction category")
	ErrInvalidPeriod      = errors.New("invalid filing period")
	ErrInvalidReturnType  = errors.New("invalid return type")
	ErrReturnNotFound     = errors.New("periodic return not found")
	ErrReturnAlreadyFiled = errors.New("periodic return already filed")
	ErrDuplicateDocument  = errors.New("duplicate document")
	ErrBusinessNotFound   = errors.New("business not found")
	ErrNotFound           = errors.New("resource not found")
)

// FieldError carries the offending field, its value and the constraint it broke.
// It unwraps to one of the sentinel errors above.
type FieldError struct {
	Field      string
	Value      string
	Constraint string
	Err        error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s=%q (expected %s)", e.Err, e.Field, e.Value, e.Constraint)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError builds a FieldError.
func NewFieldError(err error, field, value, constraint string) *FieldError {
	return &FieldError{Field: field, Value: value, Constraint: constraint, Err: err}
}

// PrefixField qualifies the field path of a FieldError, e.g. "gst_rate" becomes
// "items[2].gst_rate". Other errors are returned unchanged.
func PrefixField(err error, prefix string) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	field := prefix
	if fe.Field != "" {
		field = prefix + "." + fe.Field
	}
	return &FieldError{Field: field, Value: fe.Value, Constraint: fe.Constraint, Err: fe.Err}
}
