package gst

import (
	"math"
	"regexp"
	"strconv"

	"gstreturns/internal/domain"
)

var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

const (
	stateCodeForeign        = "96"
	stateCodeOtherTerritory = "97"
	stateCodeConstraint     = "2-digit state code (01-38, 96, 97)"
)

// ValidStateCode reports whether code is a well-formed GST state code.
func ValidStateCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	if code == stateCodeForeign || code == stateCodeOtherTerritory {
		return true
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= 1 && n <= 38
}

// ValidateStateCode checks a required state code.
func ValidateStateCode(field, code string) error {
	if code == "" {
		return domain.NewFieldError(domain.ErrMissingState, field, code, stateCodeConstraint)
	}
	if !ValidStateCode(code) {
		return domain.NewFieldError(domain.ErrInvalidStateCode, field, code, stateCodeConstraint)
	}
	return nil
}

// ValidateGSTIN checks the 15-character GSTIN format and that its first two digits
// are a valid state code.
func ValidateGSTIN(field, gstin string) error {
	if !gstinPattern.MatchString(gstin) || !ValidStateCode(gstin[:2]) {
		return domain.NewFieldError(domain.ErrInvalidGSTIN, field, gstin, "15-character GSTIN")
	}
	return nil
}

// GSTINStateCode returns the state code encoded in a GSTIN, or "" when too short.
func GSTINStateCode(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

func validateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.NewFieldError(domain.ErrInvalidAmount, field, formatFloat(v), "finite number")
	}
	return nil
}

func validatePositive(field string, v float64) error {
	if err := validateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return domain.NewFieldError(domain.ErrInvalidAmount, field, formatFloat(v), "> 0")
	}
	return nil
}

func validateNonNegative(field string, v float64) error {
	if err := validateFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return domain.NewFieldError(domain.ErrInvalidAmount, field, formatFloat(v), ">= 0")
	}
	return nil
}
