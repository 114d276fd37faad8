package gst

import (
	"fmt"
	"sort"
	"strconv"

	"gstreturns/internal/domain"
)

// DefaultRates are the GST slabs accepted when no override is configured.
var DefaultRates = []float64{0, 0.1, 0.25, 1.5, 3, 5, 6, 12, 18, 28, 40}

const rateEpsilon = 1e-9

// RateTable is the immutable set of permitted GST rates. The zero value accepts nothing;
// build one with NewRateTable or DefaultRateTable.
type RateTable struct {
	rates []float64
}

// NewRateTable returns a RateTable holding a sorted copy of rates.
func NewRateTable(rates []float64) (RateTable, error) {
	if len(rates) == 0 {
		return RateTable{}, fmt.Errorf("rate table: at least one rate is required")
	}
	cp := make([]float64, len(rates))
	copy(cp, rates)
	sort.Float64s(cp)
	for _, r := range cp {
		if r < 0 || r > 100 {
			return RateTable{}, fmt.Errorf("rate table: rate %v out of range 0-100", r)
		}
	}
	return RateTable{rates: cp}, nil
}

// DefaultRateTable returns a RateTable of DefaultRates.
func DefaultRateTable() RateTable {
	t, _ := NewRateTable(DefaultRates)
	return t
}

// Contains reports whether rate is one of the permitted slabs.
func (t RateTable) Contains(rate float64) bool {
	for _, r := range t.rates {
		if diff := r - rate; diff < rateEpsilon && diff > -rateEpsilon {
			return true
		}
	}
	return false
}

// Rates returns a copy of the permitted slabs in ascending order.
func (t RateTable) Rates() []float64 {
	cp := make([]float64, len(t.rates))
	copy(cp, t.rates)
	return cp
}

func (t RateTable) describe() string {
	s := "one of ["
	for i, r := range t.rates {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatFloat(r, 'f', -1, 64)
	}
	return s + "]"
}

// ValidateRate fails with ErrInvalidRate when rate is not a permitted slab.
// Rates are never coerced to the nearest slab.
func (t RateTable) ValidateRate(field string, rate float64) error {
	if !t.Contains(rate) {
		return domain.NewFieldError(domain.ErrInvalidRate, field, formatFloat(rate), t.describe())
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
