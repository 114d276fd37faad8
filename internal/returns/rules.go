package returns

import (
	"time"

	"gstreturns/internal/gst"
)

// IST is Indian Standard Time. A fixed zone avoids depending on the host tz database.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Rules are the statutory parameters used during assembly.
type Rules struct {
	// B2CLThreshold is the invoice value above which an unregistered supply is reported
	// invoice-wise in B2CL.
	B2CLThreshold    float64
	LateFeePerDay    float64
	LateFeeCapPerAct float64
	// DueDay is the day of the following month on which GSTR-3B falls due.
	DueDay   int
	Location *time.Location
}

// DefaultRules returns the current statutory values.
func DefaultRules() Rules {
	return Rules{
		B2CLThreshold:    250000,
		LateFeePerDay:    50,
		LateFeeCapPerAct: 5000,
		DueDay:           20,
		Location:         IST,
	}
}

func (r Rules) location() *time.Location {
	if r.Location == nil {
		return IST
	}
	return r.Location
}

// Assembler builds GSTR-1 and GSTR-3B payloads from a period's documents. Tax figures are
// always recomputed from item inputs so a return never trusts stale stored totals.
type Assembler struct {
	calc  *gst.Calculator
	rules Rules
}

// NewAssembler creates an Assembler.
func NewAssembler(calc *gst.Calculator, rules Rules) *Assembler {
	return &Assembler{calc: calc, rules: rules}
}

// Rules returns the assembler's statutory parameters.
func (a *Assembler) Rules() Rules {
	return a.rules
}

const acts = 3
