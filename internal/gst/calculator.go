package gst

import (
	"gstreturns/internal/domain"
)

// ItemInput is everything needed to tax one line item.
type ItemInput struct {
	TaxableAmount   float64                    `json:"taxable_amount"`
	GSTRate         float64                    `json:"gst_rate"`
	CessRate        float64                    `json:"cess_rate"`
	SellerStateCode string                     `json:"seller_state_code"`
	BuyerStateCode  string                     `json:"buyer_state_code"`
	Category        domain.TransactionCategory `json:"category"`
}

// TaxBreakdown is the computed GST for one line item. For any taxed supply exactly one of
// the CGST+SGST pair or IGST is non-zero.
type TaxBreakdown struct {
	TaxableAmount float64        `json:"taxable_amount"`
	CGSTRate      float64        `json:"cgst_rate"`
	CGSTAmount    float64        `json:"cgst_amount"`
	SGSTRate      float64        `json:"sgst_rate"`
	SGSTAmount    float64        `json:"sgst_amount"`
	IGSTRate      float64        `json:"igst_rate"`
	IGSTAmount    float64        `json:"igst_amount"`
	CessRate      float64        `json:"cess_rate"`
	CessAmount    float64        `json:"cess_amount"`
	TotalTax      float64        `json:"total_tax"`
	TotalAmount   float64        `json:"total_amount"`
	TaxType       domain.TaxType `json:"tax_type"`
}

// Calculator computes GST for items, invoices and purchases against a fixed rate table.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rates RateTable
}

// NewCalculator creates a Calculator bound to rates.
func NewCalculator(rates RateTable) *Calculator {
	return &Calculator{rates: rates}
}

// Rates returns the rate table the calculator validates against.
func (c *Calculator) Rates() RateTable {
	return c.rates
}

func (c *Calculator) validateItem(in *ItemInput) error {
	if err := validatePositive("taxable_amount", in.TaxableAmount); err != nil {
		return err
	}
	if err := validateFinite("gst_rate", in.GSTRate); err != nil {
		return err
	}
	if err := c.rates.ValidateRate("gst_rate", in.GSTRate); err != nil {
		return err
	}
	if err := validateNonNegative("cess_rate", in.CessRate); err != nil {
		return err
	}
	if !domain.ValidTransactionCategories[in.Category] {
		return domain.NewFieldError(domain.ErrInvalidCategory, "category", string(in.Category),
			"one of b2b, b2c_large, b2c_small, export, sez, import")
	}

	// Imports are taxed as IGST on entry; the foreign supplier has no state code.
	if in.Category != domain.CategoryImport {
		if err := ValidateStateCode("seller_state_code", in.SellerStateCode); err != nil {
			return err
		}
	}
	if in.Category.IsZeroRated() || in.Category == domain.CategoryImport {
		if in.BuyerStateCode != "" && !ValidStateCode(in.BuyerStateCode) {
			return ValidateStateCode("buyer_state_code", in.BuyerStateCode)
		}
		return nil
	}
	return ValidateStateCode("buyer_state_code", in.BuyerStateCode)
}

// CalculateItem computes the tax breakdown for one line item. Each money field is rounded
// to paise on its own.
func (c *Calculator) CalculateItem(in ItemInput) (TaxBreakdown, error) {
	if err := c.validateItem(&in); err != nil {
		return TaxBreakdown{}, err
	}

	taxable := Round2(in.TaxableAmount)
	tb := TaxBreakdown{TaxableAmount: taxable, TaxType: domain.TaxTypeNone}

	switch {
	case in.Category.IsZeroRated():
		// Zero-rated: IGST at 0, no cess. Exports and SEZ supplies are inter-state by
		// law, so they stay tagged IGST even with every head at zero. Only nil-rated
		// goods are tagged NONE.
		tb.TaxType = domain.TaxTypeIGST
		tb.TotalAmount = taxable
		return tb, nil
	case in.GSTRate == 0:
		// Nil-rated goods carry neither head.
	case in.Category == domain.CategoryImport || in.SellerStateCode != in.BuyerStateCode:
		tb.TaxType = domain.TaxTypeIGST
		tb.IGSTRate = in.GSTRate
		tb.IGSTAmount = Round2(taxable * in.GSTRate / 100)
	default:
		half := in.GSTRate / 2
		tb.TaxType = domain.TaxTypeCGSTSGST
		tb.CGSTRate = half
		tb.SGSTRate = half
		tb.CGSTAmount = Round2(taxable * half / 100)
		tb.SGSTAmount = Round2(taxable * half / 100)
	}

	if in.CessRate > 0 {
		tb.CessRate = in.CessRate
		tb.CessAmount = Round2(taxable * in.CessRate / 100)
	}

	tb.TotalTax = Sum(tb.CGSTAmount, tb.SGSTAmount, tb.IGSTAmount, tb.CessAmount)
	tb.TotalAmount = Sum(taxable, tb.TotalTax)
	return tb, nil
}
