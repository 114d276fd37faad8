package gst

import (
	"strings"

	"gstreturns/internal/domain"
)

// ITCInput is one purchase line with its tax and the flags governing credit.
type ITCInput struct {
	Tax              TaxBreakdown
	HSNCode          string
	ItemEligible     bool
	DocumentEligible bool
	Category         domain.PurchaseCategory
	ReverseCharge    bool
}

// ITCRecord is the input tax credit outcome for one purchase line. Credit heads are zero
// when the line is ineligible; the tax itself stays on the breakdown.
type ITCRecord struct {
	Eligible     bool               `json:"eligible"`
	Category     domain.ITCCategory `json:"category"`
	CreditAmount float64            `json:"credit_amount"`
	IGST         float64            `json:"igst"`
	CGST         float64            `json:"cgst"`
	SGST         float64            `json:"sgst"`
	Cess         float64            `json:"cess"`
}

// isServiceCode reports whether an HSN/SAC code is a SAC (services) code.
func isServiceCode(code string) bool {
	return strings.HasPrefix(strings.TrimSpace(code), "99")
}

// ClassifyITCCategory buckets a purchase line for GSTR-3B. Imports are detected by
// purchase category, split into goods and services by SAC prefix; reverse charge by flag.
func ClassifyITCCategory(category domain.PurchaseCategory, reverseCharge bool, hsnCode string) domain.ITCCategory {
	switch {
	case category == domain.PurchaseImport && isServiceCode(hsnCode):
		return domain.ITCImportServices
	case category == domain.PurchaseImport:
		return domain.ITCImportGoods
	case reverseCharge:
		return domain.ITCReverseCharge
	default:
		return domain.ITCOther
	}
}

// ClassifyITC decides eligibility and credit for one purchase line. Credit equals the
// line's total tax only when both the item and document flags are set.
func ClassifyITC(in ITCInput) ITCRecord {
	rec := ITCRecord{
		Eligible: in.ItemEligible && in.DocumentEligible,
		Category: ClassifyITCCategory(in.Category, in.ReverseCharge, in.HSNCode),
	}
	if !rec.Eligible {
		return rec
	}
	rec.IGST = in.Tax.IGSTAmount
	rec.CGST = in.Tax.CGSTAmount
	rec.SGST = in.Tax.SGSTAmount
	rec.Cess = in.Tax.CessAmount
	rec.CreditAmount = in.Tax.TotalTax
	return rec
}

// PurchaseLineItem is a purchase line with its own ITC flag.
type PurchaseLineItem struct {
	LineItem
	ITCEligible bool `json:"itc_eligible"`
}

// PurchaseInput describes a purchase document.
type PurchaseInput struct {
	Items             []PurchaseLineItem      `json:"items"`
	SupplierStateCode string                  `json:"supplier_state_code"`
	BuyerStateCode    string                  `json:"buyer_state_code"`
	Category          domain.PurchaseCategory `json:"category"`
	ReverseCharge     bool                    `json:"reverse_charge"`
	ITCEligible       bool                    `json:"itc_eligible"`
	Discount          float64                 `json:"discount"`
}

// PurchaseItemResult is a computed purchase line with its ITC record.
type PurchaseItemResult struct {
	ComputedItem
	ITC ITCRecord `json:"itc"`
}

// PurchaseResult is the output of CalculatePurchase.
type PurchaseResult struct {
	Items         []PurchaseItemResult `json:"items"`
	Totals        DocumentTotals       `json:"totals"`
	TaxType       domain.TaxType       `json:"tax_type"`
	TotalCredit   float64              `json:"total_credit"`
	IneligibleTax float64              `json:"ineligible_tax"`
}

// CalculatePurchase aggregates a purchase document and classifies the ITC of every line.
func (c *Calculator) CalculatePurchase(in PurchaseInput) (*PurchaseResult, error) {
	if !domain.ValidPurchaseCategories[in.Category] {
		return nil, domain.NewFieldError(domain.ErrInvalidCategory, "category", string(in.Category),
			"one of goods, services, capital_goods, import")
	}
	txCategory := domain.CategoryB2B
	if in.Category == domain.PurchaseImport {
		txCategory = domain.CategoryImport
	}

	items := make([]LineItem, len(in.Items))
	for i := range in.Items {
		items[i] = in.Items[i].LineItem
	}
	doc, err := c.CalculateDocument(DocumentInput{
		Items:           items,
		SellerStateCode: in.SupplierStateCode,
		BuyerStateCode:  in.BuyerStateCode,
		Category:        txCategory,
		Discount:        in.Discount,
	})
	if err != nil {
		return nil, err
	}

	res := &PurchaseResult{
		Items:   make([]PurchaseItemResult, len(doc.Items)),
		Totals:  doc.Totals,
		TaxType: doc.TaxType,
	}
	var credits, ineligible []float64
	for i := range doc.Items {
		rec := ClassifyITC(ITCInput{
			Tax:              doc.Items[i].Tax,
			HSNCode:          doc.Items[i].HSNCode,
			ItemEligible:     in.Items[i].ITCEligible,
			DocumentEligible: in.ITCEligible,
			Category:         in.Category,
			ReverseCharge:    in.ReverseCharge,
		})
		res.Items[i] = PurchaseItemResult{ComputedItem: doc.Items[i], ITC: rec}
		if rec.Eligible {
			credits = append(credits, rec.CreditAmount)
		} else {
			ineligible = append(ineligible, doc.Items[i].Tax.TotalTax)
		}
	}
	res.TotalCredit = Sum(credits...)
	res.IneligibleTax = Sum(ineligible...)
	return res, nil
}
