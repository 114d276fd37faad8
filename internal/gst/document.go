package gst

import (
	"fmt"

	"gstreturns/internal/domain"
)

// LineItem is one priced line on a document.
type LineItem struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	GSTRate     float64 `json:"gst_rate"`
	CessRate    float64 `json:"cess_rate"`
}

// GrossAmount is quantity × unit price, before any discount.
func (li LineItem) GrossAmount() float64 {
	return Round2(li.Quantity * li.UnitPrice)
}

// TaxableAmount is the gross amount less the item discount.
func (li LineItem) TaxableAmount() float64 {
	return Round2(li.GrossAmount() - li.Discount)
}

// DocumentInput describes an invoice or purchase to be aggregated.
type DocumentInput struct {
	Items           []LineItem                 `json:"items"`
	SellerStateCode string                     `json:"seller_state_code"`
	BuyerStateCode  string                     `json:"buyer_state_code"`
	Category        domain.TransactionCategory `json:"category"`
	Discount        float64                    `json:"discount"`
}

// ComputedItem pairs a line item with its tax breakdown.
type ComputedItem struct {
	LineItem
	Tax TaxBreakdown `json:"tax"`
}

// DocumentTotals holds document-level sums. TotalAmount is exact; RoundedTotal is the
// whole-rupee figure and RoundOff the adjustment between them.
type DocumentTotals struct {
	Subtotal           float64 `json:"subtotal"`
	ItemDiscount       float64 `json:"item_discount"`
	ItemsTaxableAmount float64 `json:"items_taxable_amount"`
	DocumentDiscount   float64 `json:"document_discount"`
	TaxableAmount      float64 `json:"taxable_amount"`
	CGST               float64 `json:"cgst"`
	SGST               float64 `json:"sgst"`
	IGST               float64 `json:"igst"`
	Cess               float64 `json:"cess"`
	TotalTax           float64 `json:"total_tax"`
	TotalAmount        float64 `json:"total_amount"`
	RoundOff           float64 `json:"round_off"`
	RoundedTotal       float64 `json:"rounded_total"`
}

// DocumentResult is the output of CalculateDocument.
type DocumentResult struct {
	Items   []ComputedItem `json:"items"`
	Totals  DocumentTotals `json:"totals"`
	TaxType domain.TaxType `json:"tax_type"`
}

func validateLineItem(li *LineItem) error {
	if err := validatePositive("quantity", li.Quantity); err != nil {
		return err
	}
	if err := validateNonNegative("unit_price", li.UnitPrice); err != nil {
		return err
	}
	return validateNonNegative("discount", li.Discount)
}

// CalculateDocument taxes every item and sums the results. Each item is taxed on its own
// discounted amount; the document discount reduces only the reported taxable total and
// is not spread across items. Any failing item fails the whole document.
func (c *Calculator) CalculateDocument(in DocumentInput) (*DocumentResult, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewFieldError(domain.ErrEmptyDocument, "items", "0", "at least one line item")
	}
	if err := validateNonNegative("discount", in.Discount); err != nil {
		return nil, err
	}

	res := &DocumentResult{
		Items:   make([]ComputedItem, 0, len(in.Items)),
		TaxType: domain.TaxTypeNone,
	}
	var gross, itemDiscount, taxable, cgst, sgst, igst, cess []float64

	for i := range in.Items {
		li := in.Items[i]
		prefix := fmt.Sprintf("items[%d]", i)
		if err := validateLineItem(&li); err != nil {
			return nil, domain.PrefixField(err, prefix)
		}
		tb, err := c.CalculateItem(ItemInput{
			TaxableAmount:   li.TaxableAmount(),
			GSTRate:         li.GSTRate,
			CessRate:        li.CessRate,
			SellerStateCode: in.SellerStateCode,
			BuyerStateCode:  in.BuyerStateCode,
			Category:        in.Category,
		})
		if err != nil {
			return nil, domain.PrefixField(err, prefix)
		}
		if res.TaxType == domain.TaxTypeNone {
			res.TaxType = tb.TaxType
		}
		res.Items = append(res.Items, ComputedItem{LineItem: li, Tax: tb})

		gross = append(gross, li.GrossAmount())
		itemDiscount = append(itemDiscount, li.Discount)
		taxable = append(taxable, tb.TaxableAmount)
		cgst = append(cgst, tb.CGSTAmount)
		sgst = append(sgst, tb.SGSTAmount)
		igst = append(igst, tb.IGSTAmount)
		cess = append(cess, tb.CessAmount)
	}

	t := &res.Totals
	t.Subtotal = Sum(gross...)
	t.ItemDiscount = Sum(itemDiscount...)
	t.ItemsTaxableAmount = Sum(taxable...)
	t.DocumentDiscount = Round2(in.Discount)
	if t.DocumentDiscount > t.ItemsTaxableAmount {
		return nil, domain.NewFieldError(domain.ErrInvalidAmount, "discount", formatFloat(in.Discount),
			fmt.Sprintf("<= %s", formatFloat(t.ItemsTaxableAmount)))
	}
	t.TaxableAmount = Sum(t.ItemsTaxableAmount, -t.DocumentDiscount)
	t.CGST = Sum(cgst...)
	t.SGST = Sum(sgst...)
	t.IGST = Sum(igst...)
	t.Cess = Sum(cess...)
	t.TotalTax = Sum(t.CGST, t.SGST, t.IGST, t.Cess)
	t.TotalAmount = Sum(t.TaxableAmount, t.TotalTax)
	t.RoundedTotal = RoundRupee(t.TotalAmount)
	t.RoundOff = Sum(t.RoundedTotal, -t.TotalAmount)
	return res, nil
}
