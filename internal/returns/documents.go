package returns

import (
	"fmt"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
)

func invoiceInput(inv *domain.Invoice, biz *domain.Business) gst.DocumentInput {
	items := make([]gst.LineItem, len(inv.Items))
	for i := range inv.Items {
		it := &inv.Items[i]
		items[i] = gst.LineItem{
			Description: it.Description,
			HSNCode:     it.HSNCode,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			GSTRate:     it.GSTRate,
			CessRate:    it.CessRate,
		}
	}
	seller := inv.SellerStateCode
	if seller == "" {
		seller = biz.StateCode
	}
	return gst.DocumentInput{
		Items:           items,
		SellerStateCode: seller,
		BuyerStateCode:  inv.PlaceOfSupply,
		Category:        inv.Category,
		Discount:        inv.DiscountAmount,
	}
}

func purchaseInput(p *domain.Purchase, biz *domain.Business) gst.PurchaseInput {
	items := make([]gst.PurchaseLineItem, len(p.Items))
	for i := range p.Items {
		it := &p.Items[i]
		items[i] = gst.PurchaseLineItem{
			LineItem: gst.LineItem{
				Description: it.Description,
				HSNCode:     it.HSNCode,
				Unit:        it.Unit,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Discount:    it.Discount,
				GSTRate:     it.GSTRate,
				CessRate:    it.CessRate,
			},
			ITCEligible: it.ITCEligible,
		}
	}
	buyer := p.PlaceOfSupply
	if buyer == "" {
		buyer = biz.StateCode
	}
	return gst.PurchaseInput{
		Items:             items,
		SupplierStateCode: p.SupplierStateCode,
		BuyerStateCode:    buyer,
		Category:          p.Category,
		ReverseCharge:     p.ReverseCharge,
		ITCEligible:       p.ITCEligible,
		Discount:          p.DiscountAmount,
	}
}

type computedInvoice struct {
	inv *domain.Invoice
	res *gst.DocumentResult
}

// computeInvoices recomputes every active in-period invoice. Imports are inward only, and
// a repeated (customer GSTIN, invoice number) pair aborts the whole period.
func (a *Assembler) computeInvoices(biz *domain.Business, period gst.Period, invoices []domain.Invoice) ([]computedInvoice, error) {
	seen := make(map[[2]string]bool, len(invoices))
	out := make([]computedInvoice, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status == domain.DocumentStatusDeleted || !period.Contains(inv.InvoiceDate) {
			continue
		}
		prefix := fmt.Sprintf("invoices[%s]", inv.InvoiceNumber)
		key := [2]string{inv.CustomerGSTIN, inv.InvoiceNumber}
		if seen[key] {
			return nil, domain.NewFieldError(domain.ErrDuplicateDocument, prefix+".invoice_number", inv.InvoiceNumber,
				"unique per customer GSTIN")
		}
		seen[key] = true

		if inv.Category == domain.CategoryImport {
			return nil, domain.NewFieldError(domain.ErrInvalidCategory, prefix+".category", string(inv.Category),
				"outward supply category")
		}
		res, err := a.calc.CalculateDocument(invoiceInput(inv, biz))
		if err != nil {
			return nil, domain.PrefixField(err, prefix)
		}
		out = append(out, computedInvoice{inv: inv, res: res})
	}
	return out, nil
}

type computedPurchase struct {
	p   *domain.Purchase
	res *gst.PurchaseResult
}

func (a *Assembler) computePurchases(biz *domain.Business, period gst.Period, purchases []domain.Purchase) ([]computedPurchase, error) {
	seen := make(map[[2]string]bool, len(purchases))
	out := make([]computedPurchase, 0, len(purchases))
	for i := range purchases {
		p := &purchases[i]
		if p.Status == domain.DocumentStatusDeleted || !period.Contains(p.PurchaseDate) {
			continue
		}
		prefix := fmt.Sprintf("purchases[%s]", p.SupplierInvoiceNumber)
		key := [2]string{p.SupplierGSTIN, p.SupplierInvoiceNumber}
		if seen[key] {
			return nil, domain.NewFieldError(domain.ErrDuplicateDocument, prefix+".supplier_invoice_number",
				p.SupplierInvoiceNumber, "unique per supplier GSTIN")
		}
		seen[key] = true

		res, err := a.calc.CalculatePurchase(purchaseInput(p, biz))
		if err != nil {
			return nil, domain.PrefixField(err, prefix)
		}
		out = append(out, computedPurchase{p: p, res: res})
	}
	return out, nil
}

func validateBusiness(biz *domain.Business) error {
	if err := gst.ValidateGSTIN("business.gstin", biz.GSTIN); err != nil {
		return err
	}
	if err := gst.ValidateStateCode("business.state_code", biz.StateCode); err != nil {
		return err
	}
	if gst.GSTINStateCode(biz.GSTIN) != biz.StateCode {
		return domain.NewFieldError(domain.ErrInvalidGSTIN, "business.gstin", biz.GSTIN,
			"prefix matching state code "+biz.StateCode)
	}
	return nil
}
