package returns_test

import (
	"time"

	"github.com/google/uuid"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
	"gstreturns/internal/returns"
)

const (
	ownGSTIN    = "27AAPFU0939F1ZV"
	buyerGSTIN  = "29AABCT3518Q1ZV"
	vendorGSTIN = "29AAACR4849R1ZL"
)

func newAssembler() *returns.Assembler {
	return returns.NewAssembler(gst.NewCalculator(gst.DefaultRateTable()), returns.DefaultRules())
}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:              uuid.New(),
		Name:            "Acme Traders",
		GSTIN:           ownGSTIN,
		State:           "Maharashtra",
		StateCode:       "27",
		FilingFrequency: domain.FilingMonthly,
	}
}

func jan2026() gst.Period {
	return gst.NewPeriod(2026, time.January, returns.IST)
}

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 11, 0, 0, 0, returns.IST)
}

func item(hsn string, qty, price, rate float64) domain.InvoiceItem {
	return domain.InvoiceItem{ID: uuid.New(), HSNCode: hsn, Description: "item " + hsn, Unit: "nos",
		Quantity: qty, UnitPrice: price, GSTRate: rate}
}

func invoice(num string, date time.Time, cat domain.TransactionCategory, ctin, pos string, items ...domain.InvoiceItem) domain.Invoice {
	return domain.Invoice{
		ID:              uuid.New(),
		InvoiceNumber:   num,
		InvoiceDate:     date,
		CustomerGSTIN:   ctin,
		SellerStateCode: "27",
		PlaceOfSupply:   pos,
		Category:        cat,
		Status:          domain.DocumentStatusActive,
		Items:           items,
	}
}

func purchaseItem(hsn string, price, rate float64, eligible bool) domain.PurchaseItem {
	return domain.PurchaseItem{ID: uuid.New(), HSNCode: hsn, Quantity: 1, UnitPrice: price, GSTRate: rate,
		ITCEligible: eligible}
}

func purchase(num string, date time.Time, cat domain.PurchaseCategory, supplierState string, items ...domain.PurchaseItem) domain.Purchase {
	return domain.Purchase{
		ID:                    uuid.New(),
		SupplierGSTIN:         vendorGSTIN,
		SupplierInvoiceNumber: num,
		PurchaseDate:          date,
		SupplierStateCode:     supplierState,
		PlaceOfSupply:         "27",
		Category:              cat,
		ITCEligible:           true,
		Status:                domain.DocumentStatusActive,
		Items:                 items,
	}
}
