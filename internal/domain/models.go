package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Business is the registered taxpayer that owns invoices, purchases and returns.
type Business struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	GSTIN           string          `db:"gstin" json:"gstin"`
	State           string          `db:"state" json:"state"`
	StateCode       string          `db:"state_code" json:"state_code"`
	FilingFrequency FilingFrequency `db:"filing_frequency" json:"filing_frequency"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice is an outward supply document.
type Invoice struct {
	ID                 uuid.UUID           `db:"id" json:"id"`
	BusinessID         uuid.UUID           `db:"business_id" json:"business_id"`
	InvoiceNumber      string              `db:"invoice_number" json:"invoice_number"`
	InvoiceDate        time.Time           `db:"invoice_date" json:"invoice_date"`
	CustomerName       string              `db:"customer_name" json:"customer_name"`
	CustomerGSTIN      string              `db:"customer_gstin" json:"customer_gstin"`
	SellerStateCode    string              `db:"seller_state_code" json:"seller_state_code"`
	PlaceOfSupply      string              `db:"place_of_supply" json:"place_of_supply"`
	Category           TransactionCategory `db:"category" json:"category"`
	ReverseCharge      bool                `db:"reverse_charge" json:"reverse_charge"`
	PortCode           string              `db:"port_code" json:"port_code"`
	ShippingBillNumber string              `db:"shipping_bill_number" json:"shipping_bill_number"`
	ShippingBillDate   *time.Time          `db:"shipping_bill_date" json:"shipping_bill_date"`
	Subtotal           float64             `db:"subtotal" json:"subtotal"`
	DiscountAmount     float64             `db:"discount_amount" json:"discount_amount"`
	TaxableAmount      float64             `db:"taxable_amount" json:"taxable_amount"`
	CGST               float64             `db:"cgst" json:"cgst"`
	SGST               float64             `db:"sgst" json:"sgst"`
	IGST               float64             `db:"igst" json:"igst"`
	Cess               float64             `db:"cess" json:"cess"`
	TotalTax           float64             `db:"total_tax" json:"total_tax"`
	RoundOff           float64             `db:"round_off" json:"round_off"`
	TotalAmount        float64             `db:"total_amount" json:"total_amount"`
	Status             DocumentStatus      `db:"status" json:"status"`
	IsFiled            bool                `db:"is_filed" json:"is_filed"`
	CreatedAt          time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `db:"updated_at" json:"updated_at"`
	Items              []InvoiceItem       `db:"-" json:"items"`
}

// InvoiceItem is a single line on an invoice together with its stored tax figures.
type InvoiceItem struct {
	ID            uuid.UUID `db:"id" json:"id"`
	InvoiceID     uuid.UUID `db:"invoice_id" json:"invoice_id"`
	Position      int       `db:"position" json:"position"`
	Description   string    `db:"description" json:"description"`
	HSNCode       string    `db:"hsn_code" json:"hsn_code"`
	Unit          string    `db:"unit" json:"unit"`
	Quantity      float64   `db:"quantity" json:"quantity"`
	UnitPrice     float64   `db:"unit_price" json:"unit_price"`
	Discount      float64   `db:"discount" json:"discount"`
	GSTRate       float64   `db:"gst_rate" json:"gst_rate"`
	CessRate      float64   `db:"cess_rate" json:"cess_rate"`
	TaxableAmount float64   `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    float64   `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    float64   `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    float64   `db:"igst_amount" json:"igst_amount"`
	CessAmount    float64   `db:"cess_amount" json:"cess_amount"`
	TotalAmount   float64   `db:"total_amount" json:"total_amount"`
}

// Purchase is an inward supply document on which input tax credit may be claimed.
type Purchase struct {
	ID                    uuid.UUID        `db:"id" json:"id"`
	BusinessID            uuid.UUID        `db:"business_id" json:"business_id"`
	SupplierName          string           `db:"supplier_name" json:"supplier_name"`
	SupplierGSTIN         string           `db:"supplier_gstin" json:"supplier_gstin"`
	SupplierInvoiceNumber string           `db:"supplier_invoice_number" json:"supplier_invoice_number"`
	PurchaseDate          time.Time        `db:"purchase_date" json:"purchase_date"`
	SupplierStateCode     string           `db:"supplier_state_code" json:"supplier_state_code"`
	PlaceOfSupply         string           `db:"place_of_supply" json:"place_of_supply"`
	Category              PurchaseCategory `db:"category" json:"category"`
	ReverseCharge         bool             `db:"reverse_charge" json:"reverse_charge"`
	ITCEligible           bool             `db:"itc_eligible" json:"itc_eligible"`
	Subtotal              float64          `db:"subtotal" json:"subtotal"`
	DiscountAmount        float64          `db:"discount_amount" json:"discount_amount"`
	TaxableAmount         float64          `db:"taxable_amount" json:"taxable_amount"`
	CGST                  float64          `db:"cgst" json:"cgst"`
	SGST                  float64          `db:"sgst" json:"sgst"`
	IGST                  float64          `db:"igst" json:"igst"`
	Cess                  float64          `db:"cess" json:"cess"`
	TotalTax              float64          `db:"total_tax" json:"total_tax"`
	ITCAmount             float64          `db:"itc_amount" json:"itc_amount"`
	RoundOff              float64          `db:"round_off" json:"round_off"`
	TotalAmount           float64          `db:"total_amount" json:"total_amount"`
	Status                DocumentStatus   `db:"status" json:"status"`
	IsFiled               bool             `db:"is_filed" json:"is_filed"`
	CreatedAt             time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time        `db:"updated_at" json:"updated_at"`
	Items                 []PurchaseItem   `db:"-" json:"items"`
}

// PurchaseItem is a single purchase line. ITC fields are owned by the purchase.
type PurchaseItem struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	PurchaseID    uuid.UUID   `db:"purchase_id" json:"purchase_id"`
	Position      int         `db:"position" json:"position"`
	Description   string      `db:"description" json:"description"`
	HSNCode       string      `db:"hsn_code" json:"hsn_code"`
	Unit          string      `db:"unit" json:"unit"`
	Quantity      float64     `db:"quantity" json:"quantity"`
	UnitPrice     float64     `db:"unit_price" json:"unit_price"`
	Discount      float64     `db:"discount" json:"discount"`
	GSTRate       float64     `db:"gst_rate" json:"gst_rate"`
	CessRate      float64     `db:"cess_rate" json:"cess_rate"`
	TaxableAmount float64     `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    float64     `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    float64     `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    float64     `db:"igst_amount" json:"igst_amount"`
	CessAmount    float64     `db:"cess_amount" json:"cess_amount"`
	TotalAmount   float64     `db:"total_amount" json:"total_amount"`
	ITCEligible   bool        `db:"itc_eligible" json:"itc_eligible"`
	ITCCategory   ITCCategory `db:"itc_category" json:"itc_category"`
	ITCAmount     float64     `db:"itc_amount" json:"itc_amount"`
}

// PeriodicReturn is an assembled GSTR-1 or GSTR-3B for one business and filing period.
// At most one exists per (business, return type, period).
type PeriodicReturn struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	BusinessID        uuid.UUID       `db:"business_id" json:"business_id"`
	GSTIN             string          `db:"gstin" json:"gstin"`
	ReturnType        ReturnType      `db:"return_type" json:"return_type"`
	FilingPeriod      string          `db:"filing_period" json:"filing_period"`
	Payload           json.RawMessage `db:"payload" json:"payload"`
	TotalTaxLiability float64         `db:"total_tax_liability" json:"total_tax_liability"`
	NetTaxPayable     *float64        `db:"net_tax_payable" json:"net_tax_payable,omitempty"`
	Status            ReturnStatus    `db:"status" json:"status"`
	GeneratedAt       time.Time       `db:"generated_at" json:"generated_at"`
	FiledAt           *time.Time      `db:"filed_at" json:"filed_at"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}
