package domain

// TaxType tags which GST heads apply to a supply.
type TaxType string

const (
	TaxTypeCGSTSGST TaxType = "CGST_SGST"
	TaxTypeIGST     TaxType = "IGST"
	TaxTypeNone     TaxType = "NONE"
)

// TransactionCategory classifies a document for tax treatment and return bucketing.
type TransactionCategory string

const (
	CategoryB2B      TransactionCategory = "b2b"
	CategoryB2CLarge TransactionCategory = "b2c_large"
	CategoryB2CSmall TransactionCategory = "b2c_small"
	CategoryExport   TransactionCategory = "export"
	CategorySEZ      TransactionCategory = "sez"
	CategoryImport   TransactionCategory = "import"
)

// ValidTransactionCategories lists every recognised transaction category.
var ValidTransactionCategories = map[TransactionCategory]bool{
	CategoryB2B:      true,
	CategoryB2CLarge: true,
	CategoryB2CSmall: true,
	CategoryExport:   true,
	CategorySEZ:      true,
	CategoryImport:   true,
}

// IsZeroRated reports whether supplies in this category carry no GST.
func (c TransactionCategory) IsZeroRated() bool {
	return c == CategoryExport || c == CategorySEZ
}

// PurchaseCategory classifies what was acquired on a purchase document.
type PurchaseCategory string

const (
	PurchaseGoods        PurchaseCategory = "goods"
	PurchaseServices     PurchaseCategory = "services"
	PurchaseCapitalGoods PurchaseCategory = "capital_goods"
	PurchaseImport       PurchaseCategory = "import"
)

// ValidPurchaseCategories lists every recognised purchase category.
var ValidPurchaseCategories = map[PurchaseCategory]bool{
	PurchaseGoods:        true,
	PurchaseServices:     true,
	PurchaseCapitalGoods: true,
	PurchaseImport:       true,
}

// ITCCategory is the GSTR-3B bucket an input tax credit is reported under.
type ITCCategory string

const (
	ITCImportGoods    ITCCategory = "import_goods"
	ITCImportServices ITCCategory = "import_services"
	ITCReverseCharge  ITCCategory = "reverse_charge"
	ITCOther          ITCCategory = "other"
)

// DocumentStatus is the soft-delete state of an invoice or purchase.
type DocumentStatus string

const (
	DocumentStatusActive  DocumentStatus = "active"
	DocumentStatusDeleted DocumentStatus = "deleted"
)

// ReturnType discriminates the periodic filings.
type ReturnType string

const (
	ReturnTypeGSTR1  ReturnType = "gstr1"
	ReturnTypeGSTR3B ReturnType = "gstr3b"
)

// ValidReturnTypes lists the supported return types.
var ValidReturnTypes = map[ReturnType]bool{
	ReturnTypeGSTR1:  true,
	ReturnTypeGSTR3B: true,
}

// ReturnStatus is the lifecycle state of a periodic return.
type ReturnStatus string

const (
	ReturnStatusGenerated ReturnStatus = "generated"
	ReturnStatusFiled     ReturnStatus = "filed"
)

// FilingFrequency is how often a business files its returns.
type FilingFrequency string

const (
	FilingMonthly   FilingFrequency = "monthly"
	FilingQuarterly FilingFrequency = "quarterly"
)
