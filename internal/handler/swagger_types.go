package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// DuplicateCheckRequest represents the purchase duplicate check request body.
type DuplicateCheckRequest struct {
	SupplierGSTIN         string `json:"supplier_gstin" binding:"required" example:"29AAACR4849R1ZL"`
	SupplierInvoiceNumber string `json:"supplier_invoice_number" binding:"required" example:"RC/2026/0042"`
	ExcludePurchaseID     string `json:"exclude_purchase_id" example:"880e8400-e29b-41d4-a716-446655440003"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// RatesResponse lists the permitted GST slabs.
type RatesResponse struct {
	Rates []float64 `json:"rates" example:"0,5,12,18,28"`
}

// ArchiveURLResponse carries a presigned link to an archived return payload.
type ArchiveURLResponse struct {
	URL string `json:"url" example:"https://gst-archive.s3.ap-south-1.amazonaws.com/returns/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
