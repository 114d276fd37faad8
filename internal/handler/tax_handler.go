package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
	"gstreturns/internal/service"
)

// TaxHandler handles the stateless calculation endpoints.
type TaxHandler struct {
	taxService service.TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// CalculateItem handles POST /api/v1/tax/items/calculate
// @Summary Calculate GST for a line item
// @Description Split the item tax into CGST+SGST or IGST by supply type and add cess
// @Tags tax
// @Accept json
// @Produce json
// @Param request body gst.ItemInput true "Item"
// @Success 200 {object} Response{data=gst.TaxBreakdown}
// @Failure 400 {object} ErrorResponseBody "Invalid rate, state code or category"
// @Router /tax/items/calculate [post]
func (h *TaxHandler) CalculateItem(c *gin.Context) {
	var req gst.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid item payload")
		return
	}

	result, err := h.taxService.CalculateItem(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// CalculateDocument handles POST /api/v1/tax/documents/calculate
// @Summary Calculate GST for an invoice
// @Tags tax
// @Accept json
// @Produce json
// @Param request body gst.DocumentInput true "Invoice lines"
// @Success 200 {object} Response{data=gst.DocumentResult}
// @Failure 400 {object} ErrorResponseBody "Invalid or empty document"
// @Router /tax/documents/calculate [post]
func (h *TaxHandler) CalculateDocument(c *gin.Context) {
	var req gst.DocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document payload")
		return
	}

	result, err := h.taxService.CalculateDocument(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// CalculatePurchase handles POST /api/v1/tax/purchases/calculate
// @Summary Calculate GST and input tax credit for a purchase
// @Tags tax
// @Accept json
// @Produce json
// @Param request body gst.PurchaseInput true "Purchase lines"
// @Success 200 {object} Response{data=gst.PurchaseResult}
// @Failure 400 {object} ErrorResponseBody "Invalid or empty document"
// @Router /tax/purchases/calculate [post]
func (h *TaxHandler) CalculatePurchase(c *gin.Context) {
	var req gst.PurchaseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid purchase payload")
		return
	}

	result, err := h.taxService.CalculatePurchase(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Rates handles GET /api/v1/tax/rates
// @Summary List permitted GST rates
// @Tags tax
// @Produce json
// @Success 200 {object} Response{data=RatesResponse}
// @Router /tax/rates [get]
func (h *TaxHandler) Rates(c *gin.Context) {
	RespondOK(c, RatesResponse{Rates: h.taxService.Rates()})
}

// CheckPurchaseDuplicate handles POST /api/v1/businesses/:id/purchases/check-duplicate.
// A match is a warning, not a failure: the response lists the conflicting purchases.
// @Summary Check a supplier invoice for duplicates
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body DuplicateCheckRequest true "Supplier invoice"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponseBody "Invalid GSTIN or request"
// @Router /businesses/{id}/purchases/check-duplicate [post]
func (h *TaxHandler) CheckPurchaseDuplicate(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid business ID")
		return
	}

	var req DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "supplier_gstin and supplier_invoice_number are required")
		return
	}
	exclude := uuid.Nil
	if req.ExcludePurchaseID != "" {
		if exclude, err = uuid.Parse(req.ExcludePurchaseID); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid exclude_purchase_id")
			return
		}
	}

	matches, err := h.taxService.CheckPurchaseDuplicate(c.Request.Context(), businessID, exclude,
		req.SupplierGSTIN, req.SupplierInvoiceNumber)
	if err != nil && !errors.Is(err, domain.ErrDuplicateDocument) {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"duplicate": len(matches) > 0, "matches": matches})
}
