package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstreturns/internal/csvexport"
	"gstreturns/internal/domain"
	"gstreturns/internal/returns"
	"gstreturns/internal/service"
	"gstreturns/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReturnHandler handles periodic return endpoints.
type ReturnHandler struct {
	returnService service.ReturnService
}

// NewReturnHandler creates a new ReturnHandler.
func NewReturnHandler(returnService service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// returnParams reads the business ID, return type and period path params.
// Returns false if the business ID is malformed (error response already written).
func returnParams(c *gin.Context) (businessID uuid.UUID, returnType domain.ReturnType, period string, ok bool) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid business ID")
		return uuid.Nil, "", "", false
	}
	return businessID, domain.ReturnType(c.Param("type")), c.Param("period"), true
}

// Generate handles POST /api/v1/businesses/:id/returns/:type/:period/generate
// @Summary Generate or regenerate a return
// @Description Assemble GSTR-1 or GSTR-3B from the period's active documents and store it
// @Tags returns
// @Produce json
// @Param id path string true "Business ID"
// @Param type path string true "Return type" Enums(gstr1, gstr3b)
// @Param period path string true "Filing period (YYYY-MM)"
// @Success 200 {object} Response{data=domain.PeriodicReturn}
// @Failure 400 {object} ErrorResponseBody "Invalid type, period or document"
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Failure 409 {object} ErrorResponseBody "Already filed or duplicate document"
// @Router /businesses/{id}/returns/{type}/{period}/generate [post]
func (h *ReturnHandler) Generate(c *gin.Context) {
	businessID, returnType, period, ok := returnParams(c)
	if !ok {
		return
	}

	ret, err := h.returnService.Generate(c.Request.Context(), service.GenerateReturnInput{
		BusinessID: businessID,
		ReturnType: returnType,
		Period:     period,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ret)
}

// Get handles GET /api/v1/businesses/:id/returns/:type/:period
// @Summary Get a stored return
// @Tags returns
// @Produce json
// @Param id path string true "Business ID"
// @Param type path string true "Return type" Enums(gstr1, gstr3b)
// @Param period path string true "Filing period (YYYY-MM)"
// @Success 200 {object} Response{data=domain.PeriodicReturn}
// @Failure 404 {object} ErrorResponseBody "Return not found"
// @Router /businesses/{id}/returns/{type}/{period} [get]
func (h *ReturnHandler) Get(c *gin.Context) {
	businessID, returnType, period, ok := returnParams(c)
	if !ok {
		return
	}

	ret, err := h.returnService.Get(c.Request.Context(), businessID, returnType, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ret)
}

// List handles GET /api/v1/businesses/:id/returns
// @Summary List a business's returns, newest period first
// @Tags returns
// @Produce json
// @Param id path string true "Business ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.PeriodicReturn,meta=PagMeta}
// @Router /businesses/{id}/returns [get]
func (h *ReturnHandler) List(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid business ID")
		return
	}

	offset, limit := parsePagination(c)

	list, total, err := h.returnService.List(c.Request.Context(), businessID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// MarkFiled handles POST /api/v1/businesses/:id/returns/:type/:period/file
// @Summary Mark a return as filed
// @Description Locks the return and the period's documents against regeneration
// @Tags returns
// @Produce json
// @Param id path string true "Business ID"
// @Param type path string true "Return type" Enums(gstr1, gstr3b)
// @Param period path string true "Filing period (YYYY-MM)"
// @Success 200 {object} Response{data=domain.PeriodicReturn}
// @Failure 404 {object} ErrorResponseBody "Return not found"
// @Failure 409 {object} ErrorResponseBody "Already filed"
// @Router /businesses/{id}/returns/{type}/{period}/file [post]
func (h *ReturnHandler) MarkFiled(c *gin.Context) {
	businessID, returnType, period, ok := returnParams(c)
	if !ok {
		return
	}

	ret, err := h.returnService.MarkFiled(c.Request.Context(), businessID, returnType, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ret)
}

// ArchiveURL handles GET /api/v1/businesses/:id/returns/:type/:period/archive-url
// @Summary Presigned link to the archived payload
// @Tags returns
// @Produce json
// @Param id path string true "Business ID"
// @Param type path string true "Return type" Enums(gstr1, gstr3b)
// @Param period path string true "Filing period (YYYY-MM)"
// @Success 200 {object} Response{data=ArchiveURLResponse}
// @Failure 404 {object} ErrorResponseBody "Return not found or archive disabled"
// @Router /businesses/{id}/returns/{type}/{period}/archive-url [get]
func (h *ReturnHandler) ArchiveURL(c *gin.Context) {
	businessID, returnType, period, ok := returnParams(c)
	if !ok {
		return
	}

	url, err := h.returnService.ArchiveURL(c.Request.Context(), businessID, returnType, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ArchiveURLResponse{URL: url})
}

// ExportXLSX handles GET /api/v1/businesses/:id/returns/:type/:period/export.xlsx
// @Summary Download GSTR-1 as a workbook
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Business ID"
// @Param type path string true "Return type" Enums(gstr1)
// @Param period path string true "Filing period (YYYY-MM)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponseBody "Return not found"
// @Router /businesses/{id}/returns/{type}/{period}/export.xlsx [get]
func (h *ReturnHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "gstr1", "xlsx", xlsxContentType, xlsxexport.Write)
}

// ExportHSNCSV handles GET /api/v1/businesses/:id/returns/:type/:period/hsn.csv
// @Summary Download the GSTR-1 HSN summary as CSV
// @Tags exports
// @Produce text/csv
// @Param id path string true "Business ID"
// @Param type path string true "Return type" Enums(gstr1)
// @Param period path string true "Filing period (YYYY-MM)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponseBody "Return not found"
// @Router /businesses/{id}/returns/{type}/{period}/hsn.csv [get]
func (h *ReturnHandler) ExportHSNCSV(c *gin.Context) {
	h.export(c, "hsn", "csv", "text/csv; charset=utf-8", csvexport.WriteGSTR1HSN)
}

// export renders a stored GSTR-1 into a buffer first so a rendering failure still gets a
// JSON error response.
func (h *ReturnHandler) export(c *gin.Context, section, ext, contentType string,
	render func(w io.Writer, r *returns.GSTR1) error) {
	businessID, returnType, period, ok := returnParams(c)
	if !ok {
		return
	}
	if returnType != domain.ReturnTypeGSTR1 {
		HandleError(c, domain.NewFieldError(domain.ErrInvalidReturnType, "return_type", string(returnType), "gstr1"))
		return
	}

	ret, err := h.returnService.GSTR1(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, ret); err != nil {
		HandleError(c, fmt.Errorf("render %s: %w", section, err))
		return
	}

	filename := csvexport.BuildFilename(ret.GSTIN, ret.FP, section, ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
