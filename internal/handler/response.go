package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gstreturns/internal/domain"
	"gstreturns/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details *ErrorDetails `json:"details,omitempty"`
}

// ErrorDetails names the input that failed validation.
type ErrorDetails struct {
	Field      string `json:"field"`
	Value      string `json:"value"`
	Constraint string `json:"constraint"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadRequest, "INVALID_RATE", "GST rate is not a permitted slab"
	case errors.Is(err, domain.ErrMissingState):
		return http.StatusBadRequest, "MISSING_STATE", "state code is required"
	case errors.Is(err, domain.ErrInvalidStateCode):
		return http.StatusBadRequest, "INVALID_STATE_CODE", "invalid state code"
	case errors.Is(err, domain.ErrInvalidGSTIN):
		return http.StatusBadRequest, "INVALID_GSTIN", "invalid GSTIN"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "document has no line items"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "INVALID_AMOUNT", "invalid amount"
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, "INVALID_CATEGORY", "invalid transaction category"
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest, "INVALID_PERIOD", "filing period must be YYYY-MM"
	case errors.Is(err, domain.ErrInvalidReturnType):
		return http.StatusBadRequest, "INVALID_RETURN_TYPE", "return type must be gstr1 or gstr3b"
	case errors.Is(err, domain.ErrDuplicateDocument):
		return http.StatusConflict, "DUPLICATE_DOCUMENT", "duplicate document in period"
	case errors.Is(err, domain.ErrReturnAlreadyFiled):
		return http.StatusConflict, "RETURN_ALREADY_FILED", "return has already been filed"
	case errors.Is(err, domain.ErrReturnNotFound):
		return http.StatusNotFound, "RETURN_NOT_FOUND", "return not found"
	case errors.Is(err, domain.ErrBusinessNotFound):
		return http.StatusNotFound, "BUSINESS_NOT_FOUND", "business not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response. Validation
// failures carry the offending field.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.GetLogger(c).Error("internal error", zap.Error(err))
	}

	apiErr := &APIError{Code: code, Message: msg}
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		apiErr.Message = fe.Error()
		apiErr.Details = &ErrorDetails{Field: fe.Field, Value: fe.Value, Constraint: fe.Constraint}
	}
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}
