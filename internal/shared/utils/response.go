package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
)

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is the body of offset-paginated listings.
type ListResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// OKResponse is returned by workflow endpoints that produce no resource.
type OKResponse struct {
	OK bool `json:"ok"`
}

// IDResponse is returned when a resource is created and only its id matters.
type IDResponse struct {
	ID int64 `json:"id"`
}

// SuccessResponse sends data as the response body with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a 201 with data as the body.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK sends {"ok": true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorEnvelope{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	var statusCode int
	var errorInfo ErrorInfo

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.Code
		errorInfo = ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	} else {
		// For non-AppError, do not expose internal error details to prevent information leakage
		statusCode = http.StatusInternalServerError
		errorInfo = ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		}
	}

	c.JSON(statusCode, ErrorEnvelope{
		Success: false,
		Error:   &errorInfo,
	})
}

// ListSuccessResponse sends a 200 listing with offset pagination.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, limit, offset int) {
	c.JSON(http.StatusOK, ListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
