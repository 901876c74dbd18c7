// Package response defines the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "radiusmgr/internal/delivery/context"
	domainerrors "radiusmgr/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a payload: {"data": ..., "meta": {...}}.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure: {"error": {...}, "meta": {...}}.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the client-facing part of an error.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // 4xx only, never on 401/403
}

// MetaInfo carries the request ID echoed in the X-Request-Id header.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func metaOf(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// detailsAllowed reports whether a status may carry error details.
func detailsAllowed(status int) bool {
	return status < http.StatusInternalServerError &&
		status != http.StatusUnauthorized &&
		status != http.StatusForbidden
}

// Success writes data with the given status.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{Data: data, Meta: metaOf(c)})
}

// Error writes an error envelope. Details are dropped where detailsAllowed says so.
func Error(c echo.Context, status int, code, message string, details any) error {
	if !detailsAllowed(status) {
		details = nil
	}

	return c.JSON(status, ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

// AppError writes the envelope for a domain error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalServerError writes a generic 500.
func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}
