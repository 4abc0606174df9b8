package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harue/projectboard/internal/domain"
)

// errorEnvelope wraps failure responses. Success bodies are written bare.
type errorEnvelope struct {
	Error APIError `json:"error"`
}

// APIError represents an error in the API response.
type APIError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a field-level validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPErrorHandler is the global error handler for echo.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, apiErr := mapError(err)
	if jsonErr := c.JSON(status, errorEnvelope{Error: apiErr}); jsonErr != nil {
		slog.Error("failed to send error response", "error", jsonErr)
	}
}

func mapError(err error) (int, APIError) {
	// Handle echo's own HTTP errors (404, 405, bind failures, etc.)
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg, _ := echoErr.Message.(string)
		if msg == "" {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, APIError{
			Code:    http.StatusText(echoErr.Code),
			Message: msg,
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, APIError{
			Code:    "not_found",
			Message: "The requested resource was not found",
		}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, APIError{
			Code:    "invalid_input",
			Message: "The request body is invalid",
		}
	default:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return http.StatusBadRequest, APIError{
				Code:    "validation_error",
				Message: "Validation failed",
				Details: []FieldError{
					{Field: validationErr.Field, Message: validationErr.Message},
				},
			}
		}

		slog.Error("unhandled error", "error", err)
		return http.StatusInternalServerError, APIError{
			Code:    "internal_error",
			Message: "An unexpected error occurred",
		}
	}
}
