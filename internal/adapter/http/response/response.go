// Package response provides the HTTP response builders for the flight search
// API. Success responses carry the search envelope verbatim; failures carry a
// single user-facing error string.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape of every failure response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// OK writes a 200 response with the given payload.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Error writes a failure response with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Error: message})
}

// Health writes the health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
