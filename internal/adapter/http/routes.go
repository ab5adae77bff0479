package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the flight search API on the given echo instance.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	e.GET("/health", h.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/flights/search", h.SearchFlights)
}
