package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the echo instance in the correct order:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger, which observes the final response status
//  3. Recover, wrapping the handlers themselves
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
