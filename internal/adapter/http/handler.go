package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyfare/flight-search-service/internal/adapter/http/response"
	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/logger"
)

// FlightHandler handles HTTP requests for flight search.
type FlightHandler struct {
	service domain.FlightService
	log     *logger.Logger
}

// NewFlightHandler creates a handler backed by the given search service.
func NewFlightHandler(service domain.FlightService, log *logger.Logger) *FlightHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
//	@Summary		Search for flights
//	@Description	Searches the configured data source with optional filters, sorting and pagination
//	@Tags			flights
//	@Produce		json
//	@Param			origin		query	string	false	"Origin IATA code or airport/city substring"
//	@Param			destination	query	string	false	"Destination IATA code or airport/city substring"
//	@Param			date		query	string	false	"Flight date (YYYY-MM-DD)"
//	@Param			maxPrice	query	number	false	"Maximum price (inclusive)"
//	@Param			minPrice	query	number	false	"Minimum price (inclusive)"
//	@Param			stops		query	string	false	"Stop filter: non-stop or 1+"
//	@Param			minDuration	query	integer	false	"Minimum duration in minutes"
//	@Param			maxDuration	query	integer	false	"Maximum duration in minutes"
//	@Param			flightCode	query	string	false	"Flight number or airline substring"
//	@Param			status		query	string	false	"Flight status filter"
//	@Param			sortBy		query	string	false	"Sort order: price_asc, departure_asc or duration_asc"
//	@Param			page		query	integer	false	"Page number (default 1)"
//	@Param			limit		query	integer	false	"Page size (default 10)"
//	@Success		200	{object}	domain.SearchResponse
//	@Failure		502	{object}	response.ErrorResponse
//	@Router			/flights/search [get]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	criteria := ParseSearchCriteria(c)

	result, err := h.service.SearchFlights(c.Request().Context(), criteria)
	if err != nil {
		h.log.Error().Err(err).Msg("flight search failed")
		if errors.Is(err, domain.ErrProviderFailure) {
			return response.Error(c, http.StatusBadGateway, "failed to fetch flights")
		}
		return response.Error(c, http.StatusInternalServerError, "failed to fetch flights")
	}

	return response.OK(c, result)
}

// Health handles GET /health.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
