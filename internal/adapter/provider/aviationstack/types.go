package aviationstack

// Wire types for the aviationstack /flights endpoint. Every field is
// optional and untrusted; the normalizer substitutes defaults for anything
// missing rather than failing the request.

type apiResponse struct {
	Pagination apiPagination `json:"pagination"`
	Data       []apiFlight   `json:"data"`
	Error      *apiError     `json:"error"`
}

// apiError is the application-level error payload the provider returns with
// a 200 status (e.g. invalid access key, usage limit reached).
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type apiPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type apiFlight struct {
	FlightDate   string       `json:"flight_date"`
	FlightStatus string       `json:"flight_status"`
	Departure    apiEndpoint  `json:"departure"`
	Arrival      apiEndpoint  `json:"arrival"`
	Airline      apiAirline   `json:"airline"`
	Flight       apiFlightRef `json:"flight"`
	Aircraft     *apiAircraft `json:"aircraft"`
}

type apiEndpoint struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Scheduled string `json:"scheduled"`
}

type apiAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

type apiFlightRef struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

type apiAircraft struct {
	IATA string `json:"iata"`
}
