package domain

// SearchResponse is the stable response envelope returned by every backend.
// Data holds exactly the slice [offset, offset+limit) of the full
// filtered-and-sorted result set.
type SearchResponse struct {
	Data       []Flight   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the position of the returned page within the full
// result set. Total counts matches before pagination.
type Pagination struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// NewSearchResponse builds a response envelope, normalizing a nil flight
// slice to an empty one so callers always receive a JSON array.
func NewSearchResponse(flights []Flight, total, offset, limit int) *SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	return &SearchResponse{
		Data: flights,
		Pagination: Pagination{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	}
}
