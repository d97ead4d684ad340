// Package pagination provides offset pagination and the response envelope
// shared by every list endpoint.
package pagination

const (
	// DefaultLimit is the default number of items per page.
	DefaultLimit = 10
	// MaxLimit is the maximum allowed items per page.
	MaxLimit = 100
	// MinLimit is the minimum allowed items per page.
	MinLimit = 1
)

// PageRequest contains pagination parameters from the request.
type PageRequest struct {
	Page   int // 1-indexed
	Limit  int
	Search string
}

// DefaultPageRequest returns a PageRequest with sensible defaults.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page:  1,
		Limit: DefaultLimit,
	}
}

// Validate normalizes the PageRequest. Invalid pages become page 1 and
// out-of-range limits fall back to the default or the cap. The store layer
// trusts normalized values, so every caller-facing path must go through here.
func (pr *PageRequest) Validate() {
	if pr.Page < 1 {
		pr.Page = 1
	}
	if pr.Limit < MinLimit {
		pr.Limit = DefaultLimit
	}
	if pr.Limit > MaxLimit {
		pr.Limit = MaxLimit
	}
}

// Offset calculates the row offset for the page.
func (pr *PageRequest) Offset() int {
	return (pr.Page - 1) * pr.Limit
}

// PageResponse represents a paginated response with items and metadata.
type PageResponse[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageInfo `json:"pagination"`
}

// PageInfo contains pagination metadata for the response.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageInfo builds metadata from a request and the full filtered count.
// TotalPages is ceil(total/limit), so it agrees with the page contents only
// when total was computed with the same predicate as the page query.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	limit := int64(req.Limit)
	totalPages := (total + limit - 1) / limit
	return PageInfo{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// NewPageResponse wraps one page of items in the response envelope. A nil
// slice serializes as an empty JSON array.
func NewPageResponse[T any](items []T, req PageRequest, total int64) *PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResponse[T]{
		Data:       items,
		Pagination: NewPageInfo(req, total),
	}
}
