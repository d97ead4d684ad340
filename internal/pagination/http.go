package pagination

import (
	"net/http"
	"strconv"
)

// ParsePageRequest extracts pagination parameters from an HTTP request.
// Absent or malformed values keep their defaults.
func ParsePageRequest(r *http.Request) PageRequest {
	req := DefaultPageRequest()
	q := r.URL.Query()

	if page := q.Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil {
			req.Page = p
		}
	}

	if limit := q.Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			req.Limit = l
		}
	}

	req.Search = q.Get("search")

	req.Validate()
	return req
}
