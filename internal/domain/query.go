package domain

import "strings"

// RecommendRequest is a single recommendation query. Severity and
// Location arrive as free text from the UI and are normalized by the
// engine rather than rejected.
type RecommendRequest struct {
	DirtType string `json:"dirtType" binding:"required"`
	Severity string `json:"severity,omitempty"`
	Location string `json:"location,omitempty"`
}

// SearchQuery is the engine-internal, normalized form of a request.
type SearchQuery struct {
	DirtType string
	Severity Severity
	Location string
}

// NewSearchQuery normalizes a raw request into a SearchQuery.
func NewSearchQuery(dirtType, severity, location string) SearchQuery {
	return SearchQuery{
		DirtType: strings.ToLower(strings.TrimSpace(dirtType)),
		Severity: ParseSeverity(strings.ToLower(strings.TrimSpace(severity))),
		Location: strings.ToLower(strings.TrimSpace(location)),
	}
}

// CacheKey joins the query fields into the memoization key. A missing
// location still contributes a separator so "no location" is a distinct
// key value rather than colliding with a location-suffixed dirt type.
func (q SearchQuery) CacheKey() string {
	return q.DirtType + "|" + string(q.Severity) + "|" + q.Location
}
