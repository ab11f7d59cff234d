package experience

import "strings"

// Filter holds the optional catalog predicates. Nil fields impose no
// constraint; every non-nil field must match.
type Filter struct {
	Category *string
	Location *string
	Featured *bool
	// Search matches title, location or category.
	Search *string
}

func (f Filter) IsEmpty() bool {
	return f.Category == nil && f.Location == nil && f.Featured == nil && f.Search == nil
}

func (f Filter) Matches(e *Experience) bool {
	if f.Category != nil && !containsFold(e.category, *f.Category) {
		return false
	}
	if f.Location != nil && !containsFold(e.location, *f.Location) {
		return false
	}
	if f.Featured != nil && e.featured != *f.Featured {
		return false
	}
	if f.Search != nil {
		term := *f.Search
		if !containsFold(e.title, term) && !containsFold(e.location, term) && !containsFold(e.category, term) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
