package request

import (
	"strings"

	"experience-booking/internal/domain/experience"
)

// ExperienceListQuery binds the optional catalog filters. An empty query
// parameter is treated as absent.
type ExperienceListQuery struct {
	Category string `form:"category"`
	Location string `form:"location"`
	Featured string `form:"featured"`
	Search   string `form:"search"`
}

func (q ExperienceListQuery) ToFilter() experience.Filter {
	var f experience.Filter
	if v := strings.TrimSpace(q.Category); v != "" {
		f.Category = &v
	}
	if v := strings.TrimSpace(q.Location); v != "" {
		f.Location = &v
	}
	if v := strings.TrimSpace(q.Search); v != "" {
		f.Search = &v
	}
	if v := strings.TrimSpace(q.Featured); v != "" {
		featured := strings.EqualFold(v, "true")
		f.Featured = &featured
	}
	return f
}
