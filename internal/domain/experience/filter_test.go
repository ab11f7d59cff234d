//go:build unit

package experience_test

import (
	"testing"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/pkg/ptr"
	"experience-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	exp := builder.NewExperienceBuilder().
		WithTitle("Amazing Rajasthan Desert Safari").
		WithLocation("Jaisalmer, Rajasthan").
		WithCategory("Adventure").
		AsFeatured().
		MustBuildDomain()

	testCases := []struct {
		name   string
		filter experience.Filter
		want   bool
	}{
		{name: "empty filter matches everything", filter: experience.Filter{}, want: true},
		{name: "category substring, case-insensitive", filter: experience.Filter{Category: ptr.To("advent")}, want: true},
		{name: "category mismatch", filter: experience.Filter{Category: ptr.To("Beach")}, want: false},
		{name: "location substring", filter: experience.Filter{Location: ptr.To("RAJASTHAN")}, want: true},
		{name: "featured true", filter: experience.Filter{Featured: ptr.To(true)}, want: true},
		{name: "featured false", filter: experience.Filter{Featured: ptr.To(false)}, want: false},
		{name: "search hits title", filter: experience.Filter{Search: ptr.To("desert")}, want: true},
		{name: "search hits location", filter: experience.Filter{Search: ptr.To("jaisalmer")}, want: true},
		{name: "search hits category", filter: experience.Filter{Search: ptr.To("adventure")}, want: true},
		{name: "search misses", filter: experience.Filter{Search: ptr.To("houseboat")}, want: false},
		{
			name:   "all predicates must hold",
			filter: experience.Filter{Category: ptr.To("Adventure"), Location: ptr.To("Goa")},
			want:   false,
		},
		{
			name:   "conjunction that holds",
			filter: experience.Filter{Category: ptr.To("Adventure"), Featured: ptr.To(true), Search: ptr.To("safari")},
			want:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(exp))
		})
	}
}

func TestFilterIsEmpty(t *testing.T) {
	assert.True(t, experience.Filter{}.IsEmpty())
	assert.False(t, experience.Filter{Featured: ptr.To(false)}.IsEmpty())
}
