//go:build e2e

package e2e

import (
	"net/http"
	"net/url"

	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

// experienceByTitle looks a seeded experience up through the public API.
func (s *SharedSuite) experienceByTitle(title string) *resdto.ExperienceResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/experiences?search="+url.QueryEscape(title), nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var list []*resdto.ExperienceResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &list))
	for _, e := range list {
		if e.Title == title {
			return e
		}
	}
	s.T().Fatalf("experience %q not seeded", title)
	return nil
}
