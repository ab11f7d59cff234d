//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/handler/api"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/pkg/ptr"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	"experience-booking/tests/common/httptest"
	queriesmock "experience-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExperienceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockExperienceQueries
	mockBookings *queriesmock.MockBookingQueries
	handler      *api.ExperienceHandler
}

func (s *ExperienceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockExperienceQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewExperienceHandler(s.mockQueries, s.mockBookings)

	s.router.GET("/experiences", s.handler.List)
	s.router.GET("/experiences/:id", s.handler.Get)
	s.router.GET("/experiences/:id/bookings", s.handler.ListBookings)
	s.router.GET("/categories", s.handler.Categories)
	s.router.GET("/destinations", s.handler.Destinations)
}

func (s *ExperienceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExperienceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExperienceHandlerTestSuite))
}

func (s *ExperienceHandlerTestSuite) TestList() {
	view := builder.NewExperienceBuilder().AsFeatured().With(func(b *builder.ExperienceBuilder) {
		b.OriginalPrice = "2499.00"
	}).BuildView()

	cases := []struct {
		name   string
		url    string
		filter experience.Filter
	}{
		{name: "no filters", url: "/experiences", filter: experience.Filter{}},
		{name: "featured=true", url: "/experiences?featured=true", filter: experience.Filter{Featured: ptr.To(true)}},
		{name: "featured=false", url: "/experiences?featured=false", filter: experience.Filter{Featured: ptr.To(false)}},
		{name: "empty params are absent", url: "/experiences?category=&search=", filter: experience.Filter{}},
		{
			name:   "every filter",
			url:    "/experiences?category=Adventure&location=Rajasthan&search=desert",
			filter: experience.Filter{Category: ptr.To("Adventure"), Location: ptr.To("Rajasthan"), Search: ptr.To("desert")},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().List(gomock.Any(), tc.filter).
				Return([]*queries.ExperienceView{view}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil)

			var body []resdto.ExperienceResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Require().Len(body, 1)

			expected := resdto.ExperienceResponse{
				ID:            view.ID,
				Title:         "Kerala Backwater Cruise",
				Location:      "Alleppey, Kerala",
				Price:         "1899.00",
				OriginalPrice: ptr.To("2499.00"),
				Rating:        "4.7",
				ReviewCount:   89,
				Category:      "Cultural",
				Featured:      true,
			}
			opts := []cmp.Option{
				cmpopts.IgnoreFields(resdto.ExperienceResponse{},
					"Duration", "GroupSize", "Image", "Description", "Inclusions", "Exclusions", "Highlights", "CreatedAt"),
			}
			if diff := cmp.Diff(expected, body[0], opts...); diff != "" {
				s.T().Errorf("Experience response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func (s *ExperienceHandlerTestSuite) TestGet() {
	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrExperienceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/experiences/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Experience not found")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/experiences/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Experience not found")
	})

	s.Run("success", func() {
		view := builder.NewExperienceBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/experiences/"+view.ID.String(), nil)

		var body resdto.ExperienceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Nil(body.OriginalPrice)
		s.Equal([]string{"Houseboat stay", "All meals"}, body.Inclusions)
	})
}

func (s *ExperienceHandlerTestSuite) TestListBookings() {
	s.Run("unknown experience", func() {
		id := uuid.New()
		s.mockBookings.EXPECT().ListByExperience(gomock.Any(), id).Return(nil, queries.ErrExperienceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/experiences/"+id.String()+"/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Experience not found")
	})

	s.Run("bookings for the experience", func() {
		id := uuid.New()
		view := builder.NewBookingBuilder().WithExperienceID(id).BuildView()
		s.mockBookings.EXPECT().ListByExperience(gomock.Any(), id).Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/experiences/"+id.String()+"/bookings", nil)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(id, body[0].ExperienceID)
	})
}

func (s *ExperienceHandlerTestSuite) TestFacets() {
	s.Run("categories", func() {
		s.mockQueries.EXPECT().Categories(gomock.Any()).Return([]string{"Adventure", "Cultural"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`["Adventure","Cultural"]`, rec.Body.String())
	})

	s.Run("destinations", func() {
		s.mockQueries.EXPECT().Destinations(gomock.Any()).Return([]string{"North Goa, Goa"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/destinations", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`["North Goa, Goa"]`, rec.Body.String())
	})
}
