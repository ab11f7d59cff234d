//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/middleware"
	"experience-booking/tests/common/builder"
	"experience-booking/tests/common/httptest"
	"experience-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingE2ETestSuite struct {
	SharedSuite
}

func TestBookingE2ESuite(t *testing.T) {
	suite.Run(t, new(BookingE2ETestSuite))
}

func (s *BookingE2ETestSuite) keralaRequest(mutate func(*reqdto.CreateBookingRequest)) reqdto.CreateBookingRequest {
	kerala := s.experienceByTitle("Kerala Backwater Cruise")
	req := builder.NewBookingBuilder().WithExperienceID(kerala.ID).WithGuests(3).BuildCreateRequestDTO()
	if mutate != nil {
		mutate(&req)
	}
	return req
}

func (s *BookingE2ETestSuite) TestCreateBooking() {
	s.Run("total is price times guests", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.keralaRequest(nil))

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.NotEqual(uuid.Nil, got.ID)
		s.Equal("5697.00", got.TotalAmount)
		s.Equal("pending", got.Status)
		s.Equal(3, got.Guests)
	})

	s.Run("client supplied total is ignored", func() {
		body := testutil.DtoMap(s.T(), s.keralaRequest(nil), testutil.Field("totalAmount", "1.00"))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body)

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("5697.00", got.TotalAmount)
	})

	s.Run("unknown experience", func() {
		req := s.keralaRequest(func(r *reqdto.CreateBookingRequest) { r.ExperienceID = uuid.NewString() })
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Experience not found")
		s.Equal([]string{"experienceId"}, body.Fields())
	})

	s.Run("invalid fields are reported", func() {
		req := s.keralaRequest(func(r *reqdto.CreateBookingRequest) {
			r.CustomerEmail = "not-an-email"
			r.Guests = 0
		})
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		s.ElementsMatch([]string{"customerEmail", "guests"}, body.Fields())
	})

	s.Run("largest party is priced exactly", func() {
		req := s.keralaRequest(func(r *reqdto.CreateBookingRequest) { r.Guests = 10 })
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("18990.00", got.TotalAmount)
	})

	s.Run("huge guest count is rejected instead of wrapping the total", func() {
		req := s.keralaRequest(func(r *reqdto.CreateBookingRequest) { r.Guests = 100000000000000 })
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		s.Equal([]string{"guests"}, body.Fields())
	})

	s.Run("malformed body", func() {
		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", `{"guests":`)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
	})
}

func (s *BookingE2ETestSuite) TestBookingListCache() {
	s.Run("create invalidates the cached list", func() {
		first := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil)
		httptest.AssertCacheStatus(s.T(), first, "MISS")
		s.JSONEq(`[]`, first.Body.String())

		cached := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil)
		httptest.AssertCacheStatus(s.T(), cached, "HIT")

		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.keralaRequest(nil))
		var booking resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &booking)

		after := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil)
		httptest.AssertHeaders(s.T(), after, map[string]string{
			middleware.CacheStatusHeader: "MISS",
			"Content-Type":               "application/json; charset=utf-8",
		})

		var list []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), after, http.StatusOK, &list)
		s.Require().Len(list, 1)
		s.Equal(booking.ID, list[0].ID)
	})
}

func (s *BookingE2ETestSuite) TestGetBooking() {
	s.Run("round trip", func() {
		created := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", s.keralaRequest(nil))
		var booking resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &booking)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+booking.ID.String(), nil)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(booking, got)
	})

	s.Run("bookings per experience", func() {
		req := s.keralaRequest(nil)
		httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/experiences/"+req.ExperienceID+"/bookings", nil)
		var list []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Len(list, 1)
	})

	s.Run("unknown and malformed ids are not found", func() {
		for _, id := range []string{uuid.NewString(), "abc"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+id, nil)
			httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
		}
	})
}
