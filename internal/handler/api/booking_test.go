//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/handler/api"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	"experience-booking/tests/common/httptest"
	"experience-booking/tests/common/testutil"
	commandsmock "experience-booking/tests/mock/commands"
	queriesmock "experience-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name        string
	mutate      func(m map[string]any)
	expectCode  int
	expectField string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	bound := []testCaseBooking{
		{name: "guests boundary OK (1)", mutate: testutil.Field("guests", 1), expectCode: http.StatusCreated},
		{name: "guests boundary invalid (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest, expectField: "guests"},
		{name: "guests boundary OK (10)", mutate: testutil.Field("guests", 10), expectCode: http.StatusCreated},
		{name: "guests boundary invalid (11)", mutate: testutil.Field("guests", 11), expectCode: http.StatusBadRequest, expectField: "guests"},
		{name: "guests far past int32", mutate: testutil.Field("guests", 100000000000000), expectCode: http.StatusBadRequest, expectField: "guests"},
		{name: "guests negative", mutate: testutil.Field("guests", -1), expectCode: http.StatusBadRequest, expectField: "guests"},
		{name: "guests wrong type", mutate: testutil.Field("guests", "three"), expectCode: http.StatusBadRequest, expectField: "guests"},
		{name: "date only is accepted", mutate: testutil.Field("bookingDate", "2025-12-20"), expectCode: http.StatusCreated},
		{name: "unparseable date", mutate: testutil.Field("bookingDate", "next friday"), expectCode: http.StatusBadRequest, expectField: "bookingDate"},
		{name: "malformed email", mutate: testutil.Field("customerEmail", "asha"), expectCode: http.StatusBadRequest, expectField: "customerEmail"},
		{name: "experienceId not a uuid", mutate: testutil.Field("experienceId", "kerala"), expectCode: http.StatusBadRequest, expectField: "experienceId"},
		{name: "unknown status", mutate: testutil.Field("status", "paid"), expectCode: http.StatusBadRequest, expectField: "status"},
	}

	missing := []testCaseBooking{
		{name: "missing field: experienceId", mutate: testutil.Field("experienceId", nil), expectCode: http.StatusBadRequest, expectField: "experienceId"},
		{name: "missing field: customerName", mutate: testutil.Field("customerName", nil), expectCode: http.StatusBadRequest, expectField: "customerName"},
		{name: "missing field: customerEmail", mutate: testutil.Field("customerEmail", nil), expectCode: http.StatusBadRequest, expectField: "customerEmail"},
		{name: "missing field: customerPhone", mutate: testutil.Field("customerPhone", nil), expectCode: http.StatusBadRequest, expectField: "customerPhone"},
		{name: "missing field: bookingDate", mutate: testutil.Field("bookingDate", nil), expectCode: http.StatusBadRequest, expectField: "bookingDate"},
		{name: "missing field: guests", mutate: testutil.Field("guests", nil), expectCode: http.StatusBadRequest, expectField: "guests"},
		{name: "optional field: specialRequests", mutate: testutil.Field("specialRequests", nil), expectCode: http.StatusCreated},
		{name: "optional field: status", mutate: testutil.Field("status", nil), expectCode: http.StatusCreated},
		{name: "unknown fields are ignored", mutate: testutil.Fields(testutil.Field("totalAmount", "0.01"), testutil.Field("couponCode", "FREE")), expectCode: http.StatusCreated},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing}

	s.Run("success: returns 201 with the server-computed total", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("5697.00", body.TotalAmount)
		s.Equal("pending", body.Status)
	})

	s.Run("success: a client totalAmount is ignored", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).Return(returnView, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("totalAmount", "1.00"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("5697.00", body.TotalAmount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
						return
					}
					body := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Validation failed")
					s.Contains(body.Fields(), tc.expectField)
				})
			}
		}
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"experienceId":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: unknown experience is a 400 on experienceId", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrExperienceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Experience not found")
		s.Equal([]string{"experienceId"}, body.Fields())
	})

	s.Run("error: domain validation from the command", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Field("customerName", errs.New("customer name cannot be empty"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		s.Equal([]string{"customerName"}, body.Fields())
	})

	s.Run("error: total out of range is a 400 on guests", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Field("guests", booking.ErrTotalOutOfRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		s.Equal([]string{"guests"}, body.Fields())
	})

	s.Run("error: store failure is a generic 500", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("disk on fire"), commands.ErrStoreFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "disk on fire")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.CustomerEmail, body.CustomerEmail)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("malformed id is a 404, not a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("empty store renders an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
