package api

import (
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a booking. totalAmount is computed as price x guests; any client value is ignored.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrExperienceNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Experience not found",
				[]errs.FieldError{{Field: "experienceId", Message: "experience does not exist"}})
		case errs.Is(err, errs.ErrValidation):
			httperr.AbortWithValidation(c, err)
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, queries.ErrBookingNotFound, "Booking not found")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortNotFoundOr500(c, err, queries.ErrBookingNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description All bookings, newest first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
