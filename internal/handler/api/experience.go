package api

import (
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	q        queries.ExperienceQueries
	bookings queries.BookingQueries
}

func NewExperienceHandler(q queries.ExperienceQueries, bookings queries.BookingQueries) *ExperienceHandler {
	return &ExperienceHandler{q: q, bookings: bookings}
}

// @Summary List experiences
// @Description List catalog entries newest first. All supplied filters must match.
// @Tags experiences
// @Produce json
// @Param category query string false "Case-insensitive substring of the category"
// @Param location query string false "Case-insensitive substring of the location"
// @Param featured query boolean false "Featured flag"
// @Param search query string false "Matches title, location or category"
// @Success 200 {array} resdto.ExperienceResponse
// @Failure 500 {object} httperr.Response
// @Router /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	var query reqdto.ExperienceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExperienceViews(views))
}

// @Summary Get experience
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} resdto.ExperienceResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, queries.ErrExperienceNotFound, "Experience not found")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortNotFoundOr500(c, err, queries.ErrExperienceNotFound, "Experience not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromExperienceView(view))
}

// @Summary List bookings for an experience
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /experiences/{id}/bookings [get]
func (h *ExperienceHandler) ListBookings(c *gin.Context) {
	id, ok := parseID(c, queries.ErrExperienceNotFound, "Experience not found")
	if !ok {
		return
	}
	views, err := h.bookings.ListByExperience(c.Request.Context(), id)
	if err != nil {
		abortNotFoundOr500(c, err, queries.ErrExperienceNotFound, "Experience not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List categories
// @Description Distinct categories across the catalog
// @Tags experiences
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} httperr.Response
// @Router /categories [get]
func (h *ExperienceHandler) Categories(c *gin.Context) {
	values, err := h.q.Categories(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// @Summary List destinations
// @Description Distinct locations across the catalog
// @Tags experiences
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} httperr.Response
// @Router /destinations [get]
func (h *ExperienceHandler) Destinations(c *gin.Context) {
	values, err := h.q.Destinations(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}
