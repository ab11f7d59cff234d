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

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "Registration request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	view, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUsernameTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username already taken", nil)
		case errs.Is(err, errs.ErrValidation):
			httperr.AbortWithValidation(c, err)
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, queries.ErrUserNotFound, "User not found")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortNotFoundOr500(c, err, queries.ErrUserNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Find user by username
// @Tags users
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		httperr.AbortWithValidation(c, errs.Field("username", errs.New("is required")))
		return
	}
	view, err := h.q.GetByUsername(c.Request.Context(), username)
	if err != nil {
		abortNotFoundOr500(c, err, queries.ErrUserNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
