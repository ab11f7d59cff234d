package httperr

import (
	"net/http"

	"experience-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and records err on the context
// so the logging middleware can report the underlying cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithValidation responds 400 with one {field, message} entry per problem.
func AbortWithValidation(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Validation failed", FieldErrors(err))
}

func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
