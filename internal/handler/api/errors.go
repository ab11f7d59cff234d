package api

import (
	"net/http"

	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseID treats a malformed id like an unknown one: the record cannot exist.
func parseID(c *gin.Context, notFoundErr error, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.Mark(err, notFoundErr), notFoundMsg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortNotFoundOr500(c *gin.Context, err error, notFoundErr error, notFoundMsg string) {
	if errs.Is(err, notFoundErr) {
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMsg, nil)
		return
	}
	httperr.AbortInternal(c, err)
}
