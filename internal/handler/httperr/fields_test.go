//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"testing"

	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string `json:"customerEmail" binding:"required,email"`
	Guests int    `json:"guests" binding:"required,gte=1,lte=10"`
	Status string `json:"status" binding:"omitempty,oneof=pending confirmed"`
}

func TestFieldErrors(t *testing.T) {
	httperr.RegisterJSONFieldNames()

	t.Run("validator errors use json names", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&sample{Email: "nope", Guests: 0, Status: "lost"})
		require.Error(t, err)

		assert.Equal(t, []errs.FieldError{
			{Field: "customerEmail", Message: "must be a valid email address"},
			{Field: "guests", Message: "is required"},
			{Field: "status", Message: "must be one of: pending, confirmed"},
		}, httperr.FieldErrors(err))
	})

	t.Run("upper bound names the limit", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&sample{Email: "asha@example.com", Guests: 100000000000000})
		assert.Equal(t, []errs.FieldError{{Field: "guests", Message: "must be at most 10"}}, httperr.FieldErrors(err))
	})

	t.Run("domain validation errors pass through", func(t *testing.T) {
		err := errs.Field("bookingDate", errors.New("must be a date"))
		assert.Equal(t, []errs.FieldError{{Field: "bookingDate", Message: "must be a date"}}, httperr.FieldErrors(err))
	})

	t.Run("json type mismatch names the field", func(t *testing.T) {
		var s sample
		err := json.Unmarshal([]byte(`{"guests":"three"}`), &s)
		got := httperr.FieldErrors(err)
		require.Len(t, got, 1)
		assert.Equal(t, "guests", got[0].Field)
		assert.Equal(t, "must be of type int", got[0].Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		var s sample
		err := json.Unmarshal([]byte(`{"guests":`), &s)
		assert.Equal(t, []errs.FieldError{{Field: "body", Message: "malformed JSON"}}, httperr.FieldErrors(err))
	})
}
