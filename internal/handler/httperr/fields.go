package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"experience-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterJSONFieldNames makes validator report fields by their JSON name,
// so error details match what the client sent.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// FieldErrors flattens binding, decoding and domain validation failures
// into a field list.
func FieldErrors(err error) []errs.FieldError {
	var (
		verrs     validator.ValidationErrors
		domain    *errs.ValidationError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		out := make([]errs.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, errs.FieldError{Field: fe.Field(), Message: tagMessage(fe)})
		}
		return out
	case errors.As(err, &domain):
		return domain.Fields
	case errors.As(err, &typeErr):
		return []errs.FieldError{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}}
	case errors.As(err, &syntaxErr):
		return []errs.FieldError{{Field: "body", Message: "malformed JSON"}}
	default:
		return []errs.FieldError{{Field: "body", Message: err.Error()}}
	}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
