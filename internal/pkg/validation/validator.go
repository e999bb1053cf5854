package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	TagKenyanPhone = "kephone"
	TagEmailShape  = "emailshape"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the storefront tags registered.
// Field names in errors come from the json tag.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation(TagKenyanPhone, func(fl validator.FieldLevel) bool {
			return ValidKenyanPhone(fl.Field().String())
		})
		_ = v.RegisterValidation(TagEmailShape, func(fl validator.FieldLevel) bool {
			return ValidEmail(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// FieldErrors turns a validator error into field -> message. Messages come
// from the messages table keyed by "field.tag", falling back to "field".
func FieldErrors(err error, messages map[string]string) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		if msg, ok := messages[field]; ok {
			out[field] = msg
			continue
		}
		out[field] = field + " is invalid"
	}
	return out
}
