// File: internal/validation/struct.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator wraps go-playground/validator for Echo
// swagger:ignore
type StructValidator struct {
	validator *validator.Validate
}

// NewStructValidator 以 json tag 作為錯誤中的欄位名稱
func NewStructValidator() *StructValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &StructValidator{validator: v}
}

// Validate calls the underlying validator
func (sv *StructValidator) Validate(i interface{}) error {
	return sv.validator.Struct(i)
}

// Describe 將欄位驗證錯誤轉成單行訊息，例如 "email: must be a valid email"
func Describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), reason(fe)))
	}
	return strings.Join(msgs, "; ")
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag()
	}
}
