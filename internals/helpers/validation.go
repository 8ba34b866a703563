package helper

import (
	"bytes"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// notblank rejects strings that are empty after trimming.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() == reflect.String {
			return strings.TrimSpace(f.String()) != ""
		}
		return true
	})
	return v
}

// BindError describes a request body that could not be decoded or validated.
type BindError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *BindError) Error() string { return e.Message }

// ValidateStruct runs the shared validator and returns field → failed rules.
func ValidateStruct(v any) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{"_": {err.Error()}}
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[field] = append(out[field], rule)
	}
	return out
}

// BindJSON decodes the body into dst and validates it. Empty bodies fail with
// 400 "No data provided", undecodable ones with 400, rule failures with 422.
func BindJSON(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("{}")) || bytes.Equal(body, []byte("null")) {
		return &BindError{Status: fiber.StatusBadRequest, Message: constants.MsgNoDataProvided}
	}
	if err := c.App().Config().JSONDecoder(body, dst); err != nil {
		return &BindError{Status: fiber.StatusBadRequest, Message: constants.MsgInvalidBody}
	}
	if fields := ValidateStruct(dst); len(fields) > 0 {
		return &BindError{
			Status:  fiber.StatusUnprocessableEntity,
			Message: constants.MsgValidationError,
			Fields:  fields,
		}
	}
	return nil
}
