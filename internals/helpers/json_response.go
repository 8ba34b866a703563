// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JsonError: {"error": message}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = constants.MsgInternalError
		if status < 500 {
			message = statusText(status)
		}
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// JsonValidationError: 422 with per-field rule names.
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Error:   constants.MsgValidationError,
		Details: fieldErrors,
	})
}

// JsonAppError maps the domain error taxonomy to a status code.
func JsonAppError(c *fiber.Ctx, err error) error {
	var be *BindError
	if errors.As(err, &be) {
		if be.Status == fiber.StatusUnprocessableEntity {
			return JsonValidationError(c, be.Fields)
		}
		return JsonError(c, be.Status, be.Message)
	}

	if e, ok := apperr.As(err); ok {
		switch e.Kind {
		case apperr.KindNotFound:
			return JsonError(c, fiber.StatusNotFound, e.Message)
		case apperr.KindAlreadyExists, apperr.KindConflict:
			return JsonError(c, fiber.StatusConflict, e.Message)
		case apperr.KindValidation:
			return JsonError(c, fiber.StatusBadRequest, e.Message)
		case apperr.KindForbidden:
			return JsonError(c, fiber.StatusForbidden, e.Message)
		case apperr.KindUnauthorized:
			return JsonError(c, fiber.StatusUnauthorized, e.Message)
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Error().Err(err).
		Str("request_id", RequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalError)
}

/* ===============================
   JSON responses (standard success)
=================================*/

func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonList wraps items under key, e.g. {"courses": [...]}. Nil slices render as [].
func JsonList[T any](c *fiber.Ctx, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{key: items})
}

func JsonNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestID returns the id set by the request-id middleware, if any.
func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("reqid").(string); ok {
		return v
	}
	return ""
}

func statusText(status int) string {
	if msg := fiber.NewError(status).Message; msg != "" {
		return msg
	}
	return "Error"
}
