package helper

import "github.com/gofiber/fiber/v2"

// ErrorHandler is installed as fiber.Config.ErrorHandler so errors that escape
// a handler (routing 404/405, middleware errors, panics turned into errors)
// render the same {"error": ...} body as controller errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonAppError(c, err)
}
