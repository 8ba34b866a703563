package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
)

// ParseID reads a positive integer path parameter.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &BindError{Status: fiber.StatusBadRequest, Message: constants.MsgInvalidID}
	}
	return uint(id), nil
}
