package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

// Global limiter for every endpoint.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, constants.MsgTooManyRequests)
}

// Stricter limiter for POST /admins/login.
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, constants.MsgTooManyLoginAttempts)
}

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}
