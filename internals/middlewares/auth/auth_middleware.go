package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	helperAuth "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret string
}

// AuthJWT guards admin-only routes. Tokens stay valid until they expire;
// there is no revocation list.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw, ok := extractBearerToken(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgMissingAuthHeader)
		}

		claims, err := helperAuth.Parse(secret, raw)
		if err != nil {
			msg := constants.MsgInvalidToken
			if errors.Is(err, helperAuth.ErrTokenExpired) {
				msg = constants.MsgTokenExpired
			}
			log.Debug().Str("request_id", helper.RequestID(c)).Str("reason", msg).Msg("rejected token")
			return helper.JsonError(c, fiber.StatusUnauthorized, msg)
		}

		c.Locals(helperAuth.LocClaims, claims)
		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
