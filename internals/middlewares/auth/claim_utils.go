// internals/middlewares/auth/claim_utils.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/auth"
)

// extractBearerToken requires an "Authorization: Bearer <token>" header.
func extractBearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(header[len("Bearer "):])
	tok = strings.Trim(tok, "\"'")
	if tok == "" {
		return "", false
	}
	return tok, true
}

// ClaimsFromCtx returns the claims stored by AuthJWT.
func ClaimsFromCtx(c *fiber.Ctx) (*helperAuth.Claims, bool) {
	claims, ok := c.Locals(helperAuth.LocClaims).(*helperAuth.Claims)
	return claims, ok && claims != nil
}
