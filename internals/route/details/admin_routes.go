package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
	adminRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/route"
	authRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/auth/route"
	rateLimiter "github.com/MindsetMakersAcademy/MindsetBackend/internals/middlewares"
)

func AdminRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB, cfg configs.Config) {
	// login and /me first: /admins/:id would otherwise swallow /admins/me
	authRoute.AuthRoutes(api, adminOnly, db, authRoute.AuthRouteOpts{
		Secret:       cfg.SecretKey,
		TokenTTL:     cfg.AccessTokenExpires,
		LoginLimiter: rateLimiter.LoginRateLimiter(),
	})
	adminRoute.AdminRoutes(api, adminOnly, db)
}
