package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRepo "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/auth/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/auth/service"
)

type AuthRouteOpts struct {
	Secret       string
	TokenTTL     time.Duration
	LoginLimiter fiber.Handler
}

// AuthRoutes must be registered before the admin CRUD routes so /admins/me
// is not captured by /admins/:id.
func AuthRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB, o AuthRouteOpts) {
	svc := service.NewAuthService(adminRepo.NewAdminRepository(db), o.Secret, o.TokenTTL)
	ctrl := controller.NewAuthController(svc)

	g := api.Group("/admins")
	if o.LoginLimiter != nil {
		g.Post("/login", o.LoginLimiter, ctrl.Login)
	} else {
		g.Post("/login", ctrl.Login)
	}
	g.Get("/me", adminOnly, ctrl.Me)
}
