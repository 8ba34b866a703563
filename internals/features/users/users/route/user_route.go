package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/service"
)

// UserRoutes is admin-only end to end: registrants carry contact data.
func UserRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewUserController(service.NewUserService(repository.NewUserRepository(db)))

	g := api.Group("/users", adminOnly)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
