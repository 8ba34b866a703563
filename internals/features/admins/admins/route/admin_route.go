package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/service"
)

func AdminRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewAdminController(service.NewAdminService(repository.NewAdminRepository(db)))

	// Guarded per route: a group-level guard would also catch POST /admins/login.
	g := api.Group("/admins")
	g.Get("/", adminOnly, ctrl.List)
	g.Get("/:id", adminOnly, ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
