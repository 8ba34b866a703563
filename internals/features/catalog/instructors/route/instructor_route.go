package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/service"
)

func InstructorRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewInstructorController(service.NewInstructorService(repository.NewInstructorRepository(db)))

	g := api.Group("/instructors")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
