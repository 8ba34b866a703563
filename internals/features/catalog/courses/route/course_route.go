package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/service"
)

// CourseRoutes mounts /courses. The static paths are registered before /:id.
func CourseRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewCourseController(service.NewCourseService(repository.NewCourseRepository(db)))

	g := api.Group("/courses")
	g.Get("/", ctrl.List)
	g.Get("/past", ctrl.ListPast)
	g.Get("/upcoming", ctrl.ListUpcoming)
	g.Get("/search", ctrl.Search)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Put("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
