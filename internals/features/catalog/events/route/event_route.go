package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/service"
)

func EventRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewEventController(service.NewEventService(repository.NewEventRepository(db)))

	g := api.Group("/events")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
