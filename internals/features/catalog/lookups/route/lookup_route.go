package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/service"
)

// LookupRoutes mounts /delivery-modes, /event-types and /registration-statuses.
// Reads are public, writes go through adminOnly.
func LookupRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	mount(api, adminOnly, "/delivery-modes", controller.NewLookupController(
		service.New[model.DeliveryMode](repository.NewDeliveryModeRepository(db))))
	mount(api, adminOnly, "/event-types", controller.NewLookupController(
		service.New[model.EventType](repository.NewEventTypeRepository(db))))
	mount(api, adminOnly, "/registration-statuses", controller.NewLookupController(
		service.New[model.RegistrationStatus](repository.NewRegistrationStatusRepository(db))))
}

func mount(api fiber.Router, adminOnly fiber.Handler, prefix string, ctrl *controller.LookupController) {
	g := api.Group(prefix)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
