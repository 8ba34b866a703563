package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/service"
)

func VenueRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewVenueController(service.NewVenueService(repository.NewVenueRepository(db)))

	g := api.Group("/venues")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
