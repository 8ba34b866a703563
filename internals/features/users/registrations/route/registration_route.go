package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/service"
)

func RegistrationRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewRegistrationController(
		service.NewRegistrationService(repository.NewRegistrationRepository(db)),
	)

	api.Get("/courses/:id/registrations", adminOnly, ctrl.ListByCourse)
	api.Post("/courses/:id/registrations", adminOnly, ctrl.Create)
	api.Patch("/registrations/:id", adminOnly, ctrl.UpdateStatus)
	api.Delete("/registrations/:id", adminOnly, ctrl.Delete)
}
