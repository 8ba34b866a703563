package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/route"
	userRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/route"
)

// UserRoutes mounts registrants and their course registrations. Admin only.
func UserRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	userRoute.UserRoutes(api, adminOnly, db)
	registrationRoute.RegistrationRoutes(api, adminOnly, db)
}
