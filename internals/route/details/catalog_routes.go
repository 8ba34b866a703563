package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/route"
	eventRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/route"
	instructorRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/route"
	lookupRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/route"
	venueRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/route"
)

// CatalogRoutes: public reads, admin writes.
func CatalogRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	lookupRoute.LookupRoutes(api, adminOnly, db)
	venueRoute.VenueRoutes(api, adminOnly, db)
	instructorRoute.InstructorRoutes(api, adminOnly, db)
	courseRoute.CourseRoutes(api, adminOnly, db)
	eventRoute.EventRoutes(api, adminOnly, db)
}
