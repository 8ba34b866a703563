package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postRoute "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/route"
)

func BlogRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	postRoute.PostRoutes(api, adminOnly, db)
}
