package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/controller"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/service"
)

func PostRoutes(api fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewPostController(service.NewPostService(repository.NewPostRepository(db)))

	g := api.Group("/blogs")
	g.Get("/", ctrl.List)
	g.Get("/published", ctrl.ListPublished)
	g.Get("/search", ctrl.Search)
	g.Get("/slug/:slug", ctrl.GetBySlug)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
