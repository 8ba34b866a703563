package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/service"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	authMiddleware "github.com/MindsetMakersAcademy/MindsetBackend/internals/middlewares/auth"
)

type PostService interface {
	List(ctx context.Context, paging helper.Paging) ([]dto.PostDTO, error)
	ListPublished(ctx context.Context, paging helper.Paging) ([]dto.PostDTO, error)
	Search(ctx context.Context, q string, paging helper.Paging) ([]dto.PostDTO, error)
	Get(ctx context.Context, id uint) (dto.PostDTO, error)
	GetBySlug(ctx context.Context, slug string) (dto.PostDTO, error)
	Create(ctx context.Context, req dto.CreatePostRequest) (dto.PostDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdatePostRequest) (dto.PostDTO, error)
	Delete(ctx context.Context, id uint) error
}

type PostController struct {
	Svc PostService
}

func NewPostController(svc PostService) *PostController {
	return &PostController{Svc: svc}
}

func paging(c *fiber.Ctx) helper.Paging {
	return helper.ResolvePaging(c, service.DefaultLimit, service.MaxLimit)
}

// notFound keeps the {"error":"Not found"} shape for missing posts on reads.
func notFound(c *fiber.Ctx, err error) error {
	if apperr.Is(err, apperr.KindNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgNotFound)
	}
	return helper.JsonAppError(c, err)
}

// GET /blogs?limit=&offset=
func (ctrl *PostController) List(c *fiber.Ctx) error {
	items, err := ctrl.Svc.List(c.UserContext(), paging(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "posts", items)
}

// GET /blogs/published
func (ctrl *PostController) ListPublished(c *fiber.Ctx) error {
	items, err := ctrl.Svc.ListPublished(c.UserContext(), paging(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "posts", items)
}

// GET /blogs/search?q=
func (ctrl *PostController) Search(c *fiber.Ctx) error {
	items, err := ctrl.Svc.Search(c.UserContext(), c.Query("q"), paging(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "posts", items)
}

func (ctrl *PostController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return notFound(c, err)
	}
	return helper.JsonOK(c, item)
}

// GET /blogs/slug/:slug
func (ctrl *PostController) GetBySlug(c *fiber.Ctx) error {
	item, err := ctrl.Svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return notFound(c, err)
	}
	return helper.JsonOK(c, item)
}

// POST /blogs. author_id falls back to the admin in the token.
func (ctrl *PostController) Create(c *fiber.Ctx) error {
	var body dto.CreatePostRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	if body.AuthorID == 0 {
		if claims, ok := authMiddleware.ClaimsFromCtx(c); ok {
			body.AuthorID = claims.UserID
		}
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *PostController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdatePostRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *PostController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
