package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type LookupService interface {
	Kind() model.Kind
	Get(ctx context.Context, id uint) (dto.LookupDTO, error)
	List(ctx context.Context, params helper.ListParams) ([]dto.LookupDTO, error)
	Create(ctx context.Context, req dto.CreateLookupRequest) (dto.LookupDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateLookupRequest) (dto.LookupDTO, error)
	Delete(ctx context.Context, id uint) error
}

// LookupController serves one lookup table; routes mount one per table.
type LookupController struct {
	Svc LookupService
}

func NewLookupController(svc LookupService) *LookupController {
	return &LookupController{Svc: svc}
}

// GET /?q=&sort=id|label&direction=asc|desc
func (ctrl *LookupController) List(c *fiber.Ctx) error {
	kind := ctrl.Svc.Kind()
	params := helper.ParseListParams(c, kind.DefaultSort, kind.DefaultDirection)
	items, err := ctrl.Svc.List(c.UserContext(), params)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "items", items)
}

func (ctrl *LookupController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *LookupController) Create(c *fiber.Ctx) error {
	var body dto.CreateLookupRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *LookupController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateLookupRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *LookupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
