package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type VenueService interface {
	Get(ctx context.Context, id uint) (dto.VenueDTO, error)
	List(ctx context.Context, params helper.ListParams) ([]dto.VenueDTO, error)
	Create(ctx context.Context, req dto.CreateVenueRequest) (dto.VenueDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateVenueRequest) (dto.VenueDTO, error)
	Delete(ctx context.Context, id uint) error
}

type VenueController struct {
	Svc VenueService
}

func NewVenueController(svc VenueService) *VenueController {
	return &VenueController{Svc: svc}
}

// GET /venues?q=&sort=id|name&direction=asc|desc
func (ctrl *VenueController) List(c *fiber.Ctx) error {
	params := helper.ParseListParams(c, "name", helper.SortAsc)
	items, err := ctrl.Svc.List(c.UserContext(), params)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "venues", items)
}

func (ctrl *VenueController) Get(c *fiber.Ctx) error {
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

func (ctrl *VenueController) Create(c *fiber.Ctx) error {
	var body dto.CreateVenueRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *VenueController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateVenueRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *VenueController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
