package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/service"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type AdminService interface {
	Get(ctx context.Context, id uint) (dto.AdminDTO, error)
	List(ctx context.Context, paging helper.Paging) ([]dto.AdminDTO, error)
	Create(ctx context.Context, req dto.CreateAdminRequest) (dto.AdminDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateAdminRequest) (dto.AdminDTO, error)
	Delete(ctx context.Context, id uint) error
}

type AdminController struct {
	Svc AdminService
}

func NewAdminController(svc AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admins?limit=&offset= (newest first)
func (ctrl *AdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, service.DefaultLimit, service.MaxLimit)
	items, err := ctrl.Svc.List(c.UserContext(), paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "admins", items)
}

func (ctrl *AdminController) Get(c *fiber.Ctx) error {
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

func (ctrl *AdminController) Create(c *fiber.Ctx) error {
	var body dto.CreateAdminRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *AdminController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateAdminRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
