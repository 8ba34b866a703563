package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type InstructorService interface {
	Get(ctx context.Context, id uint) (dto.InstructorDTO, error)
	List(ctx context.Context, params helper.ListParams) ([]dto.InstructorDTO, error)
	Create(ctx context.Context, req dto.CreateInstructorRequest) (dto.InstructorDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateInstructorRequest) (dto.InstructorDTO, error)
	Delete(ctx context.Context, id uint) error
}

type InstructorController struct {
	Svc InstructorService
}

func NewInstructorController(svc InstructorService) *InstructorController {
	return &InstructorController{Svc: svc}
}

// GET /instructors?q=&sort=id|full_name&direction=asc|desc
func (ctrl *InstructorController) List(c *fiber.Ctx) error {
	params := helper.ParseListParams(c, "full_name", helper.SortAsc)
	items, err := ctrl.Svc.List(c.UserContext(), params)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "instructors", items)
}

func (ctrl *InstructorController) Get(c *fiber.Ctx) error {
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

func (ctrl *InstructorController) Create(c *fiber.Ctx) error {
	var body dto.CreateInstructorRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *InstructorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateInstructorRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *InstructorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
