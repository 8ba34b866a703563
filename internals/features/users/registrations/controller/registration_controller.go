package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type RegistrationService interface {
	ListByCourse(ctx context.Context, courseID uint) ([]dto.RegistrationDTO, error)
	Register(ctx context.Context, courseID uint, req dto.CreateRegistrationRequest) (dto.RegistrationDTO, error)
	UpdateStatus(ctx context.Context, id uint, req dto.UpdateRegistrationRequest) (dto.RegistrationDTO, error)
	Delete(ctx context.Context, id uint) error
}

type RegistrationController struct {
	Svc RegistrationService
}

func NewRegistrationController(svc RegistrationService) *RegistrationController {
	return &RegistrationController{Svc: svc}
}

// GET /courses/:id/registrations
func (ctrl *RegistrationController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	items, err := ctrl.Svc.ListByCourse(c.UserContext(), courseID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "registrations", items)
}

// POST /courses/:id/registrations
func (ctrl *RegistrationController) Create(c *fiber.Ctx) error {
	courseID, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.CreateRegistrationRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Register(c.UserContext(), courseID, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

// PATCH /registrations/:id
func (ctrl *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateRegistrationRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.UpdateStatus(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *RegistrationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
