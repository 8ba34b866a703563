package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type UserService interface {
	Get(ctx context.Context, id uint) (dto.UserDTO, error)
	List(ctx context.Context, params helper.ListParams, paging helper.Paging) ([]dto.UserDTO, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (dto.UserDTO, error)
	Delete(ctx context.Context, id uint) error
}

type UserController struct {
	Svc UserService
}

func NewUserController(svc UserService) *UserController {
	return &UserController{Svc: svc}
}

// GET /users?q=&sort=id|full_name|created_at&direction=&limit=&offset=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	params := helper.ParseListParams(c, "id", helper.SortDesc)
	paging := helper.ResolvePaging(c, defaultLimit, maxLimit)
	items, err := ctrl.Svc.List(c.UserContext(), params, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "users", items)
}

func (ctrl *UserController) Get(c *fiber.Ctx) error {
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

func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateUserRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
