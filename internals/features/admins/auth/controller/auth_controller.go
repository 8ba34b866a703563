package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	adminDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/auth/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	authMiddleware "github.com/MindsetMakersAcademy/MindsetBackend/internals/middlewares/auth"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenDTO, error)
	Me(ctx context.Context, adminID uint) (adminDTO.AdminDTO, error)
}

type AuthController struct {
	Svc AuthService
}

func NewAuthController(svc AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /admins/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	tok, err := ctrl.Svc.Login(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, tok)
}

// GET /admins/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	claims, ok := authMiddleware.ClaimsFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgInvalidToken)
	}
	me, err := ctrl.Svc.Me(c.UserContext(), claims.UserID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, me)
}
