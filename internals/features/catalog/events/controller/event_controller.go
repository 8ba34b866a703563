package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type EventService interface {
	Get(ctx context.Context, id uint) (dto.EventDTO, error)
	List(ctx context.Context) ([]dto.EventDTO, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateEventRequest) (dto.EventDTO, error)
	Delete(ctx context.Context, id uint) error
}

type EventController struct {
	Svc EventService
}

func NewEventController(svc EventService) *EventController {
	return &EventController{Svc: svc}
}

// GET /events, latest first
func (ctrl *EventController) List(c *fiber.Ctx) error {
	items, err := ctrl.Svc.List(c.UserContext())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "events", items)
}

func (ctrl *EventController) Get(c *fiber.Ctx) error {
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

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateEventRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonNoContent(c)
}
