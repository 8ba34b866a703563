package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

type EventService struct {
	repo repository.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo repository.EventRepository) *EventService {
	return &EventService{
		repo: repo,
		log:  log.With().Str("component", "event").Logger(),
	}
}

func validateWindow(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return apperr.Validation("ends_at must be after starts_at")
	}
	return nil
}

func validateCapacity(c *int) error {
	if c != nil && *c <= 0 {
		return apperr.Validation("capacity must be positive")
	}
	return nil
}

func mapWriteError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return apperr.Wrap(apperr.KindValidation, err, "event_type_id, delivery_mode_id or venue_id does not exist")
	}
	return err
}

func (s *EventService) get(ctx context.Context, id uint) (*model.EventModel, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("Event %d not found", id)
	}
	return e, nil
}

func (s *EventService) List(ctx context.Context) ([]dto.EventDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToEventDTOs(rows), nil
}

func (s *EventService) Get(ctx context.Context, id uint) (dto.EventDTO, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return dto.EventDTO{}, err
	}
	return dto.ToEventDTO(e), nil
}

func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventDTO, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return dto.EventDTO{}, apperr.Validation("title cannot be empty")
	}
	if err := validateWindow(req.StartsAt, req.EndsAt); err != nil {
		return dto.EventDTO{}, err
	}
	if err := validateCapacity(req.Capacity); err != nil {
		return dto.EventDTO{}, err
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return dto.EventDTO{}, mapWriteError(err)
	}
	s.log.Info().Uint("id", created.ID).Msg("event created")
	return dto.ToEventDTO(created), nil
}

func (s *EventService) Update(ctx context.Context, id uint, req dto.UpdateEventRequest) (dto.EventDTO, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return dto.EventDTO{}, err
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return dto.EventDTO{}, apperr.Validation("title cannot be empty")
		}
		req.Title = &t
	}
	startsAt, endsAt := e.StartsAt, e.EndsAt
	if req.StartsAt != nil {
		startsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		endsAt = req.EndsAt
	}
	if err := validateWindow(startsAt, endsAt); err != nil {
		return dto.EventDTO{}, err
	}
	if err := validateCapacity(req.Capacity); err != nil {
		return dto.EventDTO{}, err
	}

	fields, err := helper.MergePatch(e, req)
	if err != nil {
		return dto.EventDTO{}, err
	}
	updated, err := s.repo.Update(ctx, e, fields)
	if err != nil {
		return dto.EventDTO{}, mapWriteError(err)
	}
	return dto.ToEventDTO(updated), nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	e, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, e)
}
