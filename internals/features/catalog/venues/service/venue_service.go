package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

const maxNameLen = 160

type VenueService struct {
	repo repository.VenueRepository
	log  zerolog.Logger
}

func NewVenueService(repo repository.VenueRepository) *VenueService {
	return &VenueService{
		repo: repo,
		log:  log.With().Str("component", "venue").Logger(),
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", apperr.Validation("name must be at most %d characters", maxNameLen)
	}
	return name, nil
}

func validateCapacity(c *int) error {
	if c != nil && *c <= 0 {
		return apperr.Validation("room_capacity must be positive")
	}
	return nil
}

func (s *VenueService) get(ctx context.Context, id uint) (*model.VenueModel, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("Venue %d not found", id)
	}
	return v, nil
}

func (s *VenueService) Get(ctx context.Context, id uint) (dto.VenueDTO, error) {
	v, err := s.get(ctx, id)
	if err != nil {
		return dto.VenueDTO{}, err
	}
	return dto.ToVenueDTO(v), nil
}

func (s *VenueService) List(ctx context.Context, params helper.ListParams) ([]dto.VenueDTO, error) {
	rows, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return dto.ToVenueDTOs(rows), nil
}

func (s *VenueService) Create(ctx context.Context, req dto.CreateVenueRequest) (dto.VenueDTO, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return dto.VenueDTO{}, err
	}
	if err := validateCapacity(req.RoomCapacity); err != nil {
		return dto.VenueDTO{}, err
	}
	req.Name = name

	v := req.ToModel()
	if err := s.repo.Transaction(ctx, func(tx repository.VenueRepository) error {
		return tx.Create(ctx, v)
	}); err != nil {
		return dto.VenueDTO{}, err
	}
	s.log.Info().Uint("id", v.ID).Msg("venue created")
	return dto.ToVenueDTO(v), nil
}

func (s *VenueService) Update(ctx context.Context, id uint, req dto.UpdateVenueRequest) (dto.VenueDTO, error) {
	v, err := s.get(ctx, id)
	if err != nil {
		return dto.VenueDTO{}, err
	}
	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return dto.VenueDTO{}, err
		}
		req.Name = &name
	}
	if err := validateCapacity(req.RoomCapacity); err != nil {
		return dto.VenueDTO{}, err
	}

	fields, err := helper.MergePatch(v, req)
	if err != nil {
		return dto.VenueDTO{}, err
	}
	if err := s.repo.Transaction(ctx, func(tx repository.VenueRepository) error {
		return tx.Update(ctx, v, fields)
	}); err != nil {
		return dto.VenueDTO{}, err
	}
	return dto.ToVenueDTO(v), nil
}

func (s *VenueService) Delete(ctx context.Context, id uint) error {
	v, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Transaction(ctx, func(tx repository.VenueRepository) error {
		return tx.Delete(ctx, v)
	})
}
