package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/repository"
	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

// Service applies label rules on top of a lookup Store.
type Service[T any, P repository.Row[T]] struct {
	repo repository.Store[T, P]
	kind model.Kind
	log  zerolog.Logger
}

func New[T any, P repository.Row[T]](repo repository.Store[T, P]) *Service[T, P] {
	var zero T
	kind := P(&zero).Kind()
	return &Service[T, P]{
		repo: repo,
		kind: kind,
		log:  log.With().Str("component", "lookup").Str("entity", kind.Entity).Logger(),
	}
}

func (s *Service[T, P]) Kind() model.Kind { return s.kind }

func (s *Service[T, P]) validateLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", apperr.Validation("label is required")
	}
	if utf8.RuneCountInString(label) > s.kind.MaxLabel {
		return "", apperr.Validation("label must be at most %d characters", s.kind.MaxLabel)
	}
	return label, nil
}

func (s *Service[T, P]) notFound(id uint) error {
	return apperr.NotFound("%s %d not found", s.kind.Entity, id)
}

func (s *Service[T, P]) exists(label string) error {
	return apperr.AlreadyExists("%s with label='%s' already exists", s.kind.Entity, label)
}

func (s *Service[T, P]) get(ctx context.Context, id uint) (P, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if (*T)(row) == nil {
		return nil, s.notFound(id)
	}
	return row, nil
}

func (s *Service[T, P]) Get(ctx context.Context, id uint) (dto.LookupDTO, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return dto.LookupDTO{}, err
	}
	return dto.ToLookupDTO(row), nil
}

func (s *Service[T, P]) List(ctx context.Context, params helper.ListParams) ([]dto.LookupDTO, error) {
	rows, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LookupDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToLookupDTO(P(&rows[i])))
	}
	return out, nil
}

// Create pre-checks the label, then inserts inside a savepoint so a unique
// violation from a concurrent insert maps to the same AlreadyExists error.
func (s *Service[T, P]) Create(ctx context.Context, req dto.CreateLookupRequest) (dto.LookupDTO, error) {
	label, err := s.validateLabel(req.Label)
	if err != nil {
		return dto.LookupDTO{}, err
	}

	existing, err := s.repo.GetByLabel(ctx, label)
	if err != nil {
		return dto.LookupDTO{}, err
	}
	if (*T)(existing) != nil {
		return dto.LookupDTO{}, s.exists(label)
	}

	var created P
	err = s.repo.Transaction(ctx, func(tx repository.Store[T, P]) error {
		row, err := tx.Create(ctx, label, req.Description)
		if err != nil {
			return err
		}
		created = row
		return nil
	})
	if database.IsUniqueViolation(err) {
		return dto.LookupDTO{}, s.exists(label)
	}
	if err != nil {
		return dto.LookupDTO{}, err
	}
	s.log.Info().Uint("id", created.GetID()).Str("label", label).Msg("created")
	return dto.ToLookupDTO(created), nil
}

func (s *Service[T, P]) Update(ctx context.Context, id uint, req dto.UpdateLookupRequest) (dto.LookupDTO, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return dto.LookupDTO{}, err
	}

	var label *string
	if req.Label != nil {
		v, err := s.validateLabel(*req.Label)
		if err != nil {
			return dto.LookupDTO{}, err
		}
		if v != row.GetLabel() {
			other, err := s.repo.GetByLabel(ctx, v)
			if err != nil {
				return dto.LookupDTO{}, err
			}
			if (*T)(other) != nil && other.GetID() != row.GetID() {
				return dto.LookupDTO{}, s.exists(v)
			}
		}
		label = &v
	}

	var updated P
	err = s.repo.Transaction(ctx, func(tx repository.Store[T, P]) error {
		out, err := tx.Update(ctx, row, label, req.Description)
		if err != nil {
			return err
		}
		updated = out
		return nil
	})
	if database.IsUniqueViolation(err) {
		return dto.LookupDTO{}, s.exists(row.GetLabel())
	}
	if err != nil {
		return dto.LookupDTO{}, err
	}
	return dto.ToLookupDTO(updated), nil
}

// Delete is rejected by the RESTRICT foreign keys while the row is referenced.
func (s *Service[T, P]) Delete(ctx context.Context, id uint) error {
	row, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.Delete(ctx, row)
	if database.IsForeignKeyViolation(err) {
		return apperr.Conflict("%s %d is still referenced", s.kind.Entity, id)
	}
	return err
}
