package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

// DefaultStatusLabel is applied when a registration arrives without status_id.
const DefaultStatusLabel = "Registered"

type RegistrationService struct {
	repo repository.RegistrationRepository
	log  zerolog.Logger
}

func NewRegistrationService(repo repository.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		repo: repo,
		log:  log.With().Str("component", "registration").Logger(),
	}
}

func duplicate(courseID, userID uint) error {
	return apperr.AlreadyExists("User %d is already registered for course %d", userID, courseID)
}

func (s *RegistrationService) get(ctx context.Context, id uint) (*model.RegistrationModel, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("Registration %d not found", id)
	}
	return r, nil
}

func checkStatus(ctx context.Context, repo repository.RegistrationRepository, statusID uint) error {
	ok, err := repo.StatusExists(ctx, statusID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Validation("status_id %d does not exist", statusID)
	}
	return nil
}

func (s *RegistrationService) ListByCourse(ctx context.Context, courseID uint) ([]dto.RegistrationDTO, error) {
	ok, err := s.repo.CourseExists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Course %d not found", courseID)
	}
	rows, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return dto.ToRegistrationDTOs(rows), nil
}

// Register adds the user to the course. The course row stays locked until
// commit so the seat count cannot race past capacity.
func (s *RegistrationService) Register(ctx context.Context, courseID uint, req dto.CreateRegistrationRequest) (dto.RegistrationDTO, error) {
	var created *model.RegistrationModel
	err := s.repo.Transaction(ctx, func(tx repository.RegistrationRepository) error {
		seat, err := tx.LockCourse(ctx, courseID)
		if err != nil {
			return err
		}
		if seat == nil {
			return apperr.NotFound("Course %d not found", courseID)
		}

		ok, err := tx.UserExists(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("user_id %d does not exist", req.UserID)
		}

		var statusID uint
		if req.StatusID != nil {
			if err := checkStatus(ctx, tx, *req.StatusID); err != nil {
				return err
			}
			statusID = *req.StatusID
		} else {
			st, err := tx.StatusByLabel(ctx, DefaultStatusLabel)
			if err != nil {
				return err
			}
			if st == nil {
				return apperr.Validation("registration status %q does not exist", DefaultStatusLabel)
			}
			statusID = st.ID
		}

		existing, err := tx.Get(ctx, courseID, req.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return duplicate(courseID, req.UserID)
		}

		if seat.Capacity != nil {
			taken, err := tx.CountByCourse(ctx, courseID)
			if err != nil {
				return err
			}
			if taken >= int64(*seat.Capacity) {
				return apperr.Conflict("Course %d is full", courseID)
			}
		}

		created, err = tx.Create(ctx, &model.RegistrationModel{
			CourseID: courseID,
			UserID:   req.UserID,
			StatusID: statusID,
		})
		return err
	})
	if database.IsUniqueViolation(err) {
		return dto.RegistrationDTO{}, apperr.Wrap(apperr.KindAlreadyExists, err,
			"User %d is already registered for course %d", req.UserID, courseID)
	}
	if err != nil {
		return dto.RegistrationDTO{}, err
	}
	s.log.Info().Uint("course_id", courseID).Uint("user_id", req.UserID).Msg("user registered")
	return dto.ToRegistrationDTO(created), nil
}

func (s *RegistrationService) UpdateStatus(ctx context.Context, id uint, req dto.UpdateRegistrationRequest) (dto.RegistrationDTO, error) {
	r, err := s.get(ctx, id)
	if err != nil {
		return dto.RegistrationDTO{}, err
	}
	if err := checkStatus(ctx, s.repo, req.StatusID); err != nil {
		return dto.RegistrationDTO{}, err
	}

	var updated *model.RegistrationModel
	if err := s.repo.Transaction(ctx, func(tx repository.RegistrationRepository) error {
		var err error
		updated, err = tx.UpdateStatus(ctx, r, req.StatusID)
		return err
	}); err != nil {
		return dto.RegistrationDTO{}, err
	}
	return dto.ToRegistrationDTO(updated), nil
}

func (s *RegistrationService) Delete(ctx context.Context, id uint) error {
	r, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Transaction(ctx, func(tx repository.RegistrationRepository) error {
		return tx.Delete(ctx, r)
	}); err != nil {
		return err
	}
	s.log.Info().Uint("id", id).Msg("registration deleted")
	return nil
}
