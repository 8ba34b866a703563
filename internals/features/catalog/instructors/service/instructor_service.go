package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

const (
	maxFullName = 120
	maxEmail    = 160
	maxPhone    = 40

	msgDuplicate = "Instructor with this email or phone already exists"
)

type InstructorService struct {
	repo repository.InstructorRepository
	log  zerolog.Logger
}

func NewInstructorService(repo repository.InstructorRepository) *InstructorService {
	return &InstructorService{
		repo: repo,
		log:  log.With().Str("component", "instructor").Logger(),
	}
}

// normalize trims the contact fields; blank values become nil so the
// unique indexes never see empty strings.
func normalize(v *string, field string, max int) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(s) > max {
		return nil, apperr.Validation("%s must be at most %d characters", field, max)
	}
	return &s, nil
}

func validateFullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("full_name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxFullName {
		return "", apperr.Validation("full_name must be at most %d characters", maxFullName)
	}
	return name, nil
}

func (s *InstructorService) get(ctx context.Context, id uint) (*model.InstructorModel, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound("Instructor %d not found", id)
	}
	return m, nil
}

// checkTaken reports AlreadyExists when another instructor owns the email or phone.
func (s *InstructorService) checkTaken(ctx context.Context, selfID uint, email, phone *string) error {
	if email != nil {
		other, err := s.repo.GetByEmail(ctx, *email)
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return apperr.AlreadyExists("Instructor with email='%s' already exists", *email)
		}
	}
	if phone != nil {
		other, err := s.repo.GetByPhone(ctx, *phone)
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return apperr.AlreadyExists("Instructor with phone='%s' already exists", *phone)
		}
	}
	return nil
}

func (s *InstructorService) Get(ctx context.Context, id uint) (dto.InstructorDTO, error) {
	m, err := s.get(ctx, id)
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	return dto.ToInstructorDTO(m), nil
}

func (s *InstructorService) List(ctx context.Context, params helper.ListParams) ([]dto.InstructorDTO, error) {
	rows, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return dto.ToInstructorDTOs(rows), nil
}

func (s *InstructorService) Create(ctx context.Context, req dto.CreateInstructorRequest) (dto.InstructorDTO, error) {
	name, err := validateFullName(req.FullName)
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	email, err := normalize(req.Email, "email", maxEmail)
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	phone, err := normalize(req.Phone, "phone", maxPhone)
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	if err := s.checkTaken(ctx, 0, email, phone); err != nil {
		return dto.InstructorDTO{}, err
	}

	m := &model.InstructorModel{FullName: name, Email: email, Phone: phone, Bio: req.Bio}
	err = s.repo.Transaction(ctx, func(tx repository.InstructorRepository) error {
		return tx.Create(ctx, m)
	})
	if database.IsUniqueViolation(err) {
		return dto.InstructorDTO{}, apperr.Wrap(apperr.KindAlreadyExists, err, msgDuplicate)
	}
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	s.log.Info().Uint("id", m.ID).Msg("instructor created")
	return dto.ToInstructorDTO(m), nil
}

func (s *InstructorService) Update(ctx context.Context, id uint, req dto.UpdateInstructorRequest) (dto.InstructorDTO, error) {
	m, err := s.get(ctx, id)
	if err != nil {
		return dto.InstructorDTO{}, err
	}

	if req.FullName != nil {
		name, err := validateFullName(*req.FullName)
		if err != nil {
			return dto.InstructorDTO{}, err
		}
		req.FullName = &name
	}

	// A blank email or phone clears the column.
	var changedEmail, changedPhone *string
	var cleared []string
	if req.Email != nil {
		if req.Email, err = normalize(req.Email, "email", maxEmail); err != nil {
			return dto.InstructorDTO{}, err
		}
		if req.Email == nil {
			m.Email = nil
			cleared = append(cleared, "Email")
		} else if m.Email == nil || *m.Email != *req.Email {
			changedEmail = req.Email
		}
	}
	if req.Phone != nil {
		if req.Phone, err = normalize(req.Phone, "phone", maxPhone); err != nil {
			return dto.InstructorDTO{}, err
		}
		if req.Phone == nil {
			m.Phone = nil
			cleared = append(cleared, "Phone")
		} else if m.Phone == nil || *m.Phone != *req.Phone {
			changedPhone = req.Phone
		}
	}
	if err := s.checkTaken(ctx, m.ID, changedEmail, changedPhone); err != nil {
		return dto.InstructorDTO{}, err
	}

	fields, err := helper.MergePatch(m, req)
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	fields = append(fields, cleared...)
	err = s.repo.Transaction(ctx, func(tx repository.InstructorRepository) error {
		return tx.Update(ctx, m, fields)
	})
	if database.IsUniqueViolation(err) {
		return dto.InstructorDTO{}, apperr.Wrap(apperr.KindAlreadyExists, err, msgDuplicate)
	}
	if err != nil {
		return dto.InstructorDTO{}, err
	}
	return dto.ToInstructorDTO(m), nil
}

func (s *InstructorService) Delete(ctx context.Context, id uint) error {
	m, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Transaction(ctx, func(tx repository.InstructorRepository) error {
		return tx.Delete(ctx, m)
	})
}
