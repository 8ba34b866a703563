package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

const (
	maxFullName = 160
	maxEmail    = 160
	maxPhone    = 40

	msgDuplicate = "User with this email or phone already exists"
)

type UserService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		repo: repo,
		log:  log.With().Str("component", "user").Logger(),
	}
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

// trimContact returns nil for blank input so empty strings never reach the unique index.
func trimContact(v *string, field string, max int) (*string, error) {
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

func (s *UserService) get(ctx context.Context, id uint) (*model.UserModel, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User %d not found", id)
	}
	return u, nil
}

func (s *UserService) emailTaken(ctx context.Context, selfID uint, email string) error {
	other, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return apperr.AlreadyExists("User with email='%s' already exists", email)
	}
	return nil
}

func (s *UserService) Get(ctx context.Context, id uint) (dto.UserDTO, error) {
	u, err := s.get(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.ToUserDTO(u), nil
}

func (s *UserService) List(ctx context.Context, params helper.ListParams, paging helper.Paging) ([]dto.UserDTO, error) {
	rows, err := s.repo.List(ctx, params, paging)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTOs(rows), nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserDTO, error) {
	name, err := validateFullName(req.FullName)
	if err != nil {
		return dto.UserDTO{}, err
	}
	email, err := trimContact(req.Email, "email", maxEmail)
	if err != nil {
		return dto.UserDTO{}, err
	}
	phone, err := trimContact(req.Phone, "phone", maxPhone)
	if err != nil {
		return dto.UserDTO{}, err
	}
	if email != nil {
		if err := s.emailTaken(ctx, 0, *email); err != nil {
			return dto.UserDTO{}, err
		}
	}

	u := &model.UserModel{FullName: name, Email: email, Phone: phone}
	err = s.repo.Transaction(ctx, func(tx repository.UserRepository) error {
		return tx.Create(ctx, u)
	})
	if database.IsUniqueViolation(err) {
		return dto.UserDTO{}, apperr.Wrap(apperr.KindAlreadyExists, err, msgDuplicate)
	}
	if err != nil {
		return dto.UserDTO{}, err
	}
	s.log.Info().Uint("id", u.ID).Msg("user created")
	return dto.ToUserDTO(u), nil
}

func (s *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (dto.UserDTO, error) {
	u, err := s.get(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}
	if req.FullName != nil {
		name, err := validateFullName(*req.FullName)
		if err != nil {
			return dto.UserDTO{}, err
		}
		req.FullName = &name
	}
	if req.Email != nil {
		if req.Email, err = trimContact(req.Email, "email", maxEmail); err != nil {
			return dto.UserDTO{}, err
		}
		if req.Email != nil && (u.Email == nil || *u.Email != *req.Email) {
			if err := s.emailTaken(ctx, u.ID, *req.Email); err != nil {
				return dto.UserDTO{}, err
			}
		}
	}
	if req.Phone != nil {
		if req.Phone, err = trimContact(req.Phone, "phone", maxPhone); err != nil {
			return dto.UserDTO{}, err
		}
	}

	fields, err := helper.MergePatch(u, req)
	if err != nil {
		return dto.UserDTO{}, err
	}
	err = s.repo.Transaction(ctx, func(tx repository.UserRepository) error {
		return tx.Update(ctx, u, fields)
	})
	if database.IsUniqueViolation(err) {
		return dto.UserDTO{}, apperr.Wrap(apperr.KindAlreadyExists, err, msgDuplicate)
	}
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.ToUserDTO(u), nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	u, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Transaction(ctx, func(tx repository.UserRepository) error {
		return tx.Delete(ctx, u)
	}); err != nil {
		return err
	}
	s.log.Info().Uint("id", id).Msg("user deleted")
	return nil
}
