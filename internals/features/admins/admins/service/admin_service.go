package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	helperAuth "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/auth"
)

const (
	MsgAdminNotFound = "Admin not found"
	MsgEmailExists   = "Email already exists"

	DefaultLimit = 100
	MaxLimit     = 500
)

type AdminService struct {
	repo repository.AdminRepository
	log  zerolog.Logger
}

func NewAdminService(repo repository.AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
		log:  log.With().Str("component", "admin").Logger(),
	}
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AdminService) get(ctx context.Context, id uint) (*model.AdminModel, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound(MsgAdminNotFound)
	}
	return a, nil
}

func (s *AdminService) List(ctx context.Context, paging helper.Paging) ([]dto.AdminDTO, error) {
	rows, err := s.repo.List(ctx, paging.Limit, paging.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToAdminDTOs(rows), nil
}

func (s *AdminService) Get(ctx context.Context, id uint) (dto.AdminDTO, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return dto.AdminDTO{}, err
	}
	return dto.ToAdminDTO(a), nil
}

func (s *AdminService) Create(ctx context.Context, req dto.CreateAdminRequest) (dto.AdminDTO, error) {
	email := NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return dto.AdminDTO{}, apperr.Validation("full_name cannot be empty")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return dto.AdminDTO{}, err
	}
	if existing != nil {
		return dto.AdminDTO{}, apperr.Conflict(MsgEmailExists)
	}

	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return dto.AdminDTO{}, err
	}
	a := &model.AdminModel{
		Email:        email,
		FullName:     name,
		PasswordHash: hash,
		IsActive:     true,
	}
	err = s.repo.Transaction(ctx, func(tx repository.AdminRepository) error {
		return tx.Create(ctx, a)
	})
	if database.IsUniqueViolation(err) {
		return dto.AdminDTO{}, apperr.Wrap(apperr.KindConflict, err, MsgEmailExists)
	}
	if err != nil {
		return dto.AdminDTO{}, err
	}
	s.log.Info().Uint("id", a.ID).Str("email", a.Email).Msg("admin created")
	return dto.ToAdminDTO(a), nil
}

// Update applies the supplied fields. A new password is re-hashed.
func (s *AdminService) Update(ctx context.Context, id uint, req dto.UpdateAdminRequest) (dto.AdminDTO, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return dto.AdminDTO{}, err
	}

	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		req.Email = &email
		if email != a.Email {
			other, err := s.repo.GetByEmail(ctx, email)
			if err != nil {
				return dto.AdminDTO{}, err
			}
			if other != nil && other.ID != a.ID {
				return dto.AdminDTO{}, apperr.Conflict(MsgEmailExists)
			}
		}
	}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return dto.AdminDTO{}, apperr.Validation("full_name cannot be empty")
		}
		req.FullName = &name
	}

	fields, err := helper.MergePatch(a, req)
	if err != nil {
		return dto.AdminDTO{}, err
	}
	if req.Password != nil {
		hash, err := helperAuth.HashPassword(*req.Password)
		if err != nil {
			return dto.AdminDTO{}, err
		}
		a.PasswordHash = hash
		fields = append(fields, "PasswordHash")
	}

	err = s.repo.Transaction(ctx, func(tx repository.AdminRepository) error {
		return tx.Update(ctx, a, fields)
	})
	if database.IsUniqueViolation(err) {
		return dto.AdminDTO{}, apperr.Wrap(apperr.KindConflict, err, MsgEmailExists)
	}
	if err != nil {
		return dto.AdminDTO{}, err
	}
	return dto.ToAdminDTO(a), nil
}

func (s *AdminService) Delete(ctx context.Context, id uint) error {
	a, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.Transaction(ctx, func(tx repository.AdminRepository) error {
		return tx.Delete(ctx, a)
	})
	if database.IsForeignKeyViolation(err) {
		return apperr.Wrap(apperr.KindConflict, err, "Admin %d still authors blog posts", id)
	}
	if err != nil {
		return err
	}
	s.log.Info().Uint("id", id).Msg("admin deleted")
	return nil
}
