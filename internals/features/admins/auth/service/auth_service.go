package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	adminDTO "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/dto"
	adminRepo "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository"
	adminService "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/service"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/auth/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	helperAuth "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/auth"
)

const TokenType = "Bearer"

type AuthService struct {
	repo   adminRepo.AdminRepository
	secret string
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger
}

func NewAuthService(repo adminRepo.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:   repo,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// WithClock overrides the issue time, for tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Login checks the password against the stored hash and issues an access
// token. Unknown email and wrong password share one message.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenDTO, error) {
	email := adminService.NormalizeEmail(req.Email)
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return dto.TokenDTO{}, err
	}
	if a == nil || !helperAuth.CheckPassword(a.PasswordHash, req.Password) {
		s.log.Info().Str("email", email).Msg("login rejected")
		return dto.TokenDTO{}, apperr.Unauthorized(constants.MsgInvalidCredentials)
	}
	if !a.IsActive {
		return dto.TokenDTO{}, apperr.Unauthorized(constants.MsgAccountDisabled)
	}

	token, _, err := helperAuth.Sign(s.secret, a.ID, a.Email, s.ttl, s.now())
	if err != nil {
		return dto.TokenDTO{}, err
	}
	s.log.Info().Uint("admin_id", a.ID).Msg("login ok")
	return dto.TokenDTO{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int64(s.ttl.Seconds()),
	}, nil
}

func (s *AuthService) Me(ctx context.Context, adminID uint) (adminDTO.AdminDTO, error) {
	a, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return adminDTO.AdminDTO{}, err
	}
	if a == nil {
		return adminDTO.AdminDTO{}, apperr.NotFound(adminService.MsgAdminNotFound)
	}
	return adminDTO.ToAdminDTO(a), nil
}
