package admins

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/service"
)

// SeedSuperuser creates the configured admin unless that email already exists.
func SeedSuperuser(ctx context.Context, db *gorm.DB, cfg configs.Config) error {
	email := service.NormalizeEmail(cfg.SuperuserEmail)
	if email == "" {
		log.Warn().Msg("SUPERUSER_EMAIL is empty, skipping superuser seed")
		return nil
	}

	repo := repository.NewAdminRepository(db)

	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("superuser already present")
		return nil
	}

	created, err := service.NewAdminService(repo).Create(ctx, dto.CreateAdminRequest{
		Email:    email,
		FullName: cfg.SuperuserName,
		Password: cfg.SuperuserPassword,
	})
	if err != nil {
		return err
	}
	log.Info().Uint("id", created.ID).Str("email", created.Email).Msg("superuser created")
	return nil
}
