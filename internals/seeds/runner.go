package seeds

import (
	"context"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/seeds/admins"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/seeds/lookups"
)

// RunAllSeeds is idempotent: every seeder skips what is already there.
func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg configs.Config) error {
	//* Lookups
	if err := lookups.SeedLookups(ctx, db); err != nil {
		return err
	}

	//* Admin
	return admins.SeedSuperuser(ctx, db, cfg)
}
