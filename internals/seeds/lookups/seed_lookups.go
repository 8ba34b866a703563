package lookups

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
)

//go:embed data_lookups.json
var dataLookups []byte

type lookupSeed struct {
	Label       string  `json:"label"`
	Description *string `json:"description"`
}

type lookupFile struct {
	DeliveryModes        []lookupSeed `json:"delivery_modes"`
	RegistrationStatuses []lookupSeed `json:"registration_statuses"`
	EventTypes           []lookupSeed `json:"event_types"`
}

// SeedLookups inserts the reference labels that are missing. Existing rows,
// including edited descriptions, are left alone.
func SeedLookups(ctx context.Context, db *gorm.DB) error {
	var f lookupFile
	if err := json.Unmarshal(dataLookups, &f); err != nil {
		return fmt.Errorf("decode lookup seeds: %w", err)
	}

	if err := seed(ctx, db, model.DeliveryModeKind, f.DeliveryModes, func(s lookupSeed) *model.DeliveryMode {
		return &model.DeliveryMode{Label: s.Label, Description: s.Description}
	}); err != nil {
		return err
	}
	if err := seed(ctx, db, model.RegistrationStatusKind, f.RegistrationStatuses, func(s lookupSeed) *model.RegistrationStatus {
		return &model.RegistrationStatus{Label: s.Label, Description: s.Description}
	}); err != nil {
		return err
	}
	return seed(ctx, db, model.EventTypeKind, f.EventTypes, func(s lookupSeed) *model.EventType {
		return &model.EventType{Label: s.Label, Description: s.Description}
	})
}

func seed[T any](ctx context.Context, db *gorm.DB, kind model.Kind, seeds []lookupSeed, build func(lookupSeed) *T) error {
	var existing []string
	if err := db.WithContext(ctx).Model(new(T)).Pluck("label", &existing).Error; err != nil {
		return fmt.Errorf("load %s labels: %w", kind.Entity, err)
	}
	have := make(map[string]bool, len(existing))
	for _, l := range existing {
		have[l] = true
	}

	var rows []*T
	for _, s := range seeds {
		if have[s.Label] {
			continue
		}
		rows = append(rows, build(s))
	}
	if len(rows) == 0 {
		log.Info().Str("entity", kind.Entity).Msg("lookups already seeded")
		return nil
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "label"}}, DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("seed %s: %w", kind.Entity, err)
	}
	log.Info().Str("entity", kind.Entity).Int("inserted", len(rows)).Msg("lookups seeded")
	return nil
}
