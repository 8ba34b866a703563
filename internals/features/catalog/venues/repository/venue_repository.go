package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type VenueRepository interface {
	GetByID(ctx context.Context, id uint) (*model.VenueModel, error)
	List(ctx context.Context, params helper.ListParams) ([]model.VenueModel, error)
	Create(ctx context.Context, v *model.VenueModel) error
	Update(ctx context.Context, v *model.VenueModel, fields []string) error
	Delete(ctx context.Context, v *model.VenueModel) error
	Transaction(ctx context.Context, fn func(VenueRepository) error) error
}

var sortColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) GetByID(ctx context.Context, id uint) (*model.VenueModel, error) {
	var v model.VenueModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

// List filters by case-insensitive substring on name.
func (r *venueRepository) List(ctx context.Context, params helper.ListParams) ([]model.VenueModel, error) {
	q := r.db.WithContext(ctx).Model(&model.VenueModel{})
	if s := strings.TrimSpace(params.Q); s != "" {
		q = q.Where("name ILIKE ?", helper.LikePattern(s))
	}
	var rows []model.VenueModel
	if err := q.Order(helper.SafeOrderClause(sortColumns, params.Sort, params.Direction, "name")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return rows, nil
}

func (r *venueRepository) Create(ctx context.Context, v *model.VenueModel) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

// Update writes only the named struct fields.
func (r *venueRepository) Update(ctx context.Context, v *model.VenueModel, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(v).Select(fields).Updates(v).Error; err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}

// Delete relies on ON DELETE SET NULL for courses and events.
func (r *venueRepository) Delete(ctx context.Context, v *model.VenueModel) error {
	if err := r.db.WithContext(ctx).Delete(v).Error; err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}

func (r *venueRepository) Transaction(ctx context.Context, fn func(VenueRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&venueRepository{db: tx})
	})
}
