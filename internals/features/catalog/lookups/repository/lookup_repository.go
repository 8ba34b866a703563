package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

// Row constrains P to be *T and a model.Lookup, so the repository can both
// allocate T and call the accessor methods.
type Row[T any] interface {
	*T
	model.Lookup
}

// Store is the capability set of a lookup table. Get* return (nil, nil)
// when the row does not exist.
type Store[T any, P Row[T]] interface {
	GetByID(ctx context.Context, id uint) (P, error)
	GetByLabel(ctx context.Context, label string) (P, error)
	List(ctx context.Context, params helper.ListParams) ([]T, error)
	Create(ctx context.Context, label string, description *string) (P, error)
	Update(ctx context.Context, row P, label *string, description *string) (P, error)
	Delete(ctx context.Context, row P) error
	Transaction(ctx context.Context, fn func(Store[T, P]) error) error
}

var sortColumns = map[string]string{
	"id":    "id",
	"label": "label",
}

// Repository is the gorm implementation; the table comes from T's TableName.
type Repository[T any, P Row[T]] struct {
	db *gorm.DB
}

func New[T any, P Row[T]](db *gorm.DB) *Repository[T, P] {
	return &Repository[T, P]{db: db}
}

func NewDeliveryModeRepository(db *gorm.DB) *Repository[model.DeliveryMode, *model.DeliveryMode] {
	return New[model.DeliveryMode](db)
}

func NewEventTypeRepository(db *gorm.DB) *Repository[model.EventType, *model.EventType] {
	return New[model.EventType](db)
}

func NewRegistrationStatusRepository(db *gorm.DB) *Repository[model.RegistrationStatus, *model.RegistrationStatus] {
	return New[model.RegistrationStatus](db)
}

func (r *Repository[T, P]) GetByID(ctx context.Context, id uint) (P, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByLabel is an exact, case-sensitive match.
func (r *Repository[T, P]) GetByLabel(ctx context.Context, label string) (P, error) {
	return r.first(ctx, "label = ?", label)
}

func (r *Repository[T, P]) first(ctx context.Context, query string, args ...any) (P, error) {
	var row T
	err := r.db.WithContext(ctx).Where(query, args...).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", P(&row).Kind().Entity, err)
	}
	return P(&row), nil
}

// List filters by case-insensitive substring on label and sorts by id or label.
func (r *Repository[T, P]) List(ctx context.Context, params helper.ListParams) ([]T, error) {
	var zero T
	kind := P(&zero).Kind()

	q := r.db.WithContext(ctx).Model(new(T))
	if s := strings.TrimSpace(params.Q); s != "" {
		q = q.Where("label ILIKE ?", helper.LikePattern(s))
	}
	sort, direction := params.Sort, params.Direction
	if sort == "" {
		sort = kind.DefaultSort
	}
	if direction == "" {
		direction = kind.DefaultDirection
	}

	var rows []T
	if err := q.Order(helper.SafeOrderClause(sortColumns, sort, direction, kind.DefaultSort)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Entity, err)
	}
	return rows, nil
}

func (r *Repository[T, P]) Create(ctx context.Context, label string, description *string) (P, error) {
	var row T
	p := P(&row)
	p.SetLabel(label)
	p.SetDescription(description)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("create %s: %w", p.Kind().Entity, err)
	}
	return p, nil
}

// Update overwrites only the non-nil fields.
func (r *Repository[T, P]) Update(ctx context.Context, row P, label *string, description *string) (P, error) {
	updates := map[string]any{}
	if label != nil {
		row.SetLabel(*label)
		updates["label"] = *label
	}
	if description != nil {
		row.SetDescription(description)
		updates["description"] = *description
	}
	if len(updates) == 0 {
		return row, nil
	}
	if err := r.db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update %s: %w", row.Kind().Entity, err)
	}
	return row, nil
}

func (r *Repository[T, P]) Delete(ctx context.Context, row P) error {
	if err := r.db.WithContext(ctx).Delete(row).Error; err != nil {
		return fmt.Errorf("delete %s: %w", row.Kind().Entity, err)
	}
	return nil
}

// Transaction runs fn against a transaction-bound copy. Called inside another
// transaction it becomes a savepoint.
func (r *Repository[T, P]) Transaction(ctx context.Context, fn func(Store[T, P]) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository[T, P]{db: tx})
	})
}
