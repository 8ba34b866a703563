package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/model"
)

type EventRepository interface {
	List(ctx context.Context) ([]model.EventModel, error)
	GetByID(ctx context.Context, id uint) (*model.EventModel, error)
	Create(ctx context.Context, e *model.EventModel) (*model.EventModel, error)
	Update(ctx context.Context, e *model.EventModel, fields []string) (*model.EventModel, error)
	Delete(ctx context.Context, e *model.EventModel) error
	Transaction(ctx context.Context, fn func(EventRepository) error) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("EventType").Preload("DeliveryMode").Preload("Venue")
}

// List orders by starts_at descending with unscheduled events last.
func (r *eventRepository) List(ctx context.Context) ([]model.EventModel, error) {
	var rows []model.EventModel
	err := withRelations(r.db.WithContext(ctx)).
		Order("starts_at DESC NULLS LAST, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return rows, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*model.EventModel, error) {
	return getByID(withRelations(r.db.WithContext(ctx)), id)
}

func getByID(db *gorm.DB, id uint) (*model.EventModel, error) {
	var e model.EventModel
	err := db.Where("events.id = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *model.EventModel) (*model.EventModel, error) {
	var out *model.EventModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("EventType", "DeliveryMode", "Venue").Create(e).Error; err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		var err error
		out, err = getByID(withRelations(tx), e.ID)
		return err
	})
	return out, err
}

func (r *eventRepository) Update(ctx context.Context, e *model.EventModel, fields []string) (*model.EventModel, error) {
	var out *model.EventModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(e).Select(fields).Updates(e).Error; err != nil {
				return fmt.Errorf("update event: %w", err)
			}
		}
		var err error
		out, err = getByID(withRelations(tx), e.ID)
		return err
	})
	return out, err
}

func (r *eventRepository) Delete(ctx context.Context, e *model.EventModel) error {
	if err := r.db.WithContext(ctx).Delete(&model.EventModel{}, e.ID).Error; err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *eventRepository) Transaction(ctx context.Context, fn func(EventRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&eventRepository{db: tx})
	})
}
