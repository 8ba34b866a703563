package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	lookupModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/registrations/model"
	userModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/model"
)

// CourseSeat is the slice of a course row the capacity check needs.
type CourseSeat struct {
	ID       uint
	Capacity *int
}

type RegistrationRepository interface {
	ListByCourse(ctx context.Context, courseID uint) ([]model.RegistrationModel, error)
	GetByID(ctx context.Context, id uint) (*model.RegistrationModel, error)
	Get(ctx context.Context, courseID, userID uint) (*model.RegistrationModel, error)
	Create(ctx context.Context, r *model.RegistrationModel) (*model.RegistrationModel, error)
	UpdateStatus(ctx context.Context, r *model.RegistrationModel, statusID uint) (*model.RegistrationModel, error)
	Delete(ctx context.Context, r *model.RegistrationModel) error

	// LockCourse reads the course row FOR UPDATE so concurrent registrations
	// for the same course queue behind each other. Nil when missing.
	LockCourse(ctx context.Context, courseID uint) (*CourseSeat, error)
	CourseExists(ctx context.Context, courseID uint) (bool, error)
	CountByCourse(ctx context.Context, courseID uint) (int64, error)
	UserExists(ctx context.Context, userID uint) (bool, error)
	StatusExists(ctx context.Context, statusID uint) (bool, error)
	StatusByLabel(ctx context.Context, label string) (*lookupModel.RegistrationStatus, error)

	Transaction(ctx context.Context, fn func(RegistrationRepository) error) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Status").Preload("User")
}

func (r *registrationRepository) ListByCourse(ctx context.Context, courseID uint) ([]model.RegistrationModel, error) {
	var rows []model.RegistrationModel
	err := withRelations(r.db.WithContext(ctx)).
		Where("course_id = ?", courseID).
		Order("submitted_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return rows, nil
}

func take(db *gorm.DB, query string, args ...any) (*model.RegistrationModel, error) {
	var m model.RegistrationModel
	err := withRelations(db).Where(query, args...).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &m, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id uint) (*model.RegistrationModel, error) {
	return take(r.db.WithContext(ctx), "registrations.id = ?", id)
}

func (r *registrationRepository) Get(ctx context.Context, courseID, userID uint) (*model.RegistrationModel, error) {
	return take(r.db.WithContext(ctx), "course_id = ? AND user_id = ?", courseID, userID)
}

func (r *registrationRepository) Create(ctx context.Context, m *model.RegistrationModel) (*model.RegistrationModel, error) {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Status", "User").Create(m).Error; err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return take(db, "registrations.id = ?", m.ID)
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, m *model.RegistrationModel, statusID uint) (*model.RegistrationModel, error) {
	db := r.db.WithContext(ctx)
	m.StatusID = statusID
	if err := db.Model(m).Select("StatusID").Updates(m).Error; err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return take(db, "registrations.id = ?", m.ID)
}

func (r *registrationRepository) Delete(ctx context.Context, m *model.RegistrationModel) error {
	if err := r.db.WithContext(ctx).Delete(&model.RegistrationModel{}, m.ID).Error; err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (r *registrationRepository) LockCourse(ctx context.Context, courseID uint) (*CourseSeat, error) {
	var seat CourseSeat
	err := r.db.WithContext(ctx).
		Table("courses").
		Select("id, capacity").
		Where("id = ?", courseID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&seat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock course: %w", err)
	}
	return &seat, nil
}

func (r *registrationRepository) count(ctx context.Context, table, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(table).Where(query, args...).Count(&n).Error
	return n, err
}

func (r *registrationRepository) CourseExists(ctx context.Context, courseID uint) (bool, error) {
	n, err := r.count(ctx, "courses", "id = ?", courseID)
	return n > 0, err
}

func (r *registrationRepository) CountByCourse(ctx context.Context, courseID uint) (int64, error) {
	return r.count(ctx, "registrations", "course_id = ?", courseID)
}

func (r *registrationRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	n, err := r.count(ctx, userModel.UserModel{}.TableName(), "id = ?", userID)
	return n > 0, err
}

func (r *registrationRepository) StatusExists(ctx context.Context, statusID uint) (bool, error) {
	n, err := r.count(ctx, lookupModel.RegistrationStatus{}.TableName(), "id = ?", statusID)
	return n > 0, err
}

func (r *registrationRepository) StatusByLabel(ctx context.Context, label string) (*lookupModel.RegistrationStatus, error) {
	var s lookupModel.RegistrationStatus
	err := r.db.WithContext(ctx).Where("label = ?", label).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get registration status: %w", err)
	}
	return &s, nil
}

func (r *registrationRepository) Transaction(ctx context.Context, fn func(RegistrationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&registrationRepository{db: tx})
	})
}
