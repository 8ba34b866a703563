package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type InstructorRepository interface {
	GetByID(ctx context.Context, id uint) (*model.InstructorModel, error)
	GetByEmail(ctx context.Context, email string) (*model.InstructorModel, error)
	GetByPhone(ctx context.Context, phone string) (*model.InstructorModel, error)
	List(ctx context.Context, params helper.ListParams) ([]model.InstructorModel, error)
	Create(ctx context.Context, m *model.InstructorModel) error
	Update(ctx context.Context, m *model.InstructorModel, fields []string) error
	Delete(ctx context.Context, m *model.InstructorModel) error
	Transaction(ctx context.Context, fn func(InstructorRepository) error) error
}

var sortColumns = map[string]string{
	"id":        "id",
	"full_name": "full_name",
}

type instructorRepository struct {
	db *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) first(ctx context.Context, query string, arg any) (*model.InstructorModel, error) {
	var m model.InstructorModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	return &m, nil
}

func (r *instructorRepository) GetByID(ctx context.Context, id uint) (*model.InstructorModel, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *instructorRepository) GetByEmail(ctx context.Context, email string) (*model.InstructorModel, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *instructorRepository) GetByPhone(ctx context.Context, phone string) (*model.InstructorModel, error) {
	return r.first(ctx, "phone = ?", phone)
}

func (r *instructorRepository) List(ctx context.Context, params helper.ListParams) ([]model.InstructorModel, error) {
	q := r.db.WithContext(ctx).Model(&model.InstructorModel{})
	if s := strings.TrimSpace(params.Q); s != "" {
		q = q.Where("full_name ILIKE ?", helper.LikePattern(s))
	}
	var rows []model.InstructorModel
	if err := q.Order(helper.SafeOrderClause(sortColumns, params.Sort, params.Direction, "full_name")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return rows, nil
}

func (r *instructorRepository) Create(ctx context.Context, m *model.InstructorModel) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}
	return nil
}

func (r *instructorRepository) Update(ctx context.Context, m *model.InstructorModel, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(m).Select(fields).Updates(m).Error; err != nil {
		return fmt.Errorf("update instructor: %w", err)
	}
	return nil
}

// Delete also drops course_instructors rows through ON DELETE CASCADE.
func (r *instructorRepository) Delete(ctx context.Context, m *model.InstructorModel) error {
	if err := r.db.WithContext(ctx).Delete(m).Error; err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}
	return nil
}

func (r *instructorRepository) Transaction(ctx context.Context, fn func(InstructorRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&instructorRepository{db: tx})
	})
}
