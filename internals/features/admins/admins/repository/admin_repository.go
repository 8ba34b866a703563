package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
)

type AdminRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.AdminModel, error)
	GetByID(ctx context.Context, id uint) (*model.AdminModel, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminModel, error)
	Create(ctx context.Context, a *model.AdminModel) error
	Update(ctx context.Context, a *model.AdminModel, fields []string) error
	Delete(ctx context.Context, a *model.AdminModel) error
	Transaction(ctx context.Context, fn func(AdminRepository) error) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) List(ctx context.Context, limit, offset int) ([]model.AdminModel, error) {
	var rows []model.AdminModel
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return rows, nil
}

func (r *adminRepository) first(ctx context.Context, query string, arg any) (*model.AdminModel, error) {
	var a model.AdminModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (*model.AdminModel, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminModel, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *adminRepository) Create(ctx context.Context, a *model.AdminModel) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (r *adminRepository) Update(ctx context.Context, a *model.AdminModel, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(a).Select(fields).Updates(a).Error; err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

// Delete fails with a foreign key violation while the admin still authors posts.
func (r *adminRepository) Delete(ctx context.Context, a *model.AdminModel) error {
	if err := r.db.WithContext(ctx).Delete(&model.AdminModel{}, a.ID).Error; err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}

func (r *adminRepository) Transaction(ctx context.Context, fn func(AdminRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&adminRepository{db: tx})
	})
}
