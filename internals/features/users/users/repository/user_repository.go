package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*model.UserModel, error)
	GetByEmail(ctx context.Context, email string) (*model.UserModel, error)
	List(ctx context.Context, params helper.ListParams, paging helper.Paging) ([]model.UserModel, error)
	Create(ctx context.Context, u *model.UserModel) error
	Update(ctx context.Context, u *model.UserModel, fields []string) error
	Delete(ctx context.Context, u *model.UserModel) error
	Transaction(ctx context.Context, fn func(UserRepository) error) error
}

var sortColumns = map[string]string{
	"id":         "id",
	"full_name":  "full_name",
	"created_at": "created_at",
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*model.UserModel, error) {
	var u model.UserModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.UserModel, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	return r.first(ctx, "email = ?", email)
}

// List matches q against full_name and email.
func (r *userRepository) List(ctx context.Context, params helper.ListParams, paging helper.Paging) ([]model.UserModel, error) {
	q := r.db.WithContext(ctx).Model(&model.UserModel{})
	if s := strings.TrimSpace(params.Q); s != "" {
		p := helper.LikePattern(s)
		q = q.Where("full_name ILIKE ? OR email ILIKE ?", p, p)
	}
	var rows []model.UserModel
	err := q.Order(helper.SafeOrderClause(sortColumns, params.Sort, params.Direction, "id")).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return rows, nil
}

func (r *userRepository) Create(ctx context.Context, u *model.UserModel) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *model.UserModel, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(u).Select(fields).Updates(u).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete cascades to the user's registrations.
func (r *userRepository) Delete(ctx context.Context, u *model.UserModel) error {
	if err := r.db.WithContext(ctx).Delete(&model.UserModel{}, u.ID).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *userRepository) Transaction(ctx context.Context, fn func(UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRepository{db: tx})
	})
}
