package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

type fakeRepo struct {
	rows       []*model.UserModel
	createErr  error
	lastFields []string
	deleted    []uint
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*model.UserModel, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*model.UserModel, error) {
	for _, r := range f.rows {
		if r.Email != nil && *r.Email == email {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(context.Context, helper.ListParams, helper.Paging) ([]model.UserModel, error) {
	out := make([]model.UserModel, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) Create(_ context.Context, u *model.UserModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, u)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, _ *model.UserModel, fields []string) error {
	f.lastFields = fields
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, u *model.UserModel) error {
	f.deleted = append(f.deleted, u.ID)
	return nil
}

func (f *fakeRepo) Transaction(_ context.Context, fn func(repository.UserRepository) error) error {
	return fn(f)
}

func ptr(s string) *string { return &s }

func TestUserService_CreateTrimsAndBlankContactIsNil(t *testing.T) {
	svc := NewUserService(&fakeRepo{})

	out, err := svc.Create(context.Background(), dto.CreateUserRequest{
		FullName: "  Grace Hopper ",
		Email:    ptr(" grace@example.com "),
		Phone:    ptr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", out.FullName)
	require.NotNil(t, out.Email)
	assert.Equal(t, "grace@example.com", *out.Email)
	assert.Nil(t, out.Phone)
}

func TestUserService_CreateBlankName(t *testing.T) {
	svc := NewUserService(&fakeRepo{})

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{FullName: "  "})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&fakeRepo{})

	_, err := svc.Create(ctx, dto.CreateUserRequest{FullName: "A", Email: ptr("a@example.com")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateUserRequest{FullName: "B", Email: ptr("a@example.com")})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))
	assert.Equal(t, "User with email='a@example.com' already exists", apperr.Message(err))
}

func TestUserService_CreateUniqueViolationFallback(t *testing.T) {
	svc := NewUserService(&fakeRepo{createErr: gorm.ErrDuplicatedKey})

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{FullName: "A", Phone: ptr("555")})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))
	assert.Equal(t, msgDuplicate, apperr.Message(err))
}

func TestUserService_UpdateEmailCollision(t *testing.T) {
	repo := &fakeRepo{rows: []*model.UserModel{
		{ID: 1, FullName: "A", Email: ptr("a@example.com")},
		{ID: 2, FullName: "B", Email: ptr("b@example.com")},
	}}
	svc := NewUserService(repo)

	_, err := svc.Update(context.Background(), 2, dto.UpdateUserRequest{Email: ptr("a@example.com")})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))

	// unchanged email is not a collision with itself
	out, err := svc.Update(context.Background(), 2, dto.UpdateUserRequest{Email: ptr("b@example.com"), FullName: ptr("Bee")})
	require.NoError(t, err)
	assert.Equal(t, "Bee", out.FullName)
	assert.ElementsMatch(t, []string{"FullName", "Email"}, repo.lastFields)
}

func TestUserService_NotFound(t *testing.T) {
	svc := NewUserService(&fakeRepo{})

	_, err := svc.Get(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, "User 9 not found", apperr.Message(err))

	err = svc.Delete(context.Background(), 9)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUserService_Delete(t *testing.T) {
	repo := &fakeRepo{rows: []*model.UserModel{{ID: 4, FullName: "D"}}}
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), 4))
	assert.Equal(t, []uint{4}, repo.deleted)
}
