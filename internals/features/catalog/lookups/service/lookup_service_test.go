package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

type fakeStore struct {
	rows      []*model.DeliveryMode
	nextID    uint
	createErr error
	deleteErr error
}

func (f *fakeStore) GetByID(_ context.Context, id uint) (*model.DeliveryMode, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByLabel(_ context.Context, label string) (*model.DeliveryMode, error) {
	for _, r := range f.rows {
		if r.Label == label {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(_ context.Context, p helper.ListParams) ([]model.DeliveryMode, error) {
	var out []model.DeliveryMode
	for _, r := range f.rows {
		if p.Q == "" || strings.Contains(strings.ToLower(r.Label), strings.ToLower(p.Q)) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, label string, description *string) (*model.DeliveryMode, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	row := &model.DeliveryMode{ID: f.nextID, Label: label, Description: description}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeStore) Update(_ context.Context, row *model.DeliveryMode, label *string, description *string) (*model.DeliveryMode, error) {
	if label != nil {
		row.Label = *label
	}
	if description != nil {
		row.Description = description
	}
	return row, nil
}

func (f *fakeStore) Delete(_ context.Context, row *model.DeliveryMode) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.ID == row.ID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) Transaction(_ context.Context, fn func(repository.Store[model.DeliveryMode, *model.DeliveryMode]) error) error {
	return fn(f)
}

func newService(f *fakeStore) *Service[model.DeliveryMode, *model.DeliveryMode] {
	return New[model.DeliveryMode](repository.Store[model.DeliveryMode, *model.DeliveryMode](f))
}

func TestCreate_DuplicateLabelIsAlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeStore{})

	_, err := svc.Create(ctx, dto.CreateLookupRequest{Label: "Online"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateLookupRequest{Label: "Online"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))
	assert.Equal(t, "DeliveryMode with label='Online' already exists", apperr.Message(err))
}

func TestCreate_CaseVariantsCoexistAndListFindsBoth(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeStore{})

	_, err := svc.Create(ctx, dto.CreateLookupRequest{Label: "Online"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateLookupRequest{Label: "online"})
	require.NoError(t, err)

	items, err := svc.List(ctx, helper.ListParams{Q: "ONLINE"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreate_UniqueViolationRaceMapsToAlreadyExists(t *testing.T) {
	svc := newService(&fakeStore{createErr: gorm.ErrDuplicatedKey})

	_, err := svc.Create(context.Background(), dto.CreateLookupRequest{Label: "Hybrid"})
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))
}

func TestCreate_PgUniqueViolationMapsToAlreadyExists(t *testing.T) {
	svc := newService(&fakeStore{createErr: &pgconn.PgError{Code: "23505"}})

	_, err := svc.Create(context.Background(), dto.CreateLookupRequest{Label: "Hybrid"})
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))
}

func TestCreate_BlankAndLongLabels(t *testing.T) {
	svc := newService(&fakeStore{})

	_, err := svc.Create(context.Background(), dto.CreateLookupRequest{Label: "   "})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.Create(context.Background(), dto.CreateLookupRequest{Label: strings.Repeat("x", 161)})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	item, err := svc.Create(context.Background(), dto.CreateLookupRequest{Label: "  Trimmed  "})
	require.NoError(t, err)
	assert.Equal(t, "Trimmed", item.Label)
}

func TestRegistrationStatusLabelLimit(t *testing.T) {
	assert.Equal(t, 64, model.RegistrationStatusKind.MaxLabel)
	assert.Equal(t, 160, model.DeliveryModeKind.MaxLabel)
	assert.Equal(t, 160, model.EventTypeKind.MaxLabel)
}

func TestUpdate_LabelCollision(t *testing.T) {
	ctx := context.Background()
	f := &fakeStore{}
	svc := newService(f)

	_, err := svc.Create(ctx, dto.CreateLookupRequest{Label: "Online"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, dto.CreateLookupRequest{Label: "Hybrid"})
	require.NoError(t, err)

	taken := "Online"
	_, err = svc.Update(ctx, second.ID, dto.UpdateLookupRequest{Label: &taken})
	assert.True(t, apperr.Is(err, apperr.KindAlreadyExists))

	same := "Hybrid"
	desc := "both"
	out, err := svc.Update(ctx, second.ID, dto.UpdateLookupRequest{Label: &same, Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, out.Description)
	assert.Equal(t, "both", *out.Description)
}

func TestGetUpdateDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeStore{})

	_, err := svc.Get(ctx, 7)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, "DeliveryMode 7 not found", apperr.Message(err))

	_, err = svc.Update(ctx, 7, dto.UpdateLookupRequest{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	assert.True(t, apperr.Is(svc.Delete(ctx, 7), apperr.KindNotFound))
}

func TestDelete_ReferencedRowIsConflict(t *testing.T) {
	ctx := context.Background()
	f := &fakeStore{}
	svc := newService(f)

	item, err := svc.Create(ctx, dto.CreateLookupRequest{Label: "Online"})
	require.NoError(t, err)

	f.deleteErr = gorm.ErrForeignKeyViolated
	err = svc.Delete(ctx, item.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}
