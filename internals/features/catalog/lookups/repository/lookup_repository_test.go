package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	repo "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

func TestLookupRepository_GetByLabel_Found(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repo.NewDeliveryModeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_modes" WHERE label = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "description"}).AddRow(2, "Online", nil))

	row, err := r.GetByLabel(context.Background(), "Online")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, uint(2), row.ID)
	assert.Equal(t, "Online", row.Label)
	dbtest.Verify(t, mock)
}

func TestLookupRepository_GetByID_NotFoundIsNil(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repo.NewRegistrationStatusRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "registration_statuses" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "description"}))

	row, err := r.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, row)
	dbtest.Verify(t, mock)
}

func TestLookupRepository_List_FiltersAndSorts(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repo.NewDeliveryModeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_modes" WHERE label ILIKE $1 ORDER BY label DESC, id DESC`)).
		WithArgs("%line%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "description"}).
			AddRow(2, "Online", nil).
			AddRow(5, "online cohort", nil))

	rows, err := r.List(context.Background(), helper.ListParams{Q: "line", Sort: "label", Direction: "desc"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Online", rows[0].Label)
	dbtest.Verify(t, mock)
}

func TestLookupRepository_List_UnknownSortFallsBackToDefault(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repo.NewRegistrationStatusRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "registration_statuses" ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "description"}))

	rows, err := r.List(context.Background(), helper.ListParams{Sort: "label; DROP TABLE x", Direction: "asc"})
	require.NoError(t, err)
	assert.Empty(t, rows)
	dbtest.Verify(t, mock)
}

func TestLookupRepository_Create(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repo.NewEventTypeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "event_types"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	row, err := r.Create(context.Background(), "Workshop", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(9), row.ID)
	assert.Equal(t, "Workshop", row.Label)
	dbtest.Verify(t, mock)
}
