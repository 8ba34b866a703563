package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

var venueCols = []string{"id", "name", "address", "map_url", "notes", "room_capacity"}

func TestVenueRepository_ListByName(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewVenueRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "venues" WHERE name ILIKE $1 ORDER BY name ASC, id ASC`)).
		WithArgs("%hall%").
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(1, "Main Hall", nil, nil, nil, 40))

	rows, err := r.List(context.Background(), helper.ListParams{Q: "hall", Sort: "name", Direction: "asc"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 40, *rows[0].RoomCapacity)
	dbtest.Verify(t, mock)
}

func TestVenueRepository_GetByID_Missing(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewVenueRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "venues" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(venueCols))

	v, err := r.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, v)
	dbtest.Verify(t, mock)
}

func TestVenueRepository_UpdateWithoutFieldsIsNoop(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewVenueRepository(db)

	require.NoError(t, r.Update(context.Background(), &model.VenueModel{ID: 1}, nil))
	dbtest.Verify(t, mock)
}
