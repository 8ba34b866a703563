package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/events/repository"
)

func TestEventRepository_ListOrdersUnscheduledLast(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events" ORDER BY starts_at DESC NULLS LAST, id DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	rows, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	dbtest.Verify(t, mock)
}

func TestEventRepository_GetByID_Missing(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events" WHERE events.id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	e, err := r.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, e)
	dbtest.Verify(t, mock)
}

func TestEventRepository_CreateRollsBackOnInsertError(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "events"`)).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	out, err := r.Create(context.Background(), &model.EventModel{Title: "Book night", EventTypeID: 1, DeliveryModeID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create event")
	assert.Nil(t, out)
	dbtest.Verify(t, mock)
}
