package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

var cols = []string{"id", "full_name", "phone", "email", "bio"}

func TestInstructorRepository_GetByEmail(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewInstructorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(4, "Ada", nil, "ada@example.com", nil))

	m, err := r.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, uint(4), m.ID)
	dbtest.Verify(t, mock)
}

func TestInstructorRepository_ListDefaultsToFullName(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewInstructorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" ORDER BY full_name DESC, id DESC`)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(2, "Zed", nil, nil, nil).AddRow(1, "Ada", nil, nil, nil))

	rows, err := r.List(context.Background(), helper.ListParams{Sort: "bogus", Direction: "desc"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Zed", rows[0].FullName)
	dbtest.Verify(t, mock)
}

func TestInstructorRepository_UpdateWritesNullForClearedEmail(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewInstructorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "instructors" SET "email"=$1,"updated_at"=$2 WHERE "id" = $3`)).
		WithArgs(nil, sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	m := &model.InstructorModel{ID: 3, FullName: "Ada"}
	require.NoError(t, r.Update(context.Background(), m, []string{"Email"}))
	assert.Nil(t, m.Email)
	dbtest.Verify(t, mock)
}
