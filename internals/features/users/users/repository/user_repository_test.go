package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/users/users/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

var userCols = []string{"id", "full_name", "email", "phone"}

func TestUserRepository_ListSearchesNameAndEmail(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE `) + `\(?` +
		regexp.QuoteMeta(`full_name ILIKE $1 OR email ILIKE $2`)).
		WithArgs("%ada%", "%ada%", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "Ada", "ada@example.com", nil))

	rows, err := r.List(context.Background(),
		helper.ListParams{Q: "ada", Sort: "id", Direction: "desc"},
		helper.Paging{Limit: 50})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ada@example.com", *rows[0].Email)
	assert.Nil(t, rows[0].Phone)
	dbtest.Verify(t, mock)
}

func TestUserRepository_GetByEmail_Missing(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := r.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
	dbtest.Verify(t, mock)
}
