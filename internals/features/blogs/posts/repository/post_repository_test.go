package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/repository"
)

var postCols = []string{"id", "slug", "title", "content", "status", "author_id"}

func TestPostRepository_ListPublishedOrder(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "blog_posts" WHERE status = $1 ORDER BY published_at DESC NULLS LAST, id DESC`)).
		WillReturnRows(sqlmock.NewRows(postCols))

	rows, err := r.ListPublished(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	dbtest.Verify(t, mock)
}

func TestPostRepository_SearchEscapesAndMatchesThreeColumns(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "blog_posts" WHERE `) + `\(?` +
		regexp.QuoteMeta(`title ILIKE $1 OR summary ILIKE $2 OR content ILIKE $3`)).
		WithArgs("%100\\%%", "%100\\%%", "%100\\%%", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(postCols))

	_, err := r.Search(context.Background(), " 100% ", 20, 0)
	require.NoError(t, err)
	dbtest.Verify(t, mock)
}

func TestPostRepository_SearchBlankSkipsQuery(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewPostRepository(db)

	rows, err := r.Search(context.Background(), "   ", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	dbtest.Verify(t, mock)
}

func TestPostRepository_CountPublished(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "blog_posts" WHERE status = $1`)).
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := r.CountPublished(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	dbtest.Verify(t, mock)
}
