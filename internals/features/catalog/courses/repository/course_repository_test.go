package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/databases/dbtest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/dbtime"
)

var courseCols = []string{"id", "title", "delivery_mode_id", "venue_id", "start_date", "end_date"}

// expectReload declares the reload every write ends with: the course row,
// its delivery mode and the instructor links. Venue is null so its preload
// issues no query.
func expectReload(mock sqlmock.Sqlmock, id int, title string, instructors ...int) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses" WHERE courses.id = $1`)).
		WillReturnRows(sqlmock.NewRows(courseCols).AddRow(id, title, 1, nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_modes" WHERE "delivery_modes"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow(1, "Online"))

	links := sqlmock.NewRows([]string{"course_id", "instructor_id"})
	people := sqlmock.NewRows([]string{"id", "full_name"})
	for _, iid := range instructors {
		links.AddRow(id, iid)
		people.AddRow(iid, "Instructor")
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "course_instructors" WHERE "course_instructors"."course_id" = $1`)).
		WillReturnRows(links)
	if len(instructors) > 0 {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE "instructors"."id" IN`) + `|` +
			regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE "instructors"."id" = $1`)).
			WillReturnRows(people)
	}
}

func TestCourseRepository_ListOrdersByEndDateNullsLast(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses" ORDER BY end_date DESC NULLS LAST, id DESC`)).
		WillReturnRows(sqlmock.NewRows(courseCols))

	rows, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_SearchIsCaseInsensitiveByStartDate(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses" WHERE title ILIKE $1 ORDER BY start_date DESC NULLS LAST, id DESC`)).
		WithArgs("%50\\%%").
		WillReturnRows(sqlmock.NewRows(courseCols))

	_, err := r.Search(context.Background(), " 50% ")
	require.NoError(t, err)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_SearchBlankSkipsQuery(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	rows, err := r.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_PastAndUpcoming(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)
	today := dbtime.NewDate(2024, 6, 1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses" WHERE end_date IS NOT NULL AND end_date < $1 ORDER BY end_date DESC NULLS LAST, id DESC`)).
		WillReturnRows(sqlmock.NewRows(courseCols))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses" WHERE start_date IS NOT NULL AND start_date > $1 ORDER BY start_date ASC, id ASC`)).
		WillReturnRows(sqlmock.NewRows(courseCols))

	_, err := r.ListPast(context.Background(), today)
	require.NoError(t, err)
	_, err = r.ListUpcoming(context.Background(), today)
	require.NoError(t, err)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_CreateWithUnknownInstructorRollsBack(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE id IN ($1,$2)`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).AddRow(1, "Ada"))
	mock.ExpectRollback()

	_, err := r.Create(context.Background(), &model.CourseModel{Title: "X", DeliveryModeID: 1}, []uint{1, 2, 2})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, repository.MsgInstructorsNotFound, apperr.Message(err))
	dbtest.Verify(t, mock)
}

func TestCourseRepository_GetByIDMissing(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses" WHERE courses.id = $1`)).
		WillReturnRows(sqlmock.NewRows(courseCols))

	c, err := r.GetByID(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, c)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_Delete(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "courses" WHERE "courses"."id" = $1`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), &model.CourseModel{ID: 5}))
	dbtest.Verify(t, mock)
}

func TestCourseRepository_CountUpcoming(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "courses" WHERE start_date IS NOT NULL AND start_date > $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := r.CountUpcoming(context.Background(), dbtime.NewDate(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_CreateLinksInstructors(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE id IN ($1)`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).AddRow(3, "Ada"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "courses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "course_instructors" ("course_id","instructor_id") VALUES ($1,$2) ON CONFLICT DO NOTHING`)).
		WithArgs(7, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectReload(mock, 7, "Go basics", 3)
	mock.ExpectCommit()

	out, err := r.Create(context.Background(), &model.CourseModel{Title: "Go basics", DeliveryModeID: 1}, []uint{3, 3})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, uint(7), out.ID)
	assert.Equal(t, "Online", out.DeliveryMode.Label)
	require.Len(t, out.Instructors, 1)
	assert.Equal(t, uint(3), out.Instructors[0].ID)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_UpdateWritesFieldsAndReplacesInstructors(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "courses" SET "title"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE id IN ($1,$2)`)).
		WithArgs(3, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).AddRow(3, "Ada").AddRow(4, "Lin"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "courses" SET "updated_at"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "instructors"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT DO NOTHING`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "course_instructors" ("course_id","instructor_id") VALUES ($1,$2),($3,$4) ON CONFLICT DO NOTHING`)).
		WithArgs(7, 3, 7, 4).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "course_instructors" WHERE`) + `.*"course_id" = \$1 AND .*"instructor_id" NOT IN \(\$2,\$3\)`).
		WithArgs(7, 3, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectReload(mock, 7, "Go in depth", 3, 4)
	mock.ExpectCommit()

	ids := []uint{3, 4}
	c := &model.CourseModel{ID: 7, Title: "Go in depth", DeliveryModeID: 1}
	out, err := r.Update(context.Background(), c, repository.CoursePatch{Fields: []string{"Title"}, InstructorIDs: &ids})
	require.NoError(t, err)
	assert.Equal(t, "Go in depth", out.Title)
	assert.Len(t, out.Instructors, 2)
	dbtest.Verify(t, mock)
}

func TestCourseRepository_UpdateWithUnknownInstructorRollsBack(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "courses" SET "title"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "instructors" WHERE id IN ($1)`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}))
	mock.ExpectRollback()

	ids := []uint{99}
	c := &model.CourseModel{ID: 7, Title: "Renamed", DeliveryModeID: 1}
	out, err := r.Update(context.Background(), c, repository.CoursePatch{Fields: []string{"Title"}, InstructorIDs: &ids})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, repository.MsgInstructorsNotFound, apperr.Message(err))
	dbtest.Verify(t, mock)
}

func TestCourseRepository_UpdateWithEmptyInstructorListClearsLinks(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	r := repository.NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "courses" SET "updated_at"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "course_instructors" WHERE "course_instructors"."course_id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	expectReload(mock, 7, "Go basics")
	mock.ExpectCommit()

	ids := []uint{}
	c := &model.CourseModel{ID: 7, Title: "Go basics", DeliveryModeID: 1}
	out, err := r.Update(context.Background(), c, repository.CoursePatch{InstructorIDs: &ids})
	require.NoError(t, err)
	assert.Empty(t, out.Instructors)
	dbtest.Verify(t, mock)
}
