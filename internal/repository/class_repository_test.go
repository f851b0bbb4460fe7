package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	"github.com/noah-isme/tutor-classes-api/pkg/timeutil"
)

func newClassRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

// capturedArg records the first value it sees and then only matches that value.
type capturedArg struct {
	value driver.Value
}

func (a *capturedArg) Match(v driver.Value) bool {
	if a.value == nil {
		a.value = v
		return v != nil && v != ""
	}
	return a.value == v
}

func aliceRegistration(schedule ...models.ScheduleItem) models.ClassRegistration {
	return models.ClassRegistration{
		Tutor: models.Tutor{
			Name:     "Alice",
			Avatar:   "https://example.com/alice.png",
			Whatsapp: "5511999999999",
			Bio:      "Math tutor",
		},
		Subject:  "Math",
		Cost:     50,
		Schedule: schedule,
	}
}

func TestClassRepositorySearch(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "subject", "cost", "user_id", "name", "avatar", "whatsapp", "bio"}).
		AddRow("class-1", "Math", 50.0, "user-1", "Alice", "https://example.com/alice.png", "5511999999999", "Math tutor")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.subject = $1`) + `(?s).*` +
		regexp.QuoteMeta(`cs.week_day = $2`) + `\s+AND\s+` +
		regexp.QuoteMeta(`cs."from" <= $3`) + `\s+AND\s+` +
		regexp.QuoteMeta(`cs."to" > $3`)).
		WithArgs("Math", 1, 510).
		WillReturnRows(rows)

	listings, err := repo.Search(context.Background(), models.ClassSearchFilter{Subject: "Math", WeekDay: 1, Minutes: 510})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Alice", listings[0].Name)
	assert.Equal(t, "user-1", listings[0].UserID)
	assert.Equal(t, 50.0, listings[0].Cost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositorySearchEmpty(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes c")).
		WithArgs("Math", 1, 540).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subject", "cost", "user_id", "name", "avatar", "whatsapp", "bio"}))

	listings, err := repo.Search(context.Background(), models.ClassSearchFilter{Subject: "Math", WeekDay: 1, Minutes: 540})
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositorySearchError(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes c")).WillReturnError(errors.New("connection reset"))

	_, err := repo.Search(context.Background(), models.ClassSearchFilter{Subject: "Math", WeekDay: 1, Minutes: 510})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search classes")
}

func TestClassRepositoryRegister(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	userID := &capturedArg{}
	classID := &capturedArg{}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, name, avatar, whatsapp, bio)")).
		WithArgs(userID, "Alice", "https://example.com/alice.png", "5511999999999", "Math tutor").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes (id, subject, cost, user_id)")).
		WithArgs(classID, "Math", 50.0, userID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO class_schedule (id, class_id, week_day, "from", "to")`)).
		WithArgs(
			sqlmock.AnyArg(), classID, 1, 480, 540,
			sqlmock.AnyArg(), classID, 3, 600, 720,
			sqlmock.AnyArg(), classID, 0, 0, 1439,
		).
		WillReturnResult(sqlmock.NewResult(3, 3))
	mock.ExpectCommit()

	err := repo.Register(context.Background(), aliceRegistration(
		models.ScheduleItem{WeekDay: 1, From: "08:00", To: "09:00"},
		models.ScheduleItem{WeekDay: 3, From: "10:00", To: "12:00"},
		models.ScheduleItem{WeekDay: 0, From: "00:00", To: "23:59"},
	))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NotEqual(t, userID.value, classID.value)
}

func TestClassRepositoryRegisterWithoutSchedule(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Register(context.Background(), aliceRegistration()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRegisterRollsBackWhenScheduleInsertFails(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO class_schedule")).
		WillReturnError(errors.New(`new row for relation "class_schedule" violates check constraint "class_schedule_week_day_check"`))
	mock.ExpectRollback()

	err := repo.Register(context.Background(), aliceRegistration(models.ScheduleItem{WeekDay: 9, From: "08:00", To: "09:00"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert class schedule")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRegisterRollsBackOnMalformedTime(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	err := repo.Register(context.Background(), aliceRegistration(
		models.ScheduleItem{WeekDay: 1, From: "08:00", To: "09:00"},
		models.ScheduleItem{WeekDay: 2, From: "8h", To: "09:00"},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, timeutil.ErrInvalidFormat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRegisterRollsBackWhenTutorInsertFails(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(errors.New("null value in column \"name\""))
	mock.ExpectRollback()

	err := repo.Register(context.Background(), aliceRegistration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert tutor")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRegisterTwiceCreatesDistinctTutors(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	first := &capturedArg{}
	second := &capturedArg{}
	for _, id := range []*capturedArg{first, second} {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(id, "Alice", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}

	require.NoError(t, repo.Register(context.Background(), aliceRegistration()))
	require.NoError(t, repo.Register(context.Background(), aliceRegistration()))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NotEqual(t, first.value, second.value)
}
