package repository_test

import (
	"context"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/cleaning/model"
	"hotel/internal/domains/cleaning/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectCleanings = "SELECT id, room_id, performed_at, notes, created_at FROM cleanings WHERE (cleanings.room_id = $1)"

func newRepository(t *testing.T) (repository.Cleaning, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })

	return repository.New(&postgres.Connection{Read: db, Write: db}, mocks.NewOtel()), mock, db
}

func cleaningRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_id", "performed_at", "notes", "created_at"})
}

func TestCleaning_InsertTx(t *testing.T) {
	repo, mock, db := newRepository(t)
	performedAt := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO cleanings (id, room_id, performed_at, notes, created_at) VALUES ($1, $2, $3, $4, $5)").
		WithArgs("c-1", "r-1", performedAt, "windows", performedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	err = repo.InsertTx(context.Background(), tx, model.Cleaning{
		ID: "c-1", RoomID: "r-1", PerformedAt: performedAt, Notes: "windows", CreatedAt: performedAt,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleaning_Latest(t *testing.T) {
	repo, mock, _ := newRepository(t)
	day3 := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(selectCleanings + " ORDER BY performed_at DESC LIMIT 1").
		ExpectQuery().
		WithArgs("r-1").
		WillReturnRows(cleaningRows().AddRow("c-3", "r-1", day3, "", day3))

	latest, err := repo.Latest(context.Background(), "r-1")

	require.NoError(t, err)
	assert.Equal(t, "c-3", latest.ID)
	assert.True(t, day3.Equal(latest.PerformedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleaning_LatestTxWithoutHistory(t *testing.T) {
	repo, mock, db := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(selectCleanings + " ORDER BY performed_at DESC LIMIT 1").
		ExpectQuery().
		WithArgs("r-2").
		WillReturnRows(cleaningRows())
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	latest, err := repo.LatestTx(context.Background(), tx, "r-2")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Empty(t, latest.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleaning_GetAllNewestFirst(t *testing.T) {
	repo, mock, _ := newRepository(t)
	day1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day3 := day1.AddDate(0, 0, 2)

	mock.ExpectPrepare(selectCleanings + " ORDER BY performed_at DESC").
		ExpectQuery().
		WithArgs("r-1").
		WillReturnRows(cleaningRows().AddRow("c-3", "r-1", day3, "", day3).AddRow("c-1", "r-1", day1, "", day1))

	cleanings, err := repo.GetAll(context.Background(), repository.NewestFirst(), repository.FilterByRoom("r-1"))

	require.NoError(t, err)
	require.Len(t, cleanings, 2)
	assert.Equal(t, "c-3", cleanings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
