package repository_test

import (
	"context"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomColumns = "id, number, type, description, price, last_cleaned_at, incidences, image_path, revision, created_at, modified_at"

func newRepository(t *testing.T) (repository.Room, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })

	return repository.New(&postgres.Connection{Read: db, Write: db}, mocks.NewOtel()), mock
}

func TestRoom_Insert(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO rooms ("+roomColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)").
		WithArgs("r-1", 101, "double", "sea view", 89.9, now, "[]", "", 0, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.Room{
		ID:            "r-1",
		Number:        101,
		Type:          model.TypeDouble,
		Description:   "sea view",
		Price:         89.9,
		LastCleanedAt: now,
		Metadata:      gModel.Metadata{CreatedAt: now, ModifiedAt: now},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoom_GetScansIncidences(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectPrepare("SELECT " + roomColumns + " FROM rooms WHERE (rooms.id = $1)").
		ExpectQuery().
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "number", "type", "description", "price", "last_cleaned_at", "incidences",
			"image_path", "revision", "created_at", "modified_at",
		}).AddRow("r-1", 101, "double", "sea view", 89.9, now,
			[]byte(`[{"id":"i-1","description":"broken lamp","opened_at":"2024-05-01T09:00:00Z"}]`),
			"", 2, now, now))

	room, err := repo.Get(context.Background(), shared.FilterByID("r-1", model.FieldID, model.TableName))

	require.NoError(t, err)
	assert.Equal(t, model.TypeDouble, room.Type)
	assert.Equal(t, 2, room.Revision)
	require.Len(t, room.Incidences, 1)
	assert.Equal(t, "broken lamp", room.Incidences[0].Description)
	assert.True(t, room.Incidences[0].IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoom_UpdateGuardedByRevision(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("UPDATE rooms SET incidences = $1, revision = revision + 1 WHERE (rooms.id = $2 AND rooms.revision = $3)").
		WithArgs("[]", "r-1", 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Update(context.Background(), map[string]any{
		model.FieldIncidences: model.Incidences{},
		model.FieldRevision:   gRepo.Increment(model.FieldRevision),
	}, repository.FilterByRevision("r-1", 4))

	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
