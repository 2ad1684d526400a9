package repository_test

import (
	"context"
	"errors"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/shared/dto"
	"hotel/shared/model"
	"hotel/shared/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Revision int    `db:"revision"`
	Ignored  string `db:"-"`
	model.Metadata
}

const selectItems = "SELECT id, name, revision, created_at, modified_at FROM items"

func newRepository(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })

	repo := repository.NewRepository[item]("item", "items", &postgres.Connection{Read: db, Write: db}, mocks.NewOtel())

	return repo, mock, db
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq, Table: "items"}},
	}
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "revision", "created_at", "modified_at"})
}

func TestNewRepository_Columns(t *testing.T) {
	repo, _, _ := newRepository(t)

	assert.Equal(t, []string{"id", "name", "revision", "created_at", "modified_at"}, repo.Columns)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock, _ := newRepository(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO items (id, name, revision, created_at, modified_at) VALUES ($1, $2, $3, $4, $5)").
		WithArgs("i-1", "lamp", 0, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), item{ID: "i-1", Name: "lamp", Metadata: model.Metadata{CreatedAt: now, ModifiedAt: now}})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertError(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectExec("INSERT INTO items (id, name, revision, created_at, modified_at) VALUES ($1, $2, $3, $4, $5)").
		WillReturnError(errors.New("connection reset"))

	err := repo.Insert(context.Background(), item{ID: "i-1"})

	assert.ErrorContains(t, err, "failed to insert data (item)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		want    item
		wantErr bool
	}{
		{
			name: "found",
			rows: itemRows().AddRow("i-1", "lamp", 2, now, now),
			want: item{ID: "i-1", Name: "lamp", Revision: 2, Metadata: model.Metadata{CreatedAt: now, ModifiedAt: now}},
		},
		{
			name: "not found returns zero value",
			rows: itemRows(),
			want: item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepository(t)

			mock.ExpectPrepare(selectItems + " WHERE (items.id = $1)").
				ExpectQuery().
				WithArgs("i-1").
				WillReturnRows(tt.rows)

			got, err := repo.Get(context.Background(), byID("i-1"))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetRequiresFilter(t *testing.T) {
	repo, mock, _ := newRepository(t)

	_, err := repo.Get(context.Background(), dto.FilterGroup{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdateTx(t *testing.T) {
	repo, mock, db := newRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectPrepare(selectItems + " WHERE (items.id = $1) FOR UPDATE").
		ExpectQuery().
		WithArgs("i-1").
		WillReturnRows(itemRows().AddRow("i-1", "lamp", 4, now, now))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	got, err := repo.GetForUpdateTx(context.Background(), tx, byID("i-1"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 4, got.Revision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetTxOrdered(t *testing.T) {
	repo, mock, db := newRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectPrepare(selectItems + " WHERE (items.id = $1) ORDER BY created_at DESC LIMIT 1").
		ExpectQuery().
		WithArgs("i-1").
		WillReturnRows(itemRows().AddRow("i-1", "lamp", 1, now, now))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	got, err := repo.GetTx(context.Background(), tx, byID("i-1"), dto.SortBy("created_at", dto.SortDirDesc))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Equal(t, "lamp", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetFirst(t *testing.T) {
	repo, mock, _ := newRepository(t)
	now := time.Now()

	mock.ExpectPrepare(selectItems + " WHERE (items.id = $1) ORDER BY revision DESC LIMIT 1").
		ExpectQuery().
		WithArgs("i-1").
		WillReturnRows(itemRows().AddRow("i-1", "lamp", 7, now, now))

	got, err := repo.GetFirst(context.Background(), byID("i-1"), dto.SortBy("revision", dto.SortDirDesc))

	require.NoError(t, err)
	assert.Equal(t, 7, got.Revision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock, _ := newRepository(t)
	now := time.Now()

	mock.ExpectPrepare(selectItems + " ORDER BY name ASC").
		ExpectQuery().
		WillReturnRows(itemRows().AddRow("i-2", "chair", 0, now, now).AddRow("i-1", "lamp", 0, now, now))

	got, err := repo.GetAll(context.Background(), dto.SortBy("name", dto.SortDirAsc), dto.FilterGroup{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "chair", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllEmpty(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectPrepare(selectItems + " WHERE (items.name = $1)").
		ExpectQuery().
		WithArgs("sofa").
		WillReturnRows(itemRows())

	got, err := repo.GetAll(context.Background(), dto.QueryParams{}, dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "name", Value: "sofa", Operator: dto.FilterOperatorEq, Table: "items"}},
	})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateWithRevisionGuard(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "revision matched", affected: 1},
		{name: "revision moved on", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepository(t)

			mock.ExpectExec("UPDATE items SET name = $1, revision = revision + 1 WHERE (items.id = $2 AND items.revision = $3)").
				WithArgs("desk", "i-1", 3).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Update(context.Background(), map[string]any{
				"revision": repository.Increment("revision"),
				"name":     "desk",
			}, dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "id", Value: "i-1", Operator: dto.FilterOperatorEq, Table: "items"},
					dto.Filter{ArgName: "expected_revision", Field: "revision", Value: 3, Operator: dto.FilterOperatorEq, Table: "items"},
				},
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	repo, mock, _ := newRepository(t)

	_, err := repo.Update(context.Background(), map[string]any{"name": "desk"}, dto.FilterGroup{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateTx(t *testing.T) {
	repo, mock, db := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE items SET name = $1 WHERE (items.id = $2)").
		WithArgs("desk", "i-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	affected, err := repo.UpdateTx(context.Background(), tx, map[string]any{"name": "desk"}, byID("i-1"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectExec("DELETE FROM items WHERE (items.id = $1)").
		WithArgs("i-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), byID("i-1"))

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
