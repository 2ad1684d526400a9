package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/cleaning/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Cleaning is the append-only cleaning history. Latest and LatestTx return the zero value when
// the room has no history.
type Cleaning interface {
	Insert(ctx context.Context, model model.Cleaning) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Cleaning) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Cleaning, error)
	Latest(ctx context.Context, roomID string) (model.Cleaning, error)
	LatestTx(ctx context.Context, tx *sqlx.Tx, roomID string) (model.Cleaning, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Cleaning]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cleaning {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Cleaning](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Latest(ctx context.Context, roomID string) (model.Cleaning, error) {
	return r.GetFirst(ctx, FilterByRoom(roomID), NewestFirst())
}

func (r *repositoryImpl) LatestTx(ctx context.Context, tx *sqlx.Tx, roomID string) (model.Cleaning, error) {
	return r.GetTx(ctx, tx, FilterByRoom(roomID), NewestFirst())
}

func FilterByRoom(roomID string) gDto.FilterGroup {
	return shared.FilterByField(model.FieldRoomID, roomID, model.TableName)
}

// NewestFirst orders cleanings by when they were performed, most recent first.
func NewestFirst() gDto.QueryParams {
	return gDto.SortBy(model.FieldPerformedAt, gDto.SortDirDesc)
}
