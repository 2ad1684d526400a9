package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/cleaning/model"
	"hotel/internal/domains/cleaning/model/dto"
	"hotel/internal/domains/cleaning/repository"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Cleaning interface {
	Record(ctx context.Context, roomID string, req dto.RecordCleaningRequest) (roomDto.RoomResponse, error)
	List(ctx context.Context, roomID string) (dto.CleaningsResponse, error)
	Status(ctx context.Context, roomID string) (dto.StatusResponse, error)
	SyncLastCleaned(ctx context.Context, roomID string) (roomDto.RoomResponse, error)
	RefreshAllLastCleaned(ctx context.Context) (dto.RefreshResponse, error)
}

type serviceImpl struct {
	repo       repository.Cleaning
	roomRepo   roomRepository.Room
	transactor postgres.Transactor
	cache      cache.RedisCache
	otel       otel.Otel
	publisher  event.Publisher
	metrics    *metrics.Metrics
}

func New(
	repo repository.Cleaning,
	roomRepo roomRepository.Room,
	transactor postgres.Transactor,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher event.Publisher,
	metrics *metrics.Metrics,
) Cleaning {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		transactor: transactor,
		cache:      cache,
		otel:       otel,
		publisher:  publisher,
		metrics:    metrics,
	}
}

// Record appends a cleaning and moves the room's last cleaned timestamp to the newest cleaning
// on record. A cleaning older than the history never moves the timestamp back.
func (s *serviceImpl) Record(ctx context.Context, roomID string, req dto.RecordCleaningRequest) (res roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordCleaning")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cleaning, err := req.ToModel(roomID)
	if err != nil {
		return res, err
	}

	var room roomModel.Room

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		locked, err := s.lockRoom(ctx, tx, roomID)
		if err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, cleaning); err != nil {
			return fmt.Errorf("failed to insert cleaning: %w", err)
		}

		room, err = s.syncLastCleaned(ctx, tx, locked)
		if errors.Is(err, model.ErrNoCleaningRecord) {
			logger.ErrorWithStack(fmt.Errorf("cleaning %s of room %s not visible after insert: %w", cleaning.ID, roomID, err))

			return model.ErrInconsistentState
		}

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to record cleaning")

		return res, err //nolint:wrapcheck
	}

	s.metrics.CleaningsTotal.Inc()
	s.invalidateRoomCaches(ctx, roomID)
	s.publisher.Publish(ctx, event.CleaningRecorded, roomID, cleaning.ID)

	res.FromModel(room)

	return res, nil
}

// List returns the history of roomID newest first. History outlives its room.
func (s *serviceImpl) List(ctx context.Context, roomID string) (res dto.CleaningsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListCleanings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(roomID) {
		res.FromModels(nil)

		return res, nil
	}

	cleanings, err := s.repo.GetAll(ctx, repository.NewestFirst(), repository.FilterByRoom(roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleanings")

		return res, fmt.Errorf("failed to get cleanings: %w", err)
	}

	res.FromModels(cleanings)

	return res, nil
}

func (s *serviceImpl) Status(ctx context.Context, roomID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CleaningStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(roomID) {
		return res, model.ErrNoCleaningRecord
	}

	latest, err := s.repo.Latest(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest cleaning")

		return res, fmt.Errorf("failed to get latest cleaning: %w", err)
	}

	if latest.ID == constant.Empty {
		return res, model.ErrNoCleaningRecord
	}

	return dto.StatusResponse{
		RoomID:       roomID,
		Status:       model.StatusAt(latest.PerformedAt, timezone.Now()),
		LastCleaning: timezone.ToAppTime(latest.PerformedAt),
	}, nil
}

func (s *serviceImpl) SyncLastCleaned(ctx context.Context, roomID string) (res roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncLastCleaned")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.syncRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	s.invalidateRoomCaches(ctx, roomID)
	s.publisher.Publish(ctx, event.CleaningRefreshed, roomID, nil)

	res.FromModel(room)

	return res, nil
}

// RefreshAllLastCleaned syncs every room in its own transaction. Rooms without history are
// skipped, rooms that fail are reported in Failed and keep their previous value.
func (s *serviceImpl) RefreshAllLastCleaned(ctx context.Context) (res dto.RefreshResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshAllLastCleaned")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.GetAll(ctx, byNumber(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.Failed = []string{}
	refreshed := 0

	for _, room := range rooms {
		_, syncErr := s.syncRoom(ctx, room.ID)

		switch {
		case syncErr == nil:
			refreshed++

			s.publisher.Publish(ctx, event.CleaningRefreshed, room.ID, nil)
		case errors.Is(syncErr, model.ErrNoCleaningRecord), errors.Is(syncErr, roomModel.ErrRoomNotFound):
			log.Debug().Str("room_id", room.ID).Msg("skipping room without cleaning history")
		default:
			log.Error().Err(syncErr).Str("room_id", room.ID).Msg("failed to refresh last cleaned")
			s.metrics.RefreshFailures.Inc()

			res.Failed = append(res.Failed, room.ID)
		}
	}

	if refreshed > 0 {
		shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(roomModel.CacheKeyRoom, constant.Empty))
		shared.InvalidateCaches(ctx, s.cache, roomModel.CacheKeyRooms)
	}

	rooms, err = s.roomRepo.GetAll(ctx, byNumber(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to reload rooms")

		return res, fmt.Errorf("failed to reload rooms: %w", err)
	}

	res.Rooms = make([]roomDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res.Rooms[i].FromModel(room)
	}

	res.Complete = len(res.Failed) == 0

	return res, nil
}

func (s *serviceImpl) syncRoom(ctx context.Context, roomID string) (room roomModel.Room, err error) {
	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		locked, err := s.lockRoom(ctx, tx, roomID)
		if err != nil {
			return err
		}

		room, err = s.syncLastCleaned(ctx, tx, locked)

		return err
	})

	return room, err //nolint:wrapcheck
}

func (s *serviceImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, roomID string) (roomModel.Room, error) {
	if !shared.IsValidID(roomID) {
		return roomModel.Room{}, roomModel.ErrRoomNotFound
	}

	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, roomModel.ErrRoomNotFound
	}

	return room, nil
}

// syncLastCleaned is the only place that derives Room.LastCleanedAt: the newest cleaning by
// performed time. Every sync is a write and bumps the revision. The room must be locked by tx.
func (s *serviceImpl) syncLastCleaned(ctx context.Context, tx *sqlx.Tx, room roomModel.Room) (roomModel.Room, error) {
	latest, err := s.repo.LatestTx(ctx, tx, room.ID)
	if err != nil {
		return room, fmt.Errorf("failed to get latest cleaning: %w", err)
	}

	if latest.ID == constant.Empty {
		return room, model.ErrNoCleaningRecord
	}

	now := timezone.Now()

	_, err = s.roomRepo.UpdateTx(ctx, tx, map[string]any{
		roomModel.FieldLastCleanedAt: latest.PerformedAt,
		roomModel.FieldRevision:      gRepo.Increment(roomModel.FieldRevision),
		constant.FieldModifiedAt:     now,
	}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to update last cleaned: %w", err)
	}

	room.LastCleanedAt = latest.PerformedAt
	room.Revision++
	room.ModifiedAt = now

	return room, nil
}

func (s *serviceImpl) invalidateRoomCaches(ctx context.Context, roomID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(roomModel.CacheKeyRoom, roomID)); err != nil {
		log.Error().Err(err).Msg("failed to delete room from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, roomModel.CacheKeyRooms)
}

func byNumber() gDto.QueryParams {
	return gDto.SortBy(roomModel.FieldNumber, gDto.SortDirAsc)
}
