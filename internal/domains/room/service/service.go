package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/s3"
	cleaningModel "hotel/internal/domains/cleaning/model"
	cleaningRepository "hotel/internal/domains/cleaning/repository"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	operationUpdateRoom     = "updateRoom"
	operationAddIncidence   = "addIncidence"
	operationCloseIncidence = "closeIncidence"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) (dto.RoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) (dto.RoomResponse, error)
	Types() dto.TypesResponse
	AddIncidence(ctx context.Context, id string, req dto.AddIncidenceRequest) (dto.RoomResponse, error)
	CloseIncidence(ctx context.Context, id, incidenceID string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo         repository.Room
	cleaningRepo cleaningRepository.Cleaning
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
	publisher    event.Publisher
	metrics      *metrics.Metrics
}

func New(
	repo repository.Room,
	cleaningRepo cleaningRepository.Cleaning,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	publisher event.Publisher,
	metrics *metrics.Metrics,
) Room {
	return &serviceImpl{
		repo:         repo,
		cleaningRepo: cleaningRepo,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
		publisher:    publisher,
		metrics:      metrics,
	}
}

// Create stores the room together with its seed cleaning. The uploaded image is removed again
// when the room cannot be stored.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	room := req.ToModel(imageURL)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, room); err != nil {
			return err //nolint:wrapcheck
		}

		return s.cleaningRepo.InsertTx(ctx, tx, cleaningModel.Seed(room.ID, room.LastCleanedAt)) //nolint:wrapcheck
	})
	if err != nil {
		s.discardImage(ctx, imageURL)

		if shared.IsUniqueViolation(err) {
			return res, model.ErrDuplicateRoomNumber
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateCaches(ctx, room.ID)
	s.publisher.Publish(ctx, event.RoomCreated, room.ID, nil)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.RoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if cacheErr := s.cache.Get(ctx, model.CacheKeyRooms, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", model.CacheKeyRooms).Msg("cache hit for rooms")

		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx, gDto.SortBy(model.FieldNumber, gDto.SortDirAsc), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms)
	s.saveCache(ctx, model.CacheKeyRooms, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, model.ErrRoomNotFound
	}

	cacheKey := shared.BuildCacheKey(model.CacheKeyRoom, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// Update writes the changed fields. A revision in the request must match the stored one.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	current, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	if req.Revision != nil && *req.Revision != current.Revision {
		s.metrics.RevisionConflict.WithLabelValues(operationUpdateRoom).Inc()

		return res, model.ErrRoomChanged
	}

	fields := req.Fields()
	fields[model.FieldRevision] = gRepo.Increment(model.FieldRevision)

	affected, err := s.repo.Update(ctx, fields, repository.FilterByRevision(id, current.Revision))
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return res, model.ErrDuplicateRoomNumber
		}

		log.Error().Err(err).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	if affected == 0 {
		s.metrics.RevisionConflict.WithLabelValues(operationUpdateRoom).Inc()

		return res, model.ErrRoomChanged
	}

	updated, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	s.invalidateCaches(ctx, id)
	s.publisher.Publish(ctx, event.RoomUpdated, id, nil)

	res.FromModel(updated)

	return res, nil
}

// Delete removes the room and returns it as it was. Its cleaning history is kept.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return res, fmt.Errorf("failed to delete room: %w", err)
	}

	if affected == 0 {
		return res, model.ErrRoomNotFound
	}

	s.invalidateCaches(ctx, id)
	s.publisher.Publish(ctx, event.RoomDeleted, id, nil)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Types() dto.TypesResponse {
	return dto.TypesResponse{Types: model.Types()}
}

func (s *serviceImpl) AddIncidence(ctx context.Context, id string, req dto.AddIncidenceRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddIncidence")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	incidences, incidence := room.Incidences.Append(req.Description, timezone.Now())

	room, err = s.swapIncidences(ctx, room, incidences, operationAddIncidence)
	if err != nil {
		return res, err
	}

	s.publisher.Publish(ctx, event.IncidenceOpened, id, incidence)

	res.FromModel(room)

	return res, nil
}

// CloseIncidence stamps the incidence as closed now. Closing it again moves the timestamp.
func (s *serviceImpl) CloseIncidence(ctx context.Context, id, incidenceID string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseIncidence")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	incidences, err := room.Incidences.Close(incidenceID, timezone.Now())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	room, err = s.swapIncidences(ctx, room, incidences, operationCloseIncidence)
	if err != nil {
		return res, err
	}

	s.publisher.Publish(ctx, event.IncidenceClosed, id, incidenceID)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (model.Room, error) {
	if !shared.IsValidID(id) {
		return model.Room{}, model.ErrRoomNotFound
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, model.ErrRoomNotFound
	}

	return room, nil
}

// swapIncidences replaces the incidence list only if nobody wrote the room since it was read.
func (s *serviceImpl) swapIncidences(ctx context.Context, room model.Room, incidences model.Incidences, operation string) (model.Room, error) {
	now := timezone.Now()

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldIncidences:    incidences,
		model.FieldRevision:      gRepo.Increment(model.FieldRevision),
		constant.FieldModifiedAt: now,
	}, repository.FilterByRevision(room.ID, room.Revision))
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to update incidences")

		return room, fmt.Errorf("failed to update incidences: %w", err)
	}

	if affected == 0 {
		s.metrics.RevisionConflict.WithLabelValues(operation).Inc()

		return room, model.ErrRoomChanged
	}

	room.Incidences = incidences
	room.Revision++
	room.ModifiedAt = now

	s.invalidateCaches(ctx, room.ID)

	return room, nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	if image == nil {
		return constant.Empty, nil
	}

	return s.s3.UploadFile(ctx, model.ImageDirectory, image, uuid.NewString()+path.Ext(image.Filename)) //nolint:wrapcheck
}

func (s *serviceImpl) discardImage(ctx context.Context, imageURL string) {
	if imageURL == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, imageURL); err != nil {
		log.Error().Err(err).Str("url", imageURL).Msg("failed to delete orphaned room image")
	}
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save rooms to cache")
	}
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(model.CacheKeyRoom, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete room from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, model.CacheKeyRooms)
}
