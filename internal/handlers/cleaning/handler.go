package cleaning

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/cleaning/model/dto"
	"hotel/internal/domains/cleaning/service"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cleaning
	otel    otel.Otel
}

func New(service service.Cleaning, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cleanings", func(routerGroup chi.Router) {
		routerGroup.Put("/last-cleaned", handler.RefreshAllLastCleaned)
		routerGroup.Post("/{roomID}", handler.RecordCleaning)
		routerGroup.Get("/{roomID}", handler.ListCleanings)
		routerGroup.Get("/{roomID}/status", handler.GetStatus)
		routerGroup.Put("/{roomID}/last-cleaned", handler.SyncLastCleaned)
	})
}

// RecordCleaning records a cleaning of a room.
// @Summary Record a cleaning
// @Description Append a cleaning to the room history. The room's last cleaned time moves to the newest cleaning on record.
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param roomID path string true "Room ID"
// @Param request body dto.RecordCleaningRequest true "Cleaning"
// @Success 201 {object} response.Data[roomDto.RoomResponse] "Room after the cleaning"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleanings/{roomID} [post]
func (handler *Handler) RecordCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordCleaning")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	req := dto.RecordCleaningRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid cleaning")

		response.WithError(w, err)

		return
	}

	var room roomDto.RoomResponse

	room, err := handler.service.Record(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record cleaning")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning recorded")

	response.WithJSON(w, http.StatusCreated, room)
}

// ListCleanings lists the cleaning history of a room, newest first.
// @Summary List cleanings of a room
// @Tags Cleaning
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} response.Data[dto.CleaningsResponse] "Cleaning history"
// @Failure 500 {object} response.Error
// @Router /v1/cleanings/{roomID} [get]
func (handler *Handler) ListCleanings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCleanings")
	defer scope.End()

	cleanings, err := handler.service.List(ctx, chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list cleanings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cleanings)
}

// GetStatus reports whether a room was cleaned today.
// @Summary Get cleaning status
// @Tags Cleaning
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} response.Data[dto.StatusResponse] "Cleaning status"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleanings/{roomID}/status [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningStatus")
	defer scope.End()

	status, err := handler.service.Status(ctx, chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

// SyncLastCleaned recomputes the last cleaned time of a room from its history.
// @Summary Sync last cleaned time of a room
// @Tags Cleaning
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Synced room"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleanings/{roomID}/last-cleaned [put]
func (handler *Handler) SyncLastCleaned(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncLastCleaned")
	defer scope.End()

	var room roomDto.RoomResponse

	room, err := handler.service.SyncLastCleaned(ctx, chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync last cleaned")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// RefreshAllLastCleaned recomputes the last cleaned time of every room.
// @Summary Refresh last cleaned time of every room
// @Description Rooms that could not be refreshed are listed in failed and keep their previous value.
// @Tags Cleaning
// @Produce json
// @Success 200 {object} response.Data[dto.RefreshResponse] "Rooms after the refresh"
// @Failure 500 {object} response.Error
// @Router /v1/cleanings/last-cleaned [put]
func (handler *Handler) RefreshAllLastCleaned(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshAllLastCleaned")
	defer scope.End()

	res, err := handler.service.RefreshAllLastCleaned(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh last cleaned")

		response.WithError(w, err)

		return
	}

	if !res.Complete {
		scope.AddEvent("Refresh incomplete")
	}

	response.WithJSON(w, http.StatusOK, res)
}
