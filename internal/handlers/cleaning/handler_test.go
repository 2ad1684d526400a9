package cleaning_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/cleaning/model"
	"hotel/internal/domains/cleaning/model/dto"
	"hotel/internal/domains/cleaning/service/mocks"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/cleaning"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data   json.RawMessage   `json:"data"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func setup(t *testing.T) (*mocks.MockCleaning, http.Handler) {
	t.Helper()

	service := mocks.NewMockCleaning(gomock.NewController(t))
	handler := cleaning.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func serve(t *testing.T, handler http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandler_RecordCleaning(t *testing.T) {
	lastCleaned := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		mock     func(service *mocks.MockCleaning)
		wantCode int
		wantErr  string
	}{
		{
			name: "recorded",
			body: `{"performed_at":"2024-03-05T09:00:00Z","notes":"Deep clean"}`,
			mock: func(service *mocks.MockCleaning) {
				service.EXPECT().Record(gomock.Any(), "room-1", dto.RecordCleaningRequest{
					PerformedAt: "2024-03-05T09:00:00Z",
					Notes:       "Deep clean",
				}).Return(roomDto.RoomResponse{ID: "room-1", LastCleanedAt: lastCleaned}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing performed_at",
			body:     `{"notes":"Deep clean"}`,
			mock:     func(_ *mocks.MockCleaning) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			body: `{"performed_at":"2024-03-05"}`,
			mock: func(service *mocks.MockCleaning) {
				service.EXPECT().Record(gomock.Any(), "room-1", gomock.Any()).
					Return(roomDto.RoomResponse{}, roomModel.ErrRoomNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  roomModel.ErrRoomNotFound.Error(),
		},
		{
			name: "inconsistent history",
			body: `{"performed_at":"2024-03-05"}`,
			mock: func(service *mocks.MockCleaning) {
				service.EXPECT().Record(gomock.Any(), "room-1", gomock.Any()).
					Return(roomDto.RoomResponse{}, model.ErrInconsistentState)
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  model.ErrInconsistentState.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := setup(t)
			tt.mock(service)

			req := httptest.NewRequest(http.MethodPost, "/cleanings/room-1", strings.NewReader(tt.body))

			rec, res := serve(t, router, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, res.Error)
			}

			if tt.wantCode == http.StatusCreated {
				var room roomDto.RoomResponse
				require.NoError(t, json.Unmarshal(res.Data, &room))
				assert.True(t, lastCleaned.Equal(room.LastCleanedAt))
			}
		})
	}
}

func TestHandler_ListCleanings(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().List(gomock.Any(), "room-1").Return(dto.CleaningsResponse{
		Cleanings: []dto.CleaningResponse{{ID: "c2", RoomID: "room-1"}, {ID: "c1", RoomID: "room-1"}},
		Total:     2,
	}, nil)

	rec, res := serve(t, router, httptest.NewRequest(http.MethodGet, "/cleanings/room-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var cleanings dto.CleaningsResponse
	require.NoError(t, json.Unmarshal(res.Data, &cleanings))
	assert.Equal(t, 2, cleanings.Total)
	assert.Equal(t, "c2", cleanings.Cleanings[0].ID)
}

func TestHandler_GetStatus(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().Status(gomock.Any(), "room-1").
			Return(dto.StatusResponse{RoomID: "room-1", Status: model.StatusClean}, nil)

		rec, res := serve(t, router, httptest.NewRequest(http.MethodGet, "/cleanings/room-1/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var status dto.StatusResponse
		require.NoError(t, json.Unmarshal(res.Data, &status))
		assert.Equal(t, model.StatusClean, status.Status)
	})

	t.Run("never cleaned", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().Status(gomock.Any(), "room-1").Return(dto.StatusResponse{}, model.ErrNoCleaningRecord)

		rec, _ := serve(t, router, httptest.NewRequest(http.MethodGet, "/cleanings/room-1/status", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_SyncLastCleaned(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().SyncLastCleaned(gomock.Any(), "room-1").Return(roomDto.RoomResponse{ID: "room-1", Revision: 2}, nil)

	rec, res := serve(t, router, httptest.NewRequest(http.MethodPut, "/cleanings/room-1/last-cleaned", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var room roomDto.RoomResponse
	require.NoError(t, json.Unmarshal(res.Data, &room))
	assert.Equal(t, 2, room.Revision)
}

func TestHandler_RefreshAllLastCleaned(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().RefreshAllLastCleaned(gomock.Any()).Return(dto.RefreshResponse{
		Rooms:    []roomDto.RoomResponse{{ID: "a"}, {ID: "b"}},
		Failed:   []string{"b"},
		Complete: false,
	}, nil)

	rec, res := serve(t, router, httptest.NewRequest(http.MethodPut, "/cleanings/last-cleaned", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var refresh dto.RefreshResponse
	require.NoError(t, json.Unmarshal(res.Data, &refresh))
	assert.False(t, refresh.Complete)
	assert.Equal(t, []string{"b"}, refresh.Failed)
	assert.Len(t, refresh.Rooms, 2)
}
