package dto_test

import (
	"bytes"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/shared/failure"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(t *testing.T, values map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/v1/rooms", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return request
}

func TestCreateRoomRequest_Bind(t *testing.T) {
	tests := []struct {
		name       string
		form       map[string]string
		wantFields []string
	}{
		{
			name: "valid form",
			form: map[string]string{"number": "101", "type": "double", "description": "sea view", "price": "89.90"},
		},
		{
			name: "free room is allowed",
			form: map[string]string{"number": "102", "type": "single", "description": "staff", "price": "0"},
		},
		{
			name:       "type outside the enumeration",
			form:       map[string]string{"number": "101", "type": "penthouse", "description": "sea view", "price": "89.90"},
			wantFields: []string{"type"},
		},
		{
			name:       "negative price",
			form:       map[string]string{"number": "101", "type": "suite", "description": "sea view", "price": "-1"},
			wantFields: []string{"price"},
		},
		{
			name:       "unparsable values",
			form:       map[string]string{"number": "one", "type": "suite", "description": "sea view", "price": "cheap"},
			wantFields: []string{"number", "price"},
		},
		{
			name:       "empty form",
			form:       map[string]string{},
			wantFields: []string{"number", "type", "description", "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateRoomRequest{}
			err := req.Bind(formRequest(t, tt.form))

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

			fields := failure.GetFields(err)
			assert.Len(t, fields, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestCreateRoomRequest_BindParseMessages(t *testing.T) {
	req := dto.CreateRoomRequest{}
	err := req.Bind(formRequest(t, map[string]string{"number": "one", "type": "suite", "description": "x", "price": "1"}))

	require.Error(t, err)
	assert.Equal(t, "number must be a whole number", failure.GetFields(err)["number"])
	assert.Equal(t, "number must be a whole number", err.Error())
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	price := 120.0
	req := dto.CreateRoomRequest{Number: 7, Type: model.TypeFamily, Description: "two bedrooms", Price: &price}

	room := req.ToModel("https://cdn.example.com/rooms/a.png")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, 7, room.Number)
	assert.Equal(t, model.TypeFamily, room.Type)
	assert.Equal(t, 120.0, room.Price)
	assert.Equal(t, 0, room.Revision)
	assert.Equal(t, room.CreatedAt, room.LastCleanedAt)
	assert.Equal(t, "https://cdn.example.com/rooms/a.png", room.ImagePath)
	assert.NotNil(t, room.Incidences)
	assert.Empty(t, room.Incidences)
}

func TestUpdateRoomRequest_Fields(t *testing.T) {
	zero := 0.0
	revision := 3

	tests := []struct {
		name       string
		req        dto.UpdateRoomRequest
		wantEmpty  bool
		wantFields map[string]any
	}{
		{
			name:      "nothing to change",
			req:       dto.UpdateRoomRequest{Revision: &revision},
			wantEmpty: true,
		},
		{
			name:       "zero price is a change",
			req:        dto.UpdateRoomRequest{Price: &zero},
			wantFields: map[string]any{"price": 0.0},
		},
		{
			name:       "several fields",
			req:        dto.UpdateRoomRequest{Number: 12, Type: model.TypeSuite, Description: "renovated"},
			wantFields: map[string]any{"number": 12, "type": model.TypeSuite, "description": "renovated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEmpty, tt.req.IsEmpty())

			fields := tt.req.Fields()
			assert.Contains(t, fields, "modified_at")
			assert.NotContains(t, fields, "revision")

			for key, value := range tt.wantFields {
				assert.Equal(t, value, fields[key])
			}
		})
	}
}

func TestRoomResponse_FromModel(t *testing.T) {
	closedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	room := model.Room{
		ID:     "r-1",
		Number: 101,
		Type:   model.TypeDouble,
		Incidences: model.Incidences{
			{ID: "i-1", Description: "broken lamp", ClosedAt: &closedAt},
			{ID: "i-2", Description: "leaking tap"},
		},
		Revision: 4,
	}

	res := dto.RoomResponse{}
	res.FromModel(room)

	assert.Equal(t, "r-1", res.ID)
	assert.Equal(t, 4, res.Revision)
	assert.Equal(t, 1, res.OpenIncidences)
	require.Len(t, res.Incidences, 2)
	assert.False(t, res.Incidences[0].Open)
	assert.True(t, closedAt.Equal(*res.Incidences[0].ClosedAt))
	assert.True(t, res.Incidences[1].Open)
	assert.Nil(t, res.Incidences[1].ClosedAt)
}

func TestRoomsResponse_FromModels(t *testing.T) {
	res := dto.RoomsResponse{}
	res.FromModels(nil)

	assert.NotNil(t, res.Rooms)
	assert.Equal(t, 0, res.Total)

	res.FromModels([]model.Room{{ID: "r-1"}, {ID: "r-2"}})
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "r-2", res.Rooms[1].ID)
}
