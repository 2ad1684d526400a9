package model_test

import (
	"errors"
	"hotel/internal/domains/room/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_IsValid(t *testing.T) {
	for _, roomType := range model.Types() {
		assert.True(t, roomType.IsValid(), roomType)
	}

	assert.False(t, model.Type("penthouse").IsValid())
	assert.False(t, model.Type("").IsValid())
	assert.False(t, model.Type("Single").IsValid())
}

func TestIncidences_Append(t *testing.T) {
	openedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	original := model.Incidences{{ID: "i-1", Description: "broken lamp"}}

	list, incidence := original.Append("leaking tap", openedAt)

	require.Len(t, list, 2)
	assert.Len(t, original, 1)
	assert.Equal(t, incidence, list[1])
	assert.NotEmpty(t, incidence.ID)
	assert.Equal(t, "leaking tap", incidence.Description)
	assert.Equal(t, openedAt, incidence.OpenedAt)
	assert.True(t, incidence.IsOpen())
}

func TestIncidences_Close(t *testing.T) {
	first := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	tests := []struct {
		name    string
		list    model.Incidences
		id      string
		at      time.Time
		wantErr error
	}{
		{
			name:    "empty list",
			list:    model.Incidences{},
			id:      "i-1",
			at:      first,
			wantErr: model.ErrIncidenceNotFound,
		},
		{
			name:    "unknown id",
			list:    model.Incidences{{ID: "i-1"}},
			id:      "i-2",
			at:      first,
			wantErr: model.ErrIncidenceNotFound,
		},
		{
			name: "open incidence",
			list: model.Incidences{{ID: "i-1"}, {ID: "i-2"}},
			id:   "i-2",
			at:   first,
		},
		{
			name: "already closed incidence is closed again",
			list: model.Incidences{{ID: "i-1", ClosedAt: &first}},
			id:   "i-1",
			at:   second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := make(model.Incidences, len(tt.list))
			copy(before, tt.list)

			got, err := tt.list.Close(tt.id, tt.at)

			assert.Equal(t, before, tt.list)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, before, got)

				return
			}

			require.NoError(t, err)

			for _, incidence := range got {
				if incidence.ID == tt.id {
					require.NotNil(t, incidence.ClosedAt)
					assert.Equal(t, tt.at, *incidence.ClosedAt)
					assert.False(t, incidence.IsOpen())
				}
			}
		})
	}
}

func TestIncidences_Open(t *testing.T) {
	closedAt := time.Now()
	list := model.Incidences{{ID: "i-1"}, {ID: "i-2", ClosedAt: &closedAt}, {ID: "i-3"}}

	assert.Equal(t, 2, list.Open())
}

func TestIncidences_ValueScan(t *testing.T) {
	closedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	list := model.Incidences{
		{ID: "i-1", Description: "broken lamp", OpenedAt: closedAt.Add(-time.Hour), ClosedAt: &closedAt},
		{ID: "i-2", Description: "leaking tap", OpenedAt: closedAt},
	}

	value, err := list.Value()
	require.NoError(t, err)

	raw, ok := value.(string)
	require.True(t, ok)

	var scanned model.Incidences
	require.NoError(t, scanned.Scan([]byte(raw)))
	assert.Equal(t, list, scanned)
}

func TestIncidences_NilValueAndScan(t *testing.T) {
	var list model.Incidences

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	require.NoError(t, list.Scan(nil))
	assert.NotNil(t, list)
	assert.Empty(t, list)

	assert.Error(t, list.Scan(42))
	assert.Error(t, list.Scan("{not json"))
}
