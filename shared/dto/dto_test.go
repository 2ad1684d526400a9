package dto_test

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt})

	createdParsed, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(createdParsed))

	modifiedParsed, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, modifiedAt.Equal(modifiedParsed))
}

func TestSortBy(t *testing.T) {
	params := dto.SortBy("performed_at", dto.SortDirDesc)

	assert.Equal(t, "performed_at", params.SortBy)
	assert.Equal(t, "DESC", params.SortDir)
	assert.Zero(t, params.Limit)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "single equality",
			group: dto.FilterGroup{
				Filters: []any{dto.Filter{Field: "id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "rooms"}},
			},
			wantWhere: "(rooms.id = :id)",
			wantArgs:  map[string]any{"id": "r-1"},
		},
		{
			name: "and group with arg name",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "rooms"},
					dto.Filter{ArgName: "expected_revision", Field: "revision", Value: 3, Operator: dto.FilterOperatorEq, Table: "rooms"},
				},
			},
			wantWhere: "(rooms.id = :id AND rooms.revision = :expected_revision)",
			wantArgs:  map[string]any{"id": "r-1", "expected_revision": 3},
		},
		{
			name: "is null",
			group: dto.FilterGroup{
				Filters: []any{dto.Filter{Field: "closed_at", Operator: dto.FilterIsNull}},
			},
			wantWhere: "(closed_at IS NULL)",
			wantArgs:  map[string]any{},
		},
		{
			name: "nested group skips unknown operators",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "notes", Value: "x", Operator: "like"},
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorOr,
						Filters: []any{
							dto.Filter{Field: "performed_at", Value: 1, Operator: dto.FilterOperatorGreaterEq},
							dto.Filter{ArgName: "until", Field: "performed_at", Value: 2, Operator: dto.FilterOperatorLessEq},
						},
					},
				},
			},
			wantWhere: "(room_id = :room_id AND (performed_at >= :performed_at OR performed_at <= :until))",
			wantArgs:  map[string]any{"room_id": "r-1", "performed_at": 1, "until": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	assert.Equal(t, "ASC", dto.SortDirAsc)
	assert.Equal(t, "DESC", dto.SortDirDesc)
}
