package dto

import (
	"hotel/internal/domains/cleaning/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"strings"
	"time"
)

const (
	FieldPerformedAt = "performed_at"

	msgInvalidPerformedAt = "performed_at must be an RFC 3339 timestamp, a local date-time or a date"
)

type RecordCleaningRequest struct {
	PerformedAt string `json:"performed_at" validate:"required"`
	Notes       string `json:"notes"        validate:"max=1000"`
}

// ToModel parses PerformedAt in the application timezone when it carries no offset.
func (r *RecordCleaningRequest) ToModel(roomID string) (model.Cleaning, error) {
	performedAt, err := timezone.ParseAny(strings.TrimSpace(r.PerformedAt),
		constant.DateFormat, constant.DateTimeLocalFormat, constant.DateOnlyFormat)
	if err != nil {
		return model.Cleaning{}, failure.Validation(msgInvalidPerformedAt, map[string]string{ //nolint:wrapcheck
			FieldPerformedAt: msgInvalidPerformedAt,
		})
	}

	return model.New(roomID, performedAt, strings.TrimSpace(r.Notes)), nil
}

type CleaningResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	PerformedAt time.Time `json:"performed_at"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *CleaningResponse) FromModel(model model.Cleaning) {
	c.ID = model.ID
	c.RoomID = model.RoomID
	c.PerformedAt = timezone.ToAppTime(model.PerformedAt)
	c.Notes = model.Notes
	c.CreatedAt = timezone.ToAppTime(model.CreatedAt)
}

type CleaningsResponse struct {
	Cleanings []CleaningResponse `json:"cleanings"`
	Total     int                `json:"total"`
}

func (c *CleaningsResponse) FromModels(models []model.Cleaning) {
	c.Total = len(models)

	c.Cleanings = make([]CleaningResponse, len(models))
	for i, mod := range models {
		c.Cleanings[i].FromModel(mod)
	}
}

type StatusResponse struct {
	RoomID       string       `json:"room_id"`
	Status       model.Status `json:"status"`
	LastCleaning time.Time    `json:"last_cleaning"`
}

// RefreshResponse lists every room after a bulk refresh. Rooms named in Failed kept their
// previous last cleaned timestamp.
type RefreshResponse struct {
	Rooms    []roomDto.RoomResponse `json:"rooms"`
	Failed   []string               `json:"failed"`
	Complete bool                   `json:"complete"`
}
