package model

import (
	"errors"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "cleanings"
	EntityName = "cleaning"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldPerformedAt = "performed_at"
	FieldNotes       = "notes"

	SeedNotes = "Initial cleaning"
)

var (
	ErrNoCleaningRecord = failure.NotFound("no cleaning recorded for room")
	// ErrInconsistentState means a cleaning just written inside the transaction could not be read back.
	ErrInconsistentState = failure.InternalError(errors.New("cleaning history is inconsistent"))
)

type Status string

const (
	StatusClean   Status = "clean"
	StatusPending Status = "pending"
)

// StatusAt reports whether a room last cleaned at lastCleaning counts as clean on now's calendar date.
func StatusAt(lastCleaning, now time.Time) Status {
	if timezone.SameDay(lastCleaning, now) {
		return StatusClean
	}

	return StatusPending
}

// Cleaning is an append-only record of a room being cleaned. RoomID is not enforced by a foreign
// key, history outlives the room.
type Cleaning struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	PerformedAt time.Time `db:"performed_at"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
}

func New(roomID string, performedAt time.Time, notes string) Cleaning {
	return Cleaning{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		PerformedAt: performedAt,
		Notes:       notes,
		CreatedAt:   timezone.Now(),
	}
}

// Seed is the cleaning every room starts its history with.
func Seed(roomID string, createdAt time.Time) Cleaning {
	return New(roomID, createdAt, SeedNotes)
}
