package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldType          = "type"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldLastCleanedAt = "last_cleaned_at"
	FieldIncidences    = "incidences"
	FieldImagePath     = "image_path"
	FieldRevision      = "revision"

	ArgExpectedRevision = "expected_revision"

	ImageDirectory = "rooms"
)

const (
	CacheKeyRoom  = "room:get"
	CacheKeyRooms = "room:gets"
)

var (
	ErrRoomNotFound        = failure.NotFound("room not found")
	ErrIncidenceNotFound   = failure.NotFound("incidence not found")
	ErrRoomChanged         = failure.Conflict("room was modified concurrently, reload and retry")
	ErrDuplicateRoomNumber = failure.Conflict("room number already exists")
)

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeFamily Type = "family"
	TypeSuite  Type = "suite"
)

// Types lists the room categories in display order.
func Types() []Type {
	return []Type{TypeSingle, TypeDouble, TypeFamily, TypeSuite}
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeFamily, TypeSuite:
		return true
	}

	return false
}

// Room is a lodging unit. LastCleanedAt mirrors the newest cleaning of the room and is only
// written by the cleaning lifecycle. Revision grows by one with every write.
type Room struct {
	ID            string     `db:"id"`
	Number        int        `db:"number"`
	Type          Type       `db:"type"`
	Description   string     `db:"description"`
	Price         float64    `db:"price"`
	LastCleanedAt time.Time  `db:"last_cleaned_at"`
	Incidences    Incidences `db:"incidences"`
	ImagePath     string     `db:"image_path"`
	Revision      int        `db:"revision"`
	model.Metadata
}
