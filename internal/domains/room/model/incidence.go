package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Incidence is a maintenance issue reported on a room. It is open until ClosedAt is set.
type Incidence struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

func (i Incidence) IsOpen() bool {
	return i.ClosedAt == nil
}

// Incidences is stored as a JSONB array, oldest first.
type Incidences []Incidence

// Value implements driver.Valuer. JSON is sent as text, lib/pq encodes []byte parameters as bytea.
func (l Incidences) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	value, err := json.Marshal([]Incidence(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal incidences: %w", err)
	}

	return string(value), nil
}

// Scan implements sql.Scanner.
func (l *Incidences) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*l = Incidences{}

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("unsupported incidences column type %T", src)
	}

	list := Incidences{}
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("failed to unmarshal incidences: %w", err)
	}

	*l = list

	return nil
}

// Append returns a copy of the list with a new open incidence at the end.
func (l Incidences) Append(description string, openedAt time.Time) (Incidences, Incidence) {
	incidence := Incidence{
		ID:          uuid.NewString(),
		Description: description,
		OpenedAt:    openedAt,
	}

	return append(slices.Clone(l), incidence), incidence
}

// Close returns a copy of the list with the incidence id closed at closedAt. Closing an already
// closed incidence moves its ClosedAt forward.
func (l Incidences) Close(id string, closedAt time.Time) (Incidences, error) {
	idx := slices.IndexFunc(l, func(incidence Incidence) bool { return incidence.ID == id })
	if idx < 0 {
		return l, ErrIncidenceNotFound
	}

	closed := slices.Clone(l)
	closed[idx].ClosedAt = &closedAt

	return closed, nil
}

// Open counts incidences that are still unresolved.
func (l Incidences) Open() int {
	count := 0

	for _, incidence := range l {
		if incidence.IsOpen() {
			count++
		}
	}

	return count
}
