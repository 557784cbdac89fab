package model

import (
	"time"

	"github.com/google/uuid"
)

type TimeEntry struct {
	ID            uuid.UUID `json:"id"`
	DeliverableID uuid.UUID `json:"deliverable_id"`
	StaffID       uuid.UUID `json:"staff_id"`
	EntryDate     time.Time `json:"entry_date"`
	Hours         float64   `json:"hours"`
	Note          string    `json:"note"`

	// When ExternalSource is set, (external_source, external_id) is unique
	// so integrations can re-send entries without creating duplicates.
	ExternalSource string `json:"external_source"`
	ExternalID     string `json:"external_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
