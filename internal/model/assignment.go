package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment budgets a staff member's expected hours on one deliverable.
// (deliverable_id, staff_id) is unique; at most one assignment per
// deliverable is intended to carry is_lead, though the store does not
// enforce that.
type Assignment struct {
	ID            uuid.UUID `json:"id"`
	DeliverableID uuid.UUID `json:"deliverable_id"`
	StaffID       uuid.UUID `json:"staff_id"`
	ExpectedHours float64   `json:"expected_hours"`
	IsLead        bool      `json:"is_lead"`
	CreatedAt     time.Time `json:"created_at"`
}
