package model

import (
	"time"

	"github.com/google/uuid"
)

type UpdateStatus string

const (
	UpdateStatusOnTrack  UpdateStatus = "on_track"
	UpdateStatusAtRisk   UpdateStatus = "at_risk"
	UpdateStatusOffTrack UpdateStatus = "off_track"
)

type StatusUpdate struct {
	ID            uuid.UUID    `json:"id"`
	DeliverableID uuid.UUID    `json:"deliverable_id"`
	PeriodEnd     time.Time    `json:"period_end"`
	Status        UpdateStatus `json:"status"`
	Summary       string       `json:"summary"`
	CreatedByID   *uuid.UUID   `json:"created_by_id"`
	CreatedAt     time.Time    `json:"created_at"`
}
