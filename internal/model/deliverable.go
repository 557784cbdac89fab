package model

import (
	"time"

	"github.com/google/uuid"
)

type DeliverableStatus string

const (
	DeliverableStatusPlanned    DeliverableStatus = "planned"
	DeliverableStatusInProgress DeliverableStatus = "in_progress"
	DeliverableStatusComplete   DeliverableStatus = "complete"
	DeliverableStatusBlocked    DeliverableStatus = "blocked"
)

type Deliverable struct {
	ID          uuid.UUID         `json:"id"`
	ContractID  uuid.UUID         `json:"contract_id"`
	Name        string            `json:"name"`
	BudgetHours float64           `json:"budget_hours"`
	StartDate   *time.Time        `json:"start_date"`
	DueDate     *time.Time        `json:"due_date"`
	Status      DeliverableStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
