package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusDraft  ContractStatus = "draft"
	ContractStatusActive ContractStatus = "active"
	ContractStatusClosed ContractStatus = "closed"
)

type Contract struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	ClientName  string         `json:"client_name"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	BudgetHours float64        `json:"budget_hours"`
	Status      ContractStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
