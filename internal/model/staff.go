package model

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	StaffRoleStaff   StaffRole = "staff"
	StaffRoleManager StaffRole = "manager"
	StaffRoleAdmin   StaffRole = "admin"
)

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

type Staff struct {
	ID                   uuid.UUID   `json:"id"`
	Email                string      `json:"email"`
	FirstName            string      `json:"first_name"`
	LastName             string      `json:"last_name"`
	Role                 StaffRole   `json:"role"`
	Status               StaffStatus `json:"status"`
	ExpectedHoursPerWeek float64     `json:"expected_hours_per_week"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}
