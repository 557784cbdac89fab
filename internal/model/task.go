package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// Task is a unit of work inside a deliverable. Assignee is optional; an
// unassigned task sits in the backlog until someone picks it up.
type Task struct {
	ID            uuid.UUID  `json:"id"`
	DeliverableID uuid.UUID  `json:"deliverable_id"`
	AssigneeID    *uuid.UUID `json:"assignee_id"`
	Title         string     `json:"title"`
	BudgetHours   float64    `json:"budget_hours"`
	Status        TaskStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
