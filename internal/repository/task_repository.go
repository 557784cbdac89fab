package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type TaskFilter struct {
	ContractID    *uuid.UUID
	DeliverableID *uuid.UUID
	AssigneeID    *uuid.UUID
	Status        string
	Unassigned    *bool
	DueDateFrom   *time.Time
	DueDateTo     *time.Time
	Query         string
	OrderBy       string
	OrderDir      string
}

var taskOrderColumns = map[string]string{
	"id": "t.id",
}

const taskColumns = `
	t.id, t.deliverable_id, t.assignee_id, t.title, t.budget_hours, t.status, t.created_at, t.updated_at
`

// List filters tasks; due-date bounds apply to the owning deliverable's
// due date, matching how backlog views slice work by delivery window.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN deliverables d ON d.id = t.deliverable_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ContractID != nil {
		query += " AND d.contract_id = ?"
		args = append(args, *filter.ContractID)
	}
	if filter.DeliverableID != nil {
		query += " AND t.deliverable_id = ?"
		args = append(args, *filter.DeliverableID)
	}
	if filter.AssigneeID != nil {
		query += " AND t.assignee_id = ?"
		args = append(args, *filter.AssigneeID)
	}
	if filter.Status != "" {
		query += " AND t.status = ?"
		args = append(args, filter.Status)
	}
	if filter.Unassigned != nil {
		if *filter.Unassigned {
			query += " AND t.assignee_id IS NULL"
		} else {
			query += " AND t.assignee_id IS NOT NULL"
		}
	}
	if filter.DueDateFrom != nil {
		query += " AND d.due_date >= ?"
		args = append(args, *filter.DueDateFrom)
	}
	if filter.DueDateTo != nil {
		query += " AND d.due_date <= ?"
		args = append(args, *filter.DueDateTo)
	}
	if filter.Query != "" {
		query += " AND t.title ILIKE ?"
		args = append(args, "%"+filter.Query+"%")
	}

	query += orderClause(taskOrderColumns, filter.OrderBy, filter.OrderDir, "t.created_at DESC")

	var tasks []model.Task
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+taskColumns+`
		FROM tasks t
		WHERE t.id = ?
		LIMIT 1
	`, id).Scan(&task).Error
	if err != nil {
		return nil, err
	}
	if task.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, t model.Task) (*model.Task, error) {
	var saved model.Task
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO tasks (deliverable_id, assignee_id, title, budget_hours, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, deliverable_id, assignee_id, title, budget_hours, status, created_at, updated_at
	`, t.DeliverableID, t.AssigneeID, t.Title, t.BudgetHours, t.Status).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TaskRepository) Update(ctx context.Context, t model.Task) (*model.Task, error) {
	var saved model.Task
	err := r.db.WithContext(ctx).Raw(`
		UPDATE tasks
		SET assignee_id = ?, title = ?, budget_hours = ?, status = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING id, deliverable_id, assignee_id, title, budget_hours, status, created_at, updated_at
	`, t.AssigneeID, t.Title, t.BudgetHours, t.Status, t.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
