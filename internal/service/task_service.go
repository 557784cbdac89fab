package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

type TaskService struct {
	tasks        TaskStore
	deliverables DeliverableStore
	staff        StaffStore
}

func NewTaskService(tasks TaskStore, deliverables DeliverableStore, staff StaffStore) *TaskService {
	return &TaskService{tasks: tasks, deliverables: deliverables, staff: staff}
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

type TaskInput struct {
	Task      model.Task
	Principal model.Principal
}

// Create adds a task to a deliverable. Staff members may create tasks that
// are unassigned or assigned to themselves; managers and admins may assign
// anyone.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if !input.Principal.CanWrite() {
		if input.Task.AssigneeID != nil && *input.Task.AssigneeID != input.Principal.StaffID {
			return nil, ErrPermissionDenied
		}
	}
	if err := validateTask(input.Task); err != nil {
		return nil, err
	}
	if _, err := s.deliverables.Get(ctx, input.Task.DeliverableID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: deliverable %s", ErrNotFound, input.Task.DeliverableID)
		}
		return nil, err
	}
	if input.Task.AssigneeID != nil {
		if _, err := s.staff.Get(ctx, *input.Task.AssigneeID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: staff %s", ErrNotFound, *input.Task.AssigneeID)
			}
			return nil, err
		}
	}

	t := input.Task
	if t.Status == "" {
		t.Status = model.TaskStatusTodo
	}
	return s.tasks.Create(ctx, t)
}

// Update edits a task. Staff members may only edit tasks assigned to
// themselves and may not reassign them to someone else; dropping the
// assignee is allowed.
func (s *TaskService) Update(ctx context.Context, input TaskInput) (*model.Task, error) {
	if err := validateTask(input.Task); err != nil {
		return nil, err
	}

	existing, err := s.tasks.Get(ctx, input.Task.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !input.Principal.CanWrite() {
		if existing.AssigneeID == nil || *existing.AssigneeID != input.Principal.StaffID {
			return nil, ErrPermissionDenied
		}
		if input.Task.AssigneeID != nil && *input.Task.AssigneeID != input.Principal.StaffID {
			return nil, ErrPermissionDenied
		}
	}
	if input.Task.AssigneeID != nil {
		if _, err := s.staff.Get(ctx, *input.Task.AssigneeID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: staff %s", ErrNotFound, *input.Task.AssigneeID)
			}
			return nil, err
		}
	}

	return s.tasks.Update(ctx, input.Task)
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanWrite() {
		if existing.AssigneeID == nil || *existing.AssigneeID != principal.StaffID {
			return ErrPermissionDenied
		}
	}
	return s.tasks.Delete(ctx, id)
}

func validateTask(t model.Task) error {
	if t.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if t.BudgetHours < 0 {
		return fmt.Errorf("%w: budget_hours must be non-negative", ErrInvalidInput)
	}
	switch t.Status {
	case "", model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusDone, model.TaskStatusBlocked:
	default:
		return fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, t.Status)
	}
	return nil
}
