package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

// Store interfaces consumed by the services. The repository package
// implements all of them; tests substitute mocks.

type ContractStore interface {
	List(ctx context.Context, filter repository.ContractFilter) ([]model.Contract, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Contract, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	Create(ctx context.Context, c model.Contract) (*model.Contract, error)
	Update(ctx context.Context, c model.Contract) (*model.Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountDeliverables(ctx context.Context, id uuid.UUID) (int64, error)
}

type DeliverableStore interface {
	List(ctx context.Context, filter repository.DeliverableFilter) ([]model.Deliverable, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]model.Deliverable, error)
	ListByContracts(ctx context.Context, contractIDs []uuid.UUID) (map[uuid.UUID][]model.Deliverable, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Deliverable, error)
	Create(ctx context.Context, d model.Deliverable) (*model.Deliverable, error)
	Update(ctx context.Context, d model.Deliverable) (*model.Deliverable, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RollupStore interface {
	AssignmentsByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.Assignment, error)
	TimeEntriesByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.TimeEntry, error)
	StatusUpdatesByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.StatusUpdate, error)
}

type AssignmentStore interface {
	List(ctx context.Context, filter repository.AssignmentFilter) ([]model.Assignment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Assignment, error)
	Create(ctx context.Context, a model.Assignment) (*model.Assignment, error)
	Update(ctx context.Context, a model.Assignment) (*model.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimeEntryStore interface {
	List(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error)
	FindExternal(ctx context.Context, source, externalID string) (*model.TimeEntry, error)
	Create(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error)
	Update(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatusUpdateStore interface {
	List(ctx context.Context, filter repository.StatusUpdateFilter) ([]model.StatusUpdate, error)
	Get(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error)
	Create(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error)
	Update(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskStore interface {
	List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, t model.Task) (*model.Task, error)
	Update(ctx context.Context, t model.Task) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StaffStore interface {
	List(ctx context.Context, filter repository.StaffFilter) ([]model.Staff, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
	Create(ctx context.Context, s model.Staff) (*model.Staff, error)
	Update(ctx context.Context, s model.Staff) (*model.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// dateOnly truncates to a calendar day; rollup arithmetic works in whole
// days in the deployment's reference timezone.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
