package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

// Hand-rolled store mocks. Unset funcs behave like an empty database.

type mockContractStore struct {
	ListFn              func(ctx context.Context, filter repository.ContractFilter) ([]model.Contract, error)
	ListByIDsFn         func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Contract, error)
	GetFn               func(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	CreateFn            func(ctx context.Context, c model.Contract) (*model.Contract, error)
	UpdateFn            func(ctx context.Context, c model.Contract) (*model.Contract, error)
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
	CountDeliverablesFn func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockContractStore) List(ctx context.Context, filter repository.ContractFilter) ([]model.Contract, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, filter)
}

func (m *mockContractStore) ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Contract, error) {
	if m.ListByIDsFn == nil {
		return map[uuid.UUID]model.Contract{}, nil
	}
	return m.ListByIDsFn(ctx, ids)
}

func (m *mockContractStore) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	if m.GetFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.GetFn(ctx, id)
}

func (m *mockContractStore) Create(ctx context.Context, c model.Contract) (*model.Contract, error) {
	if m.CreateFn == nil {
		return &c, nil
	}
	return m.CreateFn(ctx, c)
}

func (m *mockContractStore) Update(ctx context.Context, c model.Contract) (*model.Contract, error) {
	if m.UpdateFn == nil {
		return &c, nil
	}
	return m.UpdateFn(ctx, c)
}

func (m *mockContractStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

func (m *mockContractStore) CountDeliverables(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountDeliverablesFn == nil {
		return 0, nil
	}
	return m.CountDeliverablesFn(ctx, id)
}

type mockDeliverableStore struct {
	ListFn            func(ctx context.Context, filter repository.DeliverableFilter) ([]model.Deliverable, error)
	ListByContractFn  func(ctx context.Context, contractID uuid.UUID) ([]model.Deliverable, error)
	ListByContractsFn func(ctx context.Context, contractIDs []uuid.UUID) (map[uuid.UUID][]model.Deliverable, error)
	GetFn             func(ctx context.Context, id uuid.UUID) (*model.Deliverable, error)
	CreateFn          func(ctx context.Context, d model.Deliverable) (*model.Deliverable, error)
	UpdateFn          func(ctx context.Context, d model.Deliverable) (*model.Deliverable, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDeliverableStore) List(ctx context.Context, filter repository.DeliverableFilter) ([]model.Deliverable, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, filter)
}

func (m *mockDeliverableStore) ListByContract(ctx context.Context, contractID uuid.UUID) ([]model.Deliverable, error) {
	if m.ListByContractFn == nil {
		return nil, nil
	}
	return m.ListByContractFn(ctx, contractID)
}

func (m *mockDeliverableStore) ListByContracts(ctx context.Context, contractIDs []uuid.UUID) (map[uuid.UUID][]model.Deliverable, error) {
	if m.ListByContractsFn == nil {
		return map[uuid.UUID][]model.Deliverable{}, nil
	}
	return m.ListByContractsFn(ctx, contractIDs)
}

func (m *mockDeliverableStore) Get(ctx context.Context, id uuid.UUID) (*model.Deliverable, error) {
	if m.GetFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.GetFn(ctx, id)
}

func (m *mockDeliverableStore) Create(ctx context.Context, d model.Deliverable) (*model.Deliverable, error) {
	if m.CreateFn == nil {
		return &d, nil
	}
	return m.CreateFn(ctx, d)
}

func (m *mockDeliverableStore) Update(ctx context.Context, d model.Deliverable) (*model.Deliverable, error) {
	if m.UpdateFn == nil {
		return &d, nil
	}
	return m.UpdateFn(ctx, d)
}

func (m *mockDeliverableStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockRollupStore struct {
	AssignmentsFn   func(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.Assignment, error)
	TimeEntriesFn   func(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.TimeEntry, error)
	StatusUpdatesFn func(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.StatusUpdate, error)
}

func (m *mockRollupStore) AssignmentsByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.Assignment, error) {
	if m.AssignmentsFn == nil {
		return map[uuid.UUID][]model.Assignment{}, nil
	}
	return m.AssignmentsFn(ctx, deliverableIDs)
}

func (m *mockRollupStore) TimeEntriesByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.TimeEntry, error) {
	if m.TimeEntriesFn == nil {
		return map[uuid.UUID][]model.TimeEntry{}, nil
	}
	return m.TimeEntriesFn(ctx, deliverableIDs)
}

func (m *mockRollupStore) StatusUpdatesByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.StatusUpdate, error) {
	if m.StatusUpdatesFn == nil {
		return map[uuid.UUID][]model.StatusUpdate{}, nil
	}
	return m.StatusUpdatesFn(ctx, deliverableIDs)
}

type mockTimeEntryStore struct {
	ListFn         func(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntry, error)
	GetFn          func(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error)
	FindExternalFn func(ctx context.Context, source, externalID string) (*model.TimeEntry, error)
	CreateFn       func(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error)
	UpdateFn       func(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error)
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTimeEntryStore) List(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntry, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, filter)
}

func (m *mockTimeEntryStore) Get(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error) {
	if m.GetFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.GetFn(ctx, id)
}

func (m *mockTimeEntryStore) FindExternal(ctx context.Context, source, externalID string) (*model.TimeEntry, error) {
	if m.FindExternalFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.FindExternalFn(ctx, source, externalID)
}

func (m *mockTimeEntryStore) Create(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error) {
	if m.CreateFn == nil {
		return &e, nil
	}
	return m.CreateFn(ctx, e)
}

func (m *mockTimeEntryStore) Update(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error) {
	if m.UpdateFn == nil {
		return &e, nil
	}
	return m.UpdateFn(ctx, e)
}

func (m *mockTimeEntryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockStatusUpdateStore struct {
	ListFn   func(ctx context.Context, filter repository.StatusUpdateFilter) ([]model.StatusUpdate, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error)
	CreateFn func(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error)
	UpdateFn func(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStatusUpdateStore) List(ctx context.Context, filter repository.StatusUpdateFilter) ([]model.StatusUpdate, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, filter)
}

func (m *mockStatusUpdateStore) Get(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error) {
	if m.GetFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.GetFn(ctx, id)
}

func (m *mockStatusUpdateStore) Create(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error) {
	if m.CreateFn == nil {
		return &u, nil
	}
	return m.CreateFn(ctx, u)
}

func (m *mockStatusUpdateStore) Update(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error) {
	if m.UpdateFn == nil {
		return &u, nil
	}
	return m.UpdateFn(ctx, u)
}

func (m *mockStatusUpdateStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockTaskStore struct {
	ListFn   func(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*model.Task, error)
	CreateFn func(ctx context.Context, t model.Task) (*model.Task, error)
	UpdateFn func(ctx context.Context, t model.Task) (*model.Task, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTaskStore) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, filter)
}

func (m *mockTaskStore) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	if m.GetFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.GetFn(ctx, id)
}

func (m *mockTaskStore) Create(ctx context.Context, t model.Task) (*model.Task, error) {
	if m.CreateFn == nil {
		return &t, nil
	}
	return m.CreateFn(ctx, t)
}

func (m *mockTaskStore) Update(ctx context.Context, t model.Task) (*model.Task, error) {
	if m.UpdateFn == nil {
		return &t, nil
	}
	return m.UpdateFn(ctx, t)
}

func (m *mockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockStaffStore struct {
	ListFn   func(ctx context.Context, filter repository.StaffFilter) ([]model.Staff, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*model.Staff, error)
	CreateFn func(ctx context.Context, s model.Staff) (*model.Staff, error)
	UpdateFn func(ctx context.Context, s model.Staff) (*model.Staff, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStaffStore) List(ctx context.Context, filter repository.StaffFilter) ([]model.Staff, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, filter)
}

func (m *mockStaffStore) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	if m.GetFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.GetFn(ctx, id)
}

func (m *mockStaffStore) Create(ctx context.Context, s model.Staff) (*model.Staff, error) {
	if m.CreateFn == nil {
		return &s, nil
	}
	return m.CreateFn(ctx, s)
}

func (m *mockStaffStore) Update(ctx context.Context, s model.Staff) (*model.Staff, error) {
	if m.UpdateFn == nil {
		return &s, nil
	}
	return m.UpdateFn(ctx, s)
}

func (m *mockStaffStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}
