package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/rollup"
)

type ContractService struct {
	contracts    ContractStore
	deliverables DeliverableStore
	rollups      RollupStore
	now          Clock
}

func NewContractService(contracts ContractStore, deliverables DeliverableStore, rollups RollupStore, now Clock) *ContractService {
	return &ContractService{contracts: contracts, deliverables: deliverables, rollups: rollups, now: now}
}

type ContractWithRollup struct {
	model.Contract
	Rollup rollup.ContractRollup `json:"rollup"`
}

type ContractListInput struct {
	Filter repository.ContractFilter
	Health []HealthFilter
}

// List returns contracts with their rollups. Health-flag filters apply
// after rollups are computed for exactly the rows the base filter returned.
func (s *ContractService) List(ctx context.Context, input ContractListInput) ([]ContractWithRollup, error) {
	contracts, err := s.contracts.List(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(contracts))
	for i, c := range contracts {
		ids[i] = c.ID
	}
	deliverablesByContract, err := s.deliverables.ListByContracts(ctx, ids)
	if err != nil {
		return nil, err
	}

	var allDeliverables []model.Deliverable
	contractsByID := make(map[uuid.UUID]model.Contract, len(contracts))
	for _, c := range contracts {
		contractsByID[c.ID] = c
		allDeliverables = append(allDeliverables, deliverablesByContract[c.ID]...)
	}
	inputs, err := rollupInputs(ctx, s.rollups, allDeliverables, contractsByID, false)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := make([]ContractWithRollup, 0, len(contracts))
	for _, c := range contracts {
		children := make([]rollup.DeliverableRollup, 0, len(deliverablesByContract[c.ID]))
		for _, d := range deliverablesByContract[c.ID] {
			children = append(children, rollup.ComputeDeliverable(inputs[d.ID], today))
		}
		r := rollup.ComputeContract(c, children, today)
		if !matchesHealthFilters(r.HealthFlags(), input.Health) {
			continue
		}
		result = append(result, ContractWithRollup{Contract: c, Rollup: r})
	}
	return result, nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*ContractWithRollup, error) {
	contract, err := s.contracts.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	deliverables, err := s.deliverables.ListByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := computeContractRollup(ctx, s.rollups, *contract, deliverables, s.now())
	if err != nil {
		return nil, err
	}
	return &ContractWithRollup{Contract: *contract, Rollup: r}, nil
}

type ContractInput struct {
	Contract  model.Contract
	Principal model.Principal
}

func (s *ContractService) Create(ctx context.Context, input ContractInput) (*model.Contract, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	c := input.Contract
	c.StartDate = dateOnly(c.StartDate)
	c.EndDate = dateOnly(c.EndDate)
	if c.Status == "" {
		c.Status = model.ContractStatusDraft
	}
	return s.contracts.Create(ctx, c)
}

func (s *ContractService) Update(ctx context.Context, input ContractInput) (*model.Contract, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	c := input.Contract
	c.StartDate = dateOnly(c.StartDate)
	c.EndDate = dateOnly(c.EndDate)

	saved, err := s.contracts.Update(ctx, c)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

// Delete refuses to remove a contract that still owns deliverables.
func (s *ContractService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}

	count, err := s.contracts.CountDeliverables(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: contract has %d deliverables", ErrConflict, count)
	}

	if err := s.contracts.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateContract(c model.Contract) error {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", ErrInvalidInput)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("%w: end_date must not precede start_date", ErrInvalidInput)
	}
	if c.BudgetHours < 0 {
		return fmt.Errorf("%w: budget_hours must be non-negative", ErrInvalidInput)
	}
	switch c.Status {
	case "", model.ContractStatusDraft, model.ContractStatusActive, model.ContractStatusClosed:
	default:
		return fmt.Errorf("%w: unknown contract status %q", ErrInvalidInput, c.Status)
	}
	return nil
}
