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

type DeliverableService struct {
	deliverables DeliverableStore
	contracts    ContractStore
	rollups      RollupStore
	now          Clock
}

func NewDeliverableService(deliverables DeliverableStore, contracts ContractStore, rollups RollupStore, now Clock) *DeliverableService {
	return &DeliverableService{deliverables: deliverables, contracts: contracts, rollups: rollups, now: now}
}

type DeliverableWithRollup struct {
	model.Deliverable
	Rollup rollup.DeliverableRollup `json:"rollup"`
}

type DeliverableListInput struct {
	Filter repository.DeliverableFilter
	Health []HealthFilter
}

func (s *DeliverableService) List(ctx context.Context, input DeliverableListInput) ([]DeliverableWithRollup, error) {
	deliverables, err := s.deliverables.List(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	contractIDs := make([]uuid.UUID, 0, len(deliverables))
	seen := make(map[uuid.UUID]struct{}, len(deliverables))
	for _, d := range deliverables {
		if _, ok := seen[d.ContractID]; ok {
			continue
		}
		seen[d.ContractID] = struct{}{}
		contractIDs = append(contractIDs, d.ContractID)
	}
	contracts, err := s.contracts.ListByIDs(ctx, contractIDs)
	if err != nil {
		return nil, err
	}

	inputs, err := rollupInputs(ctx, s.rollups, deliverables, contracts, true)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := make([]DeliverableWithRollup, 0, len(deliverables))
	for _, d := range deliverables {
		r := rollup.ComputeDeliverable(inputs[d.ID], today)
		if !matchesHealthFilters(r.HealthFlags(), input.Health) {
			continue
		}
		result = append(result, DeliverableWithRollup{Deliverable: d, Rollup: r})
	}
	return result, nil
}

func (s *DeliverableService) Get(ctx context.Context, id uuid.UUID) (*DeliverableWithRollup, error) {
	deliverable, err := s.deliverables.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contracts, err := s.contracts.ListByIDs(ctx, []uuid.UUID{deliverable.ContractID})
	if err != nil {
		return nil, err
	}
	inputs, err := rollupInputs(ctx, s.rollups, []model.Deliverable{*deliverable}, contracts, true)
	if err != nil {
		return nil, err
	}

	r := rollup.ComputeDeliverable(inputs[deliverable.ID], s.now())
	return &DeliverableWithRollup{Deliverable: *deliverable, Rollup: r}, nil
}

type DeliverableInput struct {
	Deliverable model.Deliverable
	Principal   model.Principal
}

func (s *DeliverableService) Create(ctx context.Context, input DeliverableInput) (*model.Deliverable, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if err := validateDeliverable(input.Deliverable); err != nil {
		return nil, err
	}

	// The parent must exist; FK violations should not be the first report.
	if _, err := s.contracts.Get(ctx, input.Deliverable.ContractID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: contract %s", ErrNotFound, input.Deliverable.ContractID)
		}
		return nil, err
	}

	d := normalizeDeliverable(input.Deliverable)
	if d.Status == "" {
		d.Status = model.DeliverableStatusPlanned
	}
	return s.deliverables.Create(ctx, d)
}

func (s *DeliverableService) Update(ctx context.Context, input DeliverableInput) (*model.Deliverable, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if err := validateDeliverable(input.Deliverable); err != nil {
		return nil, err
	}

	saved, err := s.deliverables.Update(ctx, normalizeDeliverable(input.Deliverable))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *DeliverableService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	if err := s.deliverables.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateDeliverable(d model.Deliverable) error {
	if d.BudgetHours < 0 {
		return fmt.Errorf("%w: budget_hours must be non-negative", ErrInvalidInput)
	}
	if d.StartDate != nil && d.DueDate != nil && d.DueDate.Before(*d.StartDate) {
		return fmt.Errorf("%w: due_date must not precede start_date", ErrInvalidInput)
	}
	switch d.Status {
	case "", model.DeliverableStatusPlanned, model.DeliverableStatusInProgress,
		model.DeliverableStatusComplete, model.DeliverableStatusBlocked:
	default:
		return fmt.Errorf("%w: unknown deliverable status %q", ErrInvalidInput, d.Status)
	}
	return nil
}

func normalizeDeliverable(d model.Deliverable) model.Deliverable {
	if d.StartDate != nil {
		t := dateOnly(*d.StartDate)
		d.StartDate = &t
	}
	if d.DueDate != nil {
		t := dateOnly(*d.DueDate)
		d.DueDate = &t
	}
	return d
}
