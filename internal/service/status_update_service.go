package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

type StatusUpdateService struct {
	updates      StatusUpdateStore
	deliverables DeliverableStore
}

func NewStatusUpdateService(updates StatusUpdateStore, deliverables DeliverableStore) *StatusUpdateService {
	return &StatusUpdateService{updates: updates, deliverables: deliverables}
}

func (s *StatusUpdateService) List(ctx context.Context, filter repository.StatusUpdateFilter) ([]model.StatusUpdate, error) {
	return s.updates.List(ctx, filter)
}

func (s *StatusUpdateService) Get(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error) {
	update, err := s.updates.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return update, nil
}

type StatusUpdateInput struct {
	Update    model.StatusUpdate
	Principal model.Principal
}

func (s *StatusUpdateService) Create(ctx context.Context, input StatusUpdateInput) (*model.StatusUpdate, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if err := validateStatusUpdate(input.Update); err != nil {
		return nil, err
	}
	if _, err := s.deliverables.Get(ctx, input.Update.DeliverableID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: deliverable %s", ErrNotFound, input.Update.DeliverableID)
		}
		return nil, err
	}

	u := input.Update
	u.PeriodEnd = dateOnly(u.PeriodEnd)
	staffID := input.Principal.StaffID
	u.CreatedByID = &staffID

	saved, err := s.updates.Create(ctx, u)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a status update for this period already exists", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

func (s *StatusUpdateService) Update(ctx context.Context, input StatusUpdateInput) (*model.StatusUpdate, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if err := validateStatusUpdate(input.Update); err != nil {
		return nil, err
	}

	u := input.Update
	u.PeriodEnd = dateOnly(u.PeriodEnd)
	saved, err := s.updates.Update(ctx, u)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a status update for this period already exists", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

func (s *StatusUpdateService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	if err := s.updates.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateStatusUpdate(u model.StatusUpdate) error {
	if u.PeriodEnd.IsZero() {
		return fmt.Errorf("%w: period_end is required", ErrInvalidInput)
	}
	switch u.Status {
	case model.UpdateStatusOnTrack, model.UpdateStatusAtRisk, model.UpdateStatusOffTrack:
	default:
		return fmt.Errorf("%w: unknown update status %q", ErrInvalidInput, u.Status)
	}
	return nil
}
