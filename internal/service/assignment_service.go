package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

type AssignmentService struct {
	assignments  AssignmentStore
	deliverables DeliverableStore
	staff        StaffStore
}

func NewAssignmentService(assignments AssignmentStore, deliverables DeliverableStore, staff StaffStore) *AssignmentService {
	return &AssignmentService{assignments: assignments, deliverables: deliverables, staff: staff}
}

func (s *AssignmentService) List(ctx context.Context, filter repository.AssignmentFilter) ([]model.Assignment, error) {
	return s.assignments.List(ctx, filter)
}

func (s *AssignmentService) Get(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	assignment, err := s.assignments.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return assignment, nil
}

type AssignmentInput struct {
	Assignment model.Assignment
	Principal  model.Principal
}

func (s *AssignmentService) Create(ctx context.Context, input AssignmentInput) (*model.Assignment, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if input.Assignment.ExpectedHours < 0 {
		return nil, fmt.Errorf("%w: expected_hours must be non-negative", ErrInvalidInput)
	}
	if _, err := s.deliverables.Get(ctx, input.Assignment.DeliverableID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: deliverable %s", ErrNotFound, input.Assignment.DeliverableID)
		}
		return nil, err
	}
	if _, err := s.staff.Get(ctx, input.Assignment.StaffID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: staff %s", ErrNotFound, input.Assignment.StaffID)
		}
		return nil, err
	}

	saved, err := s.assignments.Create(ctx, input.Assignment)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: staff member already assigned to this deliverable", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

func (s *AssignmentService) Update(ctx context.Context, input AssignmentInput) (*model.Assignment, error) {
	if !input.Principal.CanWrite() {
		return nil, ErrPermissionDenied
	}
	if input.Assignment.ExpectedHours < 0 {
		return nil, fmt.Errorf("%w: expected_hours must be non-negative", ErrInvalidInput)
	}

	saved, err := s.assignments.Update(ctx, input.Assignment)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *AssignmentService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	if err := s.assignments.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}
