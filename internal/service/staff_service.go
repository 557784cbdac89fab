package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

type StaffService struct {
	staff StaffStore
}

func NewStaffService(staff StaffStore) *StaffService {
	return &StaffService{staff: staff}
}

func (s *StaffService) List(ctx context.Context, filter repository.StaffFilter) ([]model.Staff, error) {
	return s.staff.List(ctx, filter)
}

func (s *StaffService) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	member, err := s.staff.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

type StaffInput struct {
	Staff     model.Staff
	Principal model.Principal
}

// Staff records are managed by admins only.
func (s *StaffService) Create(ctx context.Context, input StaffInput) (*model.Staff, error) {
	if !input.Principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if err := validateStaff(input.Staff); err != nil {
		return nil, err
	}

	member := input.Staff
	member.Email = strings.ToLower(strings.TrimSpace(member.Email))
	if member.Role == "" {
		member.Role = model.StaffRoleStaff
	}
	if member.Status == "" {
		member.Status = model.StaffStatusActive
	}

	saved, err := s.staff.Create(ctx, member)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

func (s *StaffService) Update(ctx context.Context, input StaffInput) (*model.Staff, error) {
	if !input.Principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if err := validateStaff(input.Staff); err != nil {
		return nil, err
	}

	member := input.Staff
	member.Email = strings.ToLower(strings.TrimSpace(member.Email))
	saved, err := s.staff.Update(ctx, member)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

func (s *StaffService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := s.staff.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateStaff(s model.Staff) error {
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if s.ExpectedHoursPerWeek < 0 {
		return fmt.Errorf("%w: expected_hours_per_week must be non-negative", ErrInvalidInput)
	}
	switch s.Role {
	case "", model.StaffRoleStaff, model.StaffRoleManager, model.StaffRoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s.Role)
	}
	switch s.Status {
	case "", model.StaffStatusActive, model.StaffStatusInactive:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s.Status)
	}
	return nil
}
