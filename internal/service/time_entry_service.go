package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

type TimeEntryService struct {
	entries      TimeEntryStore
	deliverables DeliverableStore
}

func NewTimeEntryService(entries TimeEntryStore, deliverables DeliverableStore) *TimeEntryService {
	return &TimeEntryService{entries: entries, deliverables: deliverables}
}

func (s *TimeEntryService) List(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntry, error) {
	return s.entries.List(ctx, filter)
}

func (s *TimeEntryService) Get(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error) {
	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

type TimeEntryInput struct {
	Entry     model.TimeEntry
	Principal model.Principal
}

// Create records worked hours. Staff members may only log time as
// themselves; managers and admins may log for anyone. When the idempotency
// pair is set and already known, the existing entry is returned unchanged.
func (s *TimeEntryService) Create(ctx context.Context, input TimeEntryInput) (*model.TimeEntry, error) {
	if err := s.authorize(input); err != nil {
		return nil, err
	}
	if err := validateTimeEntry(input.Entry); err != nil {
		return nil, err
	}

	if input.Entry.ExternalSource != "" {
		existing, err := s.entries.FindExternal(ctx, input.Entry.ExternalSource, input.Entry.ExternalID)
		if err == nil {
			return existing, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	if _, err := s.deliverables.Get(ctx, input.Entry.DeliverableID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: deliverable %s", ErrNotFound, input.Entry.DeliverableID)
		}
		return nil, err
	}

	e := input.Entry
	e.EntryDate = dateOnly(e.EntryDate)
	saved, err := s.entries.Create(ctx, e)
	if err != nil {
		if isUniqueViolation(err) {
			// Concurrent integration re-send lost the insert race.
			return s.entries.FindExternal(ctx, e.ExternalSource, e.ExternalID)
		}
		return nil, err
	}
	return saved, nil
}

func (s *TimeEntryService) Update(ctx context.Context, input TimeEntryInput) (*model.TimeEntry, error) {
	if err := validateTimeEntry(input.Entry); err != nil {
		return nil, err
	}

	existing, err := s.entries.Get(ctx, input.Entry.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !input.Principal.CanWrite() && existing.StaffID != input.Principal.StaffID {
		return nil, ErrPermissionDenied
	}

	e := input.Entry
	e.EntryDate = dateOnly(e.EntryDate)
	return s.entries.Update(ctx, e)
}

func (s *TimeEntryService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	existing, err := s.entries.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanWrite() && existing.StaffID != principal.StaffID {
		return ErrPermissionDenied
	}
	return s.entries.Delete(ctx, id)
}

func (s *TimeEntryService) authorize(input TimeEntryInput) error {
	if input.Principal.CanWrite() {
		return nil
	}
	if input.Entry.StaffID == input.Principal.StaffID {
		return nil
	}
	return ErrPermissionDenied
}

func validateTimeEntry(e model.TimeEntry) error {
	if e.Hours <= 0 {
		return fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}
	if e.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry_date is required", ErrInvalidInput)
	}
	if e.ExternalSource == "" && e.ExternalID != "" {
		return fmt.Errorf("%w: external_id requires external_source", ErrInvalidInput)
	}
	return nil
}
