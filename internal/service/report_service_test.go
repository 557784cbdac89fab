package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
)

func TestWeekEnding(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"sunday maps to itself", date(2026, 3, 8), date(2026, 3, 8)},
		{"monday maps forward", date(2026, 3, 2), date(2026, 3, 8)},
		{"saturday maps forward", date(2026, 3, 7), date(2026, 3, 8)},
		{"time of day is ignored", time.Date(2026, 3, 2, 23, 15, 0, 0, time.UTC), date(2026, 3, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekEnding(tt.in); !got.Equal(tt.want) {
				t.Errorf("weekEnding(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBurnBuckets(t *testing.T) {
	// Two full Monday-to-Sunday weeks.
	start := date(2026, 3, 2)
	end := date(2026, 3, 15)
	entries := []model.TimeEntry{
		{EntryDate: date(2026, 3, 3), Hours: 5},
		{EntryDate: date(2026, 3, 10), Hours: 7},
	}

	buckets := burnBuckets(start, end, 20, entries)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}

	first, second := buckets[0], buckets[1]
	if !first.WeekEnding.Equal(date(2026, 3, 8)) || !second.WeekEnding.Equal(date(2026, 3, 15)) {
		t.Fatalf("week endings = %v, %v", first.WeekEnding, second.WeekEnding)
	}
	if first.ExpectedHours != 10 || second.ExpectedHours != 10 {
		t.Errorf("expected hours spread = %v, %v, want 10 each", first.ExpectedHours, second.ExpectedHours)
	}
	if first.ActualHours != 5 || second.ActualHours != 7 {
		t.Errorf("actual hours = %v, %v, want 5 and 7", first.ActualHours, second.ActualHours)
	}
	if second.CumulativeExpected != 20 || second.CumulativeActual != 12 {
		t.Errorf("cumulative = %v/%v, want 20/12", second.CumulativeExpected, second.CumulativeActual)
	}
}

func TestBurnBucketsWindowShorterThanAWeek(t *testing.T) {
	buckets := burnBuckets(date(2026, 3, 2), date(2026, 3, 4), 6, nil)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if buckets[0].ExpectedHours != 6 {
		t.Errorf("expected hours = %v, want all 6 in the single bucket", buckets[0].ExpectedHours)
	}
}

func TestStaffTimeGroupsEntriesByWeek(t *testing.T) {
	staffID := uuid.New()
	staff := &mockStaffStore{
		GetFn: func(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
			return &model.Staff{ID: staffID, ExpectedHoursPerWeek: 10}, nil
		},
	}
	entries := &mockTimeEntryStore{
		ListFn: func(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntry, error) {
			if filter.StaffID == nil || *filter.StaffID != staffID {
				t.Fatal("entries should be filtered by staff id")
			}
			return []model.TimeEntry{
				{EntryDate: date(2026, 3, 2), Hours: 4},
				{EntryDate: date(2026, 3, 3), Hours: 5},
				{EntryDate: date(2026, 3, 9), Hours: 12},
			}, nil
		},
	}

	svc := NewReportService(&mockContractStore{}, &mockDeliverableStore{}, &mockRollupStore{},
		entries, &mockStatusUpdateStore{}, staff, fixedClock(2026, time.March, 20))

	report, err := svc.StaffTime(context.Background(), staffID, nil, nil)
	if err != nil {
		t.Fatalf("StaffTime returned error: %v", err)
	}
	if report.TotalHours != 21 {
		t.Errorf("total hours = %v, want 21", report.TotalHours)
	}
	if len(report.Weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(report.Weeks))
	}
	first, second := report.Weeks[0], report.Weeks[1]
	if !first.WeekEnding.Equal(date(2026, 3, 8)) || first.Hours != 9 || first.VarianceHours != -1 {
		t.Errorf("first week = %+v, want 9h ending 2026-03-08 with variance -1", first)
	}
	if !second.WeekEnding.Equal(date(2026, 3, 15)) || second.Hours != 12 || second.VarianceHours != 2 {
		t.Errorf("second week = %+v, want 12h ending 2026-03-15 with variance 2", second)
	}
}

func TestContractBurnReport(t *testing.T) {
	contractID := uuid.New()
	deliverableID := uuid.New()

	contracts := &mockContractStore{
		GetFn: func(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
			return &model.Contract{
				ID:          contractID,
				StartDate:   date(2026, 3, 2),
				EndDate:     date(2026, 3, 15),
				BudgetHours: 50,
			}, nil
		},
	}
	deliverables := &mockDeliverableStore{
		ListByContractFn: func(ctx context.Context, id uuid.UUID) ([]model.Deliverable, error) {
			return []model.Deliverable{{ID: deliverableID, ContractID: contractID}}, nil
		},
	}
	rollups := &mockRollupStore{
		AssignmentsFn: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]model.Assignment, error) {
			return map[uuid.UUID][]model.Assignment{
				deliverableID: {{DeliverableID: deliverableID, ExpectedHours: 20, IsLead: true}},
			}, nil
		},
		TimeEntriesFn: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]model.TimeEntry, error) {
			return map[uuid.UUID][]model.TimeEntry{
				deliverableID: {{EntryDate: date(2026, 3, 3), Hours: 8}},
			}, nil
		},
	}
	entries := &mockTimeEntryStore{
		ListFn: func(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntry, error) {
			return []model.TimeEntry{{EntryDate: date(2026, 3, 3), Hours: 8}}, nil
		},
	}

	svc := NewReportService(contracts, deliverables, rollups, entries,
		&mockStatusUpdateStore{}, &mockStaffStore{}, fixedClock(2026, time.March, 10))

	report, err := svc.ContractBurn(context.Background(), contractID)
	if err != nil {
		t.Fatalf("ContractBurn returned error: %v", err)
	}
	if report.ExpectedHoursTotal != 20 || report.ActualHoursTotal != 8 {
		t.Errorf("totals = %v/%v, want 20/8", report.ExpectedHoursTotal, report.ActualHoursTotal)
	}
	if report.RemainingBudgetHours != 42 {
		t.Errorf("remaining budget = %v, want 42", report.RemainingBudgetHours)
	}
	if len(report.Buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(report.Buckets))
	}
	if report.Buckets[0].ActualHours != 8 || report.Buckets[1].ActualHours != 0 {
		t.Errorf("bucket actuals = %v, %v, want 8 and 0",
			report.Buckets[0].ActualHours, report.Buckets[1].ActualHours)
	}
}
