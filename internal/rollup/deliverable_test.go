package rollup

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/model"
)

func testContract() model.Contract {
	return model.Contract{
		ID:          uuid.New(),
		StartDate:   date(2024, 1, 1),
		EndDate:     date(2024, 3, 31),
		BudgetHours: 200,
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestComputeDeliverableEmpty(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New()},
		Contract:    testContract(),
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))

	if r.ExpectedHoursTotal != 0 || r.ActualHoursTotal != 0 {
		t.Errorf("totals = %v/%v, want 0/0", r.ExpectedHoursTotal, r.ActualHoursTotal)
	}
	if r.IsMissingEstimate {
		t.Error("is_missing_estimate should be false with zero assignments")
	}
	if !r.IsMissingLead {
		t.Error("is_missing_lead should be true with zero assignments")
	}
	if r.LatestStatusUpdate != nil {
		t.Error("latest_status_update should be nil")
	}
}

func TestComputeDeliverableRatesAndVariance(t *testing.T) {
	d := model.Deliverable{
		ID:        uuid.New(),
		StartDate: datePtr(2024, 1, 1),
		DueDate:   datePtr(2024, 1, 28), // 4 planned weeks
	}
	in := DeliverableInput{
		Deliverable: d,
		Contract:    testContract(),
		Assignments: []model.Assignment{
			{ExpectedHours: 50, IsLead: true},
			{ExpectedHours: 30},
		},
		TimeEntries: []model.TimeEntry{
			{Hours: 20.5},
			{Hours: 25},
		},
	}
	// 2024-01-10 is in the second week of the range.
	r := ComputeDeliverable(in, date(2024, 1, 10))

	if r.ExpectedHoursTotal != 80 {
		t.Errorf("expected_hours_total = %v, want 80", r.ExpectedHoursTotal)
	}
	if r.ActualHoursTotal != 45.5 {
		t.Errorf("actual_hours_total = %v, want 45.5", r.ActualHoursTotal)
	}
	if r.PlannedWeeks == nil || *r.PlannedWeeks != 4 {
		t.Fatalf("planned_weeks = %v, want 4", r.PlannedWeeks)
	}
	if r.ElapsedWeeks == nil || *r.ElapsedWeeks != 2 {
		t.Fatalf("elapsed_weeks = %v, want 2", r.ElapsedWeeks)
	}
	if *r.ExpectedHoursPerWeek != 20 {
		t.Errorf("expected_hours_per_week = %v, want 20", *r.ExpectedHoursPerWeek)
	}
	if *r.ActualHoursPerWeek != 22.75 {
		t.Errorf("actual_hours_per_week = %v, want 22.75", *r.ActualHoursPerWeek)
	}
	if r.VarianceHours != -34.5 {
		t.Errorf("variance_hours = %v, want -34.5", r.VarianceHours)
	}
	if r.IsOverExpected {
		t.Error("is_over_expected should be false at 45.5 of 80")
	}
	if r.IsMissingLead {
		t.Error("is_missing_lead should be false, a lead exists")
	}
}

func TestComputeDeliverableFlagBoundaries(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New()},
		Contract:    testContract(),
		Assignments: []model.Assignment{{ExpectedHours: 40}},
		TimeEntries: []model.TimeEntry{{Hours: 40}},
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))
	if r.IsOverExpected {
		t.Error("actual == expected must not flag over_expected (strict inequality)")
	}

	in.TimeEntries = append(in.TimeEntries, model.TimeEntry{Hours: 0.25})
	r = ComputeDeliverable(in, date(2024, 2, 1))
	if !r.IsOverExpected {
		t.Error("actual > expected must flag over_expected")
	}
}

func TestComputeDeliverableBudgetMetrics(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New(), BudgetHours: 100},
		Contract:    testContract(),
		Assignments: []model.Assignment{{ExpectedHours: 60, IsLead: true}, {ExpectedHours: 30}},
		TimeEntries: []model.TimeEntry{{Hours: 45}, {Hours: 25}},
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))

	if r.RemainingBudgetHours != 10 {
		t.Errorf("remaining_budget_hours = %v, want 10 (100 budget - 90 assigned)", r.RemainingBudgetHours)
	}
	if r.UnspentBudgetHours != 30 {
		t.Errorf("unspent_budget_hours = %v, want 30 (100 budget - 70 spent)", r.UnspentBudgetHours)
	}
	if r.IsOverBudget {
		t.Error("is_over_budget should be false at 70 of 100")
	}
	if r.IsOverassigned {
		t.Error("is_overassigned should be false at 90 of 100")
	}
}

func TestComputeDeliverableBudgetFlagBoundaries(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New(), BudgetHours: 50},
		Contract:    testContract(),
		Assignments: []model.Assignment{{ExpectedHours: 50, IsLead: true}},
		TimeEntries: []model.TimeEntry{{Hours: 50}},
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))
	if r.IsOverBudget {
		t.Error("actual == budget must not flag over_budget (strict inequality)")
	}
	if r.IsOverassigned {
		t.Error("expected == budget must not flag overassigned (strict inequality)")
	}

	in.Assignments = append(in.Assignments, model.Assignment{ExpectedHours: 0.5})
	in.TimeEntries = append(in.TimeEntries, model.TimeEntry{Hours: 0.5})
	r = ComputeDeliverable(in, date(2024, 2, 1))
	if !r.IsOverBudget {
		t.Error("actual > budget must flag over_budget")
	}
	if !r.IsOverassigned {
		t.Error("expected > budget must flag overassigned")
	}
}

func TestComputeDeliverableMissingEstimate(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New()},
		Contract:    testContract(),
		Assignments: []model.Assignment{{ExpectedHours: 0, IsLead: true}},
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))
	if !r.IsMissingEstimate {
		t.Error("assignments with zero expected hours must flag missing_estimate")
	}
}

func TestEffectiveRangeFallsBackToContract(t *testing.T) {
	c := testContract() // 2024-01-01..2024-03-31, 13 weeks
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New(), StartDate: datePtr(2024, 2, 1)}, // due date missing
		Contract:    c,
	}
	r := ComputeDeliverable(in, date(2024, 1, 20))
	if r.PlannedWeeks == nil || *r.PlannedWeeks != 13 {
		t.Fatalf("planned_weeks = %v, want 13 from contract range", r.PlannedWeeks)
	}
}

func TestNoUsableDateRangeYieldsNilWeeks(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New()},
		Contract:    model.Contract{ID: uuid.New()}, // zero dates
		Assignments: []model.Assignment{{ExpectedHours: 10}},
		TimeEntries: []model.TimeEntry{{Hours: 4}},
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))
	if r.PlannedWeeks != nil || r.ElapsedWeeks != nil {
		t.Error("week counts should be nil without any usable date range")
	}
	if r.ExpectedHoursPerWeek != nil || r.ActualHoursPerWeek != nil {
		t.Error("per-week rates should be nil without any usable date range")
	}
	if r.ExpectedHoursTotal != 10 || r.ActualHoursTotal != 4 {
		t.Error("hour totals must still be computed without a date range")
	}
}

func TestLatestStatusUpdateSelection(t *testing.T) {
	d := uuid.New()
	older := model.StatusUpdate{ID: uuid.New(), DeliverableID: d, PeriodEnd: date(2024, 1, 7), CreatedAt: date(2024, 1, 8)}
	newest := model.StatusUpdate{ID: uuid.New(), DeliverableID: d, PeriodEnd: date(2024, 1, 21), CreatedAt: date(2024, 1, 22)}
	tied := model.StatusUpdate{ID: uuid.New(), DeliverableID: d, PeriodEnd: date(2024, 1, 21), CreatedAt: date(2024, 1, 23)}

	in := DeliverableInput{
		Deliverable:   model.Deliverable{ID: d},
		Contract:      testContract(),
		StatusUpdates: []model.StatusUpdate{older, newest, tied},
	}
	r := ComputeDeliverable(in, date(2024, 2, 1))
	if r.LatestStatusUpdate == nil {
		t.Fatal("latest_status_update is nil")
	}
	if r.LatestStatusUpdate.ID != tied.ID {
		t.Errorf("latest = %s, want the tie broken by created_at (%s)", r.LatestStatusUpdate.ID, tied.ID)
	}
}

func TestComputeDeliverableIsDeterministic(t *testing.T) {
	in := DeliverableInput{
		Deliverable: model.Deliverable{ID: uuid.New(), StartDate: datePtr(2024, 1, 1), DueDate: datePtr(2024, 2, 15)},
		Contract:    testContract(),
		Assignments: []model.Assignment{{ExpectedHours: 12, IsLead: true}, {ExpectedHours: 7.5}},
		TimeEntries: []model.TimeEntry{{Hours: 3.25}, {Hours: 9}},
	}
	today := date(2024, 1, 30)
	first := ComputeDeliverable(in, today)
	second := ComputeDeliverable(in, today)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different rollups:\n%+v\n%+v", first, second)
	}
}
