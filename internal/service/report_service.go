package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/rollup"
)

type ReportService struct {
	contracts    ContractStore
	deliverables DeliverableStore
	rollups      RollupStore
	entries      TimeEntryStore
	updates      StatusUpdateStore
	staff        StaffStore
	now          Clock
}

func NewReportService(
	contracts ContractStore,
	deliverables DeliverableStore,
	rollups RollupStore,
	entries TimeEntryStore,
	updates StatusUpdateStore,
	staff StaffStore,
	now Clock,
) *ReportService {
	return &ReportService{
		contracts:    contracts,
		deliverables: deliverables,
		rollups:      rollups,
		entries:      entries,
		updates:      updates,
		staff:        staff,
		now:          now,
	}
}

// ContractBurn buckets the contract's window into calendar weeks ending on
// Sunday, spreading expected hours evenly and summing actuals per bucket.
func (s *ReportService) ContractBurn(ctx context.Context, contractID uuid.UUID) (*model.ContractBurnReport, error) {
	contract, err := s.contracts.Get(ctx, contractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	deliverables, err := s.deliverables.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	r, err := computeContractRollup(ctx, s.rollups, *contract, deliverables, s.now())
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, repository.TimeEntryFilter{ContractID: &contractID})
	if err != nil {
		return nil, err
	}
	buckets := burnBuckets(contract.StartDate, contract.EndDate, r.ExpectedHoursTotal, entries)

	return &model.ContractBurnReport{
		ContractID:           contract.ID,
		StartDate:            contract.StartDate,
		EndDate:              contract.EndDate,
		BudgetHours:          contract.BudgetHours,
		ExpectedHoursTotal:   r.ExpectedHoursTotal,
		ActualHoursTotal:     r.ActualHoursTotal,
		RemainingBudgetHours: r.RemainingBudgetHours,
		IsOverBudget:         r.IsOverBudget,
		IsOverExpected:       r.IsOverExpected,
		Buckets:              buckets,
	}, nil
}

// ContractDeliverables is the table-style summary of a contract's children.
func (s *ReportService) ContractDeliverables(ctx context.Context, contractID uuid.UUID) (*model.ContractDeliverablesReport, error) {
	contract, err := s.contracts.Get(ctx, contractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	deliverables, err := s.deliverables.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	inputs, err := rollupInputs(ctx, s.rollups, deliverables,
		map[uuid.UUID]model.Contract{contract.ID: *contract}, true)
	if err != nil {
		return nil, err
	}

	today := s.now()
	rows := make([]model.DeliverableSummaryRow, 0, len(deliverables))
	for _, d := range deliverables {
		rows = append(rows, summaryRow(d, rollup.ComputeDeliverable(inputs[d.ID], today)))
	}
	return &model.ContractDeliverablesReport{ContractID: contract.ID, Deliverables: rows}, nil
}

func (s *ReportService) DeliverableBurn(ctx context.Context, deliverableID uuid.UUID) (*model.DeliverableBurnReport, error) {
	deliverable, err := s.deliverables.Get(ctx, deliverableID)
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
	inputs, err := rollupInputs(ctx, s.rollups, []model.Deliverable{*deliverable}, contracts, false)
	if err != nil {
		return nil, err
	}

	in := inputs[deliverable.ID]
	r := rollup.ComputeDeliverable(in, s.now())

	report := &model.DeliverableBurnReport{
		DeliverableID:      deliverable.ID,
		ContractID:         deliverable.ContractID,
		ExpectedHoursTotal: r.ExpectedHoursTotal,
		ActualHoursTotal:   r.ActualHoursTotal,
		VarianceHours:      r.VarianceHours,
		IsOverExpected:     r.IsOverExpected,
	}

	// Without any usable date range there is nothing to bucket; totals are
	// still reported.
	start, end, ok := effectiveWindow(*deliverable, contracts[deliverable.ContractID])
	if ok {
		report.Buckets = burnBuckets(start, end, r.ExpectedHoursTotal, in.TimeEntries)
	}
	return report, nil
}

func (s *ReportService) DeliverableStatusHistory(ctx context.Context, deliverableID uuid.UUID) (*model.StatusHistoryReport, error) {
	if _, err := s.deliverables.Get(ctx, deliverableID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates, err := s.updates.List(ctx, repository.StatusUpdateFilter{DeliverableID: &deliverableID})
	if err != nil {
		return nil, err
	}
	return &model.StatusHistoryReport{DeliverableID: deliverableID, Updates: updates}, nil
}

// StaffTime groups a staff member's entries into week-ending buckets and
// compares each week against their expected hours per week.
func (s *ReportService) StaffTime(ctx context.Context, staffID uuid.UUID, from, to *time.Time) (*model.StaffTimeReport, error) {
	member, err := s.staff.Get(ctx, staffID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entries, err := s.entries.List(ctx, repository.TimeEntryFilter{
		StaffID:       &staffID,
		EntryDateFrom: from,
		EntryDateTo:   to,
	})
	if err != nil {
		return nil, err
	}

	byWeek := make(map[time.Time]float64)
	var order []time.Time
	var total float64
	for _, e := range entries {
		week := weekEnding(e.EntryDate)
		if _, ok := byWeek[week]; !ok {
			order = append(order, week)
		}
		byWeek[week] += e.Hours
		total += e.Hours
	}

	report := &model.StaffTimeReport{
		StaffID:              member.ID,
		ExpectedHoursPerWeek: member.ExpectedHoursPerWeek,
		TotalHours:           total,
		Weeks:                make([]model.StaffWeek, 0, len(order)),
	}
	for _, week := range order {
		report.Weeks = append(report.Weeks, model.StaffWeek{
			WeekEnding:    week,
			Hours:         byWeek[week],
			VarianceHours: byWeek[week] - member.ExpectedHoursPerWeek,
		})
	}
	return report, nil
}

func summaryRow(d model.Deliverable, r rollup.DeliverableRollup) model.DeliverableSummaryRow {
	row := model.DeliverableSummaryRow{
		ID:                 d.ID,
		Name:               d.Name,
		Status:             d.Status,
		ExpectedHoursTotal: r.ExpectedHoursTotal,
		ActualHoursTotal:   r.ActualHoursTotal,
		VarianceHours:      r.VarianceHours,
	}
	if r.LatestStatusUpdate != nil {
		summary := r.LatestStatusUpdate.Summary
		row.LatestStatus = &summary
	}
	return row
}

func effectiveWindow(d model.Deliverable, c model.Contract) (time.Time, time.Time, bool) {
	if d.StartDate != nil && d.DueDate != nil && !d.DueDate.Before(*d.StartDate) {
		return *d.StartDate, *d.DueDate, true
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && !c.EndDate.Before(c.StartDate) {
		return c.StartDate, c.EndDate, true
	}
	return time.Time{}, time.Time{}, false
}

// weekEnding returns the Sunday on or after the given date.
func weekEnding(d time.Time) time.Time {
	d = dateOnly(d)
	daysUntilSunday := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, daysUntilSunday)
}

func burnBuckets(start, end time.Time, expectedTotal float64, entries []model.TimeEntry) []model.BurnBucket {
	start = dateOnly(start)
	end = dateOnly(end)

	var weekEnds []time.Time
	for current := weekEnding(start); !current.After(end); current = current.AddDate(0, 0, 7) {
		weekEnds = append(weekEnds, current)
	}
	if len(weekEnds) == 0 {
		weekEnds = append(weekEnds, weekEnding(start))
	}

	expectedPerBucket := expectedTotal / float64(len(weekEnds))

	buckets := make([]model.BurnBucket, 0, len(weekEnds))
	var cumulativeExpected, cumulativeActual float64
	for _, weekEnd := range weekEnds {
		weekStart := weekEnd.AddDate(0, 0, -6)
		var actual float64
		for _, e := range entries {
			entryDate := dateOnly(e.EntryDate)
			if !entryDate.Before(weekStart) && !entryDate.After(weekEnd) {
				actual += e.Hours
			}
		}
		cumulativeExpected += expectedPerBucket
		cumulativeActual += actual
		buckets = append(buckets, model.BurnBucket{
			WeekEnding:         weekEnd,
			ExpectedHours:      expectedPerBucket,
			ActualHours:        actual,
			CumulativeExpected: cumulativeExpected,
			CumulativeActual:   cumulativeActual,
		})
	}
	return buckets
}
