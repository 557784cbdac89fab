package rollup

import (
	"time"

	"github.com/danebr/trackops/internal/model"
)

// DeliverableRollup is computed on every read and never persisted. Week
// fields are nil when neither the deliverable nor its contract has a usable
// date range.
type DeliverableRollup struct {
	ExpectedHoursTotal   float64             `json:"expected_hours_total"`
	ActualHoursTotal     float64             `json:"actual_hours_total"`
	PlannedWeeks         *int                `json:"planned_weeks"`
	ElapsedWeeks         *int                `json:"elapsed_weeks"`
	ExpectedHoursPerWeek *float64            `json:"expected_hours_per_week"`
	ActualHoursPerWeek   *float64            `json:"actual_hours_per_week"`
	VarianceHours        float64             `json:"variance_hours"`
	RemainingBudgetHours float64             `json:"remaining_budget_hours"`
	UnspentBudgetHours   float64             `json:"unspent_budget_hours"`
	IsOverBudget         bool                `json:"is_over_budget"`
	IsOverassigned       bool                `json:"is_overassigned"`
	IsOverExpected       bool                `json:"is_over_expected"`
	IsMissingEstimate    bool                `json:"is_missing_estimate"`
	IsMissingLead        bool                `json:"is_missing_lead"`
	LatestStatusUpdate   *model.StatusUpdate `json:"latest_status_update"`
}

// DeliverableInput carries the pre-fetched child records for one
// deliverable. The calculator performs no data access of its own; the
// caller batches the fetch for a whole page of deliverables.
type DeliverableInput struct {
	Deliverable   model.Deliverable
	Contract      model.Contract
	Assignments   []model.Assignment
	TimeEntries   []model.TimeEntry
	StatusUpdates []model.StatusUpdate
}

// ComputeDeliverable derives the rollup for one deliverable. Deterministic
// given its inputs and today.
func ComputeDeliverable(in DeliverableInput, today time.Time) DeliverableRollup {
	var r DeliverableRollup

	hasLead := false
	for _, a := range in.Assignments {
		r.ExpectedHoursTotal += a.ExpectedHours
		if a.IsLead {
			hasLead = true
		}
	}
	for _, e := range in.TimeEntries {
		r.ActualHoursTotal += e.Hours
	}

	r.VarianceHours = r.ActualHoursTotal - r.ExpectedHoursTotal
	r.RemainingBudgetHours = in.Deliverable.BudgetHours - r.ExpectedHoursTotal
	r.UnspentBudgetHours = in.Deliverable.BudgetHours - r.ActualHoursTotal
	r.IsOverBudget = r.ActualHoursTotal > in.Deliverable.BudgetHours
	r.IsOverassigned = r.ExpectedHoursTotal > in.Deliverable.BudgetHours
	r.IsOverExpected = r.ActualHoursTotal > r.ExpectedHoursTotal
	r.IsMissingEstimate = r.ExpectedHoursTotal == 0 && len(in.Assignments) > 0
	r.IsMissingLead = !hasLead
	r.LatestStatusUpdate = latestStatusUpdate(in.StatusUpdates)

	if rng, ok := effectiveRange(in.Deliverable, in.Contract); ok {
		planned := PlannedWeeks(rng)
		elapsed := ElapsedWeeks(rng, today)
		expectedRate := r.ExpectedHoursTotal / float64(planned)
		actualRate := r.ActualHoursTotal / float64(elapsed)
		r.PlannedWeeks = &planned
		r.ElapsedWeeks = &elapsed
		r.ExpectedHoursPerWeek = &expectedRate
		r.ActualHoursPerWeek = &actualRate
	}

	return r
}

// effectiveRange prefers the deliverable's own dates when both are set and
// falls back to the contract's range otherwise. A deliverable with no dates
// under a contract with no dates has no range at all.
func effectiveRange(d model.Deliverable, c model.Contract) (DateRange, bool) {
	if d.StartDate != nil && d.DueDate != nil {
		rng := DateRange{Start: *d.StartDate, End: *d.DueDate}
		if rng.Valid() {
			return rng, true
		}
	}
	rng := DateRange{Start: c.StartDate, End: c.EndDate}
	if rng.Valid() {
		return rng, true
	}
	return DateRange{}, false
}

// latestStatusUpdate picks the update with the greatest period_end,
// breaking ties by created_at and then id.
func latestStatusUpdate(updates []model.StatusUpdate) *model.StatusUpdate {
	var latest *model.StatusUpdate
	for i := range updates {
		u := &updates[i]
		if latest == nil || laterUpdate(*u, *latest) {
			latest = u
		}
	}
	if latest == nil {
		return nil
	}
	picked := *latest
	return &picked
}

func laterUpdate(a, b model.StatusUpdate) bool {
	if !a.PeriodEnd.Equal(b.PeriodEnd) {
		return a.PeriodEnd.After(b.PeriodEnd)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}
