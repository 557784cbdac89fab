package rollup

import (
	"time"

	"github.com/danebr/trackops/internal/model"
)

// ContractRollup aggregates hour totals from child deliverable rollups but
// computes week counts from the contract's own date range. Contract dates
// are required so week fields are always present here.
type ContractRollup struct {
	ExpectedHoursTotal    float64 `json:"expected_hours_total"`
	ActualHoursTotal      float64 `json:"actual_hours_total"`
	PlannedWeeks          int     `json:"planned_weeks"`
	ElapsedWeeks          int     `json:"elapsed_weeks"`
	ExpectedHoursPerWeek  float64 `json:"expected_hours_per_week"`
	ActualHoursPerWeek    float64 `json:"actual_hours_per_week"`
	RemainingBudgetHours  float64 `json:"remaining_budget_hours"`
	UnspentBudgetHours    float64 `json:"unspent_budget_hours"`
	UnassignedBudgetHours float64 `json:"unassigned_budget_hours"`
	IsOverBudget          bool    `json:"is_over_budget"`
	IsOverExpected        bool    `json:"is_over_expected"`
	IsOverassigned        bool    `json:"is_overassigned"`
}

// ComputeContract derives the contract rollup from the contract's own dates
// and budget plus its children's already-computed rollups. Per-week rates
// come from the contract's own totals and week counts, never from summing
// or averaging child rates, so children with different date ranges cannot
// skew the result.
func ComputeContract(c model.Contract, children []DeliverableRollup, today time.Time) ContractRollup {
	var r ContractRollup
	for _, child := range children {
		r.ExpectedHoursTotal += child.ExpectedHoursTotal
		r.ActualHoursTotal += child.ActualHoursTotal
	}

	rng := DateRange{Start: c.StartDate, End: c.EndDate}
	r.PlannedWeeks = PlannedWeeks(rng)
	r.ElapsedWeeks = ElapsedWeeks(rng, today)
	r.ExpectedHoursPerWeek = r.ExpectedHoursTotal / float64(r.PlannedWeeks)
	r.ActualHoursPerWeek = r.ActualHoursTotal / float64(r.ElapsedWeeks)

	r.RemainingBudgetHours = c.BudgetHours - r.ActualHoursTotal
	r.UnspentBudgetHours = r.RemainingBudgetHours
	r.UnassignedBudgetHours = c.BudgetHours - r.ExpectedHoursTotal
	r.IsOverBudget = r.ActualHoursTotal > c.BudgetHours
	r.IsOverExpected = r.ActualHoursTotal > r.ExpectedHoursTotal
	r.IsOverassigned = r.ExpectedHoursTotal > c.BudgetHours
	return r
}
