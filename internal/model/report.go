package model

import (
	"time"

	"github.com/google/uuid"
)

// BurnBucket is one week of a burn report. Expected hours are distributed
// evenly across the planned buckets; actual hours are summed from the time
// entries that fall inside the bucket.
type BurnBucket struct {
	WeekEnding         time.Time `json:"week_ending"`
	ExpectedHours      float64   `json:"expected_hours"`
	ActualHours        float64   `json:"actual_hours"`
	CumulativeExpected float64   `json:"cumulative_expected"`
	CumulativeActual   float64   `json:"cumulative_actual"`
}

type ContractBurnReport struct {
	ContractID           uuid.UUID    `json:"contract_id"`
	StartDate            time.Time    `json:"start_date"`
	EndDate              time.Time    `json:"end_date"`
	BudgetHours          float64      `json:"budget_hours"`
	ExpectedHoursTotal   float64      `json:"expected_hours_total"`
	ActualHoursTotal     float64      `json:"actual_hours_total"`
	RemainingBudgetHours float64      `json:"remaining_budget_hours"`
	IsOverBudget         bool         `json:"is_over_budget"`
	IsOverExpected       bool         `json:"is_over_expected"`
	Buckets              []BurnBucket `json:"buckets"`
}

type DeliverableBurnReport struct {
	DeliverableID      uuid.UUID    `json:"deliverable_id"`
	ContractID         uuid.UUID    `json:"contract_id"`
	ExpectedHoursTotal float64      `json:"expected_hours_total"`
	ActualHoursTotal   float64      `json:"actual_hours_total"`
	VarianceHours      float64      `json:"variance_hours"`
	IsOverExpected     bool         `json:"is_over_expected"`
	Buckets            []BurnBucket `json:"buckets"`
}

type DeliverableSummaryRow struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	Status             DeliverableStatus `json:"status"`
	ExpectedHoursTotal float64           `json:"expected_hours_total"`
	ActualHoursTotal   float64           `json:"actual_hours_total"`
	VarianceHours      float64           `json:"variance_hours"`
	LatestStatus       *string           `json:"latest_status"`
}

type ContractDeliverablesReport struct {
	ContractID   uuid.UUID               `json:"contract_id"`
	Deliverables []DeliverableSummaryRow `json:"deliverables"`
}

type StatusHistoryReport struct {
	DeliverableID uuid.UUID      `json:"deliverable_id"`
	Updates       []StatusUpdate `json:"updates"`
}

type StaffWeek struct {
	WeekEnding    time.Time `json:"week_ending"`
	Hours         float64   `json:"hours"`
	VarianceHours float64   `json:"variance_hours"`
}

type StaffTimeReport struct {
	StaffID              uuid.UUID   `json:"staff_id"`
	ExpectedHoursPerWeek float64     `json:"expected_hours_per_week"`
	TotalHours           float64     `json:"total_hours"`
	Weeks                []StaffWeek `json:"weeks"`
}

// TimeEntryExportRow is a denormalized time entry for spreadsheet export.
type TimeEntryExportRow struct {
	EntryDate       time.Time
	Hours           float64
	Note            string
	StaffName       string
	DeliverableName string
	ContractName    string
}

type TimeEntriesExport struct {
	Rows       []TimeEntryExportRow
	TotalHours float64
}

// ContractSummaryDoc feeds the PDF generator; rollup figures are copied in
// so the generator stays a pure renderer.
type ContractSummaryDoc struct {
	Contract             Contract
	ExpectedHoursTotal   float64
	ActualHoursTotal     float64
	RemainingBudgetHours float64
	PlannedWeeks         int
	ElapsedWeeks         int
	ExpectedHoursPerWeek float64
	ActualHoursPerWeek   float64
	IsOverBudget         bool
	IsOverExpected       bool
	Deliverables         []DeliverableSummaryRow
}
