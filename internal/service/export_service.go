package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/rollup"
)

type ExcelGenerator interface {
	TimeEntries(export model.TimeEntriesExport) ([]byte, error)
}

type PDFGenerator interface {
	ContractSummary(doc model.ContractSummaryDoc) ([]byte, error)
}

type TimeEntryExportStore interface {
	ListForExport(ctx context.Context, filter repository.TimeEntryFilter) ([]model.TimeEntryExportRow, error)
}

type ExportService struct {
	contracts    ContractStore
	deliverables DeliverableStore
	rollups      RollupStore
	exports      TimeEntryExportStore
	excel        ExcelGenerator
	pdf          PDFGenerator
	now          Clock
}

func NewExportService(
	contracts ContractStore,
	deliverables DeliverableStore,
	rollups RollupStore,
	exports TimeEntryExportStore,
	excel ExcelGenerator,
	pdf PDFGenerator,
	now Clock,
) *ExportService {
	return &ExportService{
		contracts:    contracts,
		deliverables: deliverables,
		rollups:      rollups,
		exports:      exports,
		excel:        excel,
		pdf:          pdf,
		now:          now,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ExportService) TimeEntries(ctx context.Context, filter repository.TimeEntryFilter) (*ExportResult, error) {
	rows, err := s.exports.ListForExport(ctx, filter)
	if err != nil {
		return nil, err
	}

	export := model.TimeEntriesExport{Rows: rows}
	for _, row := range rows {
		export.TotalHours += row.Hours
	}

	content, err := s.excel.TimeEntries(export)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("time-entries-%s.xlsx", s.now().Format("20060102")),
		Content:  content,
	}, nil
}

func (s *ExportService) ContractSummary(ctx context.Context, contractID uuid.UUID) (*ExportResult, error) {
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
	children := make([]rollup.DeliverableRollup, 0, len(deliverables))
	rows := make([]model.DeliverableSummaryRow, 0, len(deliverables))
	for _, d := range deliverables {
		child := rollup.ComputeDeliverable(inputs[d.ID], today)
		children = append(children, child)
		rows = append(rows, summaryRow(d, child))
	}
	r := rollup.ComputeContract(*contract, children, today)

	doc := model.ContractSummaryDoc{
		Contract:             *contract,
		ExpectedHoursTotal:   r.ExpectedHoursTotal,
		ActualHoursTotal:     r.ActualHoursTotal,
		RemainingBudgetHours: r.RemainingBudgetHours,
		PlannedWeeks:         r.PlannedWeeks,
		ElapsedWeeks:         r.ElapsedWeeks,
		ExpectedHoursPerWeek: r.ExpectedHoursPerWeek,
		ActualHoursPerWeek:   r.ActualHoursPerWeek,
		IsOverBudget:         r.IsOverBudget,
		IsOverExpected:       r.IsOverExpected,
		Deliverables:         rows,
	}

	content, err := s.pdf.ContractSummary(doc)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("contract-%s-summary.pdf", sanitizeFileName(contract.Name, contract.ID.String())),
		Content:  content,
	}, nil
}

func sanitizeFileName(input, fallback string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	cleaned := strings.Trim(string(result), "-")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
