package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danebr/trackops/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// TimeEntries renders a workbook with a summary sheet and one detail sheet
// of entry rows.
func (g *Generator) TimeEntries(export model.TimeEntriesExport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, export); err != nil {
		return nil, err
	}

	detailSheet := "Entries"
	if _, err := file.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	if err := g.writeEntries(file, detailSheet, export); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, export model.TimeEntriesExport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Time entries")
	set("A2", "Entries")
	set("B2", len(export.Rows))
	set("A3", "Total hours")
	set("B3", export.TotalHours)
	if len(export.Rows) > 0 {
		set("A4", "First entry")
		set("B4", formatDate(export.Rows[0].EntryDate))
		set("A5", "Last entry")
		set("B5", formatDate(export.Rows[len(export.Rows)-1].EntryDate))
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	return nil
}

func (g *Generator) writeEntries(file *excelize.File, sheet string, export model.TimeEntriesExport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Date", "Staff", "Contract", "Deliverable", "Hours", "Note"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range export.Rows {
		line := i + 2
		set(fmt.Sprintf("A%d", line), formatDate(row.EntryDate))
		set(fmt.Sprintf("B%d", line), row.StaffName)
		set(fmt.Sprintf("C%d", line), row.ContractName)
		set(fmt.Sprintf("D%d", line), row.DeliverableName)
		set(fmt.Sprintf("E%d", line), row.Hours)
		set(fmt.Sprintf("F%d", line), row.Note)
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "D", 28)
	_ = file.SetColWidth(sheet, "E", "E", 10)
	_ = file.SetColWidth(sheet, "F", "F", 48)
	return nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
