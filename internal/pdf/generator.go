package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/danebr/trackops/internal/model"
)

type Generator struct {
	fontFamily string
}

func NewGenerator() *Generator {
	return &Generator{fontFamily: "Helvetica"}
}

// ContractSummary renders the contract header, rollup figures and a
// per-deliverable table.
func (g *Generator) ContractSummary(doc model.ContractSummaryDoc) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontFamily, "B", 14)
	pdf.CellFormat(0, 10, "Contract summary", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontFamily, "", 11)
	pdf.CellFormat(0, 6, safeValue(doc.Contract.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Client: %s", safeValue(doc.Contract.ClientName)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s to %s, status %s",
		formatDate(doc.Contract.StartDate), formatDate(doc.Contract.EndDate), doc.Contract.Status), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontFamily, "B", 12)
	pdf.CellFormat(0, 8, "Hours", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontFamily, "", 10)

	figures := [][2]string{
		{"Budget hours", formatHours(doc.Contract.BudgetHours)},
		{"Expected hours (assigned)", formatHours(doc.ExpectedHoursTotal)},
		{"Actual hours (logged)", formatHours(doc.ActualHoursTotal)},
		{"Remaining budget hours", formatHours(doc.RemainingBudgetHours)},
		{"Planned weeks", fmt.Sprintf("%d", doc.PlannedWeeks)},
		{"Elapsed weeks", fmt.Sprintf("%d", doc.ElapsedWeeks)},
		{"Expected hours per week", formatHours(doc.ExpectedHoursPerWeek)},
		{"Actual hours per week", formatHours(doc.ActualHoursPerWeek)},
	}
	for _, figure := range figures {
		pdf.CellFormat(90, 6, figure[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, figure[1], "", 1, "R", false, 0, "")
	}

	if doc.IsOverBudget || doc.IsOverExpected {
		pdf.Ln(2)
		pdf.SetTextColor(200, 0, 0)
		if doc.IsOverBudget {
			pdf.MultiCell(0, 6, "Warning: logged hours exceed the contract budget.", "", "L", false)
		}
		if doc.IsOverExpected {
			pdf.MultiCell(0, 6, "Warning: logged hours exceed the assigned estimate.", "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontFamily, "B", 12)
	pdf.CellFormat(0, 8, "Deliverables", "", 1, "L", false, 0, "")

	headers := []string{"Deliverable", "Status", "Expected", "Actual", "Variance"}
	colWidths := []float64{70, 28, 27, 27, 28}
	drawTableRow(pdf, g.fontFamily, headers, colWidths, true)

	for _, row := range doc.Deliverables {
		cells := []string{
			safeValue(row.Name),
			string(row.Status),
			formatHours(row.ExpectedHoursTotal),
			formatHours(row.ActualHoursTotal),
			formatHours(row.VarianceHours),
		}
		drawTableRow(pdf, g.fontFamily, cells, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontFamily string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatHours(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
