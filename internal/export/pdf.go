package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Summary holds the aggregate figures printed at the top of the report.
type Summary struct {
	TotalIncome    int64
	TotalExpense   int64
	TotalTransfers int64
	TotalBudgets   int64
}

// Section is one table in the report. MoneyCols marks columns rendered
// right-aligned with money formatting already applied.
type Section struct {
	Title     string
	Headers   []string
	Widths    []float64
	MoneyCols map[int]bool
	Rows      [][]string
}

// Report is the full input for PDF rendering.
type Report struct {
	UserName    string
	UserEmail   string
	RangeLabel  string
	GeneratedAt time.Time
	Summary     Summary
	Sections    []Section
}

const pageWidth = 182.0 // A4 width minus margins

// WritePDF renders the report as a paginated A4 document: a title block, a
// financial summary table, then one table per section. Pages after the first
// repeat a running header; footers carry "Page X of Y", resolved once every
// page has been laid out.
func WritePDF(w io.Writer, rep *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 16, 14)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(pageWidth, 6, "Financial Report - "+rep.UserName, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(pageWidth, 10, "Financial Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pageWidth, 6, rep.UserName+"  <"+rep.UserEmail+">", "", 1, "L", false, 0, "")
	pdf.CellFormat(pageWidth, 6, "Range: "+rep.RangeLabel+"    Generated: "+rep.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Financial summary
	net := rep.Summary.TotalIncome - rep.Summary.TotalExpense
	summaryRows := [][]string{
		{"Total Income", FormatCents(rep.Summary.TotalIncome)},
		{"Total Expense", FormatCents(rep.Summary.TotalExpense)},
		{"Net Balance", FormatCents(net)},
		{"Total Transfers", FormatCents(rep.Summary.TotalTransfers)},
		{"Total Budgets", FormatCents(rep.Summary.TotalBudgets)},
	}
	drawTable(pdf, Section{
		Title:     "Summary",
		Headers:   []string{"Metric", "Amount"},
		Widths:    []float64{120, 62},
		MoneyCols: map[int]bool{1: true},
		Rows:      summaryRows,
	})

	for _, sec := range rep.Sections {
		drawTable(pdf, sec)
	}

	return pdf.Output(w)
}

func drawTable(pdf *gofpdf.Fpdf, sec Section) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(pageWidth, 8, sec.Title, "", 1, "L", false, 0, "")

	// Header row
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.SetTextColor(30, 30, 30)
	for i, h := range sec.Headers {
		pdf.CellFormat(sec.Widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(50, 50, 50)

	if len(sec.Rows) == 0 {
		pdf.CellFormat(totalWidth(sec.Widths), 7, "No data available", "1", 1, "C", false, 0, "")
		return
	}

	for _, row := range sec.Rows {
		for i, cell := range row {
			align := "L"
			if sec.MoneyCols[i] {
				align = "R"
			}
			pdf.CellFormat(sec.Widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func totalWidth(widths []float64) float64 {
	var total float64
	for _, w := range widths {
		total += w
	}
	return total
}
