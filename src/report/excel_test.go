package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/policy"
)

func renderedWorkbook(t *testing.T, rep *models.DraftReport) *excelize.File {
	t.Helper()
	buf, err := RenderWorkbook(rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func rawCell(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func sampleReport() *models.DraftReport {
	yc := profitYear()
	yc.BalanceSheet = models.BalanceSheet{
		Liabilities: []models.LineItem{
			{Label: "Capital Account", Amount: dec("770000")},
		},
		Assets: []models.LineItem{
			{Label: "Closing Stock", Amount: dec("100000")},
			{Label: "Cash & Bank Balances", Amount: dec("670000")},
		},
		TotalLiabilities: dec("770000"),
		TotalAssets:      dec("770000"),
	}
	comp := &models.Computation{
		Metadata: models.FilerMetadata{
			BusinessName:   "Sharma Traders",
			ProprietorName: "R. Sharma",
			TaxID:          "ABCPS1234F",
			DateOfBirth:    "1980-04-12",
			FiscalYear:     "2024-25",
		},
		Years: []models.YearComputation{yc},
		Notes: []string{"Year 2 figures projected from Year 1 at 10% growth."},
	}
	return NewAssembler(policy.Default()).Assemble(comp)
}

func TestRenderWorkbook_SheetList(t *testing.T) {
	f := renderedWorkbook(t, sampleReport())

	assert.Equal(t, []string{
		"Trading & PL 2024-25",
		"Capital Account 2024-25",
		"Balance Sheet 2024-25",
		"Tax Computation",
		"Notes",
	}, f.GetSheetList())
}

func TestRenderWorkbook_TwoYears(t *testing.T) {
	rep := sampleReport()
	year2 := rep.Years[0]
	year2.FiscalYear = "2025-26"
	rep.Years = append(rep.Years, year2)

	f := renderedWorkbook(t, rep)

	list := f.GetSheetList()
	assert.Contains(t, list, "Trading & PL 2025-26")
	assert.Contains(t, list, "Balance Sheet 2025-26")
	// Still a single consolidated tax sheet.
	assert.Len(t, list, 8)
}

func TestRenderWorkbook_TradingSheetCells(t *testing.T) {
	f := renderedWorkbook(t, sampleReport())
	sheet := "Trading & PL 2024-25"

	assert.Equal(t, "Sharma Traders", rawCell(t, f, sheet, "A1"))
	assert.Equal(t, "Trading and Profit & Loss Account for the year 2024-25", rawCell(t, f, sheet, "A2"))
	assert.Equal(t, "Proprietor: R. Sharma | Tax ID: ABCPS1234F", rawCell(t, f, sheet, "A3"))

	assert.Equal(t, "Particulars", rawCell(t, f, sheet, "A5"))
	assert.Equal(t, "Amount", rawCell(t, f, sheet, "B5"))
	assert.Equal(t, "Particulars", rawCell(t, f, sheet, "D5"))

	assert.Equal(t, "To Opening Stock", rawCell(t, f, sheet, "A6"))
	assert.Equal(t, "80000", rawCell(t, f, sheet, "B6"))
	assert.Equal(t, "By Sales (net of returns)", rawCell(t, f, sheet, "D6"))
	assert.Equal(t, "1150000", rawCell(t, f, sheet, "E6"))

	// 10 debit lines (including the net profit plug), so totals land on row 16.
	assert.Equal(t, "To Net Profit", rawCell(t, f, sheet, "A15"))
	assert.Equal(t, "Total", rawCell(t, f, sheet, "A16"))
	assert.Equal(t, "1280000", rawCell(t, f, sheet, "B16"))
	assert.Equal(t, "1280000", rawCell(t, f, sheet, "E16"))
}

func TestRenderWorkbook_BalanceSheetHeads(t *testing.T) {
	f := renderedWorkbook(t, sampleReport())
	sheet := "Balance Sheet 2024-25"

	assert.Equal(t, "Liabilities", rawCell(t, f, sheet, "A5"))
	assert.Equal(t, "Assets", rawCell(t, f, sheet, "D5"))
	assert.Equal(t, "Capital Account", rawCell(t, f, sheet, "A6"))
	assert.Equal(t, "770000", rawCell(t, f, sheet, "B6"))
}

func TestRenderWorkbook_TaxSheet(t *testing.T) {
	f := renderedWorkbook(t, sampleReport())
	sheet := "Tax Computation"

	assert.Equal(t, "Sharma Traders", rawCell(t, f, sheet, "A1"))
	assert.Equal(t, "Computation of Total Income and Tax", rawCell(t, f, sheet, "A2"))
	assert.Equal(t, "Proprietor: R. Sharma | Tax ID: ABCPS1234F | Date of Birth: 1980-04-12",
		rawCell(t, f, sheet, "A3"))

	assert.Equal(t, "Fiscal Year 2024-25", rawCell(t, f, sheet, "A5"))
	assert.Equal(t, "Net Profit as per Profit & Loss Account", rawCell(t, f, sheet, "A6"))
	assert.Equal(t, "340000", rawCell(t, f, sheet, "B6"))
	assert.Equal(t, "Net Tax Payable", rawCell(t, f, sheet, "A15"))
	assert.Equal(t, "2080", rawCell(t, f, sheet, "B15"))
}

func TestRenderWorkbook_NotesSheet(t *testing.T) {
	f := renderedWorkbook(t, sampleReport())

	assert.Equal(t, "Notes", rawCell(t, f, "Notes", "A1"))
	assert.Equal(t, "1. Year 2 figures projected from Year 1 at 10% growth.",
		rawCell(t, f, "Notes", "A3"))
}

func TestRenderWorkbook_NoNotesNoSheet(t *testing.T) {
	rep := sampleReport()
	rep.Notes = []string{}

	f := renderedWorkbook(t, rep)
	assert.NotContains(t, f.GetSheetList(), "Notes")
}

func TestRenderWorkbook_GuardsFormulaInjection(t *testing.T) {
	rep := sampleReport()
	rep.Metadata.BusinessName = `=HYPERLINK("http://evil","x")`
	rep.Metadata.ProprietorName = "R.\x00 Sharma"

	f := renderedWorkbook(t, rep)
	assert.Equal(t, `'=HYPERLINK("http://evil","x")`, rawCell(t, f, "Trading & PL 2024-25", "A1"))
	assert.Equal(t, "Proprietor: R. Sharma | Tax ID: ABCPS1234F",
		rawCell(t, f, "Trading & PL 2024-25", "A3"))
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Trading & PL 2024-25", "Trading & PL 2024-25"},
		{"FY 2024/25", "FY 2024-25"},
		{"What? * [Draft]", "What  (Draft)"},
		{"0123456789012345678901234567890123456789", "0123456789012345678901234567890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeSheetName(tt.in), "input %q", tt.in)
	}
}
