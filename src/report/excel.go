package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/security/validation"
)

// ContentTypeXLSX is the MIME type the excel endpoint serves workbooks with.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrRenderFailed marks workbook rendering failures; handlers map it to 500.
var ErrRenderFailed = errors.New("report rendering failed")

// RenderWorkbook lays a draft report out as a multi-sheet xlsx workbook:
// per year the trading and profit & loss account, the capital account and
// the balance sheet in T format, then one vertical tax-computation sheet
// covering every year, and a notes sheet when there are audit notes.
func RenderWorkbook(rep *models.DraftReport) (*bytes.Buffer, error) {
	w := newWorkbookWriter()
	defer w.f.Close()

	for _, yr := range rep.Years {
		w.statementSheet(rep.Metadata, yr.FiscalYear, sheetSpec{
			tabName:   "Trading & PL " + yr.FiscalYear,
			title:     yr.Trading.Title,
			leftHead:  "Particulars",
			rightHead: "Particulars",
			left:      yr.Trading.Debit,
			right:     yr.Trading.Credit,
		})
		w.statementSheet(rep.Metadata, yr.FiscalYear, sheetSpec{
			tabName:   "Capital Account " + yr.FiscalYear,
			title:     yr.CapitalAccount.Title,
			leftHead:  "Particulars",
			rightHead: "Particulars",
			left:      yr.CapitalAccount.Debit,
			right:     yr.CapitalAccount.Credit,
		})
		w.statementSheet(rep.Metadata, yr.FiscalYear, sheetSpec{
			tabName:   "Balance Sheet " + yr.FiscalYear,
			title:     "Balance Sheet",
			leftHead:  "Liabilities",
			rightHead: "Assets",
			left:      yr.BalanceSheet.Liabilities,
			right:     yr.BalanceSheet.Assets,
		})
	}

	w.taxSheet(rep)
	if len(rep.Notes) > 0 {
		w.notesSheet(rep.Notes)
	}

	if w.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, w.err)
	}

	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf, nil
}

// sheetSpec describes one T-format statement sheet: the two sides and their
// column headings.
type sheetSpec struct {
	tabName   string
	title     string
	leftHead  string
	rightHead string
	left      []models.LineItem
	right     []models.LineItem
}

// workbookWriter wraps the excelize file and captures the first error so
// sheet-building code stays free of per-cell error plumbing.
type workbookWriter struct {
	f     *excelize.File
	err   error
	first bool
	used  map[string]bool

	titleStyle  int
	metaStyle   int
	headerStyle int
	amountStyle int
	totalStyle  int
	boldStyle   int
}

func newWorkbookWriter() *workbookWriter {
	w := &workbookWriter{
		f:     excelize.NewFile(),
		first: true,
		used:  map[string]bool{},
	}
	w.initStyles()
	return w
}

func (w *workbookWriter) check(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *workbookWriter) initStyles() {
	numFmt := "#,##0.00"

	w.titleStyle = w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	w.metaStyle = w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	w.headerStyle = w.newStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	w.amountStyle = w.newStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
	})
	w.totalStyle = w.newStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Border:       []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
		CustomNumFmt: &numFmt,
	})
	w.boldStyle = w.newStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
}

func (w *workbookWriter) newStyle(s *excelize.Style) int {
	id, err := w.f.NewStyle(s)
	w.check(err)
	return id
}

// addSheet creates (or, for the first call, renames the default) sheet and
// returns the final tab name, deduplicated and trimmed to the xlsx limits.
func (w *workbookWriter) addSheet(name string) string {
	name = sanitizeSheetName(name)
	for base, n := name, 2; w.used[name]; n++ {
		name = sanitizeSheetName(fmt.Sprintf("%s %d", base, n))
	}
	w.used[name] = true

	if w.first {
		w.check(w.f.SetSheetName("Sheet1", name))
		w.first = false
	} else {
		_, err := w.f.NewSheet(name)
		w.check(err)
	}
	return name
}

func (w *workbookWriter) set(sheet, cell string, value interface{}) {
	w.check(w.f.SetCellValue(sheet, cell, value))
}

func (w *workbookWriter) amount(sheet, cell string, d decimal.Decimal) {
	w.check(w.f.SetCellValue(sheet, cell, d.InexactFloat64()))
	w.check(w.f.SetCellStyle(sheet, cell, cell, w.amountStyle))
}

func (w *workbookWriter) merge(sheet, from, to string, value interface{}, style int) {
	w.check(w.f.MergeCell(sheet, from, to))
	w.check(w.f.SetCellValue(sheet, from, value))
	w.check(w.f.SetCellStyle(sheet, from, to, style))
}

// safeText guards caller-supplied strings before they land in a cell.
func safeText(s string) string {
	return validation.SanitizeForFormulaInjection(validation.StripUnprintable(s))
}

// metaHeader writes the common heading rows and returns the first free row.
func (w *workbookWriter) metaHeader(sheet string, meta models.FilerMetadata, title, fiscalYear, lastCol string) int {
	w.merge(sheet, "A1", lastCol+"1", safeText(meta.BusinessName), w.titleStyle)
	w.merge(sheet, "A2", lastCol+"2", fmt.Sprintf("%s for the year %s", title, safeText(fiscalYear)), w.metaStyle)
	w.merge(sheet, "A3", lastCol+"3",
		fmt.Sprintf("Proprietor: %s | Tax ID: %s", safeText(meta.ProprietorName), safeText(meta.TaxID)), w.metaStyle)
	return 5
}

func (w *workbookWriter) statementSheet(meta models.FilerMetadata, fiscalYear string, spec sheetSpec) {
	sheet := w.addSheet(spec.tabName)

	w.check(w.f.SetColWidth(sheet, "A", "A", 38))
	w.check(w.f.SetColWidth(sheet, "B", "B", 16))
	w.check(w.f.SetColWidth(sheet, "C", "C", 4))
	w.check(w.f.SetColWidth(sheet, "D", "D", 38))
	w.check(w.f.SetColWidth(sheet, "E", "E", 16))

	row := w.metaHeader(sheet, meta, spec.title, fiscalYear, "E")

	w.set(sheet, fmt.Sprintf("A%d", row), spec.leftHead)
	w.set(sheet, fmt.Sprintf("B%d", row), "Amount")
	w.set(sheet, fmt.Sprintf("D%d", row), spec.rightHead)
	w.set(sheet, fmt.Sprintf("E%d", row), "Amount")
	w.check(w.f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), w.headerStyle))
	row++

	for i, it := range spec.left {
		w.set(sheet, fmt.Sprintf("A%d", row+i), it.Label)
		w.amount(sheet, fmt.Sprintf("B%d", row+i), it.Amount)
	}
	for i, it := range spec.right {
		w.set(sheet, fmt.Sprintf("D%d", row+i), it.Label)
		w.amount(sheet, fmt.Sprintf("E%d", row+i), it.Amount)
	}

	rows := len(spec.left)
	if len(spec.right) > rows {
		rows = len(spec.right)
	}
	totalRow := row + rows

	w.set(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	w.set(sheet, fmt.Sprintf("D%d", totalRow), "Total")
	w.check(w.f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), models.SumLines(spec.left).InexactFloat64()))
	w.check(w.f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), models.SumLines(spec.right).InexactFloat64()))
	w.check(w.f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("E%d", totalRow), w.totalStyle))
}

// boldTaxLines are the rows of the tax computation that render bold.
var boldTaxLines = map[string]bool{
	"Total Income":        true,
	"Total Tax Liability": true,
	"Net Tax Payable":     true,
}

func (w *workbookWriter) taxSheet(rep *models.DraftReport) {
	sheet := w.addSheet("Tax Computation")

	w.check(w.f.SetColWidth(sheet, "A", "A", 46))
	w.check(w.f.SetColWidth(sheet, "B", "B", 18))

	w.merge(sheet, "A1", "B1", safeText(rep.Metadata.BusinessName), w.titleStyle)
	w.merge(sheet, "A2", "B2", "Computation of Total Income and Tax", w.metaStyle)
	w.merge(sheet, "A3", "B3",
		fmt.Sprintf("Proprietor: %s | Tax ID: %s | Date of Birth: %s",
			safeText(rep.Metadata.ProprietorName), safeText(rep.Metadata.TaxID),
			safeText(rep.Metadata.DateOfBirth)), w.metaStyle)

	row := 5
	for _, yr := range rep.Years {
		w.merge(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row),
			"Fiscal Year "+yr.FiscalYear, w.headerStyle)
		row++

		for _, it := range yr.TaxComputation {
			w.set(sheet, fmt.Sprintf("A%d", row), it.Label)
			w.amount(sheet, fmt.Sprintf("B%d", row), it.Amount)
			if boldTaxLines[it.Label] {
				w.check(w.f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), w.boldStyle))
				w.check(w.f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), w.totalStyle))
			}
			row++
		}
		row++ // blank row between years
	}
}

func (w *workbookWriter) notesSheet(notes []string) {
	sheet := w.addSheet("Notes")

	w.check(w.f.SetColWidth(sheet, "A", "A", 110))
	w.set(sheet, "A1", "Notes")
	w.check(w.f.SetCellStyle(sheet, "A1", "A1", w.boldStyle))

	for i, note := range notes {
		w.set(sheet, fmt.Sprintf("A%d", i+3), fmt.Sprintf("%d. %s", i+1, note))
	}
}

// sanitizeSheetName strips characters xlsx forbids in tab names and trims to
// the 31-character limit.
func sanitizeSheetName(name string) string {
	replacer := strings.NewReplacer(
		":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")")
	name = replacer.Replace(name)
	runes := []rune(name)
	if len(runes) > 31 {
		name = string(runes[:31])
	}
	return strings.TrimSpace(name)
}
