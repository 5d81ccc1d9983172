// Package report turns pipeline output into presentation: ordered
// labeled-amount tables for the report endpoint, and the xlsx workbook for
// the excel endpoint.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/policy"
)

// Assembler lays a Computation out as tables. Statement structure is fixed;
// the labels of synthetic entries come from the policy.
type Assembler struct {
	pol *policy.TaxPolicy
}

func NewAssembler(pol *policy.TaxPolicy) *Assembler {
	return &Assembler{pol: pol}
}

// Assemble builds the full draft report: per year a trading and profit &
// loss account, the capital account, the balance sheet and the vertical tax
// computation, plus the accumulated audit notes.
func (a *Assembler) Assemble(comp *models.Computation) *models.DraftReport {
	rep := &models.DraftReport{
		Metadata: comp.Metadata,
		Notes:    comp.Notes,
	}
	if rep.Notes == nil {
		rep.Notes = []string{}
	}

	for _, yc := range comp.Years {
		rep.Years = append(rep.Years, models.YearReport{
			FiscalYear:     yc.Label,
			Trading:        a.tradingStatement(yc),
			CapitalAccount: a.capitalStatement(yc),
			BalanceSheet:   yc.BalanceSheet,
			TaxComputation: a.taxComputation(yc),
			Profit:         yc.Profit,
			Tax:            yc.Tax,
		})
	}
	return rep
}

// tradingStatement merges the trading account and the profit & loss account
// into one two-sided table. The difference between the sides is the net
// profit, so the plug on the smaller side carries exactly that amount: a
// profit lands on the debit side, a loss on the credit side.
func (a *Assembler) tradingStatement(yc models.YearComputation) models.Statement {
	y, p := yc.Figures, yc.Profit

	debit := []models.LineItem{
		{Label: "To Opening Stock", Amount: y.OpeningStock},
		{Label: "To Purchases (net of returns)", Amount: p.NetPurchases},
		{Label: "To Carriage Inward", Amount: y.CarriageInward},
		{Label: "To Salaries", Amount: y.Salaries},
		{Label: "To Rent & Utilities", Amount: y.RentUtilities},
		{Label: "To Administrative & Miscellaneous Expenses", Amount: y.AdminMisc},
		{Label: "To Depreciation", Amount: y.Depreciation},
		{Label: "To Finance Costs", Amount: y.FinanceCosts},
		{Label: "To Other Expenses", Amount: y.OtherExpenses},
	}
	credit := []models.LineItem{
		{Label: "By Sales (net of returns)", Amount: p.NetSales},
		{Label: "By Closing Stock", Amount: y.ClosingStock},
		{Label: "By Other Income", Amount: y.OtherIncome},
	}

	plugLabel := a.pol.Labels.TradingProfit
	if p.NetProfit.IsNegative() {
		plugLabel = a.pol.Labels.TradingLoss
	}
	debit, credit = models.BalanceSides(debit, credit, plugLabel)

	return models.Statement{
		Title:  "Trading and Profit & Loss Account",
		Debit:  debit,
		Credit: credit,
	}
}

func (a *Assembler) capitalStatement(yc models.YearComputation) models.Statement {
	return models.Statement{
		Title:  "Capital Account",
		Debit:  yc.Capital.Debit,
		Credit: yc.Capital.Credit,
	}
}

// taxComputation builds the vertical block from business income down to net
// payable. Deduction heads the system does not support appear as fixed zero
// lines so the draft reads like a complete computation.
func (a *Assembler) taxComputation(yc models.YearComputation) []models.LineItem {
	cessLabel := fmt.Sprintf("Add: Health and Education Cess (%s%%)", a.pol.CessPercent())

	return []models.LineItem{
		{Label: "Net Profit as per Profit & Loss Account", Amount: yc.Profit.NetProfit},
		{Label: "Add: Income from Other Sources", Amount: decimal.Zero},
		{Label: "Gross Total Income", Amount: yc.Profit.NetProfit},
		{Label: "Less: Deductions under Chapter VI-A", Amount: decimal.Zero},
		{Label: "Total Income", Amount: yc.Tax.TaxableIncome},
		{Label: "Tax on Total Income", Amount: yc.Tax.Tax},
		{Label: cessLabel, Amount: yc.Tax.Cess},
		{Label: "Total Tax Liability", Amount: yc.Tax.TotalLiability},
		{Label: "Less: Advance Tax and TDS Paid", Amount: decimal.Zero},
		{Label: "Net Tax Payable", Amount: yc.Tax.TotalLiability},
	}
}
