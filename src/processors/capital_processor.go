package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/policy"
)

// capitalComposerImpl implements the CapitalComposer interface.
type capitalComposerImpl struct {
	labels policy.Labels
}

// NewCapitalComposer creates a new instance of CapitalComposer. The labels
// name the synthetic entries (closing balance, balancing figure) so layout
// policy stays out of the arithmetic.
func NewCapitalComposer(labels policy.Labels) CapitalComposer {
	return &capitalComposerImpl{labels: labels}
}

// ComposeCapital builds the capital account for one year. Credit side:
// opening balance, net profit, additional capital. Debit side: drawings,
// then the derived closing-balance entry. Closing is floored at zero.
func (p *capitalComposerImpl) ComposeCapital(opening, netProfit decimal.Decimal, y models.YearFigures) models.CapitalStatement {
	credit := []models.LineItem{
		{Label: "By Opening Balance", Amount: opening},
		{Label: "By Net Profit", Amount: netProfit},
		{Label: "By Additional Capital Introduced", Amount: y.AdditionalInvestment},
	}
	debit := []models.LineItem{
		{Label: "To Drawings", Amount: y.Drawings},
	}

	closing := decimal.Max(decimal.Zero, models.SumLines(credit).Sub(models.SumLines(debit)))
	debit = append(debit, models.LineItem{Label: p.labels.CapitalClosing, Amount: closing})

	// Flooring at zero leaves the sides unequal when drawings exceed the
	// credits; the shared plug keeps the statement balanced either way.
	debit, credit = models.BalanceSides(debit, credit, p.labels.BalancingFigure)

	return models.CapitalStatement{
		Opening:              opening,
		NetProfit:            netProfit,
		AdditionalInvestment: y.AdditionalInvestment,
		Drawings:             y.Drawings,
		Closing:              closing,
		Debit:                debit,
		Credit:               credit,
	}
}

// ComposeBalanceSheet builds the year-end balance sheet. Capital comes from
// the capital account's closing balance, inventory from the closing stock.
// A single balancing entry lands on the smaller side when the natural sums
// differ; matching sides get no plug.
func (p *capitalComposerImpl) ComposeBalanceSheet(capitalClosing decimal.Decimal, y models.YearFigures) models.BalanceSheet {
	liabilities := []models.LineItem{
		{Label: "Capital Account", Amount: capitalClosing},
		{Label: "Loans & Borrowings", Amount: y.Loans},
		{Label: "Sundry Creditors", Amount: y.Payables},
		{Label: "Other Liabilities", Amount: y.OtherLiabilities},
	}
	assets := []models.LineItem{
		{Label: "Fixed Assets", Amount: y.FixedAssets},
		{Label: "Closing Stock", Amount: y.ClosingStock},
		{Label: "Sundry Debtors", Amount: y.Receivables},
		{Label: "Cash & Bank Balances", Amount: y.CashBank},
		{Label: "Other Assets", Amount: y.OtherAssets},
	}

	liabilities, assets = models.BalanceSides(liabilities, assets, p.labels.BalancingFigure)

	return models.BalanceSheet{
		Liabilities:      liabilities,
		Assets:           assets,
		TotalLiabilities: models.SumLines(liabilities),
		TotalAssets:      models.SumLines(assets),
	}
}
