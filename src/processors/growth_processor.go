package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/models"
)

// growthProjectorImpl implements the GrowthProjector interface.
type growthProjectorImpl struct{}

// NewGrowthProjector creates a new instance of GrowthProjector.
func NewGrowthProjector() GrowthProjector {
	return &growthProjectorImpl{}
}

var oneHundred = decimal.NewFromInt(100)

// Project scales every figure of the base year by (1 + growthPercent/100).
// A zero growth percentage returns figures equal to the input.
func (p *growthProjectorImpl) Project(y models.YearFigures, growthPercent decimal.Decimal) models.YearFigures {
	factor := decimal.NewFromInt(1).Add(growthPercent.Div(oneHundred))

	return models.YearFigures{
		OpeningStock:   y.OpeningStock.Mul(factor),
		Purchases:      y.Purchases.Mul(factor),
		ReturnOutwards: y.ReturnOutwards.Mul(factor),
		CarriageInward: y.CarriageInward.Mul(factor),
		ClosingStock:   y.ClosingStock.Mul(factor),
		Turnover:       y.Turnover.Mul(factor),
		ReturnInwards:  y.ReturnInwards.Mul(factor),
		OtherIncome:    y.OtherIncome.Mul(factor),

		Salaries:      y.Salaries.Mul(factor),
		RentUtilities: y.RentUtilities.Mul(factor),
		AdminMisc:     y.AdminMisc.Mul(factor),
		Depreciation:  y.Depreciation.Mul(factor),
		FinanceCosts:  y.FinanceCosts.Mul(factor),
		OtherExpenses: y.OtherExpenses.Mul(factor),

		CapitalOpen:          y.CapitalOpen.Mul(factor),
		Drawings:             y.Drawings.Mul(factor),
		AdditionalInvestment: y.AdditionalInvestment.Mul(factor),
		Loans:                y.Loans.Mul(factor),
		Payables:             y.Payables.Mul(factor),
		OtherLiabilities:     y.OtherLiabilities.Mul(factor),
		FixedAssets:          y.FixedAssets.Mul(factor),
		Receivables:          y.Receivables.Mul(factor),
		CashBank:             y.CashBank.Mul(factor),
		OtherAssets:          y.OtherAssets.Mul(factor),
	}
}
