package processors

import (
	"github.com/username/taxdraft/src/models"
)

// profitCalculatorImpl implements the ProfitCalculator interface.
type profitCalculatorImpl struct{}

// NewProfitCalculator creates a new instance of ProfitCalculator.
func NewProfitCalculator() ProfitCalculator {
	return &profitCalculatorImpl{}
}

// Calculate derives the trading result for one year. The function is total:
// every field defaults to zero and negative inputs flow through unchanged.
func (p *profitCalculatorImpl) Calculate(y models.YearFigures) models.ProfitResult {
	netSales := y.Turnover.Sub(y.ReturnInwards)
	netPurchases := y.Purchases.Sub(y.ReturnOutwards)

	costOfGoodsSold := y.OpeningStock.
		Add(netPurchases).
		Add(y.CarriageInward).
		Sub(y.ClosingStock)

	grossProfit := netSales.Sub(costOfGoodsSold)

	totalIndirect := y.Salaries.
		Add(y.RentUtilities).
		Add(y.AdminMisc).
		Add(y.Depreciation).
		Add(y.FinanceCosts).
		Add(y.OtherExpenses)

	netProfit := grossProfit.Add(y.OtherIncome).Sub(totalIndirect)

	return models.ProfitResult{
		NetSales:              netSales,
		NetPurchases:          netPurchases,
		CostOfGoodsSold:       costOfGoodsSold,
		GrossProfit:           grossProfit,
		TotalIndirectExpenses: totalIndirect,
		NetProfit:             netProfit,
	}
}
