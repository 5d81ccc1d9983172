package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/username/taxdraft/src/models"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// tradingYear is a hand-checked set of figures reused across processor tests.
func tradingYear() models.YearFigures {
	return models.YearFigures{
		OpeningStock:   dec("80000"),
		Purchases:      dec("600000"),
		ReturnOutwards: dec("20000"),
		CarriageInward: dec("10000"),
		ClosingStock:   dec("100000"),
		Turnover:       dec("1200000"),
		ReturnInwards:  dec("50000"),
		OtherIncome:    dec("30000"),
		Salaries:       dec("120000"),
		RentUtilities:  dec("60000"),
		AdminMisc:      dec("25000"),
		Depreciation:   dec("40000"),
		FinanceCosts:   dec("15000"),
		OtherExpenses:  dec("10000"),
	}
}

func TestProfitCalculate(t *testing.T) {
	got := NewProfitCalculator().Calculate(tradingYear())

	assert.True(t, dec("1150000").Equal(got.NetSales), "net sales: %s", got.NetSales)
	assert.True(t, dec("580000").Equal(got.NetPurchases), "net purchases: %s", got.NetPurchases)
	assert.True(t, dec("570000").Equal(got.CostOfGoodsSold), "cogs: %s", got.CostOfGoodsSold)
	assert.True(t, dec("580000").Equal(got.GrossProfit), "gross profit: %s", got.GrossProfit)
	assert.True(t, dec("270000").Equal(got.TotalIndirectExpenses), "indirect: %s", got.TotalIndirectExpenses)
	assert.True(t, dec("340000").Equal(got.NetProfit), "net profit: %s", got.NetProfit)
}

func TestProfitCalculate_AllZero(t *testing.T) {
	got := NewProfitCalculator().Calculate(models.YearFigures{})

	assert.True(t, got.NetSales.IsZero())
	assert.True(t, got.CostOfGoodsSold.IsZero())
	assert.True(t, got.GrossProfit.IsZero())
	assert.True(t, got.NetProfit.IsZero())
}

func TestProfitCalculate_NegativesFlowThrough(t *testing.T) {
	// Returns exceeding turnover produce negative net sales; nothing clamps.
	y := models.YearFigures{
		Turnover:      dec("100"),
		ReturnInwards: dec("150"),
		Salaries:      dec("40"),
	}
	got := NewProfitCalculator().Calculate(y)

	assert.True(t, dec("-50").Equal(got.NetSales))
	assert.True(t, dec("-50").Equal(got.GrossProfit))
	assert.True(t, dec("-90").Equal(got.NetProfit))
}

func TestProfitCalculate_Loss(t *testing.T) {
	y := tradingYear()
	y.Salaries = dec("900000")
	got := NewProfitCalculator().Calculate(y)

	// 580000 gross + 30000 other - 1050000 indirect = -440000.
	assert.True(t, dec("-440000").Equal(got.NetProfit))
	assert.True(t, got.NetProfit.IsNegative())
}

func TestProfitCalculate_FractionalAmounts(t *testing.T) {
	y := models.YearFigures{
		Turnover:  dec("1000.75"),
		Purchases: dec("400.25"),
	}
	got := NewProfitCalculator().Calculate(y)

	assert.True(t, dec("1000.75").Equal(got.NetSales))
	assert.True(t, dec("400.25").Equal(got.CostOfGoodsSold))
	assert.True(t, dec("600.50").Equal(got.NetProfit))
}
