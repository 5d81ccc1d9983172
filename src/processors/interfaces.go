package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/models"
)

// ProfitCalculator derives the trading result and net profit from one year's
// figures.
type ProfitCalculator interface {
	Calculate(y models.YearFigures) models.ProfitResult
}

// GrowthProjector synthesizes a follow-on year by scaling every figure of a
// base year by a flat growth percentage. The percentage is validated by the
// caller; the projector applies whatever it is given.
type GrowthProjector interface {
	Project(y models.YearFigures, growthPercent decimal.Decimal) models.YearFigures
}

// CarryForward holds the Year-1 closing values that seed Year 2 under
// continuity.
type CarryForward struct {
	ClosingStock   decimal.Decimal
	ClosingCapital decimal.Decimal
}

// ContinuityEnforcer overwrites Year-2 opening values with Year-1 closing
// values and reports each override as a human-readable audit note.
type ContinuityEnforcer interface {
	Enforce(carry CarryForward, year2 *models.YearFigures) []string
}

// CapitalComposer builds the capital account and the balance sheet for one
// year, inserting balancing entries where the sides disagree.
type CapitalComposer interface {
	ComposeCapital(opening, netProfit decimal.Decimal, y models.YearFigures) models.CapitalStatement
	ComposeBalanceSheet(capitalClosing decimal.Decimal, y models.YearFigures) models.BalanceSheet
}

// TaxCalculator applies the configured slab schedule to one income value.
type TaxCalculator interface {
	Calculate(income decimal.Decimal) models.TaxResult
}
