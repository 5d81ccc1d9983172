package processors

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/utils"
)

// continuityEnforcerImpl implements the ContinuityEnforcer interface.
type continuityEnforcerImpl struct{}

// NewContinuityEnforcer creates a new instance of ContinuityEnforcer.
func NewContinuityEnforcer() ContinuityEnforcer {
	return &continuityEnforcerImpl{}
}

// Enforce carries Year-1 closing stock and closing capital into Year-2
// opening values. The overrides apply even when Year 2 was supplied
// explicitly; whatever the caller sent for opening stock or opening capital
// is replaced, and every substitution is returned as an audit note for the
// rendered report.
func (p *continuityEnforcerImpl) Enforce(carry CarryForward, year2 *models.YearFigures) []string {
	var notes []string

	notes = append(notes, carryNote(
		"opening stock", "closing stock", carry.ClosingStock, year2.OpeningStock))
	year2.OpeningStock = carry.ClosingStock

	notes = append(notes, carryNote(
		"opening capital", "closing capital", carry.ClosingCapital, year2.CapitalOpen))
	year2.CapitalOpen = carry.ClosingCapital

	return notes
}

func carryNote(target, source string, carried, supplied decimal.Decimal) string {
	if supplied.Equal(carried) {
		return fmt.Sprintf("Year 2 %s carried forward from Year 1 %s (%s).",
			target, source, utils.FormatAmount(carried))
	}
	return fmt.Sprintf("Year 2 %s carried forward from Year 1 %s (%s); supplied value %s was replaced.",
		target, source, utils.FormatAmount(carried), utils.FormatAmount(supplied))
}
