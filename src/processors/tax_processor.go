package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/policy"
)

// taxCalculatorImpl implements the TaxCalculator interface.
type taxCalculatorImpl struct {
	pol *policy.TaxPolicy
}

// NewTaxCalculator creates a new instance of TaxCalculator bound to a slab
// schedule. The algorithm never inspects concrete widths or rates; replace
// the policy and the same walk computes the new schedule.
func NewTaxCalculator(pol *policy.TaxPolicy) TaxCalculator {
	return &taxCalculatorImpl{pol: pol}
}

// Calculate clamps income at zero, then walks the slab schedule in order,
// taxing min(remaining, width) at each slab's rate until nothing remains. A
// zero-width slab takes the whole remainder. Tax, cess and total are rounded
// to whole currency units.
func (p *taxCalculatorImpl) Calculate(income decimal.Decimal) models.TaxResult {
	taxable := decimal.Max(decimal.Zero, income)

	remaining := taxable
	tax := decimal.Zero
	for _, slab := range p.pol.Slabs {
		if !remaining.IsPositive() {
			break
		}
		portion := remaining
		if !slab.Width.IsZero() && slab.Width.LessThan(remaining) {
			portion = slab.Width
		}
		tax = tax.Add(portion.Mul(slab.Rate))
		remaining = remaining.Sub(portion)
	}

	// Round tax and cess to whole currency units first so the reported
	// total always equals their sum.
	tax = tax.Round(0)
	cess := tax.Mul(p.pol.CessRate).Round(0)

	return models.TaxResult{
		TaxableIncome:  taxable,
		Tax:            tax,
		Cess:           cess,
		TotalLiability: tax.Add(cess),
	}
}
