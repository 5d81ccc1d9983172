package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/username/taxdraft/src/policy"
)

func defaultTaxCalc() TaxCalculator {
	return NewTaxCalculator(policy.Default())
}

func TestTaxCalculate_WorkedExample(t *testing.T) {
	got := defaultTaxCalc().Calculate(dec("1000000"))

	// 300000@0 + 400000@5% + 300000@10% = 50000.
	assert.True(t, dec("50000").Equal(got.Tax), "tax: %s", got.Tax)
	assert.True(t, dec("2000").Equal(got.Cess), "cess: %s", got.Cess)
	assert.True(t, dec("52000").Equal(got.TotalLiability), "total: %s", got.TotalLiability)
	assert.True(t, dec("1000000").Equal(got.TaxableIncome))
}

func TestTaxCalculate_ZeroIncome(t *testing.T) {
	got := defaultTaxCalc().Calculate(decimal.Zero)

	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Cess.IsZero())
	assert.True(t, got.TotalLiability.IsZero())
}

func TestTaxCalculate_LossClampedToZero(t *testing.T) {
	got := defaultTaxCalc().Calculate(dec("-50000"))

	assert.True(t, got.TaxableIncome.IsZero(), "losses clamp to zero before the slab walk")
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Cess.IsZero())
	assert.True(t, got.TotalLiability.IsZero())
}

func TestTaxCalculate_SlabBoundaries(t *testing.T) {
	tests := []struct {
		income string
		tax    string
		cess   string
		total  string
	}{
		{"300000", "0", "0", "0"},            // end of the free slab
		{"350000", "2500", "100", "2600"},    // partway into the 5% slab
		{"700000", "20000", "800", "20800"},  // end of the 5% slab
		{"1200000", "80000", "3200", "83200"},
		{"1500000", "140000", "5600", "145600"},
		{"2000000", "290000", "11600", "301600"}, // into the open-ended 30% slab
	}
	calc := defaultTaxCalc()
	for _, tt := range tests {
		got := calc.Calculate(dec(tt.income))
		assert.True(t, dec(tt.tax).Equal(got.Tax),
			"income %s: tax got %s, want %s", tt.income, got.Tax, tt.tax)
		assert.True(t, dec(tt.cess).Equal(got.Cess),
			"income %s: cess got %s, want %s", tt.income, got.Cess, tt.cess)
		assert.True(t, dec(tt.total).Equal(got.TotalLiability),
			"income %s: total got %s, want %s", tt.income, got.TotalLiability, tt.total)
	}
}

func TestTaxCalculate_RoundsToWholeUnits(t *testing.T) {
	// 33333.33 falls in the 5% slab: raw tax 1666.6665 rounds to 1667,
	// cess on the rounded tax is 66.68 and rounds to 67.
	got := defaultTaxCalc().Calculate(dec("333333.33"))

	assert.True(t, dec("1667").Equal(got.Tax), "tax: %s", got.Tax)
	assert.True(t, dec("67").Equal(got.Cess), "cess: %s", got.Cess)
	assert.True(t, got.TotalLiability.Equal(got.Tax.Add(got.Cess)),
		"total equals the sum of the rounded parts")
}

func TestTaxCalculate_MonotonicInIncome(t *testing.T) {
	calc := defaultTaxCalc()
	prev := decimal.Zero
	for _, income := range []string{"0", "100000", "300000", "500000", "900000", "1300000", "2500000"} {
		got := calc.Calculate(dec(income))
		assert.True(t, got.TotalLiability.GreaterThanOrEqual(prev),
			"liability decreased at income %s", income)
		prev = got.TotalLiability
	}
}

func TestTaxCalculate_SwappedPolicy(t *testing.T) {
	// A flat 10% schedule with no cess exercises the same walk with a
	// different policy; the calculator embeds nothing from the default.
	flat := &policy.TaxPolicy{
		Slabs:  []policy.Slab{{Width: decimal.Zero, Rate: dec("0.10")}},
		Labels: policy.DefaultLabels(),
	}
	got := NewTaxCalculator(flat).Calculate(dec("500000"))

	assert.True(t, dec("50000").Equal(got.Tax))
	assert.True(t, got.Cess.IsZero())
	assert.True(t, dec("50000").Equal(got.TotalLiability))
}

func TestTaxCalculate_TwoSlabPolicy(t *testing.T) {
	pol := &policy.TaxPolicy{
		Slabs: []policy.Slab{
			{Width: dec("1000"), Rate: decimal.Zero},
			{Width: decimal.Zero, Rate: dec("0.50")},
		},
		CessRate: decimal.Zero,
		Labels:   policy.DefaultLabels(),
	}
	got := NewTaxCalculator(pol).Calculate(dec("3000"))

	assert.True(t, dec("1000").Equal(got.Tax))
}
