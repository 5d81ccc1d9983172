// Package policy holds the tax-schedule and presentation policy the
// computation pipeline is parameterised with: the progressive slab table,
// the cess rate, and the labels used for synthetic balancing entries. The
// arithmetic never hard-codes any of these; swapping the policy (for a new
// assessment year, say) must not touch the calculators.
package policy

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrInvalidPolicy = errors.New("invalid tax policy")

// Slab taxes at most Width of the remaining income at Rate (a fraction, not
// a percent). A zero Width marks the open-ended final slab.
type Slab struct {
	Width decimal.Decimal
	Rate  decimal.Decimal
}

// Labels names the synthetic entries the pipeline inserts into statements.
// They are policy so a layout change never touches the arithmetic.
type Labels struct {
	BalancingFigure string
	CapitalClosing  string
	TradingProfit   string
	TradingLoss     string
}

// TaxPolicy is the full configuration consumed by the pipeline.
type TaxPolicy struct {
	Slabs    []Slab
	CessRate decimal.Decimal
	Labels   Labels
}

// Default returns the built-in policy: the individual slab schedule with a
// 4% health and education cess, and the standard statement labels.
func Default() *TaxPolicy {
	return &TaxPolicy{
		Slabs: []Slab{
			{Width: decimal.NewFromInt(300000), Rate: decimal.Zero},
			{Width: decimal.NewFromInt(400000), Rate: pct(5)},
			{Width: decimal.NewFromInt(300000), Rate: pct(10)},
			{Width: decimal.NewFromInt(200000), Rate: pct(15)},
			{Width: decimal.NewFromInt(300000), Rate: pct(20)},
			{Width: decimal.Zero, Rate: pct(30)},
		},
		CessRate: pct(4),
		Labels:   DefaultLabels(),
	}
}

// DefaultLabels returns the standard labels for synthetic statement entries.
func DefaultLabels() Labels {
	return Labels{
		BalancingFigure: "Balancing Figure",
		CapitalClosing:  "To Closing Balance",
		TradingProfit:   "To Net Profit",
		TradingLoss:     "By Net Loss",
	}
}

// CessPercent returns the cess rate as a percentage, for display.
func (p *TaxPolicy) CessPercent() decimal.Decimal {
	return p.CessRate.Mul(decimal.NewFromInt(100))
}

// Validate checks the structural rules every loaded policy must satisfy:
// at least one slab, positive widths everywhere except an optional
// open-ended final slab, and rates within [0,1].
func (p *TaxPolicy) Validate() error {
	if len(p.Slabs) == 0 {
		return fmt.Errorf("%w: no slabs defined", ErrInvalidPolicy)
	}
	one := decimal.NewFromInt(1)
	for i, s := range p.Slabs {
		if s.Width.IsNegative() {
			return fmt.Errorf("%w: slab %d has negative width", ErrInvalidPolicy, i+1)
		}
		if s.Width.IsZero() && i != len(p.Slabs)-1 {
			return fmt.Errorf("%w: slab %d has zero width but is not the final slab", ErrInvalidPolicy, i+1)
		}
		if s.Rate.IsNegative() || s.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: slab %d rate %s outside [0,1]", ErrInvalidPolicy, i+1, s.Rate)
		}
	}
	if p.CessRate.IsNegative() || p.CessRate.GreaterThan(one) {
		return fmt.Errorf("%w: cess rate %s outside [0,1]", ErrInvalidPolicy, p.CessRate)
	}
	return nil
}

// File shapes. Rates are percentages in the YAML for readability; the loader
// converts them to fractions.
type policyFile struct {
	Slabs           []slabEntry `yaml:"slabs"`
	CessRatePercent float64     `yaml:"cess_rate_percent"`
	Labels          labelsEntry `yaml:"labels"`
}

type slabEntry struct {
	Width       float64 `yaml:"width"`
	RatePercent float64 `yaml:"rate_percent"`
}

type labelsEntry struct {
	BalancingFigure string `yaml:"balancing_figure"`
	CapitalClosing  string `yaml:"capital_closing"`
	TradingProfit   string `yaml:"trading_profit"`
	TradingLoss     string `yaml:"trading_loss"`
}

// LoadFile reads a YAML policy file. Omitted labels fall back to the
// defaults; slabs and cess must be given in full.
func LoadFile(path string) (*TaxPolicy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tax policy file: %w", err)
	}
	var pf policyFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return pf.toPolicy()
}

func (pf *policyFile) toPolicy() (*TaxPolicy, error) {
	hundred := decimal.NewFromInt(100)

	p := &TaxPolicy{
		CessRate: decimal.NewFromFloat(pf.CessRatePercent).Div(hundred),
		Labels:   DefaultLabels(),
	}
	for _, s := range pf.Slabs {
		p.Slabs = append(p.Slabs, Slab{
			Width: decimal.NewFromFloat(s.Width),
			Rate:  decimal.NewFromFloat(s.RatePercent).Div(hundred),
		})
	}

	if pf.Labels.BalancingFigure != "" {
		p.Labels.BalancingFigure = pf.Labels.BalancingFigure
	}
	if pf.Labels.CapitalClosing != "" {
		p.Labels.CapitalClosing = pf.Labels.CapitalClosing
	}
	if pf.Labels.TradingProfit != "" {
		p.Labels.TradingProfit = pf.Labels.TradingProfit
	}
	if pf.Labels.TradingLoss != "" {
		p.Labels.TradingLoss = pf.Labels.TradingLoss
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func pct(p int64) decimal.Decimal {
	return decimal.NewFromInt(p).Div(decimal.NewFromInt(100))
}
