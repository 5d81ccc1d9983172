package models

import "github.com/shopspring/decimal"

// ComputeRequest is the body accepted by the compute, report and excel
// endpoints. Year1 is required. Year2 and AutoYear2 are mutually exclusive:
// either the caller supplies the second year or asks for it to be projected
// from Year1 at GrowthPercent.
type ComputeRequest struct {
	Metadata      FilerMetadata   `json:"metadata"`
	Year1         *YearFigures    `json:"year1"`
	Year2         *YearFigures    `json:"year2,omitempty"`
	AutoYear2     bool            `json:"auto_year2"`
	GrowthPercent decimal.Decimal `json:"growth_percent"`

	// EnforceContinuity defaults to true when omitted: Year-2 opening stock
	// and opening capital are carried forward from Year-1 closing values,
	// overriding whatever the caller supplied for Year 2. Each override is
	// surfaced as a note. Send false to use Year-2 figures exactly as given.
	EnforceContinuity *bool `json:"enforce_continuity,omitempty"`
}

// ContinuityEnabled reports the effective continuity flag.
func (r *ComputeRequest) ContinuityEnabled() bool {
	return r.EnforceContinuity == nil || *r.EnforceContinuity
}

// SummaryResponse is the flat compute response for the assessment year (the
// last year computed). Tax figures are whole currency units.
type SummaryResponse struct {
	NetProfit         float64 `json:"net_profit"`
	TotalIncome       float64 `json:"total_income"`
	Tax               int64   `json:"tax"`
	Cess              int64   `json:"cess"`
	TotalTaxLiability int64   `json:"total_tax_liability"`
}
