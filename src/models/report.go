package models

// YearComputation bundles everything the pipeline derives for one fiscal
// year, before presentation.
type YearComputation struct {
	Label        string
	Figures      YearFigures
	Profit       ProfitResult
	Capital      CapitalStatement
	BalanceSheet BalanceSheet
	Tax          TaxResult
}

// Computation is the full pipeline output for a request: one or two computed
// years plus the audit notes accumulated along the way (growth projection,
// continuity overrides).
type Computation struct {
	Metadata FilerMetadata
	Years    []YearComputation
	Notes    []string
}

// YearReport is the presentation of one computed year: every table as an
// ordered list of labeled amounts, ready for tabular rendering.
type YearReport struct {
	FiscalYear     string       `json:"fiscal_year"`
	Trading        Statement    `json:"trading_and_profit_loss"`
	CapitalAccount Statement    `json:"capital_account"`
	BalanceSheet   BalanceSheet `json:"balance_sheet"`
	TaxComputation []LineItem   `json:"tax_computation"`
	Profit         ProfitResult `json:"profit"`
	Tax            TaxResult    `json:"tax"`
}

// DraftReport is the full statement set returned by the report endpoint and
// rendered into the workbook.
type DraftReport struct {
	Metadata FilerMetadata `json:"metadata"`
	Years    []YearReport  `json:"years"`
	Notes    []string      `json:"notes"`
}
