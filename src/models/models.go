package models

import "github.com/shopspring/decimal"

// FilerMetadata identifies the business a draft is prepared for. The fields
// are opaque strings as far as the computation is concerned; validation only
// requires that they are present.
type FilerMetadata struct {
	BusinessName   string `json:"business_name"`
	ProprietorName string `json:"proprietor_name"`
	TaxID          string `json:"tax_id"`
	DateOfBirth    string `json:"date_of_birth"`
	FiscalYear     string `json:"fiscal_year"`
}

// YearFigures holds one fiscal year of accounting inputs. Every field
// defaults to zero when absent from the request body. Values are expected to
// be non-negative in normal use but this is not enforced; negative amounts
// flow through the arithmetic unchanged.
type YearFigures struct {
	// Trading account inputs.
	OpeningStock   decimal.Decimal `json:"opening_stock"`
	Purchases      decimal.Decimal `json:"purchases"`
	ReturnOutwards decimal.Decimal `json:"return_outwards"`
	CarriageInward decimal.Decimal `json:"carriage_inward"`
	ClosingStock   decimal.Decimal `json:"closing_stock"`
	Turnover       decimal.Decimal `json:"turnover"`
	ReturnInwards  decimal.Decimal `json:"return_inwards"`
	OtherIncome    decimal.Decimal `json:"other_income"`

	// Indirect expenses.
	Salaries      decimal.Decimal `json:"salaries"`
	RentUtilities decimal.Decimal `json:"rent_utilities"`
	AdminMisc     decimal.Decimal `json:"admin_misc"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	FinanceCosts  decimal.Decimal `json:"finance_costs"`
	OtherExpenses decimal.Decimal `json:"other_expenses"`

	// Balance-sheet heads.
	CapitalOpen          decimal.Decimal `json:"capital_open"`
	Drawings             decimal.Decimal `json:"drawings"`
	AdditionalInvestment decimal.Decimal `json:"additional_investment"`
	Loans                decimal.Decimal `json:"loans"`
	Payables             decimal.Decimal `json:"payables"`
	OtherLiabilities     decimal.Decimal `json:"other_liabilities"`
	FixedAssets          decimal.Decimal `json:"fixed_assets"`
	Receivables          decimal.Decimal `json:"receivables"`
	CashBank             decimal.Decimal `json:"cash_bank"`
	OtherAssets          decimal.Decimal `json:"other_assets"`
}

// ProfitResult is the derived trading result for one year. Recomputed per
// request, never stored.
type ProfitResult struct {
	NetSales              decimal.Decimal `json:"net_sales"`
	NetPurchases          decimal.Decimal `json:"net_purchases"`
	CostOfGoodsSold       decimal.Decimal `json:"cost_of_goods_sold"`
	GrossProfit           decimal.Decimal `json:"gross_profit"`
	TotalIndirectExpenses decimal.Decimal `json:"total_indirect_expenses"`
	NetProfit             decimal.Decimal `json:"net_profit"`
}

// TaxResult is the slab-tax outcome for one income value. Tax, Cess and
// TotalLiability are whole currency units.
type TaxResult struct {
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	Tax            decimal.Decimal `json:"tax"`
	Cess           decimal.Decimal `json:"cess"`
	TotalLiability decimal.Decimal `json:"total_liability"`
}

// CapitalStatement carries the proprietor's capital account for one year:
// the raw figures plus the two-sided presentation. Closing is floored at
// zero and the debit side always ends with the derived closing-balance
// entry.
type CapitalStatement struct {
	Opening              decimal.Decimal `json:"opening"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	AdditionalInvestment decimal.Decimal `json:"additional_investment"`
	Drawings             decimal.Decimal `json:"drawings"`
	Closing              decimal.Decimal `json:"closing"`

	Debit  []LineItem `json:"debit"`
	Credit []LineItem `json:"credit"`
}

// BalanceSheet holds the two sides after balancing. TotalLiabilities and
// TotalAssets are equal once the balancing entry (if any) is inserted.
type BalanceSheet struct {
	Liabilities []LineItem `json:"liabilities"`
	Assets      []LineItem `json:"assets"`

	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
}
