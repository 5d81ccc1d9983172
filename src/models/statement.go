package models

import "github.com/shopspring/decimal"

// LineItem is one labeled amount in a rendered table.
type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Statement is a two-sided T-format table, ordered as rendered.
type Statement struct {
	Title  string     `json:"title"`
	Debit  []LineItem `json:"debit"`
	Credit []LineItem `json:"credit"`
}

// SumLines returns the exact sum of the line amounts.
func SumLines(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// BalanceSides augments two labeled-amount sequences so their sums are
// equal: the side with the smaller sum receives a single plug entry carrying
// the difference, under the given label. Sides that already match are
// returned unchanged with no plug inserted. The plug is synthetic and must
// never be read as a real account. Input slices are not modified.
func BalanceSides(debit, credit []LineItem, plugLabel string) ([]LineItem, []LineItem) {
	debitTotal := SumLines(debit)
	creditTotal := SumLines(credit)

	switch debitTotal.Cmp(creditTotal) {
	case -1:
		debit = appendLine(debit, LineItem{Label: plugLabel, Amount: creditTotal.Sub(debitTotal)})
	case 1:
		credit = appendLine(credit, LineItem{Label: plugLabel, Amount: debitTotal.Sub(creditTotal)})
	}
	return debit, credit
}

// appendLine copies before appending so callers keep ownership of their
// slices.
func appendLine(items []LineItem, it LineItem) []LineItem {
	out := make([]LineItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, it)
}
