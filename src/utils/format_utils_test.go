package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "₹0.00"},
		{"123", "₹123.00"},
		{"1000", "₹1,000.00"},
		{"80000", "₹80,000.00"},
		{"500000", "₹5,00,000.00"},
		{"1234567.89", "₹12,34,567.89"},
		{"123456789", "₹12,34,56,789.00"},
		{"1234.5", "₹1,234.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(dec(tc.amount)), "amount %s", tc.amount)
	}
}

func TestFormatAmount_Negative(t *testing.T) {
	assert.Equal(t, "-₹1,234.50", FormatAmount(dec("-1234.5")))
	assert.Equal(t, "-₹75,000.00", FormatAmount(dec("-75000")))
}

func TestFormatAmount_RoundsToTwoPlaces(t *testing.T) {
	assert.Equal(t, "₹100.13", FormatAmount(dec("100.125")))
	assert.Equal(t, "₹0.10", FormatAmount(dec("0.1")))
}
