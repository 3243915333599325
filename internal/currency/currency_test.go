package currency_test

import (
	"testing"

	"khata-ledger/internal/currency"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	f := currency.NewFormatter("₹", "en")

	assert.Equal(t, "₹2,500.00", f.Format(decimal.NewFromInt(2500)))
	assert.Equal(t, "₹1,200.00", f.Format(decimal.NewFromInt(-1200)))
	assert.Equal(t, "₹25.50", f.Format(decimal.RequireFromString("25.5")))
	assert.Equal(t, "₹0.00", f.Format(decimal.Zero))
}

func TestFormatter_Signed(t *testing.T) {
	f := currency.NewFormatter("$", "en")

	assert.Equal(t, "+$2,500.00", f.Signed(decimal.NewFromInt(2500)))
	assert.Equal(t, "-$1,200.00", f.Signed(decimal.NewFromInt(-1200)))
}

func TestFormatter_BadLocaleFallsBack(t *testing.T) {
	f := currency.NewFormatter("₹", "not a locale!")
	assert.Equal(t, "₹10.00", f.Format(decimal.NewFromInt(10)))
}

func TestFormatter_IndianGrouping(t *testing.T) {
	f := currency.NewFormatter("₹", "en-IN")

	assert.Equal(t, "₹12,34,567.89", f.Format(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "₹1,00,00,000.00", f.Format(decimal.NewFromInt(10000000)))
	assert.Equal(t, "₹2,500.00", f.Format(decimal.NewFromInt(2500)))
	assert.Equal(t, "₹999.00", f.Format(decimal.NewFromInt(999)))
	assert.Equal(t, "-₹1,20,000.00", f.Signed(decimal.NewFromInt(-120000)))
	assert.Equal(t, "1,50,000.5", f.Number(decimal.RequireFromString("150000.50")))
}

func TestFormatter_LargeAmountsKeepEveryDigit(t *testing.T) {
	amount := decimal.RequireFromString("12345678901234567.89")

	assert.Equal(t, "₹12,345,678,901,234,567.89", currency.NewFormatter("₹", "en").Format(amount))
	assert.Equal(t, "₹12,34,56,78,90,12,34,567.89", currency.NewFormatter("₹", "en-IN").Format(amount))
}

func TestFormatter_Number(t *testing.T) {
	f := currency.NewFormatter("₹", "en")

	assert.Equal(t, "150", f.Number(decimal.RequireFromString("150.00")))
	assert.Equal(t, "25.5", f.Number(decimal.RequireFromString("25.50")))
	assert.Equal(t, "12,000", f.Number(decimal.NewFromInt(12000)))
	assert.Equal(t, "-1,200", f.Number(decimal.NewFromInt(-1200)))
}

func TestFormatter_RoundsToPaise(t *testing.T) {
	f := currency.NewFormatter("₹", "en")
	assert.Equal(t, "₹10.13", f.Format(decimal.RequireFromString("10.125")))
}
