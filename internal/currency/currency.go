// Package currency renders decimal amounts with a currency symbol and the
// digit grouping of a configured locale.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Regions that group digits 3 then 2 (12,34,567) instead of in threes.
var lakhRegions = map[string]bool{"IN": true, "BD": true, "NP": true}

// Formatter formats amounts for one symbol/locale pair. Digits come from the
// decimal's exact string form, so no precision is lost on large amounts.
type Formatter struct {
	symbol string
	lakh   bool
}

// NewFormatter builds a Formatter. An unparseable locale falls back to English.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	region, _ := tag.Region()
	return &Formatter{symbol: symbol, lakh: lakhRegions[region.String()]}
}

// Format renders the magnitude of amount with two decimals, e.g. "₹2,500.00".
// The sign is dropped; callers convey direction with a label.
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.symbol + f.grouped(amount.Abs().StringFixed(2))
}

// Signed renders amount with an explicit leading "+" or "-".
func (f *Formatter) Signed(amount decimal.Decimal) string {
	sign := "+"
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + f.Format(amount)
}

// Number renders a quantity with locale grouping and no symbol. Trailing
// zeros are dropped, so "150.00" prints as "150".
func (f *Formatter) Number(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-" + f.grouped(v.Abs().String())
	}
	return f.grouped(v.String())
}

// grouped inserts separators into the integer part of an unsigned decimal string.
func (f *Formatter) grouped(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && f.separatorBefore(len(intPart)-i) {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// separatorBefore reports whether a separator goes in front of a digit that
// has remaining digits, itself included, left to print.
func (f *Formatter) separatorBefore(remaining int) bool {
	if f.lakh {
		return remaining >= 3 && (remaining-3)%2 == 0
	}
	return remaining%3 == 0
}
