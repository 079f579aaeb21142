package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cents rounds x half away from zero to two decimals. The core computes in
// float64; rounding only happens at the output boundary.
func Cents(x float64) float64 {
	return Round(x, 2)
}

func Round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Rate rounds a ratio to four decimals (basis points).
func Rate(x float64) float64 {
	return Round(x, 4)
}

// Format renders x with the given number of decimals, grouping thousands
// with a space and using a comma as the decimal separator ("3 000,50").
func Format(x float64, places int32) string {
	s := decimal.NewFromFloat(x).StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}

// Euros formats a whole-euro amount with the currency sign, the way the
// calculator displays results ("2 188 €").
func Euros(x float64) string {
	return Format(x, 0) + " €"
}

// Percent formats a ratio as a percentage with one decimal ("22,0 %").
func Percent(ratio float64) string {
	return Format(ratio*100, 1) + " %"
}
