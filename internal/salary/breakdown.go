package salary

const (
	SliceNet           = "net"
	SliceContributions = "contributions"
	SliceIncomeTax     = "income_tax"
)

type Slice struct {
	Label  string
	Amount float64
	Share  float64
}

// PayBreakdown splits a monthly gross into what the employee keeps, what goes
// to contributions and what goes to income tax.
type PayBreakdown struct {
	Total  float64
	Slices []Slice
}

// Breakdown drops zero slices; the remaining shares sum to 1.
func Breakdown(r Result) PayBreakdown {
	parts := []Slice{
		{Label: SliceNet, Amount: r.NetAfterTax},
		{Label: SliceContributions, Amount: r.Contributions},
		{Label: SliceIncomeTax, Amount: r.TaxMonthly},
	}

	var b PayBreakdown
	for _, s := range parts {
		if s.Amount > 0 {
			b.Total += s.Amount
			b.Slices = append(b.Slices, s)
		}
	}
	for i := range b.Slices {
		b.Slices[i].Share = b.Slices[i].Amount / b.Total
	}
	return b
}
