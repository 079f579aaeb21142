package salary

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"brutnet/internal/fiscal"
	"brutnet/internal/rates"
	"brutnet/internal/tax"
)

const monthsPerYear = 12

// Direction tells which side of the contribution layer the amount is on.
type Direction string

const (
	GrossToNet Direction = "gross-to-net"
	NetToGross Direction = "net-to-gross"
)

// Period is the time span the input amount covers.
type Period string

const (
	Monthly Period = "monthly"
	Annual  Period = "annual"
)

var (
	ErrInvalidDirection = errors.New("invalid conversion direction")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidParts     = errors.New("fiscal parts must be positive")
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gross-to-net", "gross_to_net", "grosstonet", "brut":
		return GrossToNet, nil
	case "net-to-gross", "net_to_gross", "nettogross", "net":
		return NetToGross, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ParsePeriod defaults to Monthly on an empty string.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly", "month":
		return Monthly, nil
	case "annual", "yearly", "year":
		return Annual, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

// Request is one conversion. Period defaults to Monthly.
type Request struct {
	Amount    float64
	Direction Direction
	Status    rates.Status
	Parts     fiscal.Parts
	Period    Period
}

// Result holds monthly figures plus their annualized counterparts.
//
// A non-positive or non-finite amount yields the zero Result with Computed
// false. Zero is also a legitimate computed value for some fields, so callers
// should test Computed rather than Gross to tell "no input" apart.
type Result struct {
	Computed                  bool
	Gross                     float64
	NetBeforeTax              float64
	Contributions             float64
	AnnualGross               float64
	AnnualNetBeforeTax        float64
	TaxAnnual                 float64
	TaxMonthly                float64
	NetAfterTax               float64
	AnnualNetAfterTax         float64
	EffectiveContributionRate float64
	EffectiveTaxRate          float64
	MarginalTaxRate           float64
	Parts                     fiscal.Parts
}

// Converter turns gross pay into net pay and back. It holds only immutable
// configuration and is safe for concurrent use.
type Converter struct {
	table *rates.Table
	tax   *tax.Engine
}

// NewConverter expects a validated table.
func NewConverter(table *rates.Table) *Converter {
	return &Converter{table: table, tax: tax.NewEngine(table.Brackets)}
}

func (c *Converter) Table() *rates.Table {
	return c.table
}

func (c *Converter) TaxEngine() *tax.Engine {
	return c.tax
}

var defaultConverter = NewConverter(rates.Default())

// Convert runs a monthly conversion against the default 2025 table.
func Convert(amount float64, dir Direction, status rates.Status, parts fiscal.Parts) (Result, error) {
	return defaultConverter.Convert(Request{Amount: amount, Direction: dir, Status: status, Parts: parts})
}

func (c *Converter) Convert(req Request) (Result, error) {
	rate, err := c.table.ContributionRate(req.Status)
	if err != nil {
		return Result{}, err
	}
	if !(req.Parts > 0) || math.IsInf(float64(req.Parts), 0) {
		return Result{}, fmt.Errorf("%w, got %v", ErrInvalidParts, req.Parts)
	}
	period := req.Period
	if period == "" {
		period = Monthly
	}
	if period != Monthly && period != Annual {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	if req.Direction != GrossToNet && req.Direction != NetToGross {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidDirection, req.Direction)
	}

	amount := req.Amount
	if !validAmount(amount) {
		return Result{}, nil
	}
	if period == Annual {
		amount /= monthsPerYear
	}

	var gross, net float64
	switch req.Direction {
	case GrossToNet:
		gross = amount
		net = gross * (1 - rate)
	case NetToGross:
		net = amount
		gross = net / (1 - rate)
	}

	return c.finish(gross, net, req.Parts), nil
}

func (c *Converter) finish(gross, net float64, parts fiscal.Parts) Result {
	annualNet := net * monthsPerYear
	assessment := c.tax.Detail(annualNet, parts)
	taxMonthly := assessment.Total / monthsPerYear

	r := Result{
		Computed:           true,
		Gross:              gross,
		NetBeforeTax:       net,
		Contributions:      gross - net,
		AnnualGross:        gross * monthsPerYear,
		AnnualNetBeforeTax: annualNet,
		TaxAnnual:          assessment.Total,
		TaxMonthly:         taxMonthly,
		NetAfterTax:        net - taxMonthly,
		MarginalTaxRate:    assessment.MarginalRate,
		Parts:              parts,
	}
	r.AnnualNetAfterTax = r.NetAfterTax * monthsPerYear
	if gross > 0 {
		r.EffectiveContributionRate = r.Contributions / gross
	}
	if annualNet > 0 {
		r.EffectiveTaxRate = assessment.Total / annualNet
	}
	return r
}

func validAmount(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
