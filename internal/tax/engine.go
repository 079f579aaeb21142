package tax

import (
	"math"

	"brutnet/internal/fiscal"
	"brutnet/internal/rates"
)

// Engine applies a progressive bracket scale using income splitting: the
// income is divided by the fiscal parts, taxed per part, and scaled back up.
type Engine struct {
	brackets []rates.Bracket
}

// NewEngine copies brackets, which must already be validated (ascending,
// contiguous, last one unbounded).
func NewEngine(brackets []rates.Bracket) *Engine {
	return &Engine{brackets: append([]rates.Bracket(nil), brackets...)}
}

var defaultEngine = NewEngine(rates.Default().Brackets)

// ComputeAnnualTax runs the default 2025 scale.
func ComputeAnnualTax(income float64, parts fiscal.Parts) float64 {
	return defaultEngine.AnnualTax(income, parts)
}

// BracketShare is the part of the per-part quotient taxed inside one bracket.
type BracketShare struct {
	Bracket rates.Bracket
	Taxable float64
	Tax     float64
}

// Assessment details how an annual tax figure was reached.
type Assessment struct {
	Income       float64
	Parts        fiscal.Parts
	Quotient     float64
	TaxPerPart   float64
	Total        float64
	MarginalRate float64
	Shares       []BracketShare
}

func (e *Engine) AnnualTax(income float64, parts fiscal.Parts) float64 {
	return e.Detail(income, parts).Total
}

// Detail computes the tax and keeps the per-bracket slices. A quotient sitting
// exactly on a bound stays in the lower bracket.
func (e *Engine) Detail(income float64, parts fiscal.Parts) Assessment {
	a := Assessment{Income: income, Parts: parts, Shares: []BracketShare{}}
	if !(income > 0) || math.IsInf(income, 0) || !(parts > 0) {
		return a
	}

	q := income / float64(parts)
	a.Quotient = q

	for _, b := range e.brackets {
		if q <= b.Lower {
			break
		}
		top := q
		if !b.Unbounded() && b.Upper < q {
			top = b.Upper
		}
		share := BracketShare{Bracket: b, Taxable: top - b.Lower}
		share.Tax = share.Taxable * b.Rate
		a.TaxPerPart += share.Tax
		a.MarginalRate = b.Rate
		a.Shares = append(a.Shares, share)
	}

	a.Total = a.TaxPerPart * float64(parts)
	return a
}
