package calculations

import (
	"brutnet/internal/model"
	"brutnet/internal/money"
	"brutnet/internal/salary"
	"brutnet/internal/tax"
)

// The core works in float64; everything leaving through the API is rounded
// here and only here.

func PresentConversion(r salary.Result) model.ConversionResult {
	out := model.ConversionResult{
		Computed:                  r.Computed,
		Gross:                     money.Cents(r.Gross),
		NetBeforeTax:              money.Cents(r.NetBeforeTax),
		Contributions:             money.Cents(r.Contributions),
		TaxAnnual:                 money.Cents(r.TaxAnnual),
		TaxMonthly:                money.Cents(r.TaxMonthly),
		NetAfterTax:               money.Cents(r.NetAfterTax),
		AnnualGross:               money.Cents(r.AnnualGross),
		AnnualNetBeforeTax:        money.Cents(r.AnnualNetBeforeTax),
		AnnualNetAfterTax:         money.Cents(r.AnnualNetAfterTax),
		EffectiveContributionRate: money.Rate(r.EffectiveContributionRate),
		EffectiveTaxRate:          money.Rate(r.EffectiveTaxRate),
		MarginalTaxRate:           r.MarginalTaxRate,
		Parts:                     float64(r.Parts),
		Breakdown:                 []model.Slice{},
	}
	for _, s := range salary.Breakdown(r).Slices {
		out.Breakdown = append(out.Breakdown, model.Slice{
			Label:  s.Label,
			Amount: money.Cents(s.Amount),
			Share:  money.Rate(s.Share),
		})
	}
	return out
}

func PresentEmployerCost(r salary.EmployerCostResult) model.EmployerCostResult {
	return model.EmployerCostResult{
		Gross:                 money.Cents(r.Gross),
		EmployerRate:          r.EmployerRate,
		EmployerContributions: money.Cents(r.EmployerContributions),
		TotalCost:             money.Cents(r.TotalCost),
		CostPerNetEuro:        money.Round(r.CostPerNetEuro, 2),
	}
}

func PresentAssessment(a tax.Assessment) model.AnnualTaxResult {
	out := model.AnnualTaxResult{
		TaxableIncome: money.Cents(a.Income),
		Parts:         float64(a.Parts),
		Quotient:      money.Cents(a.Quotient),
		TaxPerPart:    money.Cents(a.TaxPerPart),
		TaxAnnual:     money.Cents(a.Total),
		MarginalRate:  a.MarginalRate,
		Brackets:      make([]model.BracketShare, 0, len(a.Shares)),
	}
	for _, s := range a.Shares {
		share := model.BracketShare{
			Lower:   s.Bracket.Lower,
			Rate:    s.Bracket.Rate,
			Taxable: money.Cents(s.Taxable),
			Tax:     money.Cents(s.Tax),
		}
		if !s.Bracket.Unbounded() {
			upper := s.Bracket.Upper
			share.Upper = &upper
		}
		out.Brackets = append(out.Brackets, share)
	}
	return out
}

func PresentRaises(current salary.Result, sims []salary.RaiseSimulation) model.RaiseSimulationResult {
	out := model.RaiseSimulationResult{
		Current:     PresentConversion(current),
		Simulations: make([]model.RaiseSimulation, 0, len(sims)),
	}
	for _, s := range sims {
		out.Simulations = append(out.Simulations, model.RaiseSimulation{
			Percent:      s.Percent,
			NewGross:     money.Cents(s.NewGross),
			NewNet:       money.Cents(s.NewNet),
			Delta:        money.Cents(s.Delta),
			DeltaPercent: money.Round(s.DeltaPercent, 2),
		})
	}
	return out
}
