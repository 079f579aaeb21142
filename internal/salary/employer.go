package salary

import "brutnet/internal/rates"

// EmployerCostResult is what a month of gross pay costs the employer.
type EmployerCostResult struct {
	Gross                 float64
	EmployerRate          float64
	EmployerContributions float64
	TotalCost             float64
	// CostPerNetEuro is the total cost for each unit of pre-tax net pay the
	// employee receives.
	CostPerNetEuro float64
}

func ComputeEmployerCost(grossMonthly float64, status rates.Status) (EmployerCostResult, error) {
	return defaultConverter.EmployerCost(grossMonthly, status)
}

// EmployerCost uses the employer-side table, not the employee contribution
// rates. A non-positive or non-finite gross yields the zero result.
func (c *Converter) EmployerCost(grossMonthly float64, status rates.Status) (EmployerCostResult, error) {
	employerRate, err := c.table.EmployerRate(status)
	if err != nil {
		return EmployerCostResult{}, err
	}
	employeeRate, err := c.table.ContributionRate(status)
	if err != nil {
		return EmployerCostResult{}, err
	}
	if !validAmount(grossMonthly) {
		return EmployerCostResult{}, nil
	}

	contributions := grossMonthly * employerRate
	r := EmployerCostResult{
		Gross:                 grossMonthly,
		EmployerRate:          employerRate,
		EmployerContributions: contributions,
		TotalCost:             grossMonthly + contributions,
	}
	if net := grossMonthly * (1 - employeeRate); net > 0 {
		r.CostPerNetEuro = r.TotalCost / net
	}
	return r, nil
}
