package model

// Amounts below are rounded to cents and ratios to four decimals.

type ConversionResult struct {
	Computed                  bool    `json:"computed"`
	Gross                     float64 `json:"gross"`
	NetBeforeTax              float64 `json:"net_before_tax"`
	Contributions             float64 `json:"contributions"`
	TaxAnnual                 float64 `json:"tax_annual"`
	TaxMonthly                float64 `json:"tax_monthly"`
	NetAfterTax               float64 `json:"net_after_tax"`
	AnnualGross               float64 `json:"annual_gross"`
	AnnualNetBeforeTax        float64 `json:"annual_net_before_tax"`
	AnnualNetAfterTax         float64 `json:"annual_net_after_tax"`
	EffectiveContributionRate float64 `json:"effective_contribution_rate"`
	EffectiveTaxRate          float64 `json:"effective_tax_rate"`
	MarginalTaxRate           float64 `json:"marginal_tax_rate"`
	Parts                     float64 `json:"parts"`
	Breakdown                 []Slice `json:"breakdown"`
}

type Slice struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"`
}

type EmployerCostResult struct {
	Gross                 float64 `json:"gross"`
	EmployerRate          float64 `json:"employer_rate"`
	EmployerContributions float64 `json:"employer_contributions"`
	TotalCost             float64 `json:"total_cost"`
	CostPerNetEuro        float64 `json:"cost_per_net_euro"`
}

type FiscalPartsResult struct {
	Parts float64 `json:"parts"`
}

type AnnualTaxResult struct {
	TaxableIncome float64        `json:"taxable_income"`
	Parts         float64        `json:"parts"`
	Quotient      float64        `json:"quotient"`
	TaxPerPart    float64        `json:"tax_per_part"`
	TaxAnnual     float64        `json:"tax_annual"`
	MarginalRate  float64        `json:"marginal_rate"`
	Brackets      []BracketShare `json:"brackets"`
}

type BracketShare struct {
	Lower   float64  `json:"lower"`
	Upper   *float64 `json:"upper"` // null for the unbounded top bracket
	Rate    float64  `json:"rate"`
	Taxable float64  `json:"taxable"`
	Tax     float64  `json:"tax"`
}

type RaiseSimulation struct {
	Percent      float64 `json:"percent"`
	NewGross     float64 `json:"new_gross"`
	NewNet       float64 `json:"new_net"`
	Delta        float64 `json:"delta"`
	DeltaPercent float64 `json:"delta_percent"`
}

type RaiseSimulationResult struct {
	Current     ConversionResult  `json:"current"`
	Simulations []RaiseSimulation `json:"simulations"`
}
