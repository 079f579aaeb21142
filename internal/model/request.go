package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID                string                  `json:"tenant_id"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

type CalculationInstructions struct {
	Calculations []Calculation `json:"calculations"`
}

type Calculation struct {
	CalculationID         string          `json:"calculation_id"`
	CalculationName       string          `json:"calculation_name"`
	CalculationProperties json.RawMessage `json:"calculation_properties"`
}

// Properties of the individual calculations.

type ConvertSalaryProperties struct {
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
	Status    string  `json:"status"`
	Period    string  `json:"period,omitempty"`
	Household
}

type Household struct {
	Coupled  bool     `json:"coupled"`
	Children int      `json:"children"`
	Parts    *float64 `json:"parts,omitempty"` // overrides coupled/children when set
}

type EmployerCostProperties struct {
	GrossMonthly float64 `json:"gross_monthly"`
	Status       string  `json:"status"`
}

type FiscalPartsProperties struct {
	Coupled  bool `json:"coupled"`
	Children int  `json:"children"`
}

type AnnualTaxProperties struct {
	TaxableIncome float64 `json:"taxable_income"`
	Parts         float64 `json:"parts"`
}

type SimulateRaisesProperties struct {
	GrossMonthly float64   `json:"gross_monthly"`
	Status       string    `json:"status"`
	Percents     []float64 `json:"percents,omitempty"`
	Household
}
