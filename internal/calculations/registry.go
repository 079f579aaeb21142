package calculations

import (
	"sort"

	"brutnet/internal/salary"
)

const (
	NameConvertSalary       = "convert_salary"
	NameComputeEmployerCost = "compute_employer_cost"
	NameComputeFiscalParts  = "compute_fiscal_parts"
	NameComputeAnnualTax    = "compute_annual_tax"
	NameSimulateRaises      = "simulate_raises"
)

// Registry maps calculation names to handlers bound to one converter.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry(conv *salary.Converter) *Registry {
	return &Registry{handlers: map[string]Handler{
		NameConvertSalary:       &ConvertSalaryHandler{conv: conv},
		NameComputeEmployerCost: &EmployerCostHandler{conv: conv},
		NameComputeFiscalParts:  &FiscalPartsHandler{},
		NameComputeAnnualTax:    &AnnualTaxHandler{conv: conv},
		NameSimulateRaises:      &SimulateRaisesHandler{conv: conv},
	}}
}

func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
