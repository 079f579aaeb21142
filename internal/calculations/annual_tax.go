package calculations

import (
	"fmt"

	"brutnet/internal/fiscal"
	"brutnet/internal/model"
	"brutnet/internal/salary"
)

type AnnualTaxHandler struct {
	conv *salary.Converter
}

func (h *AnnualTaxHandler) props(calc *model.Calculation) (model.AnnualTaxProperties, error) {
	var props model.AnnualTaxProperties
	if err := decode(calc, &props); err != nil {
		return props, err
	}
	if props.Parts <= 0 {
		return props, fmt.Errorf("%w, got %v", salary.ErrInvalidParts, props.Parts)
	}
	return props, nil
}

func (h *AnnualTaxHandler) Validate(calc *model.Calculation) []model.CalculationMessage {
	props, err := h.props(calc)
	if err != nil {
		return []model.CalculationMessage{messageFor(err)}
	}
	if props.TaxableIncome < 0 {
		return []model.CalculationMessage{warning(model.CodeDegenerateAmount,
			fmt.Sprintf("taxable_income %v is negative, no tax is due", props.TaxableIncome))}
	}
	return nil
}

func (h *AnnualTaxHandler) Apply(calc *model.Calculation) (any, []model.CalculationMessage) {
	props, err := h.props(calc)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	a := h.conv.TaxEngine().Detail(props.TaxableIncome, fiscal.Parts(props.Parts))
	return PresentAssessment(a), nil
}
