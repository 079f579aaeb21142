package calculations

import (
	"brutnet/internal/model"
	"brutnet/internal/rates"
	"brutnet/internal/salary"
)

type EmployerCostHandler struct {
	conv *salary.Converter
}

func (h *EmployerCostHandler) props(calc *model.Calculation) (model.EmployerCostProperties, rates.Status, error) {
	var props model.EmployerCostProperties
	if err := decode(calc, &props); err != nil {
		return props, "", err
	}
	status, err := rates.ParseStatus(props.Status)
	return props, status, err
}

func (h *EmployerCostHandler) Validate(calc *model.Calculation) []model.CalculationMessage {
	props, _, err := h.props(calc)
	if err != nil {
		return []model.CalculationMessage{messageFor(err)}
	}
	if props.GrossMonthly <= 0 {
		return []model.CalculationMessage{degenerate("gross_monthly", props.GrossMonthly)}
	}
	return nil
}

func (h *EmployerCostHandler) Apply(calc *model.Calculation) (any, []model.CalculationMessage) {
	props, status, err := h.props(calc)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	res, err := h.conv.EmployerCost(props.GrossMonthly, status)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	return PresentEmployerCost(res), nil
}
