package calculations

import (
	"brutnet/internal/model"
	"brutnet/internal/rates"
	"brutnet/internal/salary"
)

type ConvertSalaryHandler struct {
	conv *salary.Converter
}

func (h *ConvertSalaryHandler) request(calc *model.Calculation) (salary.Request, error) {
	var props model.ConvertSalaryProperties
	if err := decode(calc, &props); err != nil {
		return salary.Request{}, err
	}

	status, err := rates.ParseStatus(props.Status)
	if err != nil {
		return salary.Request{}, err
	}
	dir, err := salary.ParseDirection(props.Direction)
	if err != nil {
		return salary.Request{}, err
	}
	period, err := salary.ParsePeriod(props.Period)
	if err != nil {
		return salary.Request{}, err
	}
	parts, err := householdParts(props.Household)
	if err != nil {
		return salary.Request{}, err
	}

	return salary.Request{
		Amount:    props.Amount,
		Direction: dir,
		Status:    status,
		Parts:     parts,
		Period:    period,
	}, nil
}

func (h *ConvertSalaryHandler) Validate(calc *model.Calculation) []model.CalculationMessage {
	req, err := h.request(calc)
	if err != nil {
		return []model.CalculationMessage{messageFor(err)}
	}
	if req.Amount <= 0 {
		return []model.CalculationMessage{degenerate("amount", req.Amount)}
	}
	return nil
}

func (h *ConvertSalaryHandler) Apply(calc *model.Calculation) (any, []model.CalculationMessage) {
	req, err := h.request(calc)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	res, err := h.conv.Convert(req)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	return PresentConversion(res), nil
}
