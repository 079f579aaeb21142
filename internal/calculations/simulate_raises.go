package calculations

import (
	"brutnet/internal/fiscal"
	"brutnet/internal/model"
	"brutnet/internal/rates"
	"brutnet/internal/salary"
)

type SimulateRaisesHandler struct {
	conv *salary.Converter
}

type raiseInput struct {
	gross    float64
	status   rates.Status
	parts    fiscal.Parts
	percents []float64
}

func (h *SimulateRaisesHandler) input(calc *model.Calculation) (raiseInput, error) {
	var props model.SimulateRaisesProperties
	if err := decode(calc, &props); err != nil {
		return raiseInput{}, err
	}
	status, err := rates.ParseStatus(props.Status)
	if err != nil {
		return raiseInput{}, err
	}
	parts, err := householdParts(props.Household)
	if err != nil {
		return raiseInput{}, err
	}
	return raiseInput{gross: props.GrossMonthly, status: status, parts: parts, percents: props.Percents}, nil
}

func (h *SimulateRaisesHandler) Validate(calc *model.Calculation) []model.CalculationMessage {
	in, err := h.input(calc)
	if err != nil {
		return []model.CalculationMessage{messageFor(err)}
	}
	for _, pct := range in.percents {
		if pct <= -100 {
			return []model.CalculationMessage{messageFor(salary.ErrInvalidPercent)}
		}
	}
	if in.gross <= 0 {
		return []model.CalculationMessage{degenerate("gross_monthly", in.gross)}
	}
	return nil
}

func (h *SimulateRaisesHandler) Apply(calc *model.Calculation) (any, []model.CalculationMessage) {
	in, err := h.input(calc)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	current, err := h.conv.Convert(salary.Request{Amount: in.gross, Direction: salary.GrossToNet, Status: in.status, Parts: in.parts})
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	sims, err := h.conv.SimulateRaises(in.gross, in.status, in.parts, in.percents)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	return PresentRaises(current, sims), nil
}
