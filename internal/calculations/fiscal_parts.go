package calculations

import (
	"brutnet/internal/fiscal"
	"brutnet/internal/model"
)

type FiscalPartsHandler struct{}

func (h *FiscalPartsHandler) parts(calc *model.Calculation) (fiscal.Parts, error) {
	var props model.FiscalPartsProperties
	if err := decode(calc, &props); err != nil {
		return 0, err
	}
	return fiscal.ComputeParts(props.Coupled, props.Children)
}

func (h *FiscalPartsHandler) Validate(calc *model.Calculation) []model.CalculationMessage {
	if _, err := h.parts(calc); err != nil {
		return []model.CalculationMessage{messageFor(err)}
	}
	return nil
}

func (h *FiscalPartsHandler) Apply(calc *model.Calculation) (any, []model.CalculationMessage) {
	p, err := h.parts(calc)
	if err != nil {
		return nil, []model.CalculationMessage{messageFor(err)}
	}
	return model.FiscalPartsResult{Parts: float64(p)}, nil
}
