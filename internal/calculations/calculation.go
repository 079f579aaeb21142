package calculations

import "brutnet/internal/model"

// Handler defines the contract for all named calculations.
// Validate reports problems with the properties before anything is computed;
// Apply computes the result, which is serialized into the response as is.
type Handler interface {
	Validate(calc *model.Calculation) []model.CalculationMessage
	Apply(calc *model.Calculation) (any, []model.CalculationMessage)
}
