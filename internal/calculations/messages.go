package calculations

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"brutnet/internal/fiscal"
	"brutnet/internal/model"
	"brutnet/internal/rates"
	"brutnet/internal/salary"
)

var errMissingProperties = errors.New("calculation_properties is required")

func critical(code, message string) model.CalculationMessage {
	return model.CalculationMessage{Level: model.LevelCritical, Code: code, Message: message}
}

func warning(code, message string) model.CalculationMessage {
	return model.CalculationMessage{Level: model.LevelWarning, Code: code, Message: message}
}

// messageFor maps a core error to a CRITICAL message with a stable code.
func messageFor(err error) model.CalculationMessage {
	code := model.CodeInvalidProperties
	switch {
	case errors.Is(err, rates.ErrUnknownStatus):
		code = model.CodeUnknownStatus
	case errors.Is(err, salary.ErrInvalidDirection):
		code = model.CodeInvalidDirection
	case errors.Is(err, salary.ErrInvalidPeriod):
		code = model.CodeInvalidPeriod
	case errors.Is(err, salary.ErrInvalidParts):
		code = model.CodeInvalidParts
	case errors.Is(err, salary.ErrInvalidPercent):
		code = model.CodeInvalidPercent
	case errors.Is(err, fiscal.ErrNegativeChildren):
		code = model.CodeInvalidChildren
	}
	return critical(code, err.Error())
}

func degenerate(field string, amount float64) model.CalculationMessage {
	return warning(model.CodeDegenerateAmount,
		fmt.Sprintf("%s %v is not a positive amount, returning the zero result", field, amount))
}

func decode(calc *model.Calculation, v any) error {
	if len(calc.CalculationProperties) == 0 {
		return errMissingProperties
	}
	if err := json.Unmarshal(calc.CalculationProperties, v); err != nil {
		return fmt.Errorf("decode calculation_properties: %w", err)
	}
	return nil
}

// householdParts prefers an explicit parts value over the family composition.
func householdParts(h model.Household) (fiscal.Parts, error) {
	if h.Parts != nil {
		if *h.Parts <= 0 {
			return 0, fmt.Errorf("%w, got %v", salary.ErrInvalidParts, *h.Parts)
		}
		return fiscal.Parts(*h.Parts), nil
	}
	return fiscal.ComputeParts(h.Coupled, h.Children)
}
