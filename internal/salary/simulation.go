package salary

import (
	"errors"
	"fmt"
	"math"

	"brutnet/internal/fiscal"
	"brutnet/internal/rates"
)

// DefaultRaisePercents are the raises compared when none are given.
var DefaultRaisePercents = []float64{5, 10, 15, 20}

var ErrInvalidPercent = errors.New("raise percent must be finite and above -100")

// RaiseSimulation compares take-home pay after a gross raise with the current one.
type RaiseSimulation struct {
	Percent      float64
	NewGross     float64
	NewNet       float64
	Delta        float64
	DeltaPercent float64
}

// SimulateRaises converts gross and each raised gross, gross-to-net, and
// reports the change in net after tax.
func (c *Converter) SimulateRaises(gross float64, status rates.Status, parts fiscal.Parts, percents []float64) ([]RaiseSimulation, error) {
	if len(percents) == 0 {
		percents = DefaultRaisePercents
	}
	for _, pct := range percents {
		if math.IsNaN(pct) || math.IsInf(pct, 0) || pct <= -100 {
			return nil, fmt.Errorf("%w, got %v", ErrInvalidPercent, pct)
		}
	}

	current, err := c.Convert(Request{Amount: gross, Direction: GrossToNet, Status: status, Parts: parts})
	if err != nil {
		return nil, err
	}

	sims := make([]RaiseSimulation, 0, len(percents))
	for _, pct := range percents {
		newGross := gross * (1 + pct/100)
		r, err := c.Convert(Request{Amount: newGross, Direction: GrossToNet, Status: status, Parts: parts})
		if err != nil {
			return nil, err
		}
		sim := RaiseSimulation{
			Percent:  pct,
			NewGross: r.Gross,
			NewNet:   r.NetAfterTax,
			Delta:    r.NetAfterTax - current.NetAfterTax,
		}
		if current.NetAfterTax != 0 {
			sim.DeltaPercent = sim.Delta / current.NetAfterTax * 100
		}
		sims = append(sims, sim)
	}
	return sims, nil
}
