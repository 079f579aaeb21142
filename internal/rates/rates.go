package rates

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Status is the employment status a contribution rate is attached to.
type Status string

const (
	StatusNonCadre Status = "non-cadre"
	StatusCadre    Status = "cadre"
)

var (
	ErrUnknownStatus = errors.New("unknown employment status")
	ErrInvalidTable  = errors.New("invalid rate table")
)

// Statuses lists the known statuses in display order.
var Statuses = []Status{StatusNonCadre, StatusCadre}

// ParseStatus accepts the canonical names plus a few aliases, case-insensitive.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "non-cadre", "noncadre", "non_cadre", "standard":
		return StatusNonCadre, nil
	case "cadre", "executive":
		return StatusCadre, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Bracket is one slice of the progressive income tax scale.
// Upper == 0 marks the last, unbounded bracket.
type Bracket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper,omitempty"`
	Rate  float64 `json:"rate"`
}

func (b Bracket) Unbounded() bool {
	return b.Upper == 0
}

// Table is the immutable rate configuration injected into the engines.
// Employee contribution rates and employer rates are distinct tables.
type Table struct {
	Year              int                `json:"year"`
	ContributionRates map[Status]float64 `json:"contribution_rates"`
	EmployerRates     map[Status]float64 `json:"employer_rates"`
	Brackets          []Bracket          `json:"brackets"`
}

// Default returns a fresh copy of the 2025 reference table.
// The figures are illustrative, not a legal reference.
func Default() *Table {
	return &Table{
		Year: 2025,
		ContributionRates: map[Status]float64{
			StatusNonCadre: 0.22,
			StatusCadre:    0.25,
		},
		EmployerRates: map[Status]float64{
			StatusNonCadre: 0.42,
			StatusCadre:    0.45,
		},
		Brackets: []Bracket{
			{Lower: 0, Upper: 11497, Rate: 0},
			{Lower: 11497, Upper: 29315, Rate: 0.11},
			{Lower: 29315, Upper: 83823, Rate: 0.30},
			{Lower: 83823, Upper: 180294, Rate: 0.41},
			{Lower: 180294, Rate: 0.45},
		},
	}
}

func (t *Table) ContributionRate(s Status) (float64, error) {
	r, ok := t.ContributionRates[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return r, nil
}

func (t *Table) EmployerRate(s Status) (float64, error) {
	r, ok := t.EmployerRates[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return r, nil
}

// Validate checks that every known status has both rates in [0,1) and that
// the brackets cover [0, inf) contiguously with non-decreasing rates.
func (t *Table) Validate() error {
	for _, s := range Statuses {
		r, ok := t.ContributionRates[s]
		if !ok {
			return fmt.Errorf("%w: missing contribution rate for %s", ErrInvalidTable, s)
		}
		if !validRatio(r) {
			return fmt.Errorf("%w: contribution rate %v for %s outside [0,1)", ErrInvalidTable, r, s)
		}
		r, ok = t.EmployerRates[s]
		if !ok {
			return fmt.Errorf("%w: missing employer rate for %s", ErrInvalidTable, s)
		}
		if !validRatio(r) {
			return fmt.Errorf("%w: employer rate %v for %s outside [0,1)", ErrInvalidTable, r, s)
		}
	}
	return validateBrackets(t.Brackets)
}

func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: no tax brackets", ErrInvalidTable)
	}
	if brackets[0].Lower != 0 {
		return fmt.Errorf("%w: first bracket starts at %v, want 0", ErrInvalidTable, brackets[0].Lower)
	}
	last := len(brackets) - 1
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 || math.IsNaN(b.Rate) {
			return fmt.Errorf("%w: bracket %d rate %v outside [0,1]", ErrInvalidTable, i, b.Rate)
		}
		if i == last {
			if !b.Unbounded() {
				return fmt.Errorf("%w: last bracket must be unbounded", ErrInvalidTable)
			}
		} else if b.Upper <= b.Lower {
			return fmt.Errorf("%w: bracket %d upper bound %v not above lower bound %v", ErrInvalidTable, i, b.Upper, b.Lower)
		}
		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if b.Lower != prev.Upper {
			return fmt.Errorf("%w: gap or overlap between bracket %d and %d", ErrInvalidTable, i-1, i)
		}
		if b.Rate < prev.Rate {
			return fmt.Errorf("%w: bracket %d rate decreases", ErrInvalidTable, i)
		}
	}
	return nil
}

func validRatio(r float64) bool {
	return r >= 0 && r < 1
}
