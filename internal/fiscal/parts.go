package fiscal

import (
	"errors"
	"fmt"
)

// Parts is the household's tax-division factor (quotient familial),
// always a positive multiple of 0.5.
type Parts float64

var ErrNegativeChildren = errors.New("number of children must be non-negative")

// Household describes the family composition the parts derive from.
type Household struct {
	Coupled  bool `json:"coupled"`
	Children int  `json:"children"`
}

func (h Household) Parts() (Parts, error) {
	return ComputeParts(h.Coupled, h.Children)
}

// ComputeParts returns 1 part for a single person, 2 for a couple, plus half a
// part for each of the first two children and a full part from the third on.
func ComputeParts(coupled bool, children int) (Parts, error) {
	if children < 0 {
		return 0, fmt.Errorf("%w, got %d", ErrNegativeChildren, children)
	}

	parts := Parts(1)
	if coupled {
		parts = 2
	}
	if children >= 1 {
		parts += 0.5
	}
	if children >= 2 {
		parts += 0.5
	}
	if children >= 3 {
		parts += Parts(children - 2)
	}
	return parts, nil
}

func MustComputeParts(coupled bool, children int) Parts {
	p, err := ComputeParts(coupled, children)
	if err != nil {
		panic(err)
	}
	return p
}
