package fiscal

import (
	"errors"
	"testing"
)

func TestComputeParts(t *testing.T) {
	cases := []struct {
		coupled  bool
		children int
		want     Parts
	}{
		{false, 0, 1}, {false, 1, 1.5}, {false, 2, 2}, {false, 3, 3}, {false, 4, 4},
		{true, 0, 2}, {true, 1, 2.5}, {true, 2, 3}, {true, 3, 4}, {true, 4, 5},
	}
	for _, tc := range cases {
		got, err := ComputeParts(tc.coupled, tc.children)
		if err != nil {
			t.Fatalf("coupled=%v children=%d: unexpected error %v", tc.coupled, tc.children, err)
		}
		if got != tc.want {
			t.Fatalf("coupled=%v children=%d want=%v got=%v", tc.coupled, tc.children, tc.want, got)
		}
	}
}

func TestComputePartsRejectsNegativeChildren(t *testing.T) {
	_, err := ComputeParts(true, -1)
	if !errors.Is(err, ErrNegativeChildren) {
		t.Fatalf("expected ErrNegativeChildren, got %v", err)
	}
}

func TestHouseholdParts(t *testing.T) {
	p, err := Household{Coupled: true, Children: 3}.Parts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 4 {
		t.Fatalf("expected 4 parts, got %v", p)
	}
}

func TestMustComputePartsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative children")
		}
	}()
	MustComputeParts(false, -2)
}
