package tax

import (
	"math"
	"testing"

	"brutnet/internal/fiscal"
	"brutnet/internal/rates"
)

const epsilon = 1e-6

func TestComputeAnnualTaxSingleSecondBracket(t *testing.T) {
	got := ComputeAnnualTax(28080, 1)
	want := (28080 - 11497) * 0.11
	if math.Abs(got-want) > epsilon {
		t.Fatalf("expected %.4f, got %.4f", want, got)
	}
	if math.Abs(got-1824.13) > 1e-6 {
		t.Fatalf("expected 1824.13, got %.6f", got)
	}
}

func TestComputeAnnualTaxNonPositiveIncome(t *testing.T) {
	for _, income := range []float64{0, -1, -50000, math.NaN(), math.Inf(1)} {
		if got := ComputeAnnualTax(income, 1); got != 0 {
			t.Fatalf("income %v: expected 0, got %v", income, got)
		}
	}
	if got := ComputeAnnualTax(50000, 0); got != 0 {
		t.Fatalf("zero parts: expected 0, got %v", got)
	}
}

func TestZeroTaxZone(t *testing.T) {
	for _, parts := range []fiscal.Parts{1, 1.5, 2, 3, 4.5} {
		limit := 11497 * float64(parts)
		for _, x := range []float64{1, limit / 2, limit - 0.01, limit} {
			if got := ComputeAnnualTax(x, parts); got != 0 {
				t.Fatalf("parts=%v income=%v: expected 0, got %v", parts, x, got)
			}
		}
		if got := ComputeAnnualTax(limit+100, parts); got <= 0 {
			t.Fatalf("parts=%v: expected positive tax just above the threshold, got %v", parts, got)
		}
	}
}

func TestBoundaryBelongsToLowerBracket(t *testing.T) {
	d := defaultEngine.Detail(29315, 1)
	if d.MarginalRate != 0.11 {
		t.Fatalf("expected marginal rate 0.11 on the boundary, got %v", d.MarginalRate)
	}
	if len(d.Shares) != 2 {
		t.Fatalf("expected 2 brackets reached, got %d", len(d.Shares))
	}
}

func TestTaxMonotonicInIncome(t *testing.T) {
	for _, parts := range []fiscal.Parts{1, 2, 3.5} {
		prev := 0.0
		for x := 0.0; x <= 600000; x += 250 {
			got := ComputeAnnualTax(x, parts)
			if got < prev-epsilon {
				t.Fatalf("parts=%v: tax decreased at income %v (%v < %v)", parts, x, got, prev)
			}
			prev = got
		}
	}
}

func TestTaxNonIncreasingInParts(t *testing.T) {
	for _, x := range []float64{20000, 45000, 90000, 250000, 1e6} {
		prev := math.Inf(1)
		for parts := fiscal.Parts(1); parts <= 6; parts += 0.5 {
			got := ComputeAnnualTax(x, parts)
			if got > prev+epsilon {
				t.Fatalf("income=%v: tax increased with parts %v (%v > %v)", x, parts, got, prev)
			}
			prev = got
		}
	}
}

func TestDetailShares(t *testing.T) {
	d := defaultEngine.Detail(100000, 1)

	if len(d.Shares) != 4 {
		t.Fatalf("expected 4 brackets reached, got %d", len(d.Shares))
	}
	if d.MarginalRate != 0.41 {
		t.Fatalf("expected marginal rate 0.41, got %v", d.MarginalRate)
	}
	want := (29315-11497)*0.11 + (83823-29315)*0.30 + (100000-83823)*0.41
	if math.Abs(d.Total-want) > epsilon {
		t.Fatalf("expected total %.4f, got %.4f", want, d.Total)
	}

	var sum float64
	for _, s := range d.Shares {
		sum += s.Tax
	}
	if math.Abs(sum-d.TaxPerPart) > epsilon {
		t.Fatalf("expected shares to sum to %v, got %v", d.TaxPerPart, sum)
	}
}

func TestIncomeSplittingScalesBack(t *testing.T) {
	// Two parts on twice the income pay exactly twice the single-part tax.
	single := ComputeAnnualTax(40000, 1)
	couple := ComputeAnnualTax(80000, 2)
	if math.Abs(couple-2*single) > epsilon {
		t.Fatalf("expected %v, got %v", 2*single, couple)
	}
}

func TestTopBracketUnbounded(t *testing.T) {
	d := defaultEngine.Detail(1e6, 1)
	last := d.Shares[len(d.Shares)-1]
	if last.Bracket.Rate != 0.45 {
		t.Fatalf("expected top rate 0.45, got %v", last.Bracket.Rate)
	}
	if math.Abs(last.Taxable-(1e6-180294)) > epsilon {
		t.Fatalf("expected taxable %v in top bracket, got %v", 1e6-180294, last.Taxable)
	}
}

func TestCustomBrackets(t *testing.T) {
	e := NewEngine([]rates.Bracket{
		{Lower: 0, Upper: 10000, Rate: 0},
		{Lower: 10000, Rate: 0.5},
	})
	if got := e.AnnualTax(30000, 2); math.Abs(got-5000) > epsilon {
		t.Fatalf("expected 5000, got %v", got)
	}
}
