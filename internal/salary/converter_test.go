package salary

import (
	"errors"
	"math"
	"testing"

	"brutnet/internal/fiscal"
	"brutnet/internal/rates"
)

const epsilon = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestConvertGrossToNetScenario(t *testing.T) {
	r, err := Convert(3000, GrossToNet, rates.StatusNonCadre, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.Computed {
		t.Fatal("expected computed result")
	}
	if !approx(r.NetBeforeTax, 2340) {
		t.Fatalf("expected net before tax 2340, got %v", r.NetBeforeTax)
	}
	if !approx(r.Contributions, 660) {
		t.Fatalf("expected contributions 660, got %v", r.Contributions)
	}
	if !approx(r.AnnualNetBeforeTax, 28080) {
		t.Fatalf("expected annual net before tax 28080, got %v", r.AnnualNetBeforeTax)
	}
	if !approx(r.TaxAnnual, 1824.13) {
		t.Fatalf("expected annual tax 1824.13, got %v", r.TaxAnnual)
	}
	if math.Abs(r.TaxMonthly-152.01) > 0.005 {
		t.Fatalf("expected monthly tax ~152.01, got %v", r.TaxMonthly)
	}
	if math.Abs(r.NetAfterTax-2187.99) > 0.005 {
		t.Fatalf("expected net after tax ~2187.99, got %v", r.NetAfterTax)
	}
	if !approx(r.EffectiveContributionRate, 0.22) {
		t.Fatalf("expected effective contribution rate 0.22, got %v", r.EffectiveContributionRate)
	}
	if !approx(r.EffectiveTaxRate, 1824.13/28080) {
		t.Fatalf("expected effective tax rate %v, got %v", 1824.13/28080, r.EffectiveTaxRate)
	}
	if r.MarginalTaxRate != 0.11 {
		t.Fatalf("expected marginal rate 0.11, got %v", r.MarginalTaxRate)
	}
	if !approx(r.AnnualGross, 36000) {
		t.Fatalf("expected annual gross 36000, got %v", r.AnnualGross)
	}
}

func TestConvertNetToGross(t *testing.T) {
	r, err := Convert(2250, NetToGross, rates.StatusCadre, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(r.Gross, 3000) {
		t.Fatalf("expected gross 3000, got %v", r.Gross)
	}
	if !approx(r.Contributions, 750) {
		t.Fatalf("expected contributions 750, got %v", r.Contributions)
	}
	if !approx(r.NetBeforeTax, 2250) {
		t.Fatalf("expected net before tax 2250, got %v", r.NetBeforeTax)
	}
}

func TestContributionRoundTrip(t *testing.T) {
	for _, status := range rates.Statuses {
		for _, parts := range []fiscal.Parts{1, 2.5, 4} {
			for _, g := range []float64{0.01, 1, 1500, 3000, 12345.67, 250000} {
				fwd, err := Convert(g, GrossToNet, status, parts)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				back, err := Convert(fwd.NetBeforeTax, NetToGross, status, parts)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if math.Abs(back.Gross-g) > 1e-9*math.Max(1, g) {
					t.Fatalf("%s parts=%v: expected gross %v after round trip, got %v", status, parts, g, back.Gross)
				}
				if math.Abs(back.NetAfterTax-fwd.NetAfterTax) > 1e-6*math.Max(1, g) {
					t.Fatalf("%s parts=%v: expected identical net after tax, got %v and %v", status, parts, fwd.NetAfterTax, back.NetAfterTax)
				}
			}
		}
	}
}

func TestConvertDegenerateAmounts(t *testing.T) {
	for _, amount := range []float64{0, -100, math.NaN(), math.Inf(1), math.Inf(-1)} {
		for _, dir := range []Direction{GrossToNet, NetToGross} {
			r, err := Convert(amount, dir, rates.StatusNonCadre, 1)
			if err != nil {
				t.Fatalf("amount %v: unexpected error %v", amount, err)
			}
			if r != (Result{}) {
				t.Fatalf("amount %v: expected zero result, got %+v", amount, r)
			}
		}
	}
}

func TestConvertRejectsInvalidArguments(t *testing.T) {
	c := NewConverter(rates.Default())
	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"unknown status", Request{Amount: 1000, Direction: GrossToNet, Status: "intern", Parts: 1}, rates.ErrUnknownStatus},
		{"zero parts", Request{Amount: 1000, Direction: GrossToNet, Status: rates.StatusCadre}, ErrInvalidParts},
		{"negative parts", Request{Amount: 1000, Direction: GrossToNet, Status: rates.StatusCadre, Parts: -1}, ErrInvalidParts},
		{"bad direction", Request{Amount: 1000, Direction: "sideways", Status: rates.StatusCadre, Parts: 1}, ErrInvalidDirection},
		{"bad period", Request{Amount: 1000, Direction: GrossToNet, Status: rates.StatusCadre, Parts: 1, Period: "weekly"}, ErrInvalidPeriod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Convert(tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConvertAnnualPeriod(t *testing.T) {
	c := NewConverter(rates.Default())
	annual, err := c.Convert(Request{Amount: 36000, Direction: GrossToNet, Status: rates.StatusNonCadre, Parts: 1, Period: Annual})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	monthly, err := c.Convert(Request{Amount: 3000, Direction: GrossToNet, Status: rates.StatusNonCadre, Parts: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(annual.NetAfterTax, monthly.NetAfterTax) {
		t.Fatalf("expected same monthly net, got %v and %v", annual.NetAfterTax, monthly.NetAfterTax)
	}
}

func TestMorePartsMeansMoreNet(t *testing.T) {
	single, _ := Convert(6000, GrossToNet, rates.StatusCadre, fiscal.MustComputeParts(false, 0))
	family, _ := Convert(6000, GrossToNet, rates.StatusCadre, fiscal.MustComputeParts(true, 3))
	if family.NetAfterTax <= single.NetAfterTax {
		t.Fatalf("expected family net %v above single net %v", family.NetAfterTax, single.NetAfterTax)
	}
	if !approx(family.NetBeforeTax, single.NetBeforeTax) {
		t.Fatal("expected parts to leave the contribution layer unchanged")
	}
}

func TestParseDirectionAndPeriod(t *testing.T) {
	if d, err := ParseDirection("NET"); err != nil || d != NetToGross {
		t.Fatalf("expected net-to-gross, got %v (%v)", d, err)
	}
	if d, err := ParseDirection("gross_to_net"); err != nil || d != GrossToNet {
		t.Fatalf("expected gross-to-net, got %v (%v)", d, err)
	}
	if _, err := ParseDirection("up"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	if p, err := ParsePeriod(""); err != nil || p != Monthly {
		t.Fatalf("expected monthly default, got %v (%v)", p, err)
	}
	if p, err := ParsePeriod("Yearly"); err != nil || p != Annual {
		t.Fatalf("expected annual, got %v (%v)", p, err)
	}
	if _, err := ParsePeriod("daily"); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}
