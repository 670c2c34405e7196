package finplan

import (
	"math"
	"testing"
)

func TestToReporting(t *testing.T) {
	s := zarSettings()

	if got := s.ToReporting(100, "USD"); !approx(got, 1850) {
		t.Errorf("ToReporting(100, USD) = %v, want 1850", got)
	}
	// Reporting currency passes through unchanged.
	if got := s.ToReporting(42.5, "ZAR"); !approx(got, 42.5) {
		t.Errorf("ToReporting(42.5, ZAR) = %v, want 42.5", got)
	}
	// Missing rate falls back to 1:1 instead of failing.
	if got := s.ToReporting(100, "GBP"); !approx(got, 100) {
		t.Errorf("ToReporting(100, GBP) = %v, want 100 (1:1 fallback)", got)
	}
}

func TestFromReporting(t *testing.T) {
	s := zarSettings()

	if got := s.FromReporting(1850, "USD"); !approx(got, 100) {
		t.Errorf("FromReporting(1850, USD) = %v, want 100", got)
	}
	if got := s.FromReporting(100, "GBP"); !approx(got, 100) {
		t.Errorf("FromReporting(100, GBP) = %v, want 100 (1:1 fallback)", got)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	s := zarSettings()

	// For any currency with a nonzero rate, fromReporting(toReporting(x))
	// must return x within floating tolerance.
	for _, cur := range []string{"USD", "EUR", "ZAR"} {
		for _, x := range []float64{0, 1, -250.75, 1e6, 0.0001} {
			got := s.FromReporting(s.ToReporting(x, cur), cur)
			if !approx(got, x) {
				t.Errorf("round trip of %v via %s = %v", x, cur, got)
			}
		}
	}
}

func TestConvert_UsesReportingHub(t *testing.T) {
	s := zarSettings()

	// USD -> EUR goes through ZAR: 100 USD = 1850 ZAR = 92.5 EUR.
	if got := s.Convert(100, "USD", "EUR"); !approx(got, 92.5) {
		t.Errorf("Convert(100, USD, EUR) = %v, want 92.5", got)
	}
	// Same currency is the identity even without a configured rate.
	if got := s.Convert(77, "GBP", "GBP"); !approx(got, 77) {
		t.Errorf("Convert(77, GBP, GBP) = %v, want 77", got)
	}
}

func TestToReporting_BadInput(t *testing.T) {
	s := zarSettings()

	if got := s.ToReporting(math.NaN(), "USD"); got != 0 {
		t.Errorf("ToReporting(NaN, USD) = %v, want 0", got)
	}

	// A zero configured rate behaves like a missing one.
	s.Rates["JPY"] = 0
	if got := s.ToReporting(500, "JPY"); !approx(got, 500) {
		t.Errorf("ToReporting(500, JPY) with zero rate = %v, want 500", got)
	}
}
