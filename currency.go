package finplan

import "log"

// Currency conversion always goes through the reporting currency as a hub:
// the rate table only knows "1 unit of foreign = X units of reporting", and
// direct cross rates are never looked up.
//
// A missing or zero rate falls back to 1:1 with a logged warning. This is a
// deliberate fail-soft policy: a single missing rate must never block the
// valuation of the rest of the portfolio.

// rate returns the reporting-currency value of 1 unit of cur, and whether
// the table actually defines it.
func (s *Settings) rate(cur string) (float64, bool) {
	r := num(s.Rates[cur])
	if r == 0 {
		return 1, false
	}
	return r, true
}

// ToReporting converts an amount from the given currency to the reporting
// currency.
func (s *Settings) ToReporting(amount float64, from string) float64 {
	amount = num(amount)
	if from == s.Currency || from == "" {
		return amount
	}
	r, ok := s.rate(from)
	if !ok {
		log.Printf("warning: no exchange rate for %s to %s, assuming 1:1", from, s.Currency)
	}
	return amount * r
}

// FromReporting converts an amount from the reporting currency to the given
// currency. It is the inverse of ToReporting, so for any currency with a
// defined nonzero rate the round trip returns the original amount.
func (s *Settings) FromReporting(amount float64, to string) float64 {
	amount = num(amount)
	if to == s.Currency || to == "" {
		return amount
	}
	r, ok := s.rate(to)
	if !ok {
		log.Printf("warning: no exchange rate for %s to %s, assuming 1:1", s.Currency, to)
	}
	return amount / r
}

// Convert converts an amount between two arbitrary currencies via the
// reporting currency.
func (s *Settings) Convert(amount float64, from, to string) float64 {
	if from == to {
		return num(amount)
	}
	return s.FromReporting(s.ToReporting(amount, from), to)
}
