package finplan

import "math"

// ZAR is a helper for tests to create rand money from const.
func ZAR(v float64) Money { return M(v, "ZAR") }

// USD is a helper for tests to create usd money from const.
func USD(v float64) Money { return M(v, "USD") }

// approx compares floats with the tolerance used across engine tests.
func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// zarSettings is a typical settings fixture: ZAR reporting with a USD rate.
func zarSettings() Settings {
	return Settings{
		Currency: "ZAR",
		Rates:    map[string]float64{"USD": 18.50, "EUR": 20.00},
	}
}

// equity builds a minimal investible asset worth units*price in cur.
func equity(id string, units, price float64, cur string) Asset {
	return Asset{
		ID:           id,
		Name:         id,
		Class:        ClassEquity,
		Currency:     cur,
		Type:         Investible,
		Units:        units,
		CurrentPrice: price,
		CostPrice:    price,
	}
}
