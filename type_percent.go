package finplan

import "fmt"

// Percent is a percentage value, e.g. Percent(5) is 5%.
type Percent float64

// Equal compares two percentages with display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Of applies the percentage to a value: Percent(5).Of(200) is 10.
func (p Percent) Of(value float64) float64 {
	return num(value) * float64(p) / 100
}
