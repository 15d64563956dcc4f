package financebrain

import "fmt"

// Percent is a percentage value, e.g. Percent(62.9) is 62.9%.
type Percent float64

// Equal compares two percentages with a fixed precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" {
		return "-"
	}
	return res
}
