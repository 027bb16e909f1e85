package drivelog

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString returns the percent with an explicit sign. 0 is represented
// as a "-".
func (p Percent) SignedString() string {
	if p.Equal(0) {
		return "-"
	}
	return fmt.Sprintf("%+.2f%%", p)
}

// Clamp bounds p into [0, 100].
func (p Percent) Clamp() Percent {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
