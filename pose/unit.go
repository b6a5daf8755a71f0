package pose

import (
	"fmt"

	"github.com/katalvlaran/rigid/transforms"
)

// Unit selects how angles are read and written at the API boundary.
// Internally every angle is radians.
type Unit string

const (
	// Rad is radians. The empty Unit is treated as Rad.
	Rad Unit = "rad"
	// Deg is degrees.
	Deg Unit = "deg"
)

// ParseUnit converts a textual unit into a Unit.
func ParseUnit(s string) (Unit, error) {
	return Unit(s).normalize()
}

// normalize maps "" to Rad and rejects everything outside {rad, deg}.
func (u Unit) normalize() (Unit, error) {
	switch u {
	case "", Rad:
		return Rad, nil
	case Deg:
		return Deg, nil
	default:
		return "", fmt.Errorf("unit %q: %w", string(u), ErrInvalidUnit)
	}
}

// toRad converts v from u to radians. u must be normalized.
func (u Unit) toRad(v float64) float64 {
	if u == Deg {
		return transforms.DegToRad(v)
	}

	return v
}

// fromRad converts a radian value into u. u must be normalized.
func (u Unit) fromRad(v float64) float64 {
	if u == Deg {
		return transforms.RadToDeg(v)
	}

	return v
}

// String implements fmt.Stringer.
func (u Unit) String() string { return string(u) }
