package plotpanel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLimits is returned when an axis limit is degenerate, inverted
// or not finite.
var ErrInvalidLimits = errors.New("plotpanel: invalid limits")

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN,NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Extent is Max-Min.
func (i Interval) Extent() float64 { return i.Max - i.Min }

// Shift returns i moved by d.
func (i Interval) Shift(d float64) Interval { return Interval{i.Min + d, i.Max + d} }

// Check reports ErrInvalidLimits unless i is a finite interval with
// Min < Max.
func (i Interval) Check() error {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) || math.IsInf(i.Min, 0) || math.IsInf(i.Max, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidLimits, i)
	}
	if !(i.Min < i.Max) {
		return fmt.Errorf("%w: %v has lo >= hi", ErrInvalidLimits, i)
	}
	return nil
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. Two unset edges
// compare equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// ----------------------------------------------------------------------------
// Axis

// Axis selects the x- or y-axis.
type Axis int

const (
	XAxis Axis = iota
	YAxis
	numAxes
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
