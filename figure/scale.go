package figure

import (
	"fmt"
	"math"

	"github.com/vdobler/plotpanel"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is one axis of a figure: the range covered by the data and the
// range actually shown.
type Scale struct {
	// Data is the range covered by actual data.
	Data plotpanel.Interval

	// Interval captures the range shown. It may be larger or smaller
	// than the actual Data range.
	plotpanel.Interval

	// Auto selects autoscaling of Interval to the Data range.
	Auto bool

	// Autoscaling controls how Interval is derived from Data.
	Autoscaling
}

// NewScale returns a scale which autoscales to the actual data.
func NewScale() *Scale {
	s := &Scale{
		Data:     plotpanel.UnsetInterval(),
		Interval: plotpanel.Interval{Min: 0, Max: 1},
		Auto:     true,
		Autoscaling: Autoscaling{
			MinRange: plotpanel.UnsetInterval(),
			MaxRange: plotpanel.UnsetInterval(),
		},
	}
	s.Autoscaling.Expand.Relative = 0.05

	return s
}

// UpdateData updates s to cover i.
func (s *Scale) UpdateData(i plotpanel.Interval) {
	s.Data.Update(i.Min, i.Max)
}

// FixMin fixes the min of autoscaled s to x. If x is NaN the min is
// determined by autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of autoscaled s to x. If x is NaN the max is
// determined by autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] auto=%t",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Auto)
}

// autoscale turns the data range into an actual scale range.
// Without data the scale shows [0,1].
func (s *Scale) autoscale() {
	if !s.HasData() {
		s.Interval = plotpanel.Interval{Min: 0, Max: 1}
		s.deDegenerate()
		return
	}

	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute

	// Determine the left edge of s.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRange and non NaN: The user has set a fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = s.Data.Min - ext

		// Clip autoscaling
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Determine the right edge of s.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		s.Max = s.Data.Max + ext

		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}

	s.deDegenerate()
}

// deDegenerate widens an empty or inverted range so that the axis has a
// strictly positive extent.
func (s *Scale) deDegenerate() {
	if !(s.Min < s.Max) {
		c := s.Min
		d := 0.5
		if c != 0 && !math.IsNaN(c) {
			d = math.Abs(c) * 0.05
		}
		if math.IsNaN(c) {
			c = 0
		}
		s.Min, s.Max = c-d, c+d
	}
}

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn of autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange plotpanel.Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange plotpanel.Interval // MaxRange determines the allowed range of the Max of a scale.
}
