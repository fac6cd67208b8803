package plotpanel

import "fmt"

// Point is a location in one of the three frames: pixels (origin top-left),
// display (unit square of the figure, origin bottom-left) or data.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is the size of a panel in pixels. The zero Size means the panel has
// not been laid out yet.
type Size struct {
	W, H int
}

// Known reports whether s describes a real, non-empty area.
func (s Size) Known() bool { return s.W > 0 && s.H > 0 }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Bounds is the plot area (the axes) inside the figure in normalized
// figure units.
type Bounds struct {
	Left, Bottom, Width, Height float64
}

// DefaultBounds leaves a fifth of the figure on every side for ticks,
// labels and the title.
var DefaultBounds = Bounds{Left: 0.2, Bottom: 0.2, Width: 0.6, Height: 0.6}

// Span returns the extent of b along the given axis as an interval.
func (b Bounds) Span(a Axis) Interval {
	if a == XAxis {
		return Interval{b.Left, b.Left + b.Width}
	}
	return Interval{b.Bottom, b.Bottom + b.Height}
}

// Extent returns the width or height of b.
func (b Bounds) Extent(a Axis) float64 {
	if a == XAxis {
		return b.Width
	}
	return b.Height
}

// PixelToDisplay maps the pixel p of a panel of size s into display
// coordinates. The y axis is flipped. ok is false if the size of the
// panel is unknown.
func PixelToDisplay(p Point, s Size) (d Point, ok bool) {
	if !s.Known() {
		return Point{}, false
	}
	return Point{
		X: p.X / float64(s.W),
		Y: 1 - p.Y/float64(s.H),
	}, true
}

// DisplayToPixel is the inverse of PixelToDisplay.
func DisplayToPixel(d Point, s Size) (p Point, ok bool) {
	if !s.Known() {
		return Point{}, false
	}
	return Point{
		X: d.X * float64(s.W),
		Y: (1 - d.Y) * float64(s.H),
	}, true
}

// DisplayToAxes maps display coordinates to the axes-local fraction
// where the plot area b is the unit square.
func DisplayToAxes(d Point, b Bounds) Point {
	return Point{
		X: LinearTrans.Trans(b.Span(XAxis), unit, d.X),
		Y: LinearTrans.Trans(b.Span(YAxis), unit, d.Y),
	}
}

// AxesToDisplay is the inverse of DisplayToAxes.
func AxesToDisplay(a Point, b Bounds) Point {
	return Point{
		X: LinearTrans.Inverse(b.Span(XAxis), unit, a.X),
		Y: LinearTrans.Inverse(b.Span(YAxis), unit, a.Y),
	}
}

// AxesToData maps an axes-local fraction to data coordinates for the
// given limits.
func AxesToData(a Point, xlim, ylim Interval) Point {
	return Point{
		X: LinearTrans.Trans(unit, xlim, a.X),
		Y: LinearTrans.Trans(unit, ylim, a.Y),
	}
}

// DataToAxes is the inverse of AxesToData.
func DataToAxes(p Point, xlim, ylim Interval) Point {
	return Point{
		X: LinearTrans.Inverse(unit, xlim, p.X),
		Y: LinearTrans.Inverse(unit, ylim, p.Y),
	}
}

// DisplayToData maps display coordinates through the plot area b onto
// the data limits.
func DisplayToData(d Point, b Bounds, xlim, ylim Interval) Point {
	return AxesToData(DisplayToAxes(d, b), xlim, ylim)
}

// DataToDisplay is the inverse of DisplayToData.
func DataToDisplay(p Point, b Bounds, xlim, ylim Interval) Point {
	return AxesToDisplay(DataToAxes(p, xlim, ylim), b)
}
