package plotpanel

import (
	"errors"
	"image"
	"io"
)

// ErrUnknownFormat is returned for export formats a Backend cannot write.
var ErrUnknownFormat = errors.New("plotpanel: unknown export format")

// A Backend renders a figure consisting of one set of axes.
// ViewState and the gesture logic depend on this contract only.
type Backend interface {
	// Render draws the figure into a bitmap of exactly size pixels.
	Render(size Size) (image.Image, error)

	// PlotArea returns the position of the axes in normalized figure units.
	PlotArea() Bounds

	// Limits returns the current limits of the axis.
	Limits(a Axis) Interval

	// SetLimits fixes the limits of the axis.
	SetLimits(a Axis, lim Interval)

	// SetAutoscale switches autoscaling of the axis on or off.
	SetAutoscale(a Axis, on bool)

	// Autoscale recomputes the limits of all autoscaled axes from the data.
	Autoscale()

	SetTitle(title string)
	SetLabel(a Axis, label string)

	// Reset drops title, labels and fixed limits. Data is kept.
	Reset()

	// ExportImage writes the figure as a raster image of size pixels.
	// Format is a file extension like "png".
	ExportImage(w io.Writer, format string, size Size) error

	// ExportVector writes the figure as a vector document of the given
	// physical size in inches. Format is a file extension like "eps".
	ExportVector(w io.Writer, format string, width, height float64) error
}
