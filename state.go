package plotpanel

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ----------------------------------------------------------------------------
// ViewState

// ViewState owns what a panel shows: the limits of both axes, the
// autoscale mode and the labeling. It is shared by the gesture controller,
// the renderer and the settings dialog; all of them mutate it through the
// setters below and announce changes with Notify.
//
// A ViewState is not safe for concurrent use.
type ViewState struct {
	backend Backend

	title  string
	labels [numAxes]string

	// lims holds the explicit limits per axis, nil while the axis
	// autoscales.
	lims [numAxes]*Interval

	watchers []*watcher
}

type watcher struct{ fn func() }

// NewViewState returns an autoscaled view of the figure drawn by b.
func NewViewState(b Backend) *ViewState {
	v := &ViewState{backend: b}
	v.SetAutoscale(true)
	return v
}

// Backend returns the rendering backend of v.
func (v *ViewState) Backend() Backend { return v.backend }

// Lim returns the current limits of axis a as reported by the backend.
// While autoscaling these follow the data, not the last explicit value.
func (v *ViewState) Lim(a Axis) Interval { return v.backend.Limits(a) }

// XLim is Lim(XAxis).
func (v *ViewState) XLim() Interval { return v.Lim(XAxis) }

// YLim is Lim(YAxis).
func (v *ViewState) YLim() Interval { return v.Lim(YAxis) }

// SetLim sets the limits of axis a. A non-nil lim switches autoscaling
// off, freezing the other axis at what is currently shown. A nil lim
// makes the axis autoscale again.
// Degenerate, inverted or infinite limits are rejected with
// ErrInvalidLimits and leave v unchanged.
func (v *ViewState) SetLim(a Axis, lim *Interval) error {
	if lim == nil {
		v.lims[a] = nil
		v.backend.SetAutoscale(a, true)
		v.backend.Autoscale()
		return nil
	}
	if err := lim.Check(); err != nil {
		return fmt.Errorf("set %s limits: %w", a, err)
	}
	v.SetAutoscale(false)
	l := *lim
	v.lims[a] = &l
	v.backend.SetLimits(a, l)
	return nil
}

// SetXLim is SetLim(XAxis, lim).
func (v *ViewState) SetXLim(lim *Interval) error { return v.SetLim(XAxis, lim) }

// SetYLim is SetLim(YAxis, lim).
func (v *ViewState) SetYLim(lim *Interval) error { return v.SetLim(YAxis, lim) }

// SetLims sets both limits. The x limits are applied only if both are
// valid.
func (v *ViewState) SetLims(xlim, ylim Interval) error {
	if err := xlim.Check(); err != nil {
		return fmt.Errorf("set x limits: %w", err)
	}
	if err := ylim.Check(); err != nil {
		return fmt.Errorf("set y limits: %w", err)
	}
	if err := v.SetXLim(&xlim); err != nil {
		return err
	}
	return v.SetYLim(&ylim)
}

// SetAutoscale turns autoscaling of both axes on or off. Turning it on
// recomputes the view from the data; turning it off keeps the limits
// currently shown.
func (v *ViewState) SetAutoscale(on bool) {
	if on {
		for a := XAxis; a < numAxes; a++ {
			v.lims[a] = nil
			v.backend.SetAutoscale(a, true)
		}
		v.backend.Autoscale()
		return
	}
	for a := XAxis; a < numAxes; a++ {
		if v.lims[a] != nil {
			continue
		}
		l := v.backend.Limits(a)
		v.lims[a] = &l
		v.backend.SetAutoscale(a, false)
		v.backend.SetLimits(a, l)
	}
}

// Autoscale reports whether both axes autoscale.
func (v *ViewState) Autoscale() bool {
	return v.lims[XAxis] == nil && v.lims[YAxis] == nil
}

// SetTitle sets the title of the figure.
func (v *ViewState) SetTitle(title string) {
	v.title = title
	v.backend.SetTitle(title)
}

// SetLabel sets the label of axis a.
func (v *ViewState) SetLabel(a Axis, label string) {
	v.labels[a] = label
	v.backend.SetLabel(a, label)
}

// SetXLabel is SetLabel(XAxis, label).
func (v *ViewState) SetXLabel(label string) { v.SetLabel(XAxis, label) }

// SetYLabel is SetLabel(YAxis, label).
func (v *ViewState) SetYLabel(label string) { v.SetLabel(YAxis, label) }

func (v *ViewState) Title() string  { return v.title }
func (v *ViewState) XLabel() string { return v.labels[XAxis] }
func (v *ViewState) YLabel() string { return v.labels[YAxis] }

// Clear resets the backend and re-applies title, labels and limits.
// Axes without stored limits follow the data again. Clearing twice shows
// the same as clearing once.
func (v *ViewState) Clear() {
	lims := v.lims
	v.backend.Reset()
	v.SetTitle(v.title)
	v.SetXLabel(v.labels[XAxis])
	v.SetYLabel(v.labels[YAxis])
	for a := XAxis; a < numAxes; a++ {
		// Stored limits passed Check when they were set.
		if lims[a] == nil {
			v.backend.SetAutoscale(a, true)
			continue
		}
		v.backend.SetAutoscale(a, false)
		v.backend.SetLimits(a, *lims[a])
	}
	v.lims = lims
	v.backend.Autoscale()
}

// Render draws the current view into a bitmap of exactly size pixels.
func (v *ViewState) Render(size Size) (image.Image, error) {
	if !size.Known() {
		return nil, fmt.Errorf("render at size %s: size unknown", size)
	}
	return v.backend.Render(size)
}

// ----------------------------------------------------------------------------
// Change notification

// Subscribe registers fn to be called on every Notify. The returned
// function removes the subscription again.
func (v *ViewState) Subscribe(fn func()) (cancel func()) {
	w := &watcher{fn: fn}
	v.watchers = append(v.watchers, w)
	return func() {
		for i, x := range v.watchers {
			if x == w {
				v.watchers = append(v.watchers[:i], v.watchers[i+1:]...)
				return
			}
		}
	}
}

// Notify tells all subscribers that the view changed.
func (v *ViewState) Notify() {
	for _, w := range v.watchers {
		w.fn()
	}
}

// ----------------------------------------------------------------------------
// Export

// SaveImage writes the current view as a raster image of size pixels.
// The limits of v are not touched.
func (v *ViewState) SaveImage(w io.Writer, format string, size Size) error {
	if !size.Known() {
		return fmt.Errorf("save %s image of size %s: size unknown", format, size)
	}
	return v.backend.ExportImage(w, format, size)
}

// SaveVector writes the current view as a vector document of width x
// height inches. The limits of v are not touched.
func (v *ViewState) SaveVector(w io.Writer, format string, width, height float64) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("save %s document of %gx%g in: size must be positive", format, width, height)
	}
	return v.backend.ExportVector(w, format, width, height)
}

// SaveImageFile writes a raster image to the named file. The format is
// taken from the file extension.
func (v *ViewState) SaveImageFile(name string, size Size) error {
	return saveFile(name, func(w io.Writer, format string) error {
		return v.SaveImage(w, format, size)
	})
}

// SaveVectorFile writes a vector document to the named file. The format
// is taken from the file extension.
func (v *ViewState) SaveVectorFile(name string, width, height float64) error {
	return saveFile(name, func(w io.Writer, format string) error {
		return v.SaveVector(w, format, width, height)
	})
}

// Format returns the lower case extension of name without the dot.
func Format(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

func saveFile(name string, write func(io.Writer, string) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f, Format(name)); err != nil {
		f.Close()
		os.Remove(name)
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	lg().Info("saved figure", "file", name)
	return nil
}
