// Package settings holds the model of the settings dialog of a plot panel:
// labeling, axis limits, autoscaling and export. The model is toolkit
// independent; a GUI binds its widgets to the fields of a Dialog and calls
// its actions.
package settings

import (
	"fmt"
	"io"

	"github.com/vdobler/plotpanel"
)

// Defaults for the export size fields.
const (
	DefaultImageWidth   = 800
	DefaultImageHeight  = 600
	DefaultVectorWidth  = 9.0 // inches
	DefaultVectorHeight = 9.0 // inches
)

// Dialog is the settings dialog of the panel showing a ViewState.
// All actions mutate the view through its setters and finish with the same
// Notify a gesture would send.
type Dialog struct {
	Title  *Field[string]
	XLabel *Field[string]
	YLabel *Field[string]

	// Limit edges. Empty or "None" keeps the current edge; both edges
	// of an axis empty make that axis autoscale again.
	XMin, XMax *Field[*float64]
	YMin, YMax *Field[*float64]

	ImageWidth, ImageHeight   *Field[int]
	VectorWidth, VectorHeight *Field[float64]

	view *plotpanel.ViewState
}

// New returns a dialog for v. The image size fields start at the size of
// the panel if it is known.
func New(v *plotpanel.ViewState, panel plotpanel.Size) *Dialog {
	d := &Dialog{
		Title:  StringField("title", v.Title()),
		XLabel: StringField("x label", v.XLabel()),
		YLabel: StringField("y label", v.YLabel()),

		XMin: NumberOrNoneField("x min", nil),
		XMax: NumberOrNoneField("x max", nil),
		YMin: NumberOrNoneField("y min", nil),
		YMax: NumberOrNoneField("y max", nil),

		ImageWidth:   NewField("image width", PositiveInt, formatInt, DefaultImageWidth),
		ImageHeight:  NewField("image height", PositiveInt, formatInt, DefaultImageHeight),
		VectorWidth:  NewField("vector width", PositiveNumber, formatNumber, DefaultVectorWidth),
		VectorHeight: NewField("vector height", PositiveNumber, formatNumber, DefaultVectorHeight),

		view: v,
	}
	if panel.Known() {
		d.ImageWidth.Set(panel.W)
		d.ImageHeight.Set(panel.H)
	}
	d.sync(true)
	return d
}

// limitFields returns the min and max field of axis a.
func (d *Dialog) limitFields(a plotpanel.Axis) (lo, hi *Field[*float64]) {
	if a == plotpanel.XAxis {
		return d.XMin, d.XMax
	}
	return d.YMin, d.YMax
}

// Autoscale reports whether the view autoscales.
func (d *Dialog) Autoscale() bool { return d.view.Autoscale() }

// Sync reloads the limit fields and their accessibility from the view,
// e.g. after a gesture changed it while the dialog was open. Fields the
// user edited but did not apply yet keep their text.
func (d *Dialog) Sync() { d.sync(false) }

// sync reloads the limit fields. With force, edited fields are
// overwritten too.
func (d *Dialog) sync(force bool) {
	auto := d.view.Autoscale()
	for a := plotpanel.XAxis; a <= plotpanel.YAxis; a++ {
		lim := d.view.Lim(a)
		lo, hi := d.limitFields(a)
		for _, e := range []struct {
			f *Field[*float64]
			v float64
		}{{lo, lim.Min}, {hi, lim.Max}} {
			if force || !e.f.Modified() {
				v := e.v
				e.f.Set(&v)
			}
			if auto {
				e.f.Disable()
			} else {
				e.f.Enable()
			}
		}
	}
}

// WindowTitle is the title of the dialog window. It reflects the title
// field, so it is meaningful with or without a figure title.
func (d *Dialog) WindowTitle() string {
	return "Diagram Settings " + d.Title.Text()
}

// UpdateLabeling applies title and axis labels to the view.
func (d *Dialog) UpdateLabeling() error {
	title, err := d.Title.Get()
	if err != nil {
		return err
	}
	xl, err := d.XLabel.Get()
	if err != nil {
		return err
	}
	yl, err := d.YLabel.Get()
	if err != nil {
		return err
	}
	d.view.SetTitle(title)
	d.view.SetXLabel(xl)
	d.view.SetYLabel(yl)
	d.view.Notify()
	return nil
}

// UpdateLimits applies the limit fields to the view. While autoscaling it
// only refreshes the fields with the limits currently shown. On error
// nothing is applied and all fields keep their text.
func (d *Dialog) UpdateLimits() error {
	if d.view.Autoscale() {
		d.sync(true)
		return nil
	}

	var lims [2]*plotpanel.Interval
	for a := plotpanel.XAxis; a <= plotpanel.YAxis; a++ {
		lo, hi := d.limitFields(a)
		left, err := lo.Get()
		if err != nil {
			return err
		}
		right, err := hi.Get()
		if err != nil {
			return err
		}
		if left == nil && right == nil {
			continue
		}
		lim := d.view.Lim(a)
		if left != nil {
			lim.Min = *left
		}
		if right != nil {
			lim.Max = *right
		}
		if err := lim.Check(); err != nil {
			return fmt.Errorf("%s limits: %w", a, err)
		}
		lims[a] = &lim
	}

	// Explicit limits freeze the other axis, so autoscaled axes go last.
	// Explicit limits were checked above.
	for a := plotpanel.XAxis; a <= plotpanel.YAxis; a++ {
		if lims[a] != nil {
			d.view.SetLim(a, lims[a])
		}
	}
	for a := plotpanel.XAxis; a <= plotpanel.YAxis; a++ {
		if lims[a] == nil {
			d.view.SetLim(a, nil)
		}
	}
	d.sync(true)
	d.view.Notify()
	return nil
}

// SetAutoscale switches autoscaling of the view and updates the limit
// fields with what is shown afterwards.
func (d *Dialog) SetAutoscale(on bool) {
	d.view.SetAutoscale(on)
	d.sync(true)
	d.view.Notify()
}

// ImageSize returns the size of exported images.
func (d *Dialog) ImageSize() (plotpanel.Size, error) {
	w, err := d.ImageWidth.Get()
	if err != nil {
		return plotpanel.Size{}, err
	}
	h, err := d.ImageHeight.Get()
	if err != nil {
		return plotpanel.Size{}, err
	}
	return plotpanel.Size{W: w, H: h}, nil
}

// VectorSize returns the size of exported vector documents in inches.
func (d *Dialog) VectorSize() (width, height float64, err error) {
	if width, err = d.VectorWidth.Get(); err != nil {
		return 0, 0, err
	}
	if height, err = d.VectorHeight.Get(); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// SaveImage writes the view as raster image of the size in the image
// size fields.
func (d *Dialog) SaveImage(w io.Writer, format string) error {
	size, err := d.ImageSize()
	if err != nil {
		return err
	}
	return d.view.SaveImage(w, format, size)
}

// SaveVector writes the view as vector document of the size in the
// vector size fields.
func (d *Dialog) SaveVector(w io.Writer, format string) error {
	width, height, err := d.VectorSize()
	if err != nil {
		return err
	}
	return d.view.SaveVector(w, format, width, height)
}

// SaveImageFile is SaveImage to the named file, format by extension.
func (d *Dialog) SaveImageFile(name string) error {
	size, err := d.ImageSize()
	if err != nil {
		return err
	}
	return d.view.SaveImageFile(name, size)
}

// SaveVectorFile is SaveVector to the named file, format by extension.
func (d *Dialog) SaveVectorFile(name string) error {
	width, height, err := d.VectorSize()
	if err != nil {
		return err
	}
	return d.view.SaveVectorFile(name, width, height)
}
