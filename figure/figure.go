// Package figure implements the rendering backend of a plot panel on top
// of gonum.org/v1/plot.
//
// A Figure holds exactly one set of axes placed at a fixed position of the
// figure, like a matplotlib axes created with add_axes. The plot is drawn
// such that its data area covers exactly that position, whatever the size
// of the output, so that pixel positions on the panel can be mapped back
// onto data coordinates.
package figure

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/vdobler/plotpanel"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Kind selects how a data series is drawn.
type Kind int

const (
	Line Kind = iota
	Points
	LinePoints
)

var kindNames = [...]string{"line", "points", "linepoints"}

// String returns the name used in configuration and data files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := Line; k <= LinePoints; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return Line, fmt.Errorf("figure: unknown series kind %q", s)
}

type series struct {
	name string
	xy   plotter.XYs
	kind Kind
}

// ----------------------------------------------------------------------------
// Figure

// Figure is a plotpanel.Backend drawing with gonum/plot.
type Figure struct {
	Style Style

	area   plotpanel.Bounds
	title  string
	labels [2]string
	scales [2]*Scale
	series []series

	plot *plot.Plot
}

var _ plotpanel.Backend = (*Figure)(nil)

// New returns an empty, autoscaled figure with its axes at area.
func New(area plotpanel.Bounds) (*Figure, error) {
	if !(area.Width > 0 && area.Height > 0) {
		return nil, fmt.Errorf("figure: plot area %+v is empty", area)
	}
	f := &Figure{
		Style:  DefaultStyle(10),
		area:   area,
		scales: [2]*Scale{NewScale(), NewScale()},
	}
	if err := f.build(); err != nil {
		return nil, err
	}
	return f, nil
}

// Scale returns the scale of axis a. Changing its Autoscaling fields
// affects the next autoscale.
func (f *Figure) Scale(a plotpanel.Axis) *Scale { return f.scales[a] }

// Add adds a data series called name. The data is copied.
func (f *Figure) Add(name string, xy plotter.XYer, kind Kind) error {
	xys, err := plotter.CopyXYs(xy)
	if err != nil {
		return fmt.Errorf("figure: series %q: %w", name, err)
	}
	f.series = append(f.series, series{name: name, xy: xys, kind: kind})
	if err := f.build(); err != nil {
		f.series = f.series[:len(f.series)-1]
		return err
	}
	return nil
}

// RemoveAll drops all data series. Title, labels and limits are kept.
func (f *Figure) RemoveAll() error {
	f.series = nil
	return f.build()
}

// Len returns the number of data series.
func (f *Figure) Len() int { return len(f.series) }

// build sets up a fresh gonum plot for the current series.
func (f *Figure) build() error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.BackgroundColor = nil
	p.Title.Text = f.title
	p.Title.Font = f.Style.Title.Font
	p.Title.Color = f.Style.Title.Color
	for i, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.Text = f.labels[i]
		ax.Label.Font = f.Style.AxisTitle.Font
		ax.Label.Color = f.Style.AxisTitle.Color
		ax.Tick.Label.Font = f.Style.TickLabel.Font
		ax.Tick.Label.Color = f.Style.TickLabel.Color
	}
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical = f.Style.Grid
	grid.Horizontal = f.Style.Grid
	p.Add(grid)

	for i, s := range f.series {
		col := f.Style.seriesColor(i)
		var thumbs []plot.Thumbnailer
		if s.kind == Line || s.kind == LinePoints {
			l, err := plotter.NewLine(s.xy)
			if err != nil {
				return fmt.Errorf("figure: series %q: %w", s.name, err)
			}
			l.LineStyle.Color = col
			l.LineStyle.Width = f.Style.LineWidth
			p.Add(l)
			thumbs = append(thumbs, l)
		}
		if s.kind == Points || s.kind == LinePoints {
			sc, err := plotter.NewScatter(s.xy)
			if err != nil {
				return fmt.Errorf("figure: series %q: %w", s.name, err)
			}
			sc.GlyphStyle = f.Style.Glyph
			sc.GlyphStyle.Color = col
			p.Add(points{sc})
			thumbs = append(thumbs, sc)
		}
		if s.name != "" {
			p.Legend.Add(s.name, thumbs...)
		}
	}
	f.plot = p

	f.learnData()
	f.Autoscale()
	return nil
}

// learnData recomputes the data ranges of both scales.
func (f *Figure) learnData() {
	for _, s := range f.scales {
		s.Data = plotpanel.UnsetInterval()
	}
	for _, s := range f.series {
		xmin, xmax, ymin, ymax := plotter.XYRange(s.xy)
		f.scales[plotpanel.XAxis].UpdateData(plotpanel.Interval{Min: xmin, Max: xmax})
		f.scales[plotpanel.YAxis].UpdateData(plotpanel.Interval{Min: ymin, Max: ymax})
	}
}

// applyLimits pushes the scale ranges into the gonum plot.
func (f *Figure) applyLimits() {
	f.plot.X.Min, f.plot.X.Max = f.scales[plotpanel.XAxis].Min, f.scales[plotpanel.XAxis].Max
	f.plot.Y.Min, f.plot.Y.Max = f.scales[plotpanel.YAxis].Min, f.scales[plotpanel.YAxis].Max
}

// ----------------------------------------------------------------------------
// plotpanel.Backend

// PlotArea returns the position of the axes in the figure.
func (f *Figure) PlotArea() plotpanel.Bounds { return f.area }

// Limits returns the range shown on axis a.
func (f *Figure) Limits(a plotpanel.Axis) plotpanel.Interval {
	return f.scales[a].Interval
}

// SetLimits fixes the range shown on axis a.
func (f *Figure) SetLimits(a plotpanel.Axis, lim plotpanel.Interval) {
	f.scales[a].Interval = lim
	f.applyLimits()
}

// SetAutoscale switches autoscaling of axis a.
func (f *Figure) SetAutoscale(a plotpanel.Axis, on bool) {
	f.scales[a].Auto = on
}

// Autoscale recomputes the range of all autoscaled axes from the data.
func (f *Figure) Autoscale() {
	for _, s := range f.scales {
		if s.Auto {
			s.autoscale()
		}
	}
	f.applyLimits()
}

// SetTitle sets the title drawn above the axes.
func (f *Figure) SetTitle(title string) {
	f.title = title
	f.plot.Title.Text = title
}

// SetLabel sets the title of axis a.
func (f *Figure) SetLabel(a plotpanel.Axis, label string) {
	f.labels[a] = label
	if a == plotpanel.XAxis {
		f.plot.X.Label.Text = label
	} else {
		f.plot.Y.Label.Text = label
	}
}

// Reset drops title, labels and fixed limits and autoscales both axes.
// The data series and the autoscaling settings of the scales are kept.
func (f *Figure) Reset() {
	for _, s := range f.scales {
		s.Auto = true
	}
	f.title = ""
	f.labels = [2]string{}
	if err := f.build(); err != nil {
		// Keep the old plot, but without the old texts.
		slog.Warn("figure: rebuilding plot failed", "err", err)
		f.SetTitle("")
		f.SetLabel(plotpanel.XAxis, "")
		f.SetLabel(plotpanel.YAxis, "")
		f.Autoscale()
	}
}

// Render draws the figure into an image of exactly size pixels.
func (f *Figure) Render(size plotpanel.Size) (img image.Image, err error) {
	c, err := f.raster(size)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// ExportImage writes the figure as png, jpg or tif image of size pixels.
func (f *Figure) ExportImage(w io.Writer, format string, size plotpanel.Size) error {
	var wt io.WriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
	default:
		return fmt.Errorf("%w: %q is no raster format", plotpanel.ErrUnknownFormat, format)
	}
	c, err := f.raster(size)
	if err != nil {
		return err
	}
	switch format {
	case "png":
		wt = vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	case "tif", "tiff":
		wt = vgimg.TiffCanvas{Canvas: c}
	}
	_, err = wt.WriteTo(w)
	return err
}

// ExportVector writes the figure as eps, svg or pdf document of
// width x height inches.
func (f *Figure) ExportVector(w io.Writer, format string, width, height float64) (err error) {
	switch format {
	case "eps", "svg", "pdf":
	default:
		return fmt.Errorf("%w: %q is no vector format", plotpanel.ErrUnknownFormat, format)
	}
	c, err := draw.NewFormattedCanvas(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return err
	}
	if err := f.draw(draw.New(c)); err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

// raster draws f onto a new image canvas of size pixels.
func (f *Figure) raster(size plotpanel.Size) (*vgimg.Canvas, error) {
	if !size.Known() {
		return nil, fmt.Errorf("figure: cannot draw at size %s", size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	c := vgimg.NewWith(vgimg.UseImage(img))
	if err := f.draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// draw draws the figure onto c with the data area at f.area.
func (f *Figure) draw(c draw.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("figure: drawing failed: %v", r)
		}
	}()

	f.Autoscale()

	c.SetColor(f.Style.Background)
	c.Fill(c.Rectangle.Path())

	outer, data := f.layout(c)
	if f.Style.AxesFill != nil {
		data.SetColor(f.Style.AxesFill)
		data.Fill(data.Rectangle.Path())
	}
	f.plot.Draw(outer)
	return nil
}

// layout returns the canvas to draw the plot on and the data area inside
// it. The outer canvas is moved until gonum's own margins for title,
// labels and ticks lie around the plot area.
func (f *Figure) layout(c draw.Canvas) (outer, data draw.Canvas) {
	size := c.Size()
	data = c
	data.Rectangle = vg.Rectangle{
		Min: vg.Point{
			X: c.Min.X + vg.Length(f.area.Left)*size.X,
			Y: c.Min.Y + vg.Length(f.area.Bottom)*size.Y,
		},
		Max: vg.Point{
			X: c.Min.X + vg.Length(f.area.Left+f.area.Width)*size.X,
			Y: c.Min.Y + vg.Length(f.area.Bottom+f.area.Height)*size.Y,
		},
	}

	// Margins depend slightly on the width of the canvas (tick labels
	// at the edges), so a second pass corrects the first guess.
	outer = c
	for i := 0; i < 2; i++ {
		da := f.plot.DataCanvas(outer)
		outer.Min.X += data.Min.X - da.Min.X
		outer.Min.Y += data.Min.Y - da.Min.Y
		outer.Max.X += data.Max.X - da.Max.X
		outer.Max.Y += data.Max.Y - da.Max.Y
	}
	return outer, data
}

// MapXY maps the data coordinate (x,y) to a point of canvas c as the
// figure would draw it.
func (f *Figure) MapXY(c draw.Canvas, x, y float64) vg.Point {
	_, data := f.layout(c)
	xs, ys := f.scales[plotpanel.XAxis], f.scales[plotpanel.YAxis]
	cx := plotpanel.Interval{Min: float64(data.Min.X), Max: float64(data.Max.X)}
	cy := plotpanel.Interval{Min: float64(data.Min.Y), Max: float64(data.Max.Y)}
	xu := plotpanel.LinearTrans.Trans(xs.Interval, cx, x)
	yu := plotpanel.LinearTrans.Trans(ys.Interval, cy, y)
	return vg.Point{X: vg.Length(xu), Y: vg.Length(yu)}
}

// points draws a scatter without contributing glyph boxes: gonum would
// otherwise pad the data area for glyphs outside the limits and the data
// area would no longer match the plot area.
type points struct{ *plotter.Scatter }

func (p points) GlyphBoxes(*plot.Plot) []plot.GlyphBox { return nil }
