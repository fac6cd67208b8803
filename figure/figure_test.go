package figure

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/plotpanel"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func ramp(n int, from, to float64) plotter.XYs {
	xy := make(plotter.XYs, n)
	for i := range xy {
		x := from + (to-from)*float64(i)/float64(n-1)
		xy[i] = plotter.XY{X: x, Y: 2 * x}
	}
	return xy
}

func newTestFigure(t *testing.T) *Figure {
	t.Helper()
	f, err := New(plotpanel.DefaultBounds)
	require.NoError(t, err)
	require.NoError(t, f.Add("ramp", ramp(11, 0, 10), Line))
	return f
}

func TestNewRejectsEmptyArea(t *testing.T) {
	_, err := New(plotpanel.Bounds{Left: 0.1, Bottom: 0.1})
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Line, Points, LinePoints} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("bars")
	assert.Error(t, err)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestFigureAutoscale(t *testing.T) {
	f, err := New(plotpanel.DefaultBounds)
	require.NoError(t, err)
	assert.Equal(t, plotpanel.Interval{Min: 0, Max: 1}, f.Limits(plotpanel.XAxis), "no data")

	require.NoError(t, f.Add("ramp", ramp(11, 0, 10), Line))
	assert.InDelta(t, -0.5, f.Limits(plotpanel.XAxis).Min, 1e-9)
	assert.InDelta(t, 10.5, f.Limits(plotpanel.XAxis).Max, 1e-9)
	assert.InDelta(t, -1, f.Limits(plotpanel.YAxis).Min, 1e-9)
	assert.InDelta(t, 21, f.Limits(plotpanel.YAxis).Max, 1e-9)

	require.NoError(t, f.Add("more", ramp(3, 10, 20), Points))
	assert.Equal(t, 2, f.Len())
	assert.InDelta(t, 21, f.Limits(plotpanel.XAxis).Max, 1e-9)
}

func TestFigureLimits(t *testing.T) {
	f := newTestFigure(t)
	f.SetAutoscale(plotpanel.XAxis, false)
	f.SetLimits(plotpanel.XAxis, plotpanel.Interval{Min: 2, Max: 3})
	f.Autoscale()
	assert.Equal(t, plotpanel.Interval{Min: 2, Max: 3}, f.Limits(plotpanel.XAxis))

	// Fixed limits survive new data, autoscaled ones follow it.
	require.NoError(t, f.Add("high", ramp(2, 0, 100), Line))
	assert.Equal(t, plotpanel.Interval{Min: 2, Max: 3}, f.Limits(plotpanel.XAxis))
	assert.InDelta(t, 210, f.Limits(plotpanel.YAxis).Max, 1e-9)

	f.SetTitle("T")
	f.SetLabel(plotpanel.YAxis, "y")
	f.Reset()
	assert.Equal(t, 2, f.Len(), "reset keeps data")
	assert.Equal(t, "", f.title)
	assert.Equal(t, "", f.labels[plotpanel.YAxis])
	assert.InDelta(t, 105, f.Limits(plotpanel.XAxis).Max, 1e-9)

	require.NoError(t, f.RemoveAll())
	assert.Zero(t, f.Len())
	assert.Equal(t, plotpanel.Interval{Min: 0, Max: 1}, f.Limits(plotpanel.XAxis))
}

func TestResetFailureDropsTexts(t *testing.T) {
	f := newTestFigure(t)
	f.SetTitle("Title")
	f.SetLabel(plotpanel.XAxis, "x")
	// A series gonum refuses to plot makes the rebuild fail.
	f.series = append(f.series, series{name: "bad", xy: plotter.XYs{{X: math.NaN(), Y: 1}}, kind: Line})

	f.Reset()
	assert.Equal(t, "", f.plot.Title.Text)
	assert.Equal(t, "", f.plot.X.Label.Text)
	assert.Equal(t, "", f.title)
}

func TestFigureScaleSettings(t *testing.T) {
	f := newTestFigure(t)
	x := f.Scale(plotpanel.XAxis)
	x.FixMin(0)
	x.Expand.Relative = 0
	x.Expand.Absolute = 1
	f.Autoscale()
	assert.Equal(t, plotpanel.Interval{Min: 0, Max: 11}, f.Limits(plotpanel.XAxis))

	// Reset keeps the settings.
	f.Reset()
	assert.Equal(t, plotpanel.Interval{Min: 0, Max: 11}, f.Limits(plotpanel.XAxis))
}

func TestRender(t *testing.T) {
	f := newTestFigure(t)
	f.SetTitle("Title")
	f.SetLabel(plotpanel.XAxis, "x")
	f.SetLabel(plotpanel.YAxis, "y")

	img, err := f.Render(plotpanel.Size{W: 300, H: 200})
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	_, err = f.Render(plotpanel.Size{})
	assert.Error(t, err)
}

func TestLayoutKeepsPlotArea(t *testing.T) {
	for _, b := range []plotpanel.Bounds{
		plotpanel.DefaultBounds,
		{Left: 0.15, Bottom: 0.1, Width: 0.8, Height: 0.75},
	} {
		f, err := New(b)
		require.NoError(t, err)
		require.NoError(t, f.Add("ramp", ramp(11, 0, 10), LinePoints))
		f.SetTitle("Title")
		f.SetLabel(plotpanel.XAxis, "x axis")
		f.SetLabel(plotpanel.YAxis, "y axis")

		c := draw.New(vgimg.New(400, 300))
		outer, data := f.layout(c)
		size := c.Size()
		assert.InDelta(t, float64(b.Left)*float64(size.X), float64(data.Min.X-c.Min.X), 1e-6)
		assert.InDelta(t, float64(b.Bottom)*float64(size.Y), float64(data.Min.Y-c.Min.Y), 1e-6)

		da := f.plot.DataCanvas(outer)
		assert.InDelta(t, float64(data.Min.X), float64(da.Min.X), 1, "%v left", b)
		assert.InDelta(t, float64(data.Max.X), float64(da.Max.X), 1, "%v right", b)
		assert.InDelta(t, float64(data.Min.Y), float64(da.Min.Y), 1, "%v bottom", b)
		assert.InDelta(t, float64(data.Max.Y), float64(da.Max.Y), 1, "%v top", b)

		// The limits map onto the corners of the plot area.
		lo := f.MapXY(c, f.Limits(plotpanel.XAxis).Min, f.Limits(plotpanel.YAxis).Min)
		hi := f.MapXY(c, f.Limits(plotpanel.XAxis).Max, f.Limits(plotpanel.YAxis).Max)
		assert.InDelta(t, float64(data.Min.X), float64(lo.X), 1e-6)
		assert.InDelta(t, float64(data.Min.Y), float64(lo.Y), 1e-6)
		assert.InDelta(t, float64(data.Max.X), float64(hi.X), 1e-6)
		assert.InDelta(t, float64(data.Max.Y), float64(hi.Y), 1e-6)
	}
}

func TestExport(t *testing.T) {
	f := newTestFigure(t)
	f.SetAutoscale(plotpanel.XAxis, false)
	f.SetLimits(plotpanel.XAxis, plotpanel.Interval{Min: 1, Max: 2})

	magic := map[string]string{
		"png":  "\x89PNG",
		"jpg":  "\xff\xd8",
		"jpeg": "\xff\xd8",
		"tif":  "",
		"svg":  "<?xml",
		"eps":  "%!PS-Adobe",
		"pdf":  "%PDF",
	}
	for format, prefix := range magic {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			var err error
			switch format {
			case "svg", "eps", "pdf":
				err = f.ExportVector(&buf, format, 4, 3)
			default:
				err = f.ExportImage(&buf, format, plotpanel.Size{W: 120, H: 90})
			}
			require.NoError(t, err)
			assert.NotZero(t, buf.Len())
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(prefix)), "%s output", format)
			assert.Equal(t, plotpanel.Interval{Min: 1, Max: 2}, f.Limits(plotpanel.XAxis))
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	f := newTestFigure(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, f.ExportImage(&buf, "svg", plotpanel.Size{W: 10, H: 10}), plotpanel.ErrUnknownFormat)
	assert.ErrorIs(t, f.ExportImage(&buf, "gif", plotpanel.Size{W: 10, H: 10}), plotpanel.ErrUnknownFormat)
	assert.ErrorIs(t, f.ExportVector(&buf, "png", 3, 3), plotpanel.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
