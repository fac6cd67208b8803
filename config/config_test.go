package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/plotpanel"
	"github.com/vdobler/plotpanel/figure"
	"gonum.org/v1/plot/plotter"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, plotpanel.DefaultBounds, c.Bounds())
	assert.Equal(t, figure.Line, c.Kind())
	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestDecode(t *testing.T) {
	in := `
log_level = "debug"

[window]
width = 1024

[figure]
title = "Pressure"
kind = "points"
bounds = [0.2, 0.2, 0.7, 0.7]

[export]
vector_width = 4.5
`
	c := Default()
	require.NoError(t, c.Decode(strings.NewReader(in)))

	assert.Equal(t, 1024, c.Window.Width)
	assert.Equal(t, 600, c.Window.Height, "default kept")
	assert.Equal(t, "Pressure", c.Figure.Title)
	assert.Equal(t, figure.Points, c.Kind())
	assert.Equal(t, plotpanel.Bounds{Left: 0.2, Bottom: 0.2, Width: 0.7, Height: 0.7}, c.Bounds())
	assert.Equal(t, 4.5, c.Export.VectorWidth)
	assert.Equal(t, 9.0, c.Export.VectorHeight)
	assert.Equal(t, plotpanel.DefaultZoomRate, c.Figure.ZoomRate)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestDecodeUnknownKey(t *testing.T) {
	err := Default().Decode(strings.NewReader("[figure]\ncolour = \"red\"\n"))
	var strict *toml.StrictMissingError
	assert.True(t, errors.As(err, &strict), "got %v", err)
}

func TestDecodeSyntaxError(t *testing.T) {
	err := Default().Decode(strings.NewReader("[window]\nwidth = = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

var invalidConfigs = []string{
	"[window]\nheight = 0\n",
	"[figure]\nfont_size = -1\n",
	"[figure]\nzoom_rate = 0\n",
	"[figure]\nkind = \"bars\"\n",
	"[figure]\nbounds = [0.5, 0.1, 0.6, 0.8]\n",
	"[figure]\nbounds = [0.1, 0.1, 0, 0.8]\n",
	"[export]\nimage_width = 0\n",
	"[export]\nvector_height = -9\n",
	"log_level = \"loud\"\n",
	"[figure.autoscale]\nmargin = -0.1\n",
	"[figure.autoscale]\npadding = -1.0\n",
	"[figure.autoscale]\nx_min = 3.0\nx_max = 3.0\n",
}

func TestDecodeInvalid(t *testing.T) {
	for _, in := range invalidConfigs {
		assert.Error(t, Default().Decode(strings.NewReader(in)), in)
	}
}

func TestApplyAutoscale(t *testing.T) {
	in := `
[figure.autoscale]
margin = 0.0
padding = 1.0
x_min = 0.0
y_max = 100.0
`
	c := Default()
	require.NoError(t, c.Decode(strings.NewReader(in)))
	require.NotNil(t, c.Figure.Autoscale.XMin)
	assert.Nil(t, c.Figure.Autoscale.XMax)

	f, err := figure.New(c.Bounds())
	require.NoError(t, err)
	c.ApplyAutoscale(f)
	xy := plotter.XYs{{X: 2, Y: 4}, {X: 10, Y: 20}}
	require.NoError(t, f.Add("data", xy, c.Kind()))
	assert.Equal(t, plotpanel.Interval{Min: 0, Max: 11}, f.Limits(plotpanel.XAxis))
	assert.Equal(t, plotpanel.Interval{Min: 3, Max: 100}, f.Limits(plotpanel.YAxis))

	// The settings outlive a reset of the figure.
	f.Reset()
	assert.Equal(t, plotpanel.Interval{Min: 0, Max: 11}, f.Limits(plotpanel.XAxis))
}

func TestDefaultAutoscaleMargin(t *testing.T) {
	c := Default()
	f, err := figure.New(c.Bounds())
	require.NoError(t, err)
	c.ApplyAutoscale(f)
	require.NoError(t, f.Add("data", plotter.XYs{{X: 0, Y: 0}, {X: 10, Y: 10}}, c.Kind()))
	assert.InDelta(t, -0.5, f.Limits(plotpanel.XAxis).Min, 1e-9)
	assert.InDelta(t, 10.5, f.Limits(plotpanel.YAxis).Max, 1e-9)
}

func TestEncodeLoads(t *testing.T) {
	c := Default()
	c.Figure.Title = "Dumped"
	c.Figure.Kind = "linepoints"
	ymin := -2.5
	c.Figure.Autoscale.YMin = &ymin

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))

	name := filepath.Join(t.TempDir(), "plotview.toml")
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0o644))
	got, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
