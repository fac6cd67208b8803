package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/plotpanel"
	"github.com/vdobler/plotpanel/config"
)

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("640x480")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{640, 480}, [2]float64{w, h})

	w, h, err = parseSize("4.5X3")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{4.5, 3}, [2]float64{w, h})

	for _, s := range []string{"", "640", "ax3", "3xb"} {
		_, _, err := parseSize(s)
		assert.Error(t, err, s)
	}
}

func TestNewViewAndExport(t *testing.T) {
	series, err := loadSeries("")
	require.NoError(t, err)
	require.Len(t, series, 2)

	cfg := config.Default()
	cfg.Figure.Title = "Demo"
	cfg.Figure.Kind = "points"
	cfg.Export.ImageWidth, cfg.Export.ImageHeight = 200, 150
	cfg.Export.VectorWidth, cfg.Export.VectorHeight = 3, 2

	fig, view, err := newView(cfg, series)
	require.NoError(t, err)
	assert.Equal(t, 2, fig.Len())
	assert.Equal(t, "Demo", view.Title())
	assert.True(t, view.Autoscale())

	dir := t.TempDir()
	for name, magic := range map[string]string{
		"demo.png": "\x89PNG",
		"demo.svg": "<?xml",
		"demo.eps": "%!PS-Adobe",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, export(view, cfg, path), name)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(got, []byte(magic)), name)
	}

	f, err := os.Open(filepath.Join(dir, "demo.png"))
	require.NoError(t, err)
	defer f.Close()
	pc, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 200, pc.Width)
	assert.Equal(t, 150, pc.Height)

	assert.ErrorIs(t, export(view, cfg, filepath.Join(dir, "demo.bmp")), plotpanel.ErrUnknownFormat)
}

func TestPanelButton(t *testing.T) {
	assert.Equal(t, plotpanel.ButtonLeft, panelButton(pointer.ButtonPrimary))
	assert.Equal(t, plotpanel.ButtonRight, panelButton(pointer.ButtonSecondary))
	assert.Equal(t, plotpanel.ButtonNone, panelButton(pointer.ButtonTertiary))
	assert.Equal(t, plotpanel.ButtonNone, panelButton(0))
}

func TestIsDoubleClick(t *testing.T) {
	p := &panelWidget{
		lastButton: plotpanel.ButtonLeft,
		lastTime:   time.Second,
		lastPos:    f32.Pt(100, 100),
	}
	press := func(dt time.Duration, x, y float32) pointer.Event {
		return pointer.Event{Time: time.Second + dt, Position: f32.Pt(x, y)}
	}
	assert.True(t, p.isDoubleClick(plotpanel.ButtonLeft, press(200*time.Millisecond, 102, 98)))
	assert.False(t, p.isDoubleClick(plotpanel.ButtonRight, press(200*time.Millisecond, 100, 100)), "other button")
	assert.False(t, p.isDoubleClick(plotpanel.ButtonLeft, press(time.Second, 100, 100)), "too slow")
	assert.False(t, p.isDoubleClick(plotpanel.ButtonLeft, press(100*time.Millisecond, 110, 100)), "moved")
}

func TestImageSurface(t *testing.T) {
	s := &imageSurface{}
	a, err := s.Install(image.NewRGBA(image.Rect(0, 0, 4, 3)))
	require.NoError(t, err)
	b, err := s.Install(image.NewRGBA(image.Rect(0, 0, 8, 6)))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 6), s.current.size)

	s.Remove(a)
	assert.Equal(t, b, plotpanel.Frame(s.current), "removing an old frame keeps the current one")
	s.Remove(b)
	assert.Nil(t, s.current)
}
