// Package config holds the settings of the plotview application. Values
// come from the built-in defaults, optionally overlaid by a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vdobler/plotpanel"
	"github.com/vdobler/plotpanel/figure"
	"github.com/vdobler/plotpanel/settings"
)

// Config contains the configuration of a plot window.
type Config struct {
	// Window is the initial size of the window in device independent
	// pixels.
	Window struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"window"`

	Figure Figure `toml:"figure"`
	Export Export `toml:"export"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Figure configures the figure and its interaction.
type Figure struct {
	Title  string `toml:"title"`
	XLabel string `toml:"xlabel"`
	YLabel string `toml:"ylabel"`

	// Bounds is the plot area as left, bottom, width, height in
	// figure units.
	Bounds [4]float64 `toml:"bounds"`

	// Kind is line, points or linepoints.
	Kind     string  `toml:"kind"`
	FontSize float64 `toml:"font_size"`
	ZoomRate float64 `toml:"zoom_rate"`

	Autoscale Autoscale `toml:"autoscale"`
}

// Autoscale controls how autoscaled axes follow the data.
type Autoscale struct {
	// Margin expands the data range by this fraction of its extent,
	// Padding by this absolute amount, on both sides.
	Margin  float64 `toml:"margin"`
	Padding float64 `toml:"padding"`

	// Fixed edges of autoscaled axes; unset edges follow the data.
	XMin *float64 `toml:"x_min,omitempty"`
	XMax *float64 `toml:"x_max,omitempty"`
	YMin *float64 `toml:"y_min,omitempty"`
	YMax *float64 `toml:"y_max,omitempty"`
}

// Export holds the initial export sizes of the settings dialog.
type Export struct {
	ImageWidth   int     `toml:"image_width"`
	ImageHeight  int     `toml:"image_height"`
	VectorWidth  float64 `toml:"vector_width"`
	VectorHeight float64 `toml:"vector_height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{LogLevel: "info"}
	c.Window.Width, c.Window.Height = 800, 600
	b := plotpanel.DefaultBounds
	c.Figure.Bounds = [4]float64{b.Left, b.Bottom, b.Width, b.Height}
	c.Figure.Kind = figure.Line.String()
	c.Figure.FontSize = 10
	c.Figure.ZoomRate = plotpanel.DefaultZoomRate
	c.Figure.Autoscale.Margin = 0.05
	c.Export = Export{
		ImageWidth:   settings.DefaultImageWidth,
		ImageHeight:  settings.DefaultImageHeight,
		VectorWidth:  settings.DefaultVectorWidth,
		VectorHeight: settings.DefaultVectorHeight,
	}
	return c
}

// Load returns the defaults overlaid with the TOML file at path.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := c.Decode(f); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Decode overlays c with the TOML document read from r and validates the
// result. Unknown keys are an error.
func (c *Config) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return err
	}
	return c.Validate()
}

// Encode writes c as TOML document.
func (c *Config) Encode(w io.Writer) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Validate reports the first unusable value of c.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Figure.FontSize <= 0:
		return fmt.Errorf("font size %g must be positive", c.Figure.FontSize)
	case c.Figure.ZoomRate <= 0:
		return fmt.Errorf("zoom rate %g must be positive", c.Figure.ZoomRate)
	case c.Export.ImageWidth <= 0 || c.Export.ImageHeight <= 0:
		return fmt.Errorf("image size %dx%d must be positive", c.Export.ImageWidth, c.Export.ImageHeight)
	case c.Export.VectorWidth <= 0 || c.Export.VectorHeight <= 0:
		return fmt.Errorf("vector size %gx%g must be positive", c.Export.VectorWidth, c.Export.VectorHeight)
	}
	as := c.Figure.Autoscale
	if as.Margin < 0 || as.Padding < 0 {
		return fmt.Errorf("autoscale margin %g and padding %g must not be negative", as.Margin, as.Padding)
	}
	for _, e := range [][2]*float64{{as.XMin, as.XMax}, {as.YMin, as.YMax}} {
		if e[0] != nil && e[1] != nil && !(*e[0] < *e[1]) {
			return fmt.Errorf("autoscale min %g must be below max %g", *e[0], *e[1])
		}
	}
	b := c.Bounds()
	if !(b.Width > 0 && b.Height > 0) || b.Left < 0 || b.Bottom < 0 ||
		b.Left+b.Width > 1 || b.Bottom+b.Height > 1 {
		return fmt.Errorf("bounds %v must lie inside the unit square", c.Figure.Bounds)
	}
	if _, err := figure.ParseKind(c.Figure.Kind); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Bounds returns the configured plot area.
func (c *Config) Bounds() plotpanel.Bounds {
	b := c.Figure.Bounds
	return plotpanel.Bounds{Left: b[0], Bottom: b[1], Width: b[2], Height: b[3]}
}

// ApplyAutoscale configures the scales of f and autoscales it.
func (c *Config) ApplyAutoscale(f *figure.Figure) {
	as := c.Figure.Autoscale
	for a, e := range [][2]*float64{{as.XMin, as.XMax}, {as.YMin, as.YMax}} {
		s := f.Scale(plotpanel.Axis(a))
		s.Expand.Relative = as.Margin
		s.Expand.Absolute = as.Padding
		if e[0] != nil {
			s.FixMin(*e[0])
		}
		if e[1] != nil {
			s.FixMax(*e[1])
		}
	}
	f.Autoscale()
}

// Kind returns the configured series kind, Line if it is unknown.
func (c *Config) Kind() figure.Kind {
	k, _ := figure.ParseKind(c.Figure.Kind)
	return k
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
