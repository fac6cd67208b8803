// Command plotview shows CSV data in an interactive plot window.
//
// Drag with the left mouse button to zoom around the point pressed, drag
// with the right button to pan. A double click with the left button
// autoscales, a double click with the right button opens the settings.
//
//	plotview [flags] [data.csv]
//
// Without a file a demo data set is shown. With -o the figure is written
// to the named file instead of opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"gioui.org/app"
	"gioui.org/unit"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/plotpanel"
	"github.com/vdobler/plotpanel/config"
	"github.com/vdobler/plotpanel/data"
	"github.com/vdobler/plotpanel/figure"
)

func main() {
	cfgPath := flag.String("config", "", "read configuration from this TOML `file`")
	title := flag.String("title", "", "figure title")
	xlabel := flag.String("xlabel", "", "label of the x axis")
	ylabel := flag.String("ylabel", "", "label of the y axis")
	kind := flag.String("kind", "", "draw series as line, points or linepoints")
	watch := flag.Bool("watch", false, "reload the data file when it changes")
	output := flag.String("o", "", "write the figure to this `file` and exit; the extension selects the format")
	size := flag.String("size", "", "pixel size `WxH` of images written with -o")
	vsize := flag.String("vsize", "", "size `WxH` in inches of documents written with -o")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "plotview:", err)
		os.Exit(2)
	}
	override(&cfg.Figure.Title, *title)
	override(&cfg.Figure.XLabel, *xlabel)
	override(&cfg.Figure.YLabel, *ylabel)
	override(&cfg.Figure.Kind, *kind)
	if *size != "" {
		w, h, err := parseSize(*size)
		if err != nil {
			fatal(err)
		}
		cfg.Export.ImageWidth, cfg.Export.ImageHeight = int(w), int(h)
	}
	if *vsize != "" {
		w, h, err := parseSize(*vsize)
		if err != nil {
			fatal(err)
		}
		cfg.Export.VectorWidth, cfg.Export.VectorHeight = w, h
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if *dumpConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	plotpanel.SetLogger(logger)

	file := flag.Arg(0)
	series, err := loadSeries(file)
	if err != nil {
		fatal(err)
	}
	fig, view, err := newView(cfg, series)
	if err != nil {
		fatal(err)
	}

	if *output != "" {
		if err := export(view, cfg, *output); err != nil {
			fatal(err)
		}
		return
	}

	go func() {
		w := new(app.Window)
		name := "plotview"
		if file != "" {
			name += " " + file
		}
		w.Option(
			app.Title(name),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		ui := NewUI(w, cfg, fig, view)

		ctx, cancel := context.WithCancel(context.Background())
		if *watch && file != "" {
			go func() {
				if err := data.Watch(ctx, file, ui.Reload); err != nil {
					slog.Error("watching data", "file", file, "err", err)
				}
			}()
		}

		err := ui.Run()
		cancel()
		if err != nil {
			slog.Error("window", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "plotview:", err)
	os.Exit(1)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseSize parses "WxH".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not of the form WxH", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	return w, h, nil
}

// loadSeries reads the named CSV file or, without a name, returns the
// demo data.
func loadSeries(name string) ([]data.Series, error) {
	if name != "" {
		return data.ReadFile(name)
	}
	const n = 200
	sin := make(plotter.XYs, n)
	cos := make(plotter.XYs, n)
	for i := range sin {
		x := 10 * float64(i) / (n - 1)
		sin[i] = plotter.XY{X: x, Y: math.Sin(x)}
		cos[i] = plotter.XY{X: x, Y: 0.5 * math.Cos(2*x)}
	}
	return []data.Series{{Name: "sin x", XY: sin}, {Name: "cos 2x / 2", XY: cos}}, nil
}

// newView builds the figure and its view state from the configuration.
func newView(cfg *config.Config, series []data.Series) (*figure.Figure, *plotpanel.ViewState, error) {
	fig, err := figure.New(cfg.Bounds())
	if err != nil {
		return nil, nil, err
	}
	fig.Style = figure.DefaultStyle(vg.Length(cfg.Figure.FontSize))
	cfg.ApplyAutoscale(fig)
	for _, s := range series {
		if err := fig.Add(s.Name, s.XY, cfg.Kind()); err != nil {
			return nil, nil, err
		}
	}
	view := plotpanel.NewViewState(fig)
	view.SetTitle(cfg.Figure.Title)
	view.SetXLabel(cfg.Figure.XLabel)
	view.SetYLabel(cfg.Figure.YLabel)
	return fig, view, nil
}

// export writes the view to the named file.
func export(v *plotpanel.ViewState, cfg *config.Config, name string) error {
	switch plotpanel.Format(name) {
	case "eps", "svg", "pdf":
		return v.SaveVectorFile(name, cfg.Export.VectorWidth, cfg.Export.VectorHeight)
	}
	return v.SaveImageFile(name, plotpanel.Size{W: cfg.Export.ImageWidth, H: cfg.Export.ImageHeight})
}
