//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"image"
	"math/rand"
	"os"

	"github.com/vdobler/plotpanel"
	"github.com/vdobler/plotpanel/figure"
	"gonum.org/v1/plot/plotter"
)

var xy = plotter.XYs{}

func init() {
	xy = make(plotter.XYs, 50)
	for i := range xy {
		x := float64(i) / 5
		xy[i].X, xy[i].Y = x, x*x/10+rand.NormFloat64()
	}
}

// nopSurface drops all frames.
type nopSurface struct{}

func (nopSurface) Install(img image.Image) (plotpanel.Frame, error) { return img, nil }
func (nopSurface) Remove(plotpanel.Frame)                          {}

func main() {
	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := figure.New(plotpanel.DefaultBounds)
	if err != nil {
		panic(err)
	}
	if err := f.Add("noisy parabola", xy, figure.LinePoints); err != nil {
		panic(err)
	}

	v := plotpanel.NewViewState(f)
	v.SetTitle("Zooming")
	v.SetXLabel("x")
	v.SetYLabel("x²/10 + noise")

	p := plotpanel.NewPanel(v, nopSurface{})
	size := plotpanel.Size{W: 600, H: 480}
	p.Resize(size)
	write(v, size, "testdata/zoom-00.png")

	// Zoom in around the center in three steps.
	p.Press(plotpanel.ButtonLeft, 300, 240)
	for i := 1; i <= 3; i++ {
		p.Motion(300-float64(15*i), 240+float64(15*i))
		write(v, size, fmt.Sprintf("testdata/zoom-%02d.png", i))
	}
	p.Release(plotpanel.ButtonLeft)

	// Pan half a plot width to the right.
	p.Press(plotpanel.ButtonRight, 300, 240)
	p.Motion(120, 240)
	p.Release(plotpanel.ButtonRight)
	write(v, size, "testdata/zoom-04.png")

	p.DoubleClick(plotpanel.ButtonLeft)
	write(v, size, "testdata/zoom-05.png")
	p.Destroy()
}

func write(v *plotpanel.ViewState, size plotpanel.Size, name string) {
	if err := v.SaveImageFile(name, size); err != nil {
		panic(err)
	}
}
