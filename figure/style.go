package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Figure is drawn.
type Style struct {
	Background color.Color
	AxesFill   color.Color

	Title     draw.TextStyle
	AxisTitle draw.TextStyle
	TickLabel draw.TextStyle

	Grid draw.LineStyle

	// Series lists the colors used for consecutive data series.
	Series    []color.Color
	LineWidth vg.Length
	Glyph     draw.GlyphStyle
}

// DefaultStyle returns a Style in the spirit of ggplot2: gray plot area,
// white grid lines. The baseFontSize is the font size for axis titles,
// the title is a bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White
	s.AxesFill = color.Gray16{0xeeee}

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.AxisTitle.Color = color.Black
	s.AxisTitle.Font = baseFont
	s.TickLabel.Color = color.Gray16{0x3333}
	s.TickLabel.Font = tickFont

	s.Grid.Color = color.White
	s.Grid.Width = vg.Length(1)

	s.Series = []color.Color{
		color.NRGBA{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
		color.NRGBA{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
		color.NRGBA{R: 0x51, G: 0x85, B: 0x4d, A: 0xff},
		color.NRGBA{R: 0x72, G: 0x6c, B: 0xae, A: 0xff},
		color.NRGBA{R: 0x85, G: 0x76, B: 0x25, A: 0xff},
		color.NRGBA{R: 0x97, G: 0x5f, B: 0x91, A: 0xff},
	}
	s.LineWidth = vg.Points(1.5)
	s.Glyph.Radius = vg.Points(2.5)
	s.Glyph.Shape = draw.CircleGlyph{}

	return s
}

// seriesColor returns the color of the i'th data series.
func (s Style) seriesColor(i int) color.Color {
	if len(s.Series) == 0 {
		return color.Black
	}
	return s.Series[i%len(s.Series)]
}
