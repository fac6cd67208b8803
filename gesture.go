package plotpanel

import (
	"fmt"
	"math"
)

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

var buttonNames = [...]string{"none", "left", "right"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// Mode is the state of a Controller.
type Mode int

const (
	Idle Mode = iota
	Zooming
	Panning
)

var modeNames = [...]string{"idle", "zooming", "panning"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// DefaultZoomRate is the magnification exponent per pixel of drag:
// dragging 50 pixels halves or doubles the visible range.
const DefaultZoomRate = 0.02

// zoomSession is the state of a drag with the left button.
type zoomSession struct {
	origin Point // pixel where the drag started
	anchor Point // data point under origin; it stays fixed
	// dist holds, per axis, the signed distances from the anchor to the
	// lower and upper limit at the start of the drag.
	dist [numAxes][2]float64
}

// panSession is the state of a drag with the right button.
type panSession struct {
	origin Point // display coordinates where the drag started
	lims   [numAxes]Interval
	// ratio converts a displacement in display units into data units.
	ratio Point
}

// ----------------------------------------------------------------------------
// Controller

// A Controller turns pointer gestures into changes of a ViewState.
// Dragging with the left button zooms around the point pressed, dragging
// with the right button pans, a double click with the left button turns
// autoscaling back on and a double click with the right button calls
// OnSettings.
//
// Only one drag can be active; pressing the other button during a drag
// is ignored.
type Controller struct {
	// ZoomRate is the exponent per pixel of drag used while zooming.
	ZoomRate float64

	// OnSettings is called on a double click with the right button.
	OnSettings func()

	view *ViewState
	size Size
	mode Mode
	zoom zoomSession
	pan  panSession
}

// NewController returns an idle controller acting on v.
func NewController(v *ViewState) *Controller {
	return &Controller{
		ZoomRate: DefaultZoomRate,
		view:     v,
	}
}

// SetSize updates the pixel size of the panel. Pointer positions are
// interpreted relative to it.
func (c *Controller) SetSize(s Size) { c.size = s }

// Mode returns the current state of c.
func (c *Controller) Mode() Mode { return c.mode }

// Press starts a drag with button b at pixel p. It reports whether a
// drag was started. Presses during an active drag or before the panel
// size is known are ignored.
func (c *Controller) Press(b Button, p Point) bool {
	if c.mode != Idle {
		lg().Debug("ignoring press during drag", "button", b, "mode", c.mode)
		return false
	}
	d, ok := PixelToDisplay(p, c.size)
	if !ok {
		return false
	}

	bounds := c.view.Backend().PlotArea()
	xlim, ylim := c.view.XLim(), c.view.YLim()
	switch b {
	case ButtonLeft:
		anchor := DisplayToData(d, bounds, xlim, ylim)
		c.zoom = zoomSession{
			origin: p,
			anchor: anchor,
			dist: [numAxes][2]float64{
				{xlim.Min - anchor.X, xlim.Max - anchor.X},
				{ylim.Min - anchor.Y, ylim.Max - anchor.Y},
			},
		}
		c.mode = Zooming
	case ButtonRight:
		c.pan = panSession{
			origin: d,
			lims:   [numAxes]Interval{xlim, ylim},
			ratio: Point{
				X: xlim.Extent() / bounds.Width,
				Y: ylim.Extent() / bounds.Height,
			},
		}
		c.mode = Panning
	default:
		return false
	}
	return true
}

// Motion moves an active drag to pixel p. Without an active drag
// Motion does nothing.
func (c *Controller) Motion(p Point) {
	var xlim, ylim Interval
	switch c.mode {
	case Zooming:
		z := &c.zoom
		// Dragging left or down zooms in.
		d := Point{z.origin.X - p.X, p.Y - z.origin.Y}
		fx := math.Exp2(-c.ZoomRate * d.X)
		fy := math.Exp2(-c.ZoomRate * d.Y)
		xlim = Interval{z.anchor.X + z.dist[XAxis][0]*fx, z.anchor.X + z.dist[XAxis][1]*fx}
		ylim = Interval{z.anchor.Y + z.dist[YAxis][0]*fy, z.anchor.Y + z.dist[YAxis][1]*fy}
	case Panning:
		d, ok := PixelToDisplay(p, c.size)
		if !ok {
			return
		}
		delta := d.Sub(c.pan.origin)
		xlim = c.pan.lims[XAxis].Shift(-c.pan.ratio.X * delta.X)
		ylim = c.pan.lims[YAxis].Shift(-c.pan.ratio.Y * delta.Y)
	default:
		return
	}

	if !c.view.Autoscale() && xlim.Equal(c.view.XLim()) && ylim.Equal(c.view.YLim()) {
		return
	}
	if err := c.view.SetLims(xlim, ylim); err != nil {
		lg().Debug("drag produced unusable limits", "mode", c.mode, "err", err)
		return
	}
	c.view.Notify()
}

// Release ends the drag started with button b. Releasing any other
// button is ignored.
func (c *Controller) Release(b Button) {
	switch {
	case c.mode == Zooming && b == ButtonLeft,
		c.mode == Panning && b == ButtonRight:
		c.mode = Idle
	}
}

// DoubleClick handles a double click with button b.
func (c *Controller) DoubleClick(b Button) {
	switch b {
	case ButtonLeft:
		c.mode = Idle
		c.view.SetAutoscale(true)
		c.view.Notify()
	case ButtonRight:
		if c.OnSettings != nil {
			c.OnSettings()
		}
	}
}
