package main

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/vdobler/plotpanel"
)

// Two presses of the same button within doubleClickTime and
// doubleClickSlop pixels are a double click.
const (
	doubleClickTime = 400 * time.Millisecond
	doubleClickSlop = 4
)

// frame is a bitmap installed on an imageSurface.
type frame struct {
	op   paint.ImageOp
	size image.Point
}

// imageSurface shows the frames of a plotpanel.Renderer as gio image ops.
type imageSurface struct {
	current *frame
}

func (s *imageSurface) Install(img image.Image) (plotpanel.Frame, error) {
	f := &frame{op: paint.NewImageOp(img), size: img.Bounds().Size()}
	s.current = f
	return f, nil
}

func (s *imageSurface) Remove(f plotpanel.Frame) {
	if s.current == f {
		s.current = nil
	}
}

// panelWidget adapts gio pointer events to a plotpanel.Panel.
type panelWidget struct {
	panel   *plotpanel.Panel
	surface *imageSurface

	held pointer.Buttons

	// Last press, for double click detection.
	lastButton plotpanel.Button
	lastTime   time.Duration
	lastPos    f32.Point
}

func newPanelWidget(v *plotpanel.ViewState) *panelWidget {
	s := &imageSurface{}
	return &panelWidget{
		panel:   plotpanel.NewPanel(v, s),
		surface: s,
	}
}

// panelButton returns the single button in bs the panel knows about.
func panelButton(bs pointer.Buttons) plotpanel.Button {
	switch {
	case bs.Contain(pointer.ButtonPrimary):
		return plotpanel.ButtonLeft
	case bs.Contain(pointer.ButtonSecondary):
		return plotpanel.ButtonRight
	}
	return plotpanel.ButtonNone
}

func (p *panelWidget) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: p,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			b := panelButton(e.Buttons &^ p.held)
			p.held = e.Buttons
			if b == plotpanel.ButtonNone {
				continue
			}
			if p.isDoubleClick(b, e) {
				p.lastButton = plotpanel.ButtonNone
				p.panel.DoubleClick(b)
				continue
			}
			p.lastButton, p.lastTime, p.lastPos = b, e.Time, e.Position
			p.panel.Press(b, float64(e.Position.X), float64(e.Position.Y))
		case pointer.Drag:
			p.panel.Motion(float64(e.Position.X), float64(e.Position.Y))
		case pointer.Release:
			// Release events carry the buttons still held.
			b := panelButton(p.held &^ e.Buttons)
			p.held = e.Buttons
			if b != plotpanel.ButtonNone {
				p.panel.Release(b)
			}
		case pointer.Cancel:
			for _, b := range []plotpanel.Button{plotpanel.ButtonLeft, plotpanel.ButtonRight} {
				p.panel.Release(b)
			}
			p.held = 0
		}
	}
}

func (p *panelWidget) isDoubleClick(b plotpanel.Button, e pointer.Event) bool {
	if b != p.lastButton || e.Time-p.lastTime > doubleClickTime {
		return false
	}
	d := e.Position.Sub(p.lastPos)
	return d.X*d.X+d.Y*d.Y <= doubleClickSlop*doubleClickSlop
}

// Layout draws the current frame of the panel, filling the available
// space. The panel is re-rendered whenever that space changes.
func (p *panelWidget) Layout(gtx layout.Context) layout.Dimensions {
	p.update(gtx)

	size := gtx.Constraints.Max
	p.panel.Resize(plotpanel.Size{W: size.X, H: size.Y})

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, p)
	if f := p.surface.current; f != nil {
		f.op.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}
