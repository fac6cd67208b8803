package plotpanel

// ----------------------------------------------------------------------------
// Panel

// A Panel is the toolkit independent part of a plot widget: the view it
// shows, the gesture controller acting on that view and the renderer
// keeping a surface up to date. A GUI adapter forwards its resize and
// pointer events to the methods of Panel.
type Panel struct {
	View       *ViewState
	Controller *Controller
	Renderer   *Renderer
}

// NewPanel returns a panel showing v on s. The panel draws nothing until
// the first Resize.
func NewPanel(v *ViewState, s Surface) *Panel {
	return &Panel{
		View:       v,
		Controller: NewController(v),
		Renderer:   NewRenderer(v, s),
	}
}

// Size is the last known size of the panel in pixels.
func (p *Panel) Size() Size { return p.Renderer.Size() }

// Resize records the new pixel size and redraws.
func (p *Panel) Resize(s Size) {
	if s == p.Size() {
		return
	}
	p.Controller.SetSize(s)
	p.Renderer.Resize(s)
}

// Press forwards a button press at pixel (x,y).
func (p *Panel) Press(b Button, x, y float64) { p.Controller.Press(b, Pt(x, y)) }

// Motion forwards a pointer move to pixel (x,y).
func (p *Panel) Motion(x, y float64) { p.Controller.Motion(Pt(x, y)) }

// Release forwards a button release.
func (p *Panel) Release(b Button) { p.Controller.Release(b) }

// DoubleClick forwards a double click.
func (p *Panel) DoubleClick(b Button) { p.Controller.DoubleClick(b) }

// Update redraws the panel, e.g. after the data changed.
func (p *Panel) Update() { p.View.Notify() }

// Destroy removes the displayed frame and detaches the panel from its
// view.
func (p *Panel) Destroy() { p.Renderer.Close() }
