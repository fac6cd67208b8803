package plotpanel

import "image"

// A Frame is a bitmap installed on a Surface.
type Frame interface{}

// A Surface displays bitmaps, e.g. a canvas item of a GUI toolkit.
type Surface interface {
	// Install shows img and returns a handle to it.
	Install(img image.Image) (Frame, error)

	// Remove discards a frame returned by Install.
	Remove(f Frame)
}

// ----------------------------------------------------------------------------
// Renderer

// A Renderer keeps the Surface of a panel in sync with a ViewState.
// After the first successful refresh exactly one frame is installed:
// a new frame is installed before the previous one is removed.
type Renderer struct {
	view    *ViewState
	surface Surface
	size    Size
	frame   Frame
	cancel  func()
}

// NewRenderer returns a renderer drawing v onto s. It refreshes on every
// Notify of v once the size is known.
func NewRenderer(v *ViewState, s Surface) *Renderer {
	r := &Renderer{view: v, surface: s}
	r.cancel = v.Subscribe(r.Refresh)
	return r
}

// Size returns the last size passed to Resize.
func (r *Renderer) Size() Size { return r.size }

// Frame returns the currently installed frame, nil before the first
// successful refresh.
func (r *Renderer) Frame() Frame { return r.frame }

// Resize sets the size of the panel and redraws.
func (r *Renderer) Resize(s Size) {
	r.size = s
	r.Refresh()
}

// Refresh renders the view at the current size and swaps the result
// onto the surface. It does nothing while the size is unknown. If
// rendering fails the previous frame stays installed.
func (r *Renderer) Refresh() {
	if !r.size.Known() {
		return
	}
	img, err := r.view.Render(r.size)
	if err != nil {
		lg().Error("render failed", "size", r.size, "err", err)
		return
	}
	frame, err := r.surface.Install(img)
	if err != nil {
		lg().Error("install frame failed", "size", r.size, "err", err)
		return
	}
	old := r.frame
	r.frame = frame
	if old != nil {
		r.surface.Remove(old)
	}
}

// Close removes the installed frame and stops listening to the view.
func (r *Renderer) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.frame != nil {
		r.surface.Remove(r.frame)
		r.frame = nil
	}
}
