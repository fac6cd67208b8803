package plotpanel

import (
	"errors"
	"fmt"
	"image"
	"io"
)

// fakeBackend autoscales to a fixed data range and records what it is
// asked to do.
type fakeBackend struct {
	area   Bounds
	data   [numAxes]Interval
	lims   [numAxes]Interval
	auto   [numAxes]bool
	title  string
	labels [numAxes]string

	renders int
	resets  int
	fail    bool
}

var _ Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		area: DefaultBounds,
		data: [numAxes]Interval{{0, 10}, {0, 10}},
		auto: [numAxes]bool{true, true},
	}
	b.Autoscale()
	return b
}

func (b *fakeBackend) Render(size Size) (image.Image, error) {
	if b.fail {
		return nil, errors.New("render failed")
	}
	b.renders++
	return image.NewRGBA(image.Rect(0, 0, size.W, size.H)), nil
}

func (b *fakeBackend) PlotArea() Bounds                { return b.area }
func (b *fakeBackend) Limits(a Axis) Interval          { return b.lims[a] }
func (b *fakeBackend) SetLimits(a Axis, lim Interval)  { b.lims[a] = lim }
func (b *fakeBackend) SetAutoscale(a Axis, on bool)    { b.auto[a] = on }
func (b *fakeBackend) SetTitle(title string)           { b.title = title }
func (b *fakeBackend) SetLabel(a Axis, label string)   { b.labels[a] = label }

func (b *fakeBackend) Autoscale() {
	for a := XAxis; a < numAxes; a++ {
		if b.auto[a] {
			b.lims[a] = b.data[a]
		}
	}
}

func (b *fakeBackend) Reset() {
	b.resets++
	b.title = ""
	b.labels = [numAxes]string{}
	b.auto = [numAxes]bool{true, true}
	b.Autoscale()
}

func (b *fakeBackend) ExportImage(w io.Writer, format string, size Size) error {
	if format != "png" {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	_, err := fmt.Fprintf(w, "png %s %v %v", size, b.lims[XAxis], b.lims[YAxis])
	return err
}

func (b *fakeBackend) ExportVector(w io.Writer, format string, width, height float64) error {
	if format != "svg" {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	_, err := fmt.Fprintf(w, "svg %gx%g", width, height)
	return err
}

// fakeSurface records installed frames.
type fakeSurface struct {
	next      int
	installed map[int]bool
	fail      bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{installed: map[int]bool{}}
}

func (s *fakeSurface) Install(img image.Image) (Frame, error) {
	if s.fail {
		return nil, errors.New("install failed")
	}
	s.next++
	s.installed[s.next] = true
	return s.next, nil
}

func (s *fakeSurface) Remove(f Frame) {
	delete(s.installed, f.(int))
}
