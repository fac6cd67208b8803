// Package plotpanel is the engine of an interactive plot viewer.
//
// It builds on gonum.org/v1/plot (see package figure) and leaves the GUI
// toolkit to a thin adapter (see cmd/plotview).
//
// Frames
//
// Three coordinate frames are involved:
//   - Pixel    Position on the panel, origin top-left, y growing down.
//   - Display  The whole figure as unit square, origin bottom-left.
//   - Data     The coordinates of the plotted data.
// The plot area (the axes) occupies a rectangle of the display frame
// given by Bounds. Axes-local coordinates map this rectangle onto the
// unit square; the axis limits map the unit square onto data.
//
// Gestures
//
// A Controller implements the gestures of the panel:
//   - Left drag       Zoom around the pressed point. Dragging left or down
//                     zooms in, right or up zooms out.
//   - Right drag      Pan; the data follows the pointer.
//   - Left double     Autoscale both axes.
//   - Right double    Open the settings (Controller.OnSettings).
//
// Every change goes through a ViewState which notifies its subscribers,
// most importantly the Renderer of the panel.
package plotpanel
