// Frame Transformations
//
// The panel deals with three frames: pixels on screen, normalized display
// coordinates of the whole figure and the data coordinates of the axes.
package plotpanel

// A Transformation bundles two functions Trans and Inverse. Trans maps
// the interval from onto the interval to, Inverse undoes this.
type Transformation struct {
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}

// unit is the interval [0,1] of normalized coordinates.
var unit = Interval{0, 1}
