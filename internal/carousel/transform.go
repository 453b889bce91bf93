// Package carousel derives the layered poster transforms from a single
// spring-animated active index.
package carousel

// Breakpoints are the item positions relative to the active value at which
// transform outputs are defined exactly: one before, active, one after.
var Breakpoints = []float64{-1, 0, 1}

var (
	offsetStops = []float64{50, 0, -100}
	scaleStops  = []float64{0.8, 1, -1.3}
)

// Transform holds the render-time parameters of one item for one frame.
type Transform struct {
	Offset float64 // horizontal offset in layout pixels
	Scale  float64 // negative values render the item mirrored
	Depth  int     // higher values are drawn on top
}

// Mirrored reports whether the item renders flipped horizontally.
func (t Transform) Mirrored() bool {
	return t.Scale < 0
}

// Map returns the transform of the item at index when the carousel's
// animated value is active. count is the total number of items.
func Map(active float64, index, count int) Transform {
	delta := float64(index) - active
	return Transform{
		Offset: Interpolate(delta, Breakpoints, offsetStops),
		Scale:  Interpolate(delta, Breakpoints, scaleStops),
		Depth:  count - index,
	}
}

// Interpolate maps x through the piecewise-linear function defined by the
// ascending input stops in and their outputs out. Inputs outside the range
// clamp to the edge outputs. in and out must have the same length.
func Interpolate(x float64, in, out []float64) float64 {
	n := len(in)
	if n == 0 || len(out) != n {
		return 0
	}
	if x <= in[0] {
		return out[0]
	}
	if x >= in[n-1] {
		return out[n-1]
	}
	for i := 1; i < n; i++ {
		if x > in[i] {
			continue
		}
		if x == in[i] {
			return out[i]
		}
		lo, hi := in[i-1], in[i]
		if hi == lo {
			return out[i]
		}
		t := (x - lo) / (hi - lo)
		return out[i-1] + t*(out[i]-out[i-1])
	}
	return out[n-1]
}

// Layer is an item's transform tagged with its index.
type Layer struct {
	Index int
	Transform
}

// Layers returns the transforms of all count items in paint order, lowest
// stack depth first, so that painting them in sequence leaves earlier items
// on top.
func Layers(active float64, count int) []Layer {
	if count <= 0 {
		return nil
	}
	layers := make([]Layer, 0, count)
	for i := count - 1; i >= 0; i-- {
		layers = append(layers, Layer{Index: i, Transform: Map(active, i, count)})
	}
	return layers
}
