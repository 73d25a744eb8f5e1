// File: scale.go — the diverging color scale used by DrawSVG.
package viz

import "github.com/lucasb-eyer/go-colorful"

// Scale is a continuous color scale defined by two or more stops,
// interpolated perceptually (CIE Lab) between neighbors.
type Scale struct {
	stops []colorful.Color
}

// NewScale builds a scale from its stops, evenly spaced over [0,1].
// Panics if fewer than two stops are given (programmer error, per the
// option-constructor fail-fast policy).
func NewScale(stops ...colorful.Color) Scale {
	if len(stops) < 2 {
		panic("viz: NewScale needs at least two stops")
	}

	return Scale{stops: stops}
}

// Coolwarm returns the default diverging scale: cool blue through neutral
// gray to warm red. Negative biases render cool, positive warm, zero
// neutral — matching the zero-centered bounds from ColorRange.
func Coolwarm() Scale {
	return NewScale(
		colorful.Color{R: 0.230, G: 0.299, B: 0.754},
		colorful.Color{R: 0.865, G: 0.865, B: 0.865},
		colorful.Color{R: 0.706, G: 0.016, B: 0.150},
	)
}

// At returns the scale color at t ∈ [0,1] (clamped).
func (s Scale) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	segments := float64(len(s.stops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(s.stops)-1 {
		return s.stops[len(s.stops)-1]
	}

	return s.stops[i].BlendLab(s.stops[i+1], pos-float64(i)).Clamped()
}

// Hex maps the value v on [vmin, vmax] to a "#rrggbb" color string.
// A degenerate range (vmin == vmax) maps everything to the midpoint.
func (s Scale) Hex(v, vmin, vmax float64) string {
	t := 0.5
	if vmax > vmin {
		t = (v - vmin) / (vmax - vmin)
	}

	return s.At(t).Hex()
}
