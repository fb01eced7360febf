package scratch

import (
	"math"
	"sort"
)

// ExtendMode determines how gradient colors extend beyond the stop range.
type ExtendMode int

const (
	// ExtendPad clamps to the edge colors (default).
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the gradient.
	ExtendRepeat
	// ExtendReflect mirrors the gradient on every repeat.
	ExtendReflect
)

// ColorStop pairs a gradient offset in [0, 1] with a color.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradientFill paints the overlay with a linear gradient between two
// points in surface coordinates.
type LinearGradientFill struct {
	start, end Point
	stops      []ColorStop
	extend     ExtendMode
	sorted     bool
}

// NewLinearGradientFill creates a gradient along the line from (x0, y0) to
// (x1, y1). Add stops with AddColorStop.
func NewLinearGradientFill(x0, y0, x1, y1 float64) *LinearGradientFill {
	return &LinearGradientFill{
		start: Pt(x0, y0),
		end:   Pt(x1, y1),
	}
}

// AddColorStop appends a color stop and returns the fill for chaining.
// Offsets outside [0, 1] are clamped.
func (g *LinearGradientFill) AddColorStop(offset float64, c RGBA) *LinearGradientFill {
	g.stops = append(g.stops, ColorStop{Offset: clamp01(offset), Color: c})
	g.sorted = false
	return g
}

// SetExtend sets the extend mode and returns the fill for chaining.
func (g *LinearGradientFill) SetExtend(mode ExtendMode) *LinearGradientFill {
	g.extend = mode
	return g
}

func (*LinearGradientFill) fillMarker() {}

// ColorAt projects the point onto the gradient axis and interpolates
// between the surrounding stops.
func (g *LinearGradientFill) ColorAt(x, y float64) RGBA {
	if len(g.stops) == 0 {
		return Transparent
	}
	if !g.sorted {
		sort.SliceStable(g.stops, func(i, j int) bool {
			return g.stops[i].Offset < g.stops[j].Offset
		})
		g.sorted = true
	}

	d := g.end.Sub(g.start)
	denom := d.LengthSquared()
	var t float64
	if denom > 0 {
		t = Pt(x, y).Sub(g.start).Dot(d) / denom
	}
	return colorAtOffset(g.stops, applyExtendMode(t, g.extend))
}

// applyExtendMode maps an arbitrary gradient position into [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t = t - math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Mod(t, 2)
		if period > 1 {
			t = 2 - period
		} else {
			t = period
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// colorAtOffset interpolates the sorted stop list at offset t in [0, 1].
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	first := stops[0]
	last := stops[len(stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}
