package scratch

import "math"

// Compositor renders the overlay into a private pixmap and erases the
// scratched regions by stroking the recorded path segments with
// Porter-Duff clear. The private pixmap is the isolated blend scope: clear
// operations remove only pixels painted by this overlay's fill, never
// pixels from whatever the overlay is later composited over.
//
// Each repaint strokes the full accumulated path, so a render costs
// O(total stroke length x brush area). The shallow change check below keeps
// repaints from happening more often than the log, fill, brush or size
// actually change, which bounds the practical cost to the rate of new
// samples.
type Compositor struct {
	fill          Fill
	brushDiameter float64

	pm   *Pixmap
	last renderKey
}

// renderKey is the shallow change check: stroke count, brush size, fill
// identity, surface size and reveal state. Fill implementations are
// comparable by contract (see Fill), so key comparison never inspects
// pixel content.
type renderKey struct {
	strokes  int
	brush    float64
	fill     Fill
	w, h     int
	revealed bool
}

// NewCompositor creates a compositor with the given overlay fill and brush
// diameter. A nil fill falls back to solid silver; a non-positive brush
// falls back to the default diameter.
func NewCompositor(fill Fill, brushDiameter float64) *Compositor {
	if fill == nil {
		fill = Solid(Silver)
	}
	if brushDiameter <= 0 {
		brushDiameter = DefaultBrushDiameter
	}
	return &Compositor{fill: fill, brushDiameter: brushDiameter}
}

// SetFill replaces the overlay fill. The identity change makes the next
// Render repaint; an image fill arriving after the first render therefore
// shows up without disturbing the accumulated strokes.
func (c *Compositor) SetFill(f Fill) {
	if f == nil {
		return
	}
	c.fill = f
}

// Fill returns the current overlay fill.
func (c *Compositor) Fill() Fill {
	return c.fill
}

// Render produces the overlay pixmap for the given stroke log, surface size
// and reveal state. Consecutive calls with unchanged inputs return the
// cached pixmap without repainting. A revealed surface renders fully
// transparent; a zero-area surface renders empty.
//
// The returned pixmap is owned by the compositor and valid until the next
// Render call.
func (c *Compositor) Render(log []SamplePoint, width, height int, revealed bool) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	key := renderKey{
		strokes:  len(log),
		brush:    c.brushDiameter,
		fill:     c.fill,
		w:        width,
		h:        height,
		revealed: revealed,
	}
	if c.pm != nil && key == c.last {
		return c.pm
	}

	c.pm = NewPixmap(width, height)
	c.last = key
	if revealed || width == 0 || height == 0 {
		return c.pm
	}

	Logger().Debug("overlay repaint", "strokes", len(log), "w", width, "h", height)

	if p, ok := c.fill.(preparer); ok {
		p.prepare(width, height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.pm.SetPixel(x, y, c.fill.ColorAt(float64(x)+0.5, float64(y)+0.5))
		}
	}

	radius := c.brushDiameter / 2
	for _, seg := range Segments(log) {
		c.eraseSegment(seg, radius)
	}
	return c.pm
}

// eraseSegment strokes one segment into the overlay with clear blending.
// Consecutive samples become capsules (round caps and joins fall out of the
// capsule shape); a single-sample segment is a tap and erases a circle.
func (c *Compositor) eraseSegment(seg []SamplePoint, radius float64) {
	if len(seg) == 1 {
		p := seg[0].Point
		c.eraseStamp(p, p, radius, func(px, py float64) float64 {
			return SDFFilledCircleCoverage(px, py, p.X, p.Y, radius)
		})
		return
	}
	for i := 1; i < len(seg); i++ {
		a, b := seg[i-1].Point, seg[i].Point
		c.eraseStamp(a, b, radius, func(px, py float64) float64 {
			return SDFCapsuleCoverage(px, py, a, b, radius)
		})
	}
}

// eraseStamp applies coverage-weighted clear over the bounding box of the
// capsule from a to b, padded by the anti-alias band and clamped to the
// pixmap.
func (c *Compositor) eraseStamp(a, b Point, radius float64, coverage func(px, py float64) float64) {
	pad := radius + sdfAntialiasWidth
	x0 := int(math.Floor(math.Min(a.X, b.X) - pad))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + pad))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - pad))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + pad))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.pm.Width()-1 {
		x1 = c.pm.Width() - 1
	}
	if y1 > c.pm.Height()-1 {
		y1 = c.pm.Height() - 1
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.pm.Erase(x, y, coverage(float64(x)+0.5, float64(y)+0.5))
		}
	}
}
