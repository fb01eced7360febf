package scratch

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// SDFCapsuleCoverage computes anti-aliased coverage for a capsule: a line
// segment from a to b thickened by radius. A capsule is exactly the footprint
// of one round-capped, round-joined stroke segment, so stamping capsules
// along the stroke log reproduces the brush path with no separate cap or
// join handling.
//
// Parameters:
//   - px, py: pixel center coordinates
//   - a, b: segment endpoints (a == b degenerates to a filled circle)
//   - radius: half the brush diameter
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func SDFCapsuleCoverage(px, py float64, a, b Point, radius float64) float64 {
	sdf := sdfSegment(Pt(px, py), a, b) - radius
	return smoothstepCoverage(sdf)
}

// SDFFilledCircleCoverage computes anti-aliased coverage for a filled circle
// using a signed distance field approach. Used for isolated taps that never
// grew into a drag.
func SDFFilledCircleCoverage(px, py, cx, cy, radius float64) float64 {
	dist := math.Hypot(px-cx, py-cy)
	sdf := dist - radius
	return smoothstepCoverage(sdf)
}

// sdfSegment computes the distance from point p to the segment ab.
func sdfSegment(p, a, b Point) float64 {
	pa := p.Sub(a)
	ba := b.Sub(a)
	denom := ba.LengthSquared()
	if denom == 0 {
		return pa.Length()
	}
	h := clamp01(pa.Dot(ba) / denom)
	return pa.Sub(ba.Mul(h)).Length()
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using smoothstep interpolation across the transition band.
func smoothstepCoverage(sdf float64) float64 {
	if sdf <= -sdfAntialiasWidth {
		return 1.0
	}
	if sdf >= sdfAntialiasWidth {
		return 0.0
	}
	t := (sdfAntialiasWidth - sdf) / (2 * sdfAntialiasWidth)
	return t * t * (3 - 2*t)
}
