package scratch

import "sort"

// Default configuration values.
const (
	DefaultBrushDiameter = 30.0
	DefaultThreshold     = 0.5
)

// Haptics is the haptic feedback collaborator. Tick is invoked
// fire-and-forget once per move sample while haptics are enabled; the core
// never observes a result.
type Haptics interface {
	Tick()
}

// Celebration is the companion animation collaborator. The core only emits
// Start and Stop intents; the implementation owns its own timers, completion
// and removal behavior and never calls back into the core.
type Celebration interface {
	Start()
	Stop()
}

// Option configures a Surface during creation.
// Use functional options to customize Surface behavior.
//
// Example:
//
//	s := scratch.NewSurface(
//		scratch.WithBrushDiameter(24),
//		scratch.WithTriggers(0.25, 0.5, 0.75),
//	)
type Option func(*config)

// config holds the full configuration for a Surface. It is assembled once at
// construction, normalized, and never mutated afterwards.
type config struct {
	brushDiameter        float64
	threshold            float64
	triggers             []float64
	maxTrigger           float64
	autoReveal           bool
	autoRevealOnComplete bool
	hapticsEnabled       bool
	gridRows             int
	gridCols             int

	fill        Fill
	haptics     Haptics
	celebration Celebration

	onProgress  func(float64)
	onTrigger   func(float64)
	onThreshold func()
}

// defaultConfig returns the documented defaults: brush diameter 30, reveal
// threshold 0.5, no triggers, auto-reveal on, auto-reveal on max trigger on,
// haptics on, 20x20 grid, silver solid fill.
func defaultConfig() config {
	return config{
		brushDiameter:        DefaultBrushDiameter,
		threshold:            DefaultThreshold,
		autoReveal:           true,
		autoRevealOnComplete: true,
		hapticsEnabled:       true,
		gridRows:             DefaultGridRows,
		gridCols:             DefaultGridCols,
		fill:                 Solid(Silver),
	}
}

// normalize validates the assembled configuration in one place rather than
// scattering checks through call sites. Out-of-range values degrade to
// defaults or are clamped into [0, 1]; construction never fails.
func (c *config) normalize() {
	if c.brushDiameter <= 0 {
		c.brushDiameter = DefaultBrushDiameter
	}
	c.threshold = clamp01(c.threshold)
	if c.gridRows <= 0 {
		c.gridRows = DefaultGridRows
	}
	if c.gridCols <= 0 {
		c.gridCols = DefaultGridCols
	}
	if c.fill == nil {
		c.fill = Solid(Silver)
	}

	// Clamp triggers into [0, 1], collapse duplicates, sort ascending.
	// Sorted order makes trigger callbacks fire low-to-high when one sample
	// crosses several triggers at once.
	if len(c.triggers) > 0 {
		seen := make(map[float64]struct{}, len(c.triggers))
		cleaned := make([]float64, 0, len(c.triggers))
		for _, t := range c.triggers {
			t = clamp01(t)
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			cleaned = append(cleaned, t)
		}
		sort.Float64s(cleaned)
		c.triggers = cleaned
		c.maxTrigger = cleaned[len(cleaned)-1]
	}
}

// WithBrushDiameter sets the scratch brush diameter in pixels (default 30).
// Non-positive values fall back to the default.
func WithBrushDiameter(d float64) Option {
	return func(c *config) { c.brushDiameter = d }
}

// WithThreshold sets the reveal threshold as a progress fraction
// (default 0.5). Values outside [0, 1] are clamped.
func WithThreshold(t float64) Option {
	return func(c *config) { c.threshold = t }
}

// WithTriggers sets the progress fractions at which the trigger callback
// fires, each at most once per session. Duplicates collapse; values outside
// [0, 1] are clamped.
func WithTriggers(ts ...float64) Option {
	return func(c *config) { c.triggers = append([]float64(nil), ts...) }
}

// WithAutoReveal controls whether reaching the threshold also reveals the
// surface (default true).
func WithAutoReveal(on bool) Option {
	return func(c *config) { c.autoReveal = on }
}

// WithAutoRevealOnComplete controls whether reaching the highest configured
// trigger reveals the surface (default true). It has no effect without
// triggers.
func WithAutoRevealOnComplete(on bool) Option {
	return func(c *config) { c.autoRevealOnComplete = on }
}

// WithHapticsEnabled controls whether the haptics collaborator is invoked
// per move sample (default true).
func WithHapticsEnabled(on bool) Option {
	return func(c *config) { c.hapticsEnabled = on }
}

// WithGridSize sets the coverage grid resolution (default 20x20).
// Non-positive dimensions fall back to the default.
func WithGridSize(rows, cols int) Option {
	return func(c *config) {
		c.gridRows = rows
		c.gridCols = cols
	}
}

// WithFill sets the overlay fill (default solid silver).
func WithFill(f Fill) Option {
	return func(c *config) { c.fill = f }
}

// WithHaptics sets the haptic feedback collaborator.
func WithHaptics(h Haptics) Option {
	return func(c *config) { c.haptics = h }
}

// WithCelebration sets the companion animation collaborator.
func WithCelebration(cel Celebration) Option {
	return func(c *config) { c.celebration = cel }
}

// WithOnProgress sets the progress observer, invoked with the current
// progress on every state notification, even when the value is unchanged.
func WithOnProgress(fn func(progress float64)) Option {
	return func(c *config) { c.onProgress = fn }
}

// WithOnTrigger sets the trigger callback, invoked with the trigger value
// the first time progress reaches it in a session.
func WithOnTrigger(fn func(trigger float64)) Option {
	return func(c *config) { c.onTrigger = fn }
}

// WithOnThreshold sets the threshold callback, invoked the first time
// progress reaches the reveal threshold in a session.
func WithOnThreshold(fn func()) Option {
	return func(c *config) { c.onThreshold = fn }
}
