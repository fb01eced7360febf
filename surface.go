package scratch

// Surface is one scratch-off surface instance. It wires the coverage grid,
// the state machine, the milestone coordinator and the compositor together
// and exposes the pointer-facing and programmatic entry points.
//
// A Surface is owned by exactly one widget/view; it is not safe for
// concurrent use. All mutation is expected to arrive on a single
// event-processing path (pointer samples or programmatic calls), and each
// sample's grid update and notifications complete before the next sample is
// accepted.
type Surface struct {
	cfg   config
	grid  *CoverageGrid
	state *State
	coord *coordinator
	comp  *Compositor

	width  float64
	height float64
}

// NewSurface creates a surface with the given options. Construction never
// fails: out-of-range configuration degrades to documented defaults.
func NewSurface(opts ...Option) *Surface {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	s := &Surface{
		cfg:   cfg,
		grid:  NewCoverageGrid(cfg.gridRows, cfg.gridCols),
		state: NewState(),
	}
	s.coord = newCoordinator(&s.cfg, s.state, s.grid)
	s.comp = NewCompositor(cfg.fill, cfg.brushDiameter)
	return s
}

// Resize records the surface's current pixel size. The coverage grid is
// resolution independent, so resizing never alters past coverage decisions;
// it only changes how subsequent samples map onto grid cells.
func (s *Surface) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Begin feeds a drag-start sample in local surface coordinates, opening a
// new path segment. Ignored once revealed.
func (s *Surface) Begin(p Point) {
	s.addSample(p, true)
}

// Move feeds a drag-move sample, extending the current segment. While
// haptics are enabled the haptic collaborator ticks once per move sample,
// fire and forget. Ignored once revealed.
func (s *Surface) Move(p Point) {
	if s.state.Revealed() {
		return
	}
	s.addSample(p, false)
	if s.cfg.hapticsEnabled && s.cfg.haptics != nil {
		s.cfg.haptics.Tick()
	}
}

// addSample routes one pointer sample to the stroke log (for rendering) and
// the coverage grid (for progress), then pushes the grid's new estimate into
// the state machine.
func (s *Surface) addSample(p Point, newSegment bool) {
	if s.state.Revealed() {
		return
	}
	s.state.AddPoint(p, newSegment)
	s.grid.AddPoint(p, s.cfg.brushDiameter, s.width, s.height)
	s.state.UpdateProgress(s.grid.Progress())
}

// Reveal forces the surface into the revealed state: the grid is driven to
// full coverage and progress pins at exactly 1.0. Idempotent.
func (s *Surface) Reveal() {
	s.grid.RevealAll()
	s.state.SetRevealed(true)
}

// Unreveal brings the overlay back without clearing the stroke log or
// progress, for animating the overlay back in. Use Reset for a fresh
// session. Note that un-revealing ends the milestone session: triggers and
// the threshold re-arm and the coverage grid restarts empty.
func (s *Surface) Unreveal() {
	s.state.SetRevealed(false)
}

// Reset returns the surface to Idle: empty stroke log, progress 0, not
// revealed, all milestone bookkeeping re-armed, in a single notification.
func (s *Surface) Reset() {
	s.state.Reset()
}

// Progress returns the current progress in [0, 1].
func (s *Surface) Progress() float64 {
	return s.state.Progress()
}

// Revealed reports whether the surface is revealed.
func (s *Surface) Revealed() bool {
	return s.state.Revealed()
}

// Subscribe registers an observer for state change records, for renderers
// that redraw on change. Returns the unsubscribe function.
func (s *Surface) Subscribe(fn Observer) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// SetFill replaces the overlay fill, typically when an asynchronously
// loaded image becomes available after the first render. In-progress
// strokes are unaffected; the next Overlay call repaints with the new fill
// and re-erases the accumulated path.
func (s *Surface) SetFill(f Fill) {
	s.comp.SetFill(f)
}

// Overlay renders the overlay at the surface's current pixel size and
// returns it. Composite it over your content with Pixmap.CompositeOver;
// the erased holes can never remove content pixels. The returned pixmap is
// cached until the stroke log, fill, brush, size or reveal state changes.
func (s *Surface) Overlay() *Pixmap {
	return s.comp.Render(s.state.Log(), int(s.width), int(s.height), s.state.Revealed())
}

// BrushDiameter returns the configured brush diameter.
func (s *Surface) BrushDiameter() float64 {
	return s.cfg.brushDiameter
}
