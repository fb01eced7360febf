package scratch

import (
	"testing"
)

// milestoneRecorder captures every callback a coordinator emits.
type milestoneRecorder struct {
	progress  []float64
	triggers  []float64
	threshold int
	started   int
	stopped   int
}

func (r *milestoneRecorder) Start() { r.started++ }
func (r *milestoneRecorder) Stop()  { r.stopped++ }

func (r *milestoneRecorder) options() []Option {
	return []Option{
		WithOnProgress(func(p float64) { r.progress = append(r.progress, p) }),
		WithOnTrigger(func(t float64) { r.triggers = append(r.triggers, t) }),
		WithOnThreshold(func() { r.threshold++ }),
		WithCelebration(r),
	}
}

// newTestCoordinator builds a state machine + grid + coordinator wired with
// the recorder, bypassing Surface so progress can be driven directly.
func newTestCoordinator(rec *milestoneRecorder, extra ...Option) (*State, *CoverageGrid) {
	cfg := defaultConfig()
	for _, opt := range append(rec.options(), extra...) {
		opt(&cfg)
	}
	cfg.normalize()
	state := NewState()
	grid := NewCoverageGrid(cfg.gridRows, cfg.gridCols)
	newCoordinator(&cfg, state, grid)
	return state, grid
}

func TestMilestoneScenario(t *testing.T) {
	// Triggers 0.25 and 0.5, threshold 0.6, auto-reveal on. Max-trigger
	// reveal is off so the threshold alone decides the reveal point.
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithTriggers(0.25, 0.5),
		WithThreshold(0.6),
		WithAutoRevealOnComplete(false),
	)

	state.UpdateProgress(0.3)
	if len(rec.triggers) != 1 || rec.triggers[0] != 0.25 {
		t.Fatalf("triggers after 0.3 = %v, want [0.25]", rec.triggers)
	}
	if state.Revealed() {
		t.Fatal("revealed at 0.3, want not revealed")
	}

	state.UpdateProgress(0.55)
	if len(rec.triggers) != 2 || rec.triggers[1] != 0.5 {
		t.Fatalf("triggers after 0.55 = %v, want [0.25 0.5]", rec.triggers)
	}
	if state.Revealed() {
		t.Fatal("revealed at 0.55, want not revealed")
	}
	if rec.threshold != 0 {
		t.Fatalf("threshold fired at 0.55, want not yet")
	}

	state.UpdateProgress(0.65)
	if rec.threshold != 1 {
		t.Errorf("threshold fired %d times, want 1", rec.threshold)
	}
	if !state.Revealed() {
		t.Error("not revealed at 0.65 with autoReveal on")
	}
}

func TestMilestoneTriggersFireAtMostOnce(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithTriggers(0.3),
		WithAutoReveal(false),
		WithAutoRevealOnComplete(false),
	)

	// Oscillate above and below the trigger within one session.
	state.UpdateProgress(0.4)
	state.UpdateProgress(0.2) // below again (direct state drive)
	state.UpdateProgress(0.5)
	state.UpdateProgress(0.35)

	if len(rec.triggers) != 1 {
		t.Errorf("trigger fired %d times within one session, want 1", len(rec.triggers))
	}
}

func TestMilestoneCrossingSeveralTriggersAtOnce(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithTriggers(0.75, 0.25, 0.5, 0.5), // unsorted with a duplicate
		WithAutoReveal(false),
		WithAutoRevealOnComplete(false),
	)

	state.UpdateProgress(0.8)

	want := []float64{0.25, 0.5, 0.75}
	if len(rec.triggers) != len(want) {
		t.Fatalf("triggers = %v, want %v", rec.triggers, want)
	}
	for i := range want {
		if rec.triggers[i] != want[i] {
			t.Fatalf("triggers = %v, want ascending %v", rec.triggers, want)
		}
	}
}

func TestMilestoneCelebrationOnMaxTrigger(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithTriggers(0.2, 0.6),
		WithAutoReveal(false),
		WithAutoRevealOnComplete(false),
	)

	state.UpdateProgress(0.3)
	if rec.started != 0 {
		t.Fatal("celebration started before max trigger")
	}
	state.UpdateProgress(0.7)
	if rec.started != 1 {
		t.Fatalf("celebration started %d times, want 1", rec.started)
	}
	state.UpdateProgress(0.9) // idempotent while running
	if rec.started != 1 {
		t.Errorf("celebration re-started, want idempotent start")
	}

	state.Reset()
	if rec.stopped != 1 {
		t.Errorf("celebration stopped %d times after reset, want 1", rec.stopped)
	}
}

func TestMilestoneAutoRevealOnComplete(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithTriggers(0.4),
		WithThreshold(0.9),
		WithAutoReveal(false),
	)

	state.UpdateProgress(0.5)
	if !state.Revealed() {
		t.Error("not revealed after max trigger with autoRevealOnComplete on")
	}
	// Revealing pins progress to 1.0, so the reveal notification itself
	// crosses the 0.9 threshold.
	if rec.threshold != 1 {
		t.Errorf("threshold fired %d times, want 1 (via the reveal notification)", rec.threshold)
	}
}

func TestMilestoneResetRearmsSession(t *testing.T) {
	rec := &milestoneRecorder{}
	state, grid := newTestCoordinator(rec,
		WithTriggers(0.25),
		WithThreshold(0.5),
		WithAutoReveal(false),
		WithAutoRevealOnComplete(false),
	)
	grid.RevealAll()

	state.UpdateProgress(0.6)
	if len(rec.triggers) != 1 || rec.threshold != 1 {
		t.Fatalf("first session: triggers=%v threshold=%d", rec.triggers, rec.threshold)
	}

	state.Reset()
	if grid.Covered() != 0 {
		t.Error("coordinator did not reset the coverage grid")
	}

	state.UpdateProgress(0.6)
	if len(rec.triggers) != 2 {
		t.Errorf("trigger did not refire after reset: %v", rec.triggers)
	}
	if rec.threshold != 2 {
		t.Errorf("threshold did not refire after reset: %d", rec.threshold)
	}
}

func TestMilestoneThresholdFiresOnceEvenWithoutAutoReveal(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithThreshold(0.5),
		WithAutoReveal(false),
	)

	state.UpdateProgress(0.6)
	state.UpdateProgress(0.7)
	state.UpdateProgress(0.8)
	if rec.threshold != 1 {
		t.Errorf("threshold fired %d times, want 1", rec.threshold)
	}
	if state.Revealed() {
		t.Error("revealed with autoReveal off")
	}
}

func TestMilestoneUnrevealDoesNotInstantlyReveal(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec,
		WithTriggers(0.5),
		WithThreshold(0.5),
	)

	state.UpdateProgress(0.6)
	if !state.Revealed() {
		t.Fatal("not auto-revealed")
	}

	// Un-reveal arrives with progress still pinned at 1.0. The coordinator
	// treats it as a session clear, so the stale progress must not bounce
	// the surface straight back to revealed.
	state.SetRevealed(false)
	if state.Revealed() {
		t.Fatal("surface re-revealed itself immediately after un-reveal")
	}

	if rec.stopped == 0 {
		t.Error("celebration not stopped on un-reveal")
	}
}

func TestMilestoneProgressCallbackAlwaysFires(t *testing.T) {
	rec := &milestoneRecorder{}
	state, _ := newTestCoordinator(rec)

	state.AddPoint(Pt(1, 1), true) // progress unchanged, log grew
	state.AddPoint(Pt(2, 2), false)
	state.UpdateProgress(0.1)

	if len(rec.progress) != 3 {
		t.Errorf("progress callback fired %d times, want 3 (one per notification)", len(rec.progress))
	}
}
