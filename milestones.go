package scratch

// coordinator consumes the state machine's change records and turns them
// into one-shot milestone events: the per-notification progress callback,
// trigger callbacks, the threshold callback, auto-reveal, and the
// celebration Start/Stop signals.
//
// firedTriggers and thresholdFired are session bookkeeping: monotonic
// between resets, cleared in lockstep with the state machine. The threshold
// and the highest trigger are two independent paths to SetRevealed(true);
// both stay idempotent because either can race the other across two
// notifications.
type coordinator struct {
	cfg   *config
	state *State
	grid  *CoverageGrid

	firedTriggers  map[float64]struct{}
	thresholdFired bool
	celebrating    bool

	prevProgress float64
	prevRevealed bool

	unsubscribe func()
}

func newCoordinator(cfg *config, state *State, grid *CoverageGrid) *coordinator {
	co := &coordinator{
		cfg:           cfg,
		state:         state,
		grid:          grid,
		firedTriggers: make(map[float64]struct{}),
	}
	co.unsubscribe = state.Subscribe(co.onChange)
	return co
}

// onChange runs once per state notification. The progress callback always
// fires first; then either the session-clear path (reset or un-reveal) or
// the milestone path, never both for one notification. Handling the clear
// transition before milestones matters: an un-reveal arrives with progress
// still pinned at 1.0, and running the auto-reveal checks against that stale
// value would instantly re-reveal the surface.
func (co *coordinator) onChange(c Change) {
	if co.cfg.onProgress != nil {
		co.cfg.onProgress(c.Progress)
	}

	if co.sessionCleared(c) {
		co.clearSession()
	} else {
		co.fireMilestones(c)
	}

	co.prevProgress = c.Progress
	co.prevRevealed = c.Revealed
}

// sessionCleared reports whether this change ends the current scratch
// session: an explicit reset, a revealed-to-not-revealed transition, or
// progress collapsing to zero while not revealed.
func (co *coordinator) sessionCleared(c Change) bool {
	if c.Kind == ChangeReset {
		return true
	}
	if co.prevRevealed && !c.Revealed {
		return true
	}
	return co.prevProgress > 0 && c.Progress == 0 && !c.Revealed
}

// clearSession re-arms all one-shot bookkeeping so a new scratch pass can
// fire every trigger and the threshold again, resets the coverage grid, and
// stops the celebration.
func (co *coordinator) clearSession() {
	clear(co.firedTriggers)
	co.thresholdFired = false
	co.grid.Reset()
	co.stopCelebration()
}

// fireMilestones walks the configured triggers and the threshold against the
// new progress value, firing each at most once per session.
func (co *coordinator) fireMilestones(c Change) {
	for _, t := range co.cfg.triggers {
		if _, fired := co.firedTriggers[t]; fired || c.Progress < t {
			continue
		}
		co.firedTriggers[t] = struct{}{}
		if co.cfg.onTrigger != nil {
			co.cfg.onTrigger(t)
		}
		if t == co.cfg.maxTrigger {
			co.startCelebration()
		}
	}

	if c.Progress >= co.cfg.threshold && !co.thresholdFired {
		co.thresholdFired = true
		if co.cfg.onThreshold != nil {
			co.cfg.onThreshold()
		}
		if co.cfg.autoReveal {
			co.state.SetRevealed(true)
		}
	}

	if co.cfg.autoRevealOnComplete && len(co.cfg.triggers) > 0 &&
		c.Progress >= co.cfg.maxTrigger && !c.Revealed {
		co.state.SetRevealed(true)
	}
}

// startCelebration emits the Start intent once. Repeated calls while the
// celebration is running are ignored.
func (co *coordinator) startCelebration() {
	if co.celebrating {
		return
	}
	co.celebrating = true
	if co.cfg.celebration != nil {
		co.cfg.celebration.Start()
	}
}

// stopCelebration emits the Stop intent if the celebration is running.
func (co *coordinator) stopCelebration() {
	if !co.celebrating {
		return
	}
	co.celebrating = false
	if co.cfg.celebration != nil {
		co.cfg.celebration.Stop()
	}
}

// detach unsubscribes the coordinator from the state machine.
func (co *coordinator) detach() {
	if co.unsubscribe != nil {
		co.unsubscribe()
		co.unsubscribe = nil
	}
}
