package scratch

// ChangeKind identifies which mutation produced a Change record.
type ChangeKind int

const (
	// ChangePoint: a sample was appended to the stroke log.
	ChangePoint ChangeKind = iota
	// ChangeProgress: the progress value changed.
	ChangeProgress
	// ChangeReveal: the revealed flag flipped.
	ChangeReveal
	// ChangeReset: the state returned to Idle in one step.
	ChangeReset
)

// Change is the typed record emitted to subscribers after every mutation.
// It carries the state's post-mutation progress and revealed flag so
// observers never need to read the state back mid-notification.
type Change struct {
	Kind     ChangeKind
	Progress float64
	Revealed bool
}

// Observer receives change records. Observers are invoked synchronously in
// subscription order.
type Observer func(Change)

// State is the scratch state machine. It owns the stroke log, the progress
// value in [0, 1] and the revealed flag, and is mutated only through its
// methods: AddPoint, UpdateProgress, SetRevealed, Reset.
//
// State is not safe for concurrent use; the scratch core is single-threaded
// and every mutation is expected to come from one event-processing path.
//
// Mutations issued from inside an observer callback do not run immediately:
// they are queued and applied, in order, after the current notification
// completes. This keeps notification order consistent with mutation order
// even when an observer reacts by mutating (the milestone coordinator's
// auto-reveal does exactly that).
type State struct {
	log      []SamplePoint
	progress float64
	revealed bool

	observers []stateObserver
	nextID    int

	notifying bool
	pending   []func()
}

type stateObserver struct {
	id int
	fn Observer
}

// NewState creates a state machine in Idle: progress 0, not revealed,
// empty stroke log.
func NewState() *State {
	return &State{}
}

// Subscribe registers an observer and returns its unsubscribe function.
// Observers fire in subscription order; unsubscribing during a notification
// takes effect for subsequent notifications.
func (s *State) Subscribe(fn Observer) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, stateObserver{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Log returns the stroke log. The returned slice aliases internal storage
// and must not be mutated.
func (s *State) Log() []SamplePoint { return s.log }

// Progress returns the current progress in [0, 1].
func (s *State) Progress() float64 { return s.progress }

// Revealed reports whether the surface is revealed.
func (s *State) Revealed() bool { return s.revealed }

// AddPoint appends a sample to the stroke log and notifies observers.
// It notifies even when the geometry is unchanged, because the log grew and
// renderers key off the log length. Once revealed, AddPoint is a no-op until
// Reset.
func (s *State) AddPoint(p Point, newSegment bool) {
	s.run(func() {
		if s.revealed {
			return
		}
		s.log = append(s.log, SamplePoint{Point: p, NewSegment: newSegment})
		s.notify(Change{Kind: ChangePoint, Progress: s.progress, Revealed: s.revealed})
	})
}

// UpdateProgress sets the progress value, notifying observers only when the
// value actually changed. While revealed, progress is pinned at exactly 1.0
// and UpdateProgress is a no-op, like AddPoint; a coverage estimate computed
// from a sample whose notification already auto-revealed the surface must
// not drag the pinned value back down.
func (s *State) UpdateProgress(v float64) {
	s.run(func() {
		if s.revealed {
			return
		}
		v = clamp01(v)
		if v == s.progress {
			return
		}
		s.progress = v
		s.notify(Change{Kind: ChangeProgress, Progress: s.progress, Revealed: s.revealed})
	})
}

// SetRevealed flips the revealed flag. Revealing pins progress to exactly
// 1.0; un-revealing keeps the log and progress intact so the overlay can be
// animated back in without losing the session (use Reset for a fresh
// session). Setting the current value again is a no-op.
func (s *State) SetRevealed(revealed bool) {
	s.run(func() {
		if s.revealed == revealed {
			return
		}
		s.revealed = revealed
		if revealed {
			s.progress = 1.0
		}
		s.notify(Change{Kind: ChangeReveal, Progress: s.progress, Revealed: s.revealed})
	})
}

// Reset returns the machine to Idle from any state: clears the stroke log,
// progress to 0, revealed to false, with a single notification.
func (s *State) Reset() {
	s.run(func() {
		s.log = nil
		s.progress = 0
		s.revealed = false
		s.notify(Change{Kind: ChangeReset, Progress: 0, Revealed: false})
	})
}

// run executes a mutation now, or queues it if a notification is in flight.
func (s *State) run(mutation func()) {
	if s.notifying {
		s.pending = append(s.pending, mutation)
		return
	}
	mutation()
}

// notify fires the change at every observer, then drains mutations queued
// during the callbacks. Draining re-enters run, so chains of reactive
// mutations apply strictly one at a time.
func (s *State) notify(c Change) {
	s.notifying = true
	for _, o := range append([]stateObserver(nil), s.observers...) {
		o.fn(c)
	}
	s.notifying = false

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		next()
	}
}
