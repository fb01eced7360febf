package ui

import (
	"math/rand"
	"sync"
	"time"
)

const (
	sparkleCount  = 40
	sparkleLifeMs = 900
)

type particle struct {
	x, y  int
	glyph rune
	born  time.Time
	life  time.Duration
}

// Sparkler is the demo's celebration companion: a burst of glitter glyphs
// over the card. Start and Stop only toggle it; particle aging and removal
// happen as the app draws frames, so the surface never has to know when the
// animation finished.
type Sparkler struct {
	mu        sync.Mutex
	active    bool
	particles []particle
	w, h      int
}

// NewSparkler creates an inactive sparkler covering a w x h cell area.
func NewSparkler(w, h int) *Sparkler {
	return &Sparkler{w: w, h: h}
}

// Start seeds a fresh particle burst. Restarting while active reseeds.
func (s *Sparkler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	now := time.Now()
	glyphs := []rune{'✦', '✧', '*', '·', '+'}
	s.particles = s.particles[:0]
	for i := 0; i < sparkleCount; i++ {
		s.particles = append(s.particles, particle{
			x:     rand.Intn(max(s.w, 1)),
			y:     rand.Intn(max(s.h, 1)),
			glyph: glyphs[rand.Intn(len(glyphs))],
			born:  now.Add(time.Duration(rand.Intn(sparkleLifeMs)) * time.Millisecond),
			life:  time.Duration(sparkleLifeMs) * time.Millisecond,
		})
	}
}

// Stop ends the celebration immediately.
func (s *Sparkler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.particles = s.particles[:0]
}

// Resize updates the area new particles spawn in.
func (s *Sparkler) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h = w, h
}

// visit calls fn for each currently-visible particle and recycles expired
// ones so the burst keeps shimmering until Stop.
func (s *Sparkler) visit(fn func(x, y int, glyph rune)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	now := time.Now()
	for i := range s.particles {
		p := &s.particles[i]
		age := now.Sub(p.born)
		if age < 0 {
			continue
		}
		if age > p.life {
			p.x = rand.Intn(max(s.w, 1))
			p.y = rand.Intn(max(s.h, 1))
			p.born = now
			continue
		}
		fn(p.x, p.y, p.glyph)
	}
}
