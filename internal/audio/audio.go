// Package audio synthesizes the scratchcard demo's sounds with beep: a
// short per-sample tick standing in for haptic feedback, and a small
// jingle for the celebration.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and mixes all demo sounds. The zero value is not
// usable; call NewEngine.
//
// Engine implements scratch.Haptics: Tick plays the scratch click.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time
}

// NewEngine creates an engine without touching the audio device; Init
// opens it.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Safe to call twice.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences and releases the audio device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
}

// Tick plays the short scratch click. It is called fire-and-forget once per
// pointer move sample; ticks arriving faster than the click itself are
// coalesced so a fast drag does not pile up streamers.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	now := time.Now()
	if now.Sub(e.lastTick) < 30*time.Millisecond {
		return
	}
	e.lastTick = now
	e.play(note(1800, 12*time.Millisecond, 0.15))
}

// Jingle plays the celebration arpeggio.
func (e *Engine) Jingle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	e.play(beep.Seq(
		note(523.25, 90*time.Millisecond, 0.4),  // C5
		note(659.25, 90*time.Millisecond, 0.4),  // E5
		note(783.99, 90*time.Millisecond, 0.4),  // G5
		note(1046.5, 180*time.Millisecond, 0.4), // C6
	))
}

// play adds a streamer to the running mixer under the speaker lock.
func (e *Engine) play(s beep.Streamer) {
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// note builds one enveloped sine tone.
func note(freq float64, d time.Duration, vol float64) beep.Streamer {
	osc := newOscillator(freq, d, vol)
	return newEnvelope(osc, d, 4*time.Millisecond, d/3)
}

// oscillator generates a fixed-length sine wave.
type oscillator struct {
	freq     float64
	vol      float64
	phase    float64
	duration int
	position int
}

func newOscillator(freq float64, d time.Duration, vol float64) *oscillator {
	return &oscillator{
		freq:     freq,
		vol:      vol,
		duration: sampleRate.N(d),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2*math.Pi*o.phase) * o.vol
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping so notes start and end
// without clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sampleRate.N(attack),
		release:  sampleRate.N(release),
		total:    sampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack && e.attack > 0:
			vol = float64(e.position) / float64(e.attack)
		case e.position > e.total-e.release && e.release > 0:
			remaining := e.total - e.position
			if remaining < 0 {
				remaining = 0
			}
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
