package player

import (
	"log"
	"math"
	"time"
)

// Tracker reconciles wall-clock elapsed time with the engine's reported
// position into one authoritative elapsed value. The engine counter can stall
// or read 0 right after a load or seek; the wall-clock estimate acts as a
// floor so displayed progress never regresses, while the engine's value wins
// once it catches up.
type Tracker struct {
	engine Engine
	clock  func() time.Time

	refWallTime time.Time
	active      bool
}

// NewTracker creates a tracker polling the given engine
func NewTracker(engine Engine) *Tracker {
	return &Tracker{
		engine: engine,
		clock:  time.Now,
	}
}

// Start marks the beginning of playback at position zero
func (t *Tracker) Start() {
	t.refWallTime = t.clock()
	t.active = true
}

// SeekTo rebases the wall-clock reference to target seconds and issues the
// seek to the engine. Each seek rebases absolutely, so consecutive seeks do
// not accumulate. Seeking is best-effort: engine errors are logged, never
// propagated, and the rebased reference stands regardless.
func (t *Tracker) SeekTo(target float64) {
	if target < 0 {
		target = 0
	}
	t.refWallTime = t.clock().Add(-time.Duration(target * float64(time.Second)))

	if err := t.engine.Seek(target); err != nil {
		log.Printf("Seek to %.1fs failed: %v", target, err)
	}
}

// Reset deactivates the tracker; Elapsed reports 0 until the next Start
func (t *Tracker) Reset() {
	t.active = false
}

// Active reports whether playback timing is running
func (t *Tracker) Active() bool {
	return t.active
}

// Elapsed returns the authoritative elapsed seconds for the current track:
// max(wall-clock estimate, engine-reported position). Callable at any polling
// rate; never goes backward except immediately after an explicit seek.
func (t *Tracker) Elapsed() float64 {
	if !t.active {
		return 0
	}
	computed := t.clock().Sub(t.refWallTime).Seconds()
	engineReported := float64(t.engine.PositionMS()) / 1000.0
	return math.Max(computed, engineReported)
}
