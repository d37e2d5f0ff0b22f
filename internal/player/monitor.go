package player

import (
	"log"

	"github.com/retrowave/jukebox/internal/model"
)

// EndToleranceSec absorbs rounding between the integer track duration and the
// floating elapsed value when deciding that a track has finished.
const EndToleranceSec = 1.0

// Monitor is the end-of-track detector. It is an independently schedulable
// unit: the UI calls Tick at a fixed cadence (the cadence is a tunable, not a
// contract) and tests invoke single ticks deterministically.
//
// A track with known duration is finished once elapsed >= duration-1 and the
// engine reports not busy; the busy guard prevents false triggers while the
// engine plays past a nominally reported duration. A track with unknown
// duration (0) never uses the elapsed formula (the guard would be trivially
// satisfied at track start) and instead advances only on an observed
// busy-to-not-busy transition.
type Monitor struct {
	engine    Engine
	tracker   *Tracker
	sequencer *Sequencer
	onAdvance func(model.Track)

	active      bool
	durationSec int
	sawBusy     bool
	fired       bool
}

// NewMonitor creates a monitor. onAdvance is invoked with the new current
// track after an automatic advance commits.
func NewMonitor(engine Engine, tracker *Tracker, sequencer *Sequencer, onAdvance func(model.Track)) *Monitor {
	return &Monitor{
		engine:    engine,
		tracker:   tracker,
		sequencer: sequencer,
		onAdvance: onAdvance,
	}
}

// TrackStarted arms the monitor for a fresh track instance
func (m *Monitor) TrackStarted(durationSec int) {
	m.active = true
	m.durationSec = durationSec
	m.sawBusy = false
	m.fired = false
}

// TrackStopped disarms the monitor (explicit stop, list switch)
func (m *Monitor) TrackStopped() {
	m.active = false
}

// Tick runs one end-of-track check. It fires at most once per track instance.
func (m *Monitor) Tick() {
	if !m.active || m.fired {
		return
	}

	if m.engine.Busy() {
		m.sawBusy = true
		return
	}

	if m.durationSec == 0 {
		// Unknown duration: only a busy->not-busy transition counts
		if !m.sawBusy {
			return
		}
	} else if m.tracker.Elapsed() < float64(m.durationSec)-EndToleranceSec {
		return
	}

	m.fired = true

	next, err := m.sequencer.Advance()
	if err != nil {
		log.Printf("Auto-advance failed: %v", err)
		m.active = false
		return
	}
	if m.onAdvance != nil {
		m.onAdvance(next)
	}
}
