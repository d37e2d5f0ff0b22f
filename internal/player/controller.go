package player

import (
	"log"

	"github.com/retrowave/jukebox/internal/model"
)

// Controller is the single mutation entry point for playback session state.
// It bundles the engine, position tracker, sequencer and end-of-track monitor;
// UI handlers call its methods instead of touching shared state directly. All
// methods must be called from the UI thread.
type Controller struct {
	engine    Engine
	tracker   *Tracker
	sequencer *Sequencer
	monitor   *Monitor

	onTrackChanged func(current model.Track)
}

// NewController wires the playback core around the given engine
func NewController(engine Engine) *Controller {
	c := &Controller{
		engine:    engine,
		tracker:   NewTracker(engine),
		sequencer: NewSequencer(),
	}
	c.monitor = NewMonitor(engine, c.tracker, c.sequencer, c.playTrack)
	return c
}

// SetOnTrackChanged registers the callback invoked whenever a new track
// starts playing, manually or by automatic advance.
func (c *Controller) SetOnTrackChanged(fn func(current model.Track)) {
	c.onTrackChanged = fn
}

// SetList replaces the active track list (library or a loaded playlist) and
// stops tracking the previous selection.
func (c *Controller) SetList(tracks []model.Track) {
	c.sequencer.SetList(tracks)
	c.monitor.TrackStopped()
}

// PlayPath selects the track with the given path in the active list and
// starts playback. Returns ErrNotFound/ErrEmptyList from selection or a
// *LoadError from the engine; playback state is unchanged on failure.
func (c *Controller) PlayPath(path string) error {
	track, err := c.sequencer.Select(path)
	if err != nil {
		return err
	}
	return c.start(track)
}

// Skip advances to the next track per the current policy and plays it
func (c *Controller) Skip() error {
	track, err := c.sequencer.Advance()
	if err != nil {
		return err
	}
	return c.start(track)
}

// Stop halts playback and disarms the monitor
func (c *Controller) Stop() {
	c.engine.Stop()
	c.monitor.TrackStopped()
	c.tracker.Reset()
}

// SeekTo moves playback to the given offset in seconds (best-effort)
func (c *Controller) SeekTo(seconds float64) {
	c.tracker.SeekTo(seconds)
}

// Elapsed returns the authoritative elapsed seconds for the playing track
func (c *Controller) Elapsed() float64 {
	return c.tracker.Elapsed()
}

// Playing reports whether a track is being tracked (started and not stopped)
func (c *Controller) Playing() bool {
	return c.tracker.Active()
}

// Busy reports whether the engine is actively producing audio
func (c *Controller) Busy() bool {
	return c.engine.Busy()
}

// Current returns the current track, or false when nothing has played
func (c *Controller) Current() (model.Track, bool) {
	return c.sequencer.Current()
}

// Next returns the lookahead track for display without advancing
func (c *Controller) Next() (model.Track, error) {
	return c.sequencer.Next()
}

// ToggleShuffle flips the shuffle policy and returns the new flag value
func (c *Controller) ToggleShuffle() bool {
	return c.sequencer.ToggleShuffle()
}

// Shuffle reports the shuffle flag
func (c *Controller) Shuffle() bool {
	return c.sequencer.Shuffle()
}

// Tick runs one end-of-track check; the UI schedules it periodically
func (c *Controller) Tick() {
	c.monitor.Tick()
}

// start loads and plays a selected track, arming tracker and monitor
func (c *Controller) start(track model.Track) error {
	if err := c.engine.Load(track.Path); err != nil {
		return &LoadError{Path: track.Path, Err: err}
	}
	c.engine.Play()
	c.tracker.Start()
	c.monitor.TrackStarted(track.DurationSec)

	if c.onTrackChanged != nil {
		c.onTrackChanged(track)
	}
	return nil
}

// playTrack is the monitor's advance callback: the sequencer already
// committed, so only load/play and re-arm remain.
func (c *Controller) playTrack(track model.Track) {
	if err := c.engine.Load(track.Path); err != nil {
		log.Printf("Failed to load next track %s: %v", track.Path, err)
		c.monitor.TrackStopped()
		c.tracker.Reset()
		return
	}
	c.engine.Play()
	c.tracker.Start()
	c.monitor.TrackStarted(track.DurationSec)

	if c.onTrackChanged != nil {
		c.onTrackChanged(track)
	}
}
