package player

// Engine is the playback engine contract consumed by the core. The core never
// looks behind this boundary: decoding, output devices and buffering are the
// engine's business. Implementations are not required to be safe for use from
// multiple goroutines; the core calls them from the UI thread only.
type Engine interface {
	// Load prepares the file at path for playback, replacing any loaded track
	Load(path string) error

	// Play starts playback of the loaded track from its current position
	Play()

	// Stop halts playback and releases the loaded track
	Stop()

	// Busy reports whether the engine is actively producing audio. May report
	// false transiently right after a load or seek.
	Busy() bool

	// PositionMS returns the engine's own position counter in milliseconds.
	// May stall or report 0 transiently; callers must not treat it as
	// authoritative on its own.
	PositionMS() int

	// Seek moves playback to the given offset in seconds
	Seek(seconds float64) error
}
