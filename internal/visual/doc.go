package visual

// Package visual renders the animated parts of the player: the plasma
// visualizer frames produced on a worker goroutine and handed to the UI
// through a small bounded pipeline, and the equalizer bar model animated
// with simple inertia.
