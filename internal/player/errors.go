package player

import (
	"errors"
	"fmt"
)

// Sequencer errors
var (
	// ErrNotFound is returned when a selected path is absent from the active list
	ErrNotFound = errors.New("track not found in active list")

	// ErrEmptyList is returned when an operation needs a non-empty active list
	ErrEmptyList = errors.New("active track list is empty")
)

// LoadError wraps an engine failure to load a file for playback
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SeekError wraps an engine failure to seek within the current track
type SeekError struct {
	Seconds float64
	Err     error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("failed to seek to %.1fs: %v", e.Seconds, e.Err)
}

func (e *SeekError) Unwrap() error {
	return e.Err
}
