package player

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retrowave/jukebox/internal/model"
)

// Sequencer owns the active track list, the current index, the shuffle policy
// and the cached lookahead. It computes the next track without advancing (for
// display) and commits transitions on explicit request or natural end of
// track; both paths are identical.
type Sequencer struct {
	list    []model.Track
	current int // -1 when nothing has played yet
	shuffle bool

	nextIndex int // cached lookahead, -1 when invalidated
	rng       *rand.Rand
}

// NewSequencer creates a sequencer with an empty active list
func NewSequencer() *Sequencer {
	return &Sequencer{
		current:   -1,
		nextIndex: -1,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetList replaces the active track list, resetting the current index to
// unset and invalidating the cached lookahead.
func (s *Sequencer) SetList(tracks []model.Track) {
	s.list = tracks
	s.current = -1
	s.nextIndex = -1
}

// List returns the active track list
func (s *Sequencer) List() []model.Track {
	return s.list
}

// Len returns the number of tracks in the active list
func (s *Sequencer) Len() int {
	return len(s.list)
}

// Current returns the current track, or false when nothing has been selected
func (s *Sequencer) Current() (model.Track, bool) {
	if s.current < 0 || s.current >= len(s.list) {
		return model.Track{}, false
	}
	return s.list[s.current], true
}

// Shuffle reports the shuffle flag
func (s *Sequencer) Shuffle() bool {
	return s.shuffle
}

// ToggleShuffle flips the shuffle flag and invalidates the cached lookahead so
// the displayed next track reflects the new policy immediately. Returns the
// new flag value.
func (s *Sequencer) ToggleShuffle() bool {
	s.shuffle = !s.shuffle
	s.nextIndex = -1
	return s.shuffle
}

// Select makes the track with the given path current and caches its lookahead.
// Returns ErrEmptyList on an empty active list and ErrNotFound when the path
// is absent; no state is mutated on failure.
func (s *Sequencer) Select(path string) (model.Track, error) {
	if len(s.list) == 0 {
		return model.Track{}, ErrEmptyList
	}
	for i, track := range s.list {
		if track.Path == path {
			s.current = i
			s.nextIndex = s.pickNext()
			return track, nil
		}
	}
	return model.Track{}, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Next returns the lookahead track without advancing. The value is cached
// until shuffle is toggled, the list changes, or an advance commits it.
func (s *Sequencer) Next() (model.Track, error) {
	if len(s.list) == 0 {
		return model.Track{}, ErrEmptyList
	}
	if s.nextIndex < 0 || s.nextIndex >= len(s.list) {
		s.nextIndex = s.pickNext()
	}
	return s.list[s.nextIndex], nil
}

// Advance commits the transition to the cached lookahead (recomputing when
// none is cached), makes it current and returns it. Used identically for
// manual skip and automatic end-of-track advance.
func (s *Sequencer) Advance() (model.Track, error) {
	if len(s.list) == 0 {
		return model.Track{}, ErrEmptyList
	}
	if s.nextIndex < 0 || s.nextIndex >= len(s.list) {
		s.nextIndex = s.pickNext()
	}
	s.current = s.nextIndex
	s.nextIndex = -1
	return s.list[s.current], nil
}

// pickNext computes a lookahead index for the current position and policy.
// Sequential: (current+1) mod len, wrapping to the start; a singleton list
// yields itself. Shuffle: uniform over all indices except the current one;
// with a single track no exclusion is possible.
func (s *Sequencer) pickNext() int {
	n := len(s.list)
	if n == 1 {
		return 0
	}
	if !s.shuffle {
		return (s.current + 1) % n
	}
	if s.current < 0 {
		return s.rng.Intn(n)
	}
	idx := s.rng.Intn(n - 1)
	if idx >= s.current {
		idx++
	}
	return idx
}
