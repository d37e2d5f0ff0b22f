package library

import (
	"image"
	"sort"
	"strings"
	"sync"

	"github.com/retrowave/jukebox/internal/model"
)

// Library is the in-memory music collection. Identity is the track path;
// re-scanning the same file replaces its entry.
type Library struct {
	mu     sync.RWMutex
	tracks []model.Track
	byPath map[string]int
}

// New creates an empty library
func New() *Library {
	return &Library{byPath: make(map[string]int)}
}

// Add inserts or replaces a track
func (l *Library) Add(track model.Track) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i, ok := l.byPath[track.Path]; ok {
		l.tracks[i] = track
		return
	}
	l.byPath[track.Path] = len(l.tracks)
	l.tracks = append(l.tracks, track)
}

// Remove deletes the track with the given path, if present
func (l *Library) Remove(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.byPath[path]
	if !ok {
		return
	}
	l.tracks = append(l.tracks[:i], l.tracks[i+1:]...)
	delete(l.byPath, path)
	for j := i; j < len(l.tracks); j++ {
		l.byPath[l.tracks[j].Path] = j
	}
}

// Clear removes all tracks
func (l *Library) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracks = nil
	l.byPath = make(map[string]int)
}

// All returns a copy of all tracks in scan order
func (l *Library) All() []model.Track {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Track, len(l.tracks))
	copy(out, l.tracks)
	return out
}

// ByPath returns the track with the given path
func (l *Library) ByPath(path string) (model.Track, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i, ok := l.byPath[path]; ok {
		return l.tracks[i], true
	}
	return model.Track{}, false
}

// Len returns the number of tracks
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tracks)
}

// Search returns tracks whose title or artist contains the query,
// case-insensitively. An empty query returns nil, meaning "no filter".
func (l *Library) Search(query string) []model.Track {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var matches []model.Track
	for _, track := range l.tracks {
		if strings.Contains(strings.ToLower(track.Title), query) ||
			strings.Contains(strings.ToLower(track.Artist), query) {
			matches = append(matches, track)
		}
	}
	return matches
}

// ArtistGroup is one artist node for the tree view. Icon is the thumbnail of
// the first track that has artwork, or nil.
type ArtistGroup struct {
	Artist string
	Tracks []model.Track
	Icon   image.Image
}

// GroupByArtist groups the given tracks by artist, sorted by artist name.
// Pass the result of All or Search.
func GroupByArtist(tracks []model.Track) []ArtistGroup {
	index := make(map[string]int)
	var groups []ArtistGroup

	for _, track := range tracks {
		artist := track.Artist
		if artist == "" {
			artist = model.UnknownArtist
		}
		i, ok := index[artist]
		if !ok {
			i = len(groups)
			index[artist] = i
			groups = append(groups, ArtistGroup{Artist: artist})
		}
		groups[i].Tracks = append(groups[i].Tracks, track)
		if groups[i].Icon == nil && track.Thumbnail != nil {
			groups[i].Icon = track.Thumbnail
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Artist) < strings.ToLower(groups[j].Artist)
	})
	return groups
}
