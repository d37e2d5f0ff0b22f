package model

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"
)

// Fallback values used when tag extraction yields nothing
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Track represents a single scanned audio file. Identity is Path; a Track is
// immutable once the scanner has produced it.
type Track struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	DurationSec int         // 0 when the duration could not be extracted
	Thumbnail   image.Image // small artwork for list icons, nil when absent
}

// DisplayTitle returns the title, falling back to the file name without extension
func (t *Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	base := filepath.Base(t.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FormatDuration returns seconds formatted as m:ss, or h:mm:ss above one hour
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// TrackRef is the persisted form of a Track. Artwork and any transient fields
// are intentionally absent so playlists serialize to a flat structure.
type TrackRef struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	DurationSec int    `json:"duration"`
}

// Ref returns the persistable reference for this track
func (t *Track) Ref() TrackRef {
	return TrackRef{
		Path:        t.Path,
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		DurationSec: t.DurationSec,
	}
}

// Track converts a reference back into a Track with no artwork attached
func (r TrackRef) Track() Track {
	return Track{
		Path:        r.Path,
		Title:       r.Title,
		Artist:      r.Artist,
		Album:       r.Album,
		DurationSec: r.DurationSec,
	}
}

// Playlist represents a named, ordered list of track references
type Playlist struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Tracks    []TrackRef `json:"tracks"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Contains reports whether the playlist already holds a track with the given path
func (p *Playlist) Contains(path string) bool {
	for _, ref := range p.Tracks {
		if ref.Path == path {
			return true
		}
	}
	return false
}

// Add appends a track reference and bumps the modification time
func (p *Playlist) Add(ref TrackRef) {
	p.Tracks = append(p.Tracks, ref)
	p.UpdatedAt = time.Now()
}

// Remove deletes the first track with the given path. It returns true when a
// track was removed.
func (p *Playlist) Remove(path string) bool {
	for i, ref := range p.Tracks {
		if ref.Path == path {
			p.Tracks = append(p.Tracks[:i], p.Tracks[i+1:]...)
			p.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}
