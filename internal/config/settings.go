package config

import (
	"fyne.io/fyne/v2"

	"github.com/retrowave/jukebox/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMusicFolders    = "music_folders"
	KeyShuffleEnabled  = "shuffle_enabled"
	KeyVolume          = "playback_volume"
	KeyWatchFolders    = "watch_music_folders"
	KeyLastPlaylist    = "last_playlist_name"
	KeyVisualizerSpeed = "visualizer_speed"
)

// Default values
const (
	DefaultShuffleEnabled  = false
	DefaultVolume          = 1.0
	DefaultWatchFolders    = true
	DefaultVisualizerSpeed = 1.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMusicFolders returns the configured music folders. When none are
// configured the home music directory is used and persisted.
func (s *Settings) GetMusicFolders() []string {
	folders := s.app.Preferences().StringList(KeyMusicFolders)
	if len(folders) == 0 {
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			defaultDir = "/tmp/music"
		}
		folders = []string{defaultDir}
		s.SetMusicFolders(folders)
	}
	return folders
}

// SetMusicFolders replaces the configured music folders
func (s *Settings) SetMusicFolders(folders []string) {
	s.app.Preferences().SetStringList(KeyMusicFolders, folders)
}

// AddMusicFolder appends a folder unless it is already configured
func (s *Settings) AddMusicFolder(folder string) bool {
	folders := s.app.Preferences().StringList(KeyMusicFolders)
	for _, existing := range folders {
		if existing == folder {
			return false
		}
	}
	s.SetMusicFolders(append(folders, folder))
	return true
}

// GetShuffleEnabled returns whether shuffle mode is on
func (s *Settings) GetShuffleEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyShuffleEnabled, DefaultShuffleEnabled)
}

// SetShuffleEnabled persists the shuffle mode
func (s *Settings) SetShuffleEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyShuffleEnabled, enabled)
}

// GetVolume returns the playback volume in [0, 1]
func (s *Settings) GetVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume persists the playback volume, clamped to [0, 1]
func (s *Settings) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s.app.Preferences().SetFloat(KeyVolume, volume)
}

// GetWatchFolders returns whether music folders are watched for changes
func (s *Settings) GetWatchFolders() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchFolders, DefaultWatchFolders)
}

// SetWatchFolders sets whether music folders are watched for changes
func (s *Settings) SetWatchFolders(watch bool) {
	s.app.Preferences().SetBool(KeyWatchFolders, watch)
}

// GetLastPlaylist returns the name of the last loaded playlist
func (s *Settings) GetLastPlaylist() string {
	return s.app.Preferences().String(KeyLastPlaylist)
}

// SetLastPlaylist remembers the last loaded playlist
func (s *Settings) SetLastPlaylist(name string) {
	s.app.Preferences().SetString(KeyLastPlaylist, name)
}

// GetVisualizerSpeed returns the plasma animation speed multiplier
func (s *Settings) GetVisualizerSpeed() float64 {
	speed := s.app.Preferences().FloatWithFallback(KeyVisualizerSpeed, DefaultVisualizerSpeed)
	if speed <= 0 {
		return DefaultVisualizerSpeed
	}
	return speed
}

// SetVisualizerSpeed sets the plasma animation speed multiplier
func (s *Settings) SetVisualizerSpeed(speed float64) {
	if speed <= 0 {
		speed = DefaultVisualizerSpeed
	}
	s.app.Preferences().SetFloat(KeyVisualizerSpeed, speed)
}
