package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMusicFolders(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	folders := settings.GetMusicFolders()
	if len(folders) == 0 {
		t.Error("Music folders should never be empty")
	}

	// Test setting custom value
	custom := []string{"/custom/music", "/more/music"}
	settings.SetMusicFolders(custom)

	retrieved := settings.GetMusicFolders()
	if len(retrieved) != 2 || retrieved[0] != "/custom/music" || retrieved[1] != "/more/music" {
		t.Errorf("Expected custom folders, got %v", retrieved)
	}
}

func TestAddMusicFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetMusicFolders([]string{"/custom/music"})

	if !settings.AddMusicFolder("/more/music") {
		t.Error("Expected new folder to be added")
	}
	if settings.AddMusicFolder("/more/music") {
		t.Error("Expected duplicate folder to be rejected")
	}
	if len(settings.GetMusicFolders()) != 2 {
		t.Errorf("Expected 2 folders, got %d", len(settings.GetMusicFolders()))
	}
}

func TestShuffleEnabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShuffleEnabled() != DefaultShuffleEnabled {
		t.Errorf("Expected default shuffle %v", DefaultShuffleEnabled)
	}

	settings.SetShuffleEnabled(true)
	if !settings.GetShuffleEnabled() {
		t.Error("Expected shuffle enabled after set")
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetVolume() != DefaultVolume {
		t.Errorf("Expected default volume %f, got %f", DefaultVolume, settings.GetVolume())
	}

	settings.SetVolume(0.5)
	if settings.GetVolume() != 0.5 {
		t.Errorf("Expected volume 0.5, got %f", settings.GetVolume())
	}

	// Test boundary values
	settings.SetVolume(-1) // Should be clamped to 0
	if settings.GetVolume() != 0 {
		t.Error("Volume should be clamped to minimum 0")
	}

	settings.SetVolume(2) // Should be clamped to 1
	if settings.GetVolume() != 1 {
		t.Error("Volume should be clamped to maximum 1")
	}
}

func TestWatchFolders(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetWatchFolders() != DefaultWatchFolders {
		t.Errorf("Expected default watch setting %v", DefaultWatchFolders)
	}

	settings.SetWatchFolders(false)
	if settings.GetWatchFolders() {
		t.Error("Expected watching disabled after set")
	}
}

func TestLastPlaylist(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastPlaylist() != "" {
		t.Error("Expected no last playlist by default")
	}

	settings.SetLastPlaylist("Road Trip")
	if settings.GetLastPlaylist() != "Road Trip" {
		t.Errorf("Expected last playlist Road Trip, got %s", settings.GetLastPlaylist())
	}
}

func TestVisualizerSpeed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetVisualizerSpeed() != DefaultVisualizerSpeed {
		t.Errorf("Expected default speed %f", DefaultVisualizerSpeed)
	}

	settings.SetVisualizerSpeed(2.0)
	if settings.GetVisualizerSpeed() != 2.0 {
		t.Errorf("Expected speed 2.0, got %f", settings.GetVisualizerSpeed())
	}

	settings.SetVisualizerSpeed(-1) // Should fall back to default
	if settings.GetVisualizerSpeed() != DefaultVisualizerSpeed {
		t.Error("Non-positive speed should fall back to default")
	}
}
