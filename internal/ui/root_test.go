package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/retrowave/jukebox/internal/config"
	"github.com/retrowave/jukebox/internal/library"
	"github.com/retrowave/jukebox/internal/model"
	"github.com/retrowave/jukebox/internal/player"
	"github.com/retrowave/jukebox/internal/playlist"
)

// newTestRootUI builds a RootUI with just enough wiring for list and
// playlist behavior; no window content is shown.
func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	ui := &RootUI{
		window:      test.NewWindow(nil),
		settings:    config.NewSettings(app),
		lib:         library.New(),
		store:       playlist.NewStore(filepath.Join(t.TempDir(), "playlists.json")),
		controller:  player.NewController(player.NewBeepEngine()),
		listLabel:   AllMusicLabel,
		statusLabel: widget.NewLabel(""),
	}
	ui.searchEntry = widget.NewEntry()
	ui.listLabelText = widget.NewLabel("")
	ui.tree = widget.NewTree(ui.treeChildren, ui.treeIsBranch, ui.treeCreateNode, ui.treeUpdateNode)
	return ui
}

func TestTrackRow_SecondaryTapReportsItsTrack(t *testing.T) {
	test.NewApp()

	var gotPath string
	row := newTrackRow(func(path string, pos fyne.Position) { gotPath = path })
	row.SetTrack("/music/a.mp3", "A")

	row.TappedSecondary(&fyne.PointEvent{AbsolutePosition: fyne.NewPos(10, 10)})
	if gotPath != "/music/a.mp3" {
		t.Errorf("Expected menu callback with track path, got %q", gotPath)
	}
}

func TestTrackRow_UnboundRowDoesNotOpenMenu(t *testing.T) {
	test.NewApp()

	called := false
	row := newTrackRow(func(string, fyne.Position) { called = true })

	row.TappedSecondary(&fyne.PointEvent{AbsolutePosition: fyne.NewPos(10, 10)})
	if called {
		t.Error("Expected no menu for a row with no track bound")
	}
}

func TestTrackMenu_OffersAddCreateAndRemove(t *testing.T) {
	ui := newTestRootUI(t)
	ui.store.Create("Mix")
	roadTrip := ui.store.Create("Road Trip")

	track := model.Track{Path: "/music/a.mp3", Title: "A"}
	roadTrip.Add(track.Ref())

	menu := ui.trackMenu(track)

	labels := make(map[string]bool)
	for _, item := range menu.Items {
		if !item.IsSeparator {
			labels[item.Label] = true
		}
	}

	for _, expected := range []string{
		"Add to Mix", "Add to Road Trip", "New Playlist and Add…", "Remove from Road Trip",
	} {
		if !labels[expected] {
			t.Errorf("Expected menu item %q, got %v", expected, labels)
		}
	}
	if labels["Remove from Mix"] {
		t.Error("Remove must only be offered for playlists containing the track")
	}
}

func TestAddTrackToPlaylist_SkipsDuplicates(t *testing.T) {
	ui := newTestRootUI(t)
	ui.store.Create("Mix")

	track := model.Track{Path: "/music/a.mp3", Title: "A"}
	ui.addTrackToPlaylist(track, "Mix")
	ui.addTrackToPlaylist(track, "Mix")

	p, _ := ui.store.Get("Mix")
	if len(p.Tracks) != 1 {
		t.Errorf("Expected one entry after duplicate add, got %d", len(p.Tracks))
	}
}

func TestRemoveTrackFromPlaylist(t *testing.T) {
	ui := newTestRootUI(t)
	ui.store.Create("Mix")

	track := model.Track{Path: "/music/a.mp3", Title: "A"}
	ui.addTrackToPlaylist(track, "Mix")
	ui.removeTrackFromPlaylist(track, "Mix")

	p, _ := ui.store.Get("Mix")
	if p.Contains(track.Path) {
		t.Error("Expected track removed from playlist")
	}

	// Removing again must not panic or mutate anything
	ui.removeTrackFromPlaylist(track, "Mix")
	if len(p.Tracks) != 0 {
		t.Errorf("Expected empty playlist, got %d entries", len(p.Tracks))
	}
}

func TestCreatePlaylistWithTrack(t *testing.T) {
	ui := newTestRootUI(t)

	track := model.Track{Path: "/music/a.mp3", Title: "A"}
	ui.createPlaylistWithTrack("Fresh", track)

	p, ok := ui.store.Get("Fresh")
	if !ok {
		t.Fatal("Expected new playlist to exist")
	}
	if !p.Contains(track.Path) {
		t.Error("Expected the track to be the playlist's first entry")
	}
}

func TestShowAllMusic_ClearsLastPlaylist(t *testing.T) {
	ui := newTestRootUI(t)
	ui.settings.SetLastPlaylist("Road Trip")

	ui.showAllMusic()

	if got := ui.settings.GetLastPlaylist(); got != "" {
		t.Errorf("Expected last playlist cleared, got %q", got)
	}
	if ui.listLabel != AllMusicLabel {
		t.Errorf("Expected active list %q, got %q", AllMusicLabel, ui.listLabel)
	}
}

func TestLoadPlaylist_RemembersSelection(t *testing.T) {
	ui := newTestRootUI(t)
	p := ui.store.Create("Road Trip")
	p.Add(model.TrackRef{Path: "/music/a.mp3", Title: "A", DurationSec: 180})

	ui.loadPlaylist("Road Trip")

	if ui.listLabel != "Road Trip" {
		t.Errorf("Expected active list Road Trip, got %q", ui.listLabel)
	}
	if got := ui.settings.GetLastPlaylist(); got != "Road Trip" {
		t.Errorf("Expected last playlist remembered, got %q", got)
	}
	if len(ui.activeTracks) != 1 || ui.activeTracks[0].Path != "/music/a.mp3" {
		t.Errorf("Expected saved fields for a track missing from the library, got %v", ui.activeTracks)
	}
}
