package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retrowave/jukebox/internal/model"
)

func testStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "playlists.json")
}

func TestLoad_MissingFileYieldsEmptyStore(t *testing.T) {
	store := NewStore(testStorePath(t))

	if err := store.Load(); err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d playlists", store.Len())
	}
}

func TestLoad_CorruptFileKeepsMemoryAuthoritative(t *testing.T) {
	path := testStorePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	store := NewStore(path)
	store.Create("Road Trip")

	if err := store.Load(); err == nil {
		t.Error("Expected parse error for corrupt file")
	}
	if _, ok := store.Get("Road Trip"); !ok {
		t.Error("In-memory playlists must survive a failed load")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := testStorePath(t)
	store := NewStore(path)

	p := store.Create("Road Trip")
	p.Add(model.TrackRef{
		Path:        "/music/a.mp3",
		Title:       "A",
		Artist:      "Artist",
		Album:       "Album",
		DurationSec: 180,
	})

	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, ok := reloaded.Get("Road Trip")
	if !ok {
		t.Fatal("Expected playlist after reload")
	}
	if len(got.Tracks) != 1 {
		t.Fatalf("Expected one track, got %d", len(got.Tracks))
	}

	ref := got.Tracks[0]
	if ref.Path != "/music/a.mp3" || ref.Title != "A" || ref.Artist != "Artist" ||
		ref.Album != "Album" || ref.DurationSec != 180 {
		t.Errorf("Reloaded track does not match saved one: %+v", ref)
	}
	if got.ID == "" {
		t.Error("Expected playlist ID to survive the round trip")
	}
}

func TestSave_DropsArtworkFields(t *testing.T) {
	path := testStorePath(t)
	store := NewStore(path)

	p := store.Create("Road Trip")
	p.Add(model.TrackRef{Path: "/music/a.mp3", Title: "A"})

	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	content := strings.ToLower(string(data))
	for _, forbidden := range []string{"thumbnail", "artwork", "image"} {
		if strings.Contains(content, forbidden) {
			t.Errorf("Saved file must not contain %q", forbidden)
		}
	}
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "playlists.json")
	store := NewStore(path)
	store.Create("Empty")

	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected saved file to exist: %v", err)
	}
}

func TestCreate_ReplacesExisting(t *testing.T) {
	store := NewStore(testStorePath(t))

	first := store.Create("Mix")
	first.Add(model.TrackRef{Path: "/music/a.mp3"})

	second := store.Create("Mix")
	if second.Contains("/music/a.mp3") {
		t.Error("Re-created playlist should start empty")
	}
	if first.ID == second.ID {
		t.Error("Re-created playlist should get a fresh ID")
	}
}

func TestDelete(t *testing.T) {
	store := NewStore(testStorePath(t))
	store.Create("Mix")

	if !store.Delete("Mix") {
		t.Error("Expected Delete to report true for existing playlist")
	}
	if store.Delete("Mix") {
		t.Error("Expected Delete to report false for absent playlist")
	}
}

func TestNames_Sorted(t *testing.T) {
	store := NewStore(testStorePath(t))
	store.Create("Zulu")
	store.Create("Alpha")
	store.Create("Mike")

	names := store.Names()
	expected := []string{"Alpha", "Mike", "Zulu"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected names[%d] = %s, got %s", i, name, names[i])
		}
	}
}
