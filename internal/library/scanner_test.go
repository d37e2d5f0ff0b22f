package library

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not real audio"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestScanSync_FindsAudioFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.mp3")
	writeFile(t, dir, "two.flac")
	writeFile(t, dir, "cover.jpg")
	writeFile(t, dir, "notes.txt")

	sub := filepath.Join(dir, "album")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	writeFile(t, sub, "three.wav")

	lib := New()
	added := NewScanner(lib).ScanSync(dir)

	if added != 3 {
		t.Errorf("Expected 3 tracks found, got %d", added)
	}
	if lib.Len() != 3 {
		t.Errorf("Expected 3 tracks in library, got %d", lib.Len())
	}
}

func TestScanSync_UnparsableFilesStillGetDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mystery track.mp3")

	lib := New()
	NewScanner(lib).ScanSync(dir)

	tracks := lib.All()
	if len(tracks) != 1 {
		t.Fatalf("Expected one track, got %d", len(tracks))
	}
	if tracks[0].Title != "mystery track" {
		t.Errorf("Expected filename-derived title, got %q", tracks[0].Title)
	}
	if tracks[0].DurationSec != 0 {
		t.Errorf("Expected unknown duration, got %d", tracks[0].DurationSec)
	}
}

func TestScanSync_MissingFolderIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.mp3")

	lib := New()
	added := NewScanner(lib).ScanSync(filepath.Join(dir, "does-not-exist"), dir)

	if added != 1 {
		t.Errorf("Expected scan to survive missing folder and find 1 track, got %d", added)
	}
}

func TestScan_RejectsConcurrentScan(t *testing.T) {
	lib := New()
	s := NewScanner(lib)

	s.mu.Lock()
	s.scanning = true
	s.mu.Unlock()

	if err := s.Scan(t.TempDir()); err == nil {
		t.Error("Expected error while another scan is active")
	}
}

func TestScan_ReportsCompletion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.mp3")
	writeFile(t, dir, "two.mp3")

	lib := New()
	s := NewScanner(lib)

	done := make(chan int, 1)
	s.SetCompleteCallback(func(added int) { done <- added })

	if err := s.Scan(dir); err != nil {
		t.Fatalf("Scan failed to start: %v", err)
	}

	added := <-done
	if added != 2 {
		t.Errorf("Expected completion with 2 tracks, got %d", added)
	}
}
