package library

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sync"

	"github.com/retrowave/jukebox/internal/metadata"
	"github.com/retrowave/jukebox/internal/platform"
)

// ScanProgress reports the state of a running folder scan
type ScanProgress struct {
	Folder       string // folder currently being walked
	FilesScanned int
	TracksFound  int
}

// Scanner walks music folders on a background worker and feeds extracted
// tracks into the library. Callbacks fire on the worker goroutine; UI callers
// must marshal onto the main thread themselves.
type Scanner struct {
	library *Library

	mu       sync.Mutex
	scanning bool

	onProgress func(ScanProgress)
	onComplete func(added int)
}

// NewScanner creates a scanner feeding the given library
func NewScanner(library *Library) *Scanner {
	return &Scanner{library: library}
}

// SetProgressCallback sets the callback invoked periodically during a scan
func (s *Scanner) SetProgressCallback(fn func(ScanProgress)) {
	s.onProgress = fn
}

// SetCompleteCallback sets the callback invoked when a scan finishes
func (s *Scanner) SetCompleteCallback(fn func(added int)) {
	s.onComplete = fn
}

// Scanning reports whether a scan is running
func (s *Scanner) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Scan starts a background scan of the given folders. Only one scan runs at a
// time; a second request while one is active is an error.
func (s *Scanner) Scan(folders ...string) error {
	s.mu.Lock()
	if s.scanning {
		s.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	s.scanning = true
	s.mu.Unlock()

	go s.run(folders)
	return nil
}

// ScanSync scans the given folders on the calling goroutine. Used at startup
// before the UI is shown, and by tests.
func (s *Scanner) ScanSync(folders ...string) int {
	return s.walk(folders)
}

func (s *Scanner) run(folders []string) {
	defer func() {
		s.mu.Lock()
		s.scanning = false
		s.mu.Unlock()
	}()

	added := s.walk(folders)
	if s.onComplete != nil {
		s.onComplete(added)
	}
}

func (s *Scanner) walk(folders []string) int {
	progress := ScanProgress{}

	for _, folder := range folders {
		folder, err := filepath.Abs(folder)
		if err != nil {
			log.Printf("Skipping unresolvable folder %s: %v", folder, err)
			continue
		}
		progress.Folder = folder

		err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, not fatal for the scan
				log.Printf("Scan error at %s: %v", path, err)
				return nil
			}
			if d.IsDir() || !platform.IsAudioFile(path) {
				return nil
			}

			s.library.Add(metadata.Extract(path))

			progress.FilesScanned++
			progress.TracksFound++
			if s.onProgress != nil && progress.FilesScanned%5 == 0 {
				s.onProgress(progress)
			}
			return nil
		})
		if err != nil {
			log.Printf("Scan of %s failed: %v", folder, err)
		}
	}

	if s.onProgress != nil {
		s.onProgress(progress)
	}
	return progress.TracksFound
}
