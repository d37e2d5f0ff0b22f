package playlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/retrowave/jukebox/internal/model"
	"github.com/retrowave/jukebox/internal/platform"
)

// DefaultFileName is the playlists file name inside the app storage directory
const DefaultFileName = "playlists.json"

// Store holds all named playlists and their persistence to a single JSON file
type Store struct {
	path string

	mu        sync.RWMutex
	playlists map[string]*model.Playlist
}

// NewStore creates a store persisting to the given file path
func NewStore(path string) *Store {
	return &Store{
		path:      path,
		playlists: make(map[string]*model.Playlist),
	}
}

// Load reads the playlists file. A missing file yields an empty store and no
// error; a parse or read failure is returned to the caller, who logs and
// continues. The in-memory state stays authoritative.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read playlists file: %w", err)
	}

	loaded := make(map[string]*model.Playlist)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse playlists file: %w", err)
	}

	s.mu.Lock()
	s.playlists = loaded
	s.mu.Unlock()
	return nil
}

// Save writes all playlists to disk. Only the flat persistable fields reach
// the file; TrackRef carries no artwork by construction.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.playlists, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal playlists: %w", err)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write playlists file: %w", err)
	}
	return nil
}

// Names returns all playlist names in sorted order
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.playlists))
	for name := range s.playlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the playlist with the given name
func (s *Store) Get(name string) (*model.Playlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.playlists[name]
	return p, ok
}

// Create adds a new empty playlist under the given name, replacing any
// existing playlist with that name.
func (s *Store) Create(name string) *model.Playlist {
	now := time.Now()
	p := &model.Playlist{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.playlists[name] = p
	s.mu.Unlock()
	return p
}

// Delete removes the playlist with the given name. It returns true when a
// playlist was removed.
func (s *Store) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[name]; !ok {
		return false
	}
	delete(s.playlists, name)
	return true
}

// Len returns the number of playlists
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.playlists)
}
