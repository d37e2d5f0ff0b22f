package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Supported audio file extensions (lowercase, with leading dot)
var AudioExtensions = []string{".mp3", ".wav", ".flac"}

// IsAudioFile reports whether the path has a supported audio extension
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range AudioExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// CreateDirectoryIfNotExists creates the directory (and parents) when missing
func CreateDirectoryIfNotExists(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("path exists but is not a directory: %s", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// GetHomeMusicDir returns the user's Music directory, creating nothing
func GetHomeMusicDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Music"), nil
}

// ShortenPath compacts a long path for display, keeping the tail visible
func ShortenPath(path string, maxLen int) string {
	if len(path) <= maxLen || maxLen < 4 {
		return path
	}
	return "..." + path[len(path)-(maxLen-3):]
}
