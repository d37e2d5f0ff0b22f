package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/retrowave/jukebox/internal/config"
	"github.com/retrowave/jukebox/internal/library"
	"github.com/retrowave/jukebox/internal/platform"
	"github.com/retrowave/jukebox/internal/player"
	"github.com/retrowave/jukebox/internal/playlist"
	"github.com/retrowave/jukebox/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.retrowave.jukebox"
	AppName = "Jukebox"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewNeonTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	folders := settings.GetMusicFolders()
	for _, folder := range folders {
		if err := platform.CreateDirectoryIfNotExists(folder); err != nil {
			fmt.Printf("failed to ensure music folder %s: %v\n", folder, err)
		}
	}

	lib := library.New()
	scanner := library.NewScanner(lib)

	var watcher *library.Watcher
	if settings.GetWatchFolders() {
		w, err := library.NewWatcher(func() {
			if err := scanner.Scan(settings.GetMusicFolders()...); err != nil {
				fmt.Printf("rescan skipped: %v\n", err)
			}
		})
		if err != nil {
			fmt.Printf("failed to start folder watcher: %v\n", err)
		} else {
			watcher = w
			for _, folder := range folders {
				watcher.Add(folder)
			}
		}
	}

	store := playlist.NewStore(playlistPath())
	if err := store.Load(); err != nil {
		fmt.Printf("failed to load playlists: %v\n", err)
	}

	engine := player.NewBeepEngine()
	controller := player.NewController(engine)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, engine, lib, scanner, watcher, store)

	// First scan runs in the background so the window shows immediately
	if err := scanner.Scan(folders...); err != nil {
		fmt.Printf("initial scan failed to start: %v\n", err)
	}

	myWindow.ShowAndRun()
}

// playlistPath returns the playlists file location under the user config dir
func playlistPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "jukebox", playlist.DefaultFileName)
}
