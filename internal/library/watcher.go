package library

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/retrowave/jukebox/internal/platform"
)

// Rescans are debounced so a burst of file events triggers one callback
const watchDebounce = 500 * time.Millisecond

// Watcher observes configured music folders and requests a rescan when audio
// files appear, disappear or are replaced.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// NewWatcher creates a watcher invoking onChange (on the watcher goroutine)
// after relevant filesystem activity settles.
func NewWatcher(onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Add starts watching a folder. Errors are logged; watching is best-effort.
func (w *Watcher) Add(folder string) {
	if err := w.fsw.Add(folder); err != nil {
		log.Printf("Failed to watch %s: %v", folder, err)
	}
}

// Close stops the watcher
func (w *Watcher) Close() {
	close(w.done)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !platform.IsAudioFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Write) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, w.onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
