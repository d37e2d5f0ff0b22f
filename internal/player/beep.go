package player

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Speaker buffer length; a short buffer keeps seek response snappy
const speakerBufferLen = time.Second / 10

// Resampling quality for tracks whose sample rate differs from the speaker's
const resampleQuality = 4

// BeepEngine implements Engine on the beep/v2 library with the system speaker
// as output. The speaker is initialized lazily at the sample rate of the first
// loaded track; later tracks are resampled to it. All methods are called from
// the UI thread; the mutex only guards against the speaker goroutine's
// finish callback. Speaker calls are never made while holding the mutex:
// the callback runs under the speaker lock and takes the mutex, so the
// reverse order would deadlock.
type BeepEngine struct {
	mu sync.Mutex

	speakerRate beep.SampleRate
	initialized bool

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	playback beep.Streamer // resampled view, may equal streamer

	gain   float64
	volume *effects.Volume

	playing  bool
	finished bool
}

// NewBeepEngine creates an engine with no track loaded
func NewBeepEngine() *BeepEngine {
	return &BeepEngine{gain: 1}
}

// Load decodes the file at path and prepares it for playback, replacing any
// previously loaded track.
func (e *BeepEngine) Load(path string) error {
	if e.initialized {
		speaker.Clear()
	}
	e.mu.Lock()
	e.releaseLocked()
	e.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if !e.initialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLen)); err != nil {
			streamer.Close()
			f.Close()
			return fmt.Errorf("failed to initialize speaker: %w", err)
		}
		e.speakerRate = format.SampleRate
		e.initialized = true
	}

	var playback beep.Streamer = streamer
	if format.SampleRate != e.speakerRate {
		playback = beep.Resample(resampleQuality, format.SampleRate, e.speakerRate, streamer)
	}

	e.mu.Lock()
	e.file = f
	e.streamer = streamer
	e.format = format
	e.playback = playback
	e.mu.Unlock()
	return nil
}

// Play starts playback of the loaded track
func (e *BeepEngine) Play() {
	e.mu.Lock()
	if e.streamer == nil {
		e.mu.Unlock()
		return
	}
	e.finished = false
	e.playing = true
	volume := &effects.Volume{Streamer: &beep.Ctrl{Streamer: e.playback}, Base: 2}
	applyGain(volume, e.gain)
	e.volume = volume
	e.mu.Unlock()

	done := beep.Callback(func() {
		// Runs on the speaker goroutine when the stream drains
		e.mu.Lock()
		e.finished = true
		e.playing = false
		e.mu.Unlock()
	})

	speaker.Clear()
	speaker.Play(beep.Seq(volume, done))
}

// Stop halts playback and releases the loaded track
func (e *BeepEngine) Stop() {
	if e.initialized {
		speaker.Clear()
	}
	e.mu.Lock()
	e.releaseLocked()
	e.mu.Unlock()
}

// SetVolume sets the playback loudness in [0, 1] for the current and all
// subsequent tracks. Zero mutes.
func (e *BeepEngine) SetVolume(gain float64) {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}

	e.mu.Lock()
	e.gain = gain
	volume := e.volume
	e.mu.Unlock()

	if volume == nil {
		return
	}
	speaker.Lock()
	applyGain(volume, gain)
	speaker.Unlock()
}

// applyGain maps a linear gain to the effect's exponential volume scale
func applyGain(volume *effects.Volume, gain float64) {
	if gain <= 0 {
		volume.Silent = true
		return
	}
	volume.Silent = false
	volume.Volume = math.Log2(gain)
}

// Busy reports whether the engine is actively producing audio
func (e *BeepEngine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing && !e.finished
}

// PositionMS returns the decoder position in milliseconds
func (e *BeepEngine) PositionMS() int {
	e.mu.Lock()
	streamer, format := e.streamer, e.format
	e.mu.Unlock()

	if streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := format.SampleRate.D(streamer.Position())
	speaker.Unlock()
	return int(pos.Milliseconds())
}

// Seek moves playback to the given offset in seconds
func (e *BeepEngine) Seek(seconds float64) error {
	e.mu.Lock()
	streamer, format := e.streamer, e.format
	e.mu.Unlock()

	if streamer == nil {
		return &SeekError{Seconds: seconds, Err: fmt.Errorf("no track loaded")}
	}

	target := format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	speaker.Lock()
	if target >= streamer.Len() {
		target = streamer.Len() - 1
	}
	if target < 0 {
		target = 0
	}
	err := streamer.Seek(target)
	speaker.Unlock()

	if err != nil {
		return &SeekError{Seconds: seconds, Err: err}
	}
	return nil
}

// releaseLocked closes the current track's resources; e.mu must be held
func (e *BeepEngine) releaseLocked() {
	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	e.playback = nil
	e.volume = nil
	e.playing = false
	e.finished = false
}
