package visual

import (
	"image"
	"sync/atomic"
	"time"
)

// Frame production and consumption rates. The producer renders slower than
// the consumer polls so the buffer stays shallow and frames stay fresh.
const (
	ProduceInterval = 50 * time.Millisecond
	ConsumeInterval = 25 * time.Millisecond

	pipelineCapacity = 2
	pushTimeout      = 10 * time.Millisecond
)

// Pipeline carries rendered frames from the producer goroutine to the UI.
// It holds at most two frames; when the consumer falls behind, new frames
// are dropped rather than blocking the producer.
type Pipeline struct {
	frames  chan image.Image
	stopped atomic.Bool
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{frames: make(chan image.Image, pipelineCapacity)}
}

// TryPush offers a frame to the consumer. It waits briefly for buffer space
// and reports false when the frame was dropped.
func (p *Pipeline) TryPush(frame image.Image) bool {
	select {
	case p.frames <- frame:
		return true
	default:
	}

	timer := time.NewTimer(pushTimeout)
	defer timer.Stop()

	select {
	case p.frames <- frame:
		return true
	case <-timer.C:
		return false
	}
}

// TryPop returns the oldest buffered frame without blocking
func (p *Pipeline) TryPop() (image.Image, bool) {
	select {
	case frame := <-p.frames:
		return frame, true
	default:
		return nil, false
	}
}

// Stop asks the producer to exit. Safe to call more than once.
func (p *Pipeline) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called
func (p *Pipeline) Stopped() bool {
	return p.stopped.Load()
}

// Run renders frames with the given generator until Stop is called. Intended
// to run on its own goroutine.
func (p *Pipeline) Run(render func() image.Image) {
	ticker := time.NewTicker(ProduceInterval)
	defer ticker.Stop()

	for range ticker.C {
		if p.Stopped() {
			return
		}
		p.TryPush(render())
	}
}
