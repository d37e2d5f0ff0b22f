package visual

import (
	"image"
	"testing"
	"time"
)

func testFrame(w int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, 1))
}

func TestTryPush_DropsWhenFull(t *testing.T) {
	p := NewPipeline()

	if !p.TryPush(testFrame(1)) {
		t.Error("First push should succeed")
	}
	if !p.TryPush(testFrame(2)) {
		t.Error("Second push should succeed")
	}
	if p.TryPush(testFrame(3)) {
		t.Error("Third push should be dropped with no consumer")
	}
}

func TestTryPop_ReturnsOldestFirst(t *testing.T) {
	p := NewPipeline()
	p.TryPush(testFrame(1))
	p.TryPush(testFrame(2))

	first, ok := p.TryPop()
	if !ok {
		t.Fatal("Expected a buffered frame")
	}
	if first.Bounds().Dx() != 1 {
		t.Errorf("Expected oldest frame first, got width %d", first.Bounds().Dx())
	}

	second, ok := p.TryPop()
	if !ok || second.Bounds().Dx() != 2 {
		t.Error("Expected second frame next")
	}
}

func TestTryPop_EmptyDoesNotBlock(t *testing.T) {
	p := NewPipeline()

	done := make(chan bool, 1)
	go func() {
		_, ok := p.TryPop()
		done <- ok
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Expected no frame from empty pipeline")
		}
	case <-time.After(time.Second):
		t.Fatal("TryPop must not block on an empty pipeline")
	}
}

func TestTryPush_WaitsForConsumer(t *testing.T) {
	p := NewPipeline()
	p.TryPush(testFrame(1))
	p.TryPush(testFrame(2))

	go func() {
		time.Sleep(2 * time.Millisecond)
		p.TryPop()
	}()

	if !p.TryPush(testFrame(3)) {
		t.Error("Push should succeed once the consumer frees a slot within the timeout")
	}
}

func TestRun_StopsOnRequest(t *testing.T) {
	p := NewPipeline()

	done := make(chan struct{})
	go func() {
		p.Run(func() image.Image { return testFrame(1) })
		close(done)
	}()

	p.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Producer did not stop")
	}
	if !p.Stopped() {
		t.Error("Expected Stopped to report true")
	}
}
