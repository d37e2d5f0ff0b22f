package ui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/retrowave/jukebox/internal/visual"
)

// VisualizerWindow shows the plasma effect in its own window. Frames are
// rendered on a producer goroutine and pulled onto the canvas at a fixed
// consumer rate; closing the window stops both goroutines.
type VisualizerWindow struct {
	window   fyne.Window
	pipeline *visual.Pipeline
	image    *canvas.Image
}

// ShowVisualizer opens the visualizer window and starts its frame pipeline
func ShowVisualizer(app fyne.App, speed float64) *VisualizerWindow {
	window := app.NewWindow("Plasma " + IconVisualizer)
	window.Resize(fyne.NewSize(visual.PlasmaWidth, visual.PlasmaHeight))

	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, visual.PlasmaWidth, visual.PlasmaHeight)))
	img.FillMode = canvas.ImageFillStretch
	window.SetContent(img)

	v := &VisualizerWindow{
		window:   window,
		pipeline: visual.NewPipeline(),
		image:    img,
	}

	plasma := visual.NewPlasma(speed)
	go v.pipeline.Run(plasma.Frame)
	go v.consume()

	window.SetOnClosed(v.Stop)
	window.Show()
	return v
}

// Stop halts frame production and consumption. Safe to call more than once.
func (v *VisualizerWindow) Stop() {
	v.pipeline.Stop()
}

// Stopped reports whether the visualizer has been closed
func (v *VisualizerWindow) Stopped() bool {
	return v.pipeline.Stopped()
}

// Close stops the visualizer and closes its window
func (v *VisualizerWindow) Close() {
	if !v.Stopped() {
		v.window.Close()
	}
}

// consume polls the pipeline and paints whatever frame is available. Missing
// a frame is fine; the producer keeps the buffer fresh.
func (v *VisualizerWindow) consume() {
	ticker := time.NewTicker(visual.ConsumeInterval)
	defer ticker.Stop()

	for range ticker.C {
		if v.pipeline.Stopped() {
			return
		}
		frame, ok := v.pipeline.TryPop()
		if !ok {
			continue
		}
		fyne.Do(func() {
			v.image.Image = frame
			v.image.Refresh()
		})
	}
}
