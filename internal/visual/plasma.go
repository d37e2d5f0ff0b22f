package visual

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
)

// Output and render-grid sizes. The plasma field is computed on a small grid
// and upscaled; per-pixel math at full resolution would dominate a frame
// budget of 50ms.
const (
	PlasmaWidth  = 800
	PlasmaHeight = 600

	gridWidth  = 80
	gridHeight = 60
)

// Plasma generates the classic sine-interference effect, one frame per call.
// Not safe for concurrent use; drive it from a single producer goroutine.
type Plasma struct {
	phase float64
	speed float64
}

// NewPlasma creates a generator with the given animation speed multiplier
func NewPlasma(speed float64) *Plasma {
	if speed <= 0 {
		speed = 1
	}
	return &Plasma{speed: speed}
}

// Frame renders the next frame and advances the animation phase
func (p *Plasma) Frame() image.Image {
	grid := image.NewRGBA(image.Rect(0, 0, gridWidth, gridHeight))

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			fx := float64(x) / gridWidth
			fy := float64(y) / gridHeight

			v := math.Sin(fx*10 + p.phase)
			v += math.Sin((fy*10 + p.phase) / 2)
			v += math.Sin((fx*10 + fy*10 + p.phase) / 2)

			cx := fx + 0.5*math.Sin(p.phase/5)
			cy := fy + 0.5*math.Cos(p.phase/3)
			v += math.Sin(math.Sqrt(100*(cx*cx+cy*cy)+1) + p.phase)
			v /= 2

			// Phase-shifted channels give the magenta/cyan palette
			r := uint8((math.Sin(v*math.Pi) + 1) * 127.5)
			g := uint8((math.Sin(v*math.Pi+2*math.Pi/3) + 1) * 127.5)
			b := uint8((math.Sin(v*math.Pi+4*math.Pi/3) + 1) * 127.5)
			grid.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	p.phase += 0.1 * p.speed
	return resize.Resize(PlasmaWidth, PlasmaHeight, grid, resize.Bilinear)
}
