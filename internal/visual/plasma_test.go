package visual

import "testing"

func TestFrame_Dimensions(t *testing.T) {
	plasma := NewPlasma(1)
	frame := plasma.Frame()

	bounds := frame.Bounds()
	if bounds.Dx() != PlasmaWidth || bounds.Dy() != PlasmaHeight {
		t.Errorf("Expected %dx%d frame, got %dx%d",
			PlasmaWidth, PlasmaHeight, bounds.Dx(), bounds.Dy())
	}
}

func TestFrame_Animates(t *testing.T) {
	plasma := NewPlasma(1)

	first := plasma.Frame()
	second := plasma.Frame()

	r1, g1, b1, _ := first.At(100, 100).RGBA()
	r2, g2, b2, _ := second.At(100, 100).RGBA()
	if r1 == r2 && g1 == g2 && b1 == b2 {
		// One stable pixel is possible, a full stable row is not
		for x := 0; x < PlasmaWidth; x += 10 {
			ra, ga, ba, _ := first.At(x, 100).RGBA()
			rb, gb, bb, _ := second.At(x, 100).RGBA()
			if ra != rb || ga != gb || ba != bb {
				return
			}
		}
		t.Error("Expected consecutive frames to differ")
	}
}

func TestNewPlasma_NonPositiveSpeedFallsBack(t *testing.T) {
	plasma := NewPlasma(0)
	if plasma.speed != 1 {
		t.Errorf("Expected speed 1, got %f", plasma.speed)
	}
}
