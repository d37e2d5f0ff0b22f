package visual

import "math/rand"

// Bar animation parameters. Inertia controls how fast bars chase their
// targets; lower values give smoother, slower movement.
const (
	EqualizerBars = 50

	barInertia        = 0.2
	retargetChance    = 0.3
	idleTargetCeiling = 0.1
)

// Equalizer animates the faux-spectrum bars under the transport. Bars chase
// randomly re-picked targets; while playback is stopped the targets stay
// near zero so the display settles.
type Equalizer struct {
	bars    [EqualizerBars]float64
	targets [EqualizerBars]float64
	rng     *rand.Rand
}

// NewEqualizer creates an equalizer with all bars at rest
func NewEqualizer(rng *rand.Rand) *Equalizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Equalizer{rng: rng}
}

// Step advances the animation by one tick. Heights stay within [0, 1].
func (e *Equalizer) Step(playing bool) {
	for i := range e.bars {
		if e.rng.Float64() < retargetChance {
			if playing {
				e.targets[i] = e.rng.Float64()
			} else {
				e.targets[i] = e.rng.Float64() * idleTargetCeiling
			}
		}
		e.bars[i] += (e.targets[i] - e.bars[i]) * barInertia
	}
}

// Bars returns the current bar heights in [0, 1]
func (e *Equalizer) Bars() []float64 {
	out := make([]float64, len(e.bars))
	copy(out, e.bars[:])
	return out
}
