package player

// fakeEngine is a scripted Engine for deterministic core tests
type fakeEngine struct {
	loaded     string
	loadErr    error
	busy       bool
	positionMS int
	seekErr    error
	seeks      []float64

	loadCount int
	playCount int
	stopCount int
}

func (f *fakeEngine) Load(path string) error {
	f.loadCount++
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = path
	return nil
}

func (f *fakeEngine) Play() {
	f.playCount++
}

func (f *fakeEngine) Stop() {
	f.stopCount++
	f.busy = false
}

func (f *fakeEngine) Busy() bool {
	return f.busy
}

func (f *fakeEngine) PositionMS() int {
	return f.positionMS
}

func (f *fakeEngine) Seek(seconds float64) error {
	if f.seekErr != nil {
		return f.seekErr
	}
	f.seeks = append(f.seeks, seconds)
	return nil
}
