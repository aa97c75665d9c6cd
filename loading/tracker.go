package loading

import "math"

// Tracker turns a Source's raw progress into the value a loading screen shows.
//
// Below the threshold the raw value is shown as is. From the threshold on, the shown
// value eases from threshold to 1 over one second of tick time; when it reaches 1 the
// tracker allows activation, exactly once.
type Tracker struct {
	src       Source
	threshold float64

	progress float64
	finish   float64 // seconds spent easing past the threshold
	ready    bool
	err      error
}

// NewTracker polls src. A threshold outside (0,1] means DefaultThreshold.
func NewTracker(src Source, threshold float64) *Tracker {
	if threshold <= 0 || threshold > 1 || math.IsNaN(threshold) {
		threshold = DefaultThreshold
	}
	return &Tracker{src: src, threshold: threshold}
}

// Update polls the source and advances the final ease by dt seconds. It returns the
// progress to display, which never decreases and never exceeds 1.
func (t *Tracker) Update(dt float64) float64 {
	if t.ready || t.err != nil {
		return t.progress
	}
	if err := t.src.Err(); err != nil {
		t.err = err
		return t.progress
	}

	raw := t.src.Progress()
	if raw < t.threshold {
		t.progress = math.Max(t.progress, raw)
		return t.progress
	}

	if dt > 0 {
		t.finish += dt
	}
	step := math.Min(1, t.finish)
	t.progress = math.Max(t.progress, t.threshold+(1-t.threshold)*step)
	if step >= 1 {
		t.progress = 1
		t.ready = true
		t.src.AllowActivation()
	}
	return t.progress
}

func (t *Tracker) Progress() float64 { return t.progress }

// Ready reports whether activation has been allowed.
func (t *Tracker) Ready() bool { return t.ready }

// Err is the source's failure, if any. A failed load never becomes ready.
func (t *Tracker) Err() error { return t.err }
