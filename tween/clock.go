package tween

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
)

// TimeSource selects which delta feeds Tick.
type TimeSource int

const (
	// Scaled is game time: multiplied by the clock's time scale and frozen while paused.
	Scaled TimeSource = iota
	// Unscaled is real time, unaffected by scale and pause. UI chrome usually wants this.
	Unscaled
)

func (t TimeSource) String() string {
	switch t {
	case Scaled:
		return "scaled"
	case Unscaled:
		return "unscaled"
	default:
		return fmt.Sprintf("timesource(%d)", int(t))
	}
}

func ParseTimeSource(s string) (TimeSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scaled":
		return Scaled, nil
	case "unscaled", "real", "realtime":
		return Unscaled, nil
	}
	return Scaled, fmt.Errorf("tween: unknown time source %q", s)
}

// Clock converts raw host deltas into tick deltas for a given TimeSource.
// It is safe for concurrent use; hosts typically pause it from input handlers.
type Clock struct {
	mu    sync.RWMutex
	scale float64

	isPaused atomic.Bool
}

func NewClock() *Clock {
	return &Clock{scale: 1}
}

// SetTimeScale sets the scaled-time multiplier. Negative and NaN values clamp to 0.
func (c *Clock) SetTimeScale(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	c.mu.Lock()
	c.scale = v
	c.mu.Unlock()
}

func (c *Clock) TimeScale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

// Pause freezes scaled time.
func (c *Clock) Pause() { c.isPaused.Store(true) }

// Resume continues scaled time.
func (c *Clock) Resume() { c.isPaused.Store(false) }

func (c *Clock) IsPaused() bool { return c.isPaused.Load() }

// Delta maps a raw host delta (seconds) to the delta for src.
// Negative or NaN raw deltas become 0 so hosts never feed Tick an invalid value.
func (c *Clock) Delta(raw float64, src TimeSource) float64 {
	if raw < 0 || math.IsNaN(raw) {
		return 0
	}
	if src == Unscaled {
		return raw
	}
	if c.isPaused.Load() {
		return 0
	}
	return raw * c.TimeScale()
}
