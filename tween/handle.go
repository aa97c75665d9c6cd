package tween

import (
	"fmt"
	"math"

	"github.com/automoto/uitween/ease"
)

// State is the lifecycle position of a Handle.
type State int

const (
	Pending State = iota // waiting out the delay
	Playing
	Completed
	Canceled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == Completed || s == Canceled }

// Options configures one tween. Every callback is optional.
type Options struct {
	Duration float64 // seconds, >= 0
	Delay    float64 // seconds, >= 0

	OnUpdate   func(progress float64)
	OnPlay     func()
	OnComplete func()

	// Easing remaps linear progress. Nil means the scheduler default.
	Easing ease.Func
}

func (o Options) validate() error {
	if o.Duration < 0 || math.IsNaN(o.Duration) || o.Delay < 0 || math.IsNaN(o.Delay) {
		return fmt.Errorf("%w: duration=%v delay=%v", ErrInvalidDuration, o.Duration, o.Delay)
	}
	return nil
}

// Handle is one in-flight animation. It is owned by the Scheduler that created it and
// must only be touched from the goroutine that ticks that scheduler.
type Handle struct {
	sched *Scheduler
	id    uint64
	key   any

	opts   Options
	easing ease.Func

	state   State
	waited  float64
	elapsed float64
	err     error
}

func (h *Handle) Key() any          { return h.key }
func (h *Handle) State() State      { return h.state }
func (h *Handle) Duration() float64 { return h.opts.Duration }
func (h *Handle) Delay() float64    { return h.opts.Delay }

// Elapsed is the time spent playing, excluding the delay.
func (h *Handle) Elapsed() float64 { return h.elapsed }

// Err returns the callback failure that aborted this handle, if any.
func (h *Handle) Err() error { return h.err }

// Active reports whether the handle is still pending or playing.
func (h *Handle) Active() bool { return !h.state.Terminal() }

// Progress is the linear (un-eased) progress in [0,1].
func (h *Handle) Progress() float64 {
	if h.state == Completed {
		return 1
	}
	if h.opts.Duration <= 0 {
		return 0
	}
	return clamp01(h.elapsed / h.opts.Duration)
}

// Cancel stops this handle if it is still the active one for its key.
func (h *Handle) Cancel() bool {
	if h.state.Terminal() {
		return false
	}
	h.sched.retire(h, Canceled)
	return true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
