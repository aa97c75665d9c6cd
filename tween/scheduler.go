// Package tween runs keyed, cancelable, tick-driven interpolations.
//
// A Scheduler keeps at most one active Handle per key: starting a tween for a key that
// is already animating cancels the old one first, and the old OnComplete never fires.
// Nothing happens between calls to Tick. Callbacks run inside Tick on the caller's
// goroutine and may start or cancel tweens on the same scheduler.
package tween

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/logx"
)

// Scheduler is not safe for concurrent use. Use Loop to share one across goroutines.
type Scheduler struct {
	active map[any]*Handle
	order  []*Handle // start order, may hold terminal handles until the next compaction

	// handles started while ticking; they join order once the tick finishes
	pending []*Handle

	easing  ease.Func
	log     logx.Logger
	nextID  uint64
	ticking bool
	closed  bool
}

type Option func(*Scheduler)

func WithLogger(l logx.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithDefaultEasing replaces ease.Default for tweens that leave Options.Easing nil.
func WithDefaultEasing(f ease.Func) Option {
	return func(s *Scheduler) {
		if f != nil {
			s.easing = f
		}
	}
}

func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		active: make(map[any]*Handle),
		easing: ease.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logx.String("component", "tween"))
	return s
}

// Start registers a tween for key, replacing any tween already running for it.
func (s *Scheduler) Start(key any, opts Options) (*Handle, error) {
	if !validKey(key) {
		s.log.Warn("start ignored: invalid key", logx.String("key_type", fmt.Sprintf("%T", key)))
		return nil, ErrInvalidKey
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if s.closed {
		return nil, ErrClosed
	}

	if old, ok := s.active[key]; ok {
		s.retire(old, Canceled)
		s.log.Debug("tween superseded", logx.String("key", fmt.Sprint(key)))
	}

	easing := opts.Easing
	if easing == nil {
		easing = s.easing
	}
	s.nextID++
	h := &Handle{
		sched:  s,
		id:     s.nextID,
		key:    key,
		opts:   opts,
		easing: easing,
		state:  Pending,
	}
	s.active[key] = h

	if s.ticking {
		s.pending = append(s.pending, h)
	} else {
		if len(s.order) > 2*len(s.active)+16 {
			s.order = compact(s.order)
		}
		s.order = append(s.order, h)
	}
	return h, nil
}

// Cancel stops the tween for key without firing OnComplete.
// It returns false when nothing was running, which is not an error.
func (s *Scheduler) Cancel(key any) bool {
	if !validKey(key) {
		s.log.Warn("cancel ignored: invalid key", logx.String("key_type", fmt.Sprintf("%T", key)))
		return false
	}
	h, ok := s.active[key]
	if !ok {
		return false
	}
	s.retire(h, Canceled)
	return true
}

// IsActive reports whether a tween is pending or playing for key.
func (s *Scheduler) IsActive(key any) bool {
	if !validKey(key) {
		return false
	}
	_, ok := s.active[key]
	return ok
}

// Handle returns the active handle for key, if any.
func (s *Scheduler) Handle(key any) (*Handle, bool) {
	if !validKey(key) {
		return nil, false
	}
	h, ok := s.active[key]
	return h, ok
}

// Len is the number of active tweens.
func (s *Scheduler) Len() int { return len(s.active) }

// Tick advances every tween by dt seconds and fires due callbacks.
//
// A panicking callback only aborts its own tween; the failures of one tick are returned
// joined, each as a *CallbackError.
func (s *Scheduler) Tick(dt float64) error {
	if dt < 0 || math.IsNaN(dt) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	if s.closed {
		return nil
	}
	if s.ticking {
		return ErrReentrantTick
	}

	return errors.Join(s.advanceAll(dt)...)
}

func (s *Scheduler) advanceAll(dt float64) []error {
	s.ticking = true
	defer func() {
		s.ticking = false
		s.order = compact(s.order)
		for _, h := range s.pending {
			if !h.state.Terminal() {
				s.order = append(s.order, h)
			}
		}
		s.pending = nil
	}()

	var errs []error
	for _, h := range s.order {
		if h.state.Terminal() {
			continue
		}
		if err := s.advance(h, dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Close cancels every tween without firing callbacks. Later Starts fail with ErrClosed.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	for _, h := range s.active {
		h.state = Canceled
	}
	if n := len(s.active); n > 0 {
		s.log.Debug("scheduler closed with active tweens", logx.Int("active", n))
	}
	clear(s.active)
	s.order = nil
	s.pending = nil
	s.closed = true
}

func (s *Scheduler) advance(h *Handle, dt float64) error {
	step := dt
	if h.state == Pending {
		h.waited += dt
		if h.waited < h.opts.Delay {
			return nil
		}
		step = h.waited - h.opts.Delay
		h.state = Playing
		if err := s.invoke(h, PhasePlay, h.opts.OnPlay); err != nil || h.state != Playing {
			return err
		}
	}

	h.elapsed += step
	if h.elapsed < h.opts.Duration {
		return s.update(h, clamp01(h.elapsed/h.opts.Duration), true)
	}

	// Final frame is always exactly 1 regardless of accumulated float error.
	if err := s.update(h, 1, false); err != nil || h.state != Playing {
		return err
	}
	s.retire(h, Completed)
	return s.invoke(h, PhaseComplete, h.opts.OnComplete)
}

// update eases t inside the recovered call, so a failing easing aborts only h.
func (s *Scheduler) update(h *Handle, t float64, eased bool) error {
	if h.opts.OnUpdate == nil {
		return nil
	}
	return s.invoke(h, PhaseUpdate, func() {
		if eased {
			t = h.easing(t)
		}
		h.opts.OnUpdate(t)
	})
}

func (s *Scheduler) invoke(h *Handle, phase Phase, fn func()) (err error) {
	if fn == nil {
		return nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cerr := &CallbackError{Key: h.key, Phase: phase, Value: r}
		h.err = cerr
		if !h.state.Terminal() {
			s.retire(h, Canceled)
		}
		s.log.Error("tween callback panicked",
			logx.String("key", fmt.Sprint(h.key)),
			logx.String("phase", phase.String()),
			logx.String("panic", fmt.Sprint(r)),
		)
		err = cerr
	}()
	fn()
	return nil
}

// retire moves h to a terminal state and frees its registry slot if it still owns it.
func (s *Scheduler) retire(h *Handle, state State) {
	h.state = state
	if cur, ok := s.active[h.key]; ok && cur == h {
		delete(s.active, h.key)
	}
}

func compact(hs []*Handle) []*Handle {
	out := hs[:0]
	for _, h := range hs {
		if !h.state.Terminal() {
			out = append(out, h)
		}
	}
	clear(hs[len(out):])
	return out
}

func validKey(key any) bool {
	if key == nil {
		return false
	}
	v := reflect.ValueOf(key)
	// Value check: an interface field may hold a slice even when the static type is comparable.
	if !v.Comparable() {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan:
		return !v.IsNil()
	}
	return true
}
