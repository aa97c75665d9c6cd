package tween

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/automoto/uitween/logx"
)

// ErrLoopRunning is returned when Run is called on a loop that already ran.
var ErrLoopRunning = errors.New("tween: loop already running")

// Loop owns a Scheduler on a dedicated goroutine and ticks it at a fixed rate.
// Other goroutines reach the scheduler through Do, which serializes their work with
// the ticks.
type Loop struct {
	sched    *Scheduler
	clock    *Clock
	source   TimeSource
	tickRate int
	now      func() time.Time
	log      logx.Logger

	// failing tweens are reported at most a few times, then once per interval
	failLog rate.Sometimes

	work     chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool
	ticks    atomic.Uint64
}

type LoopOption func(*Loop)

// WithTickRate sets ticks per second. Values below 1 are ignored.
func WithTickRate(n int) LoopOption {
	return func(l *Loop) {
		if n > 0 {
			l.tickRate = n
		}
	}
}

func WithClock(c *Clock) LoopOption {
	return func(l *Loop) {
		if c != nil {
			l.clock = c
		}
	}
}

func WithTimeSource(src TimeSource) LoopOption {
	return func(l *Loop) { l.source = src }
}

func WithLoopLogger(log logx.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// WithNow replaces the wall clock used to measure tick deltas.
func WithNow(fn func() time.Time) LoopOption {
	return func(l *Loop) {
		if fn != nil {
			l.now = fn
		}
	}
}

func NewLoop(s *Scheduler, opts ...LoopOption) *Loop {
	l := &Loop{
		sched:    s,
		clock:    NewClock(),
		source:   Scaled,
		tickRate: 60,
		now:      time.Now,
		failLog:  rate.Sometimes{First: 3, Interval: 5 * time.Second},
		work:     make(chan func()),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(logx.String("component", "tween-loop"))
	return l
}

func (l *Loop) Clock() *Clock { return l.clock }

// Ticks is the number of ticks run so far.
func (l *Loop) Ticks() uint64 { return l.ticks.Load() }

// Run ticks the scheduler until ctx is done or Stop is called, then closes it.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(l.done)
	defer l.sched.Close()

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.Info("tween loop started",
		logx.Int("tick_rate", l.tickRate),
		logx.String("time_source", l.source.String()),
	)

	last := l.now()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("tween loop stopped", logx.Err(ctx.Err()))
			return ctx.Err()
		case <-l.stopChan:
			l.log.Info("tween loop stopped")
			return nil
		case fn := <-l.work:
			fn()
		case <-ticker.C:
			now := l.now()
			raw := now.Sub(last).Seconds()
			last = now
			l.tick(raw)
		}
	}
}

func (l *Loop) tick(raw float64) {
	l.ticks.Add(1)
	if err := l.sched.Tick(l.clock.Delta(raw, l.source)); err != nil {
		l.failLog.Do(func() {
			l.log.Warn("tween callbacks failed", logx.Err(err), logx.Int("active", l.sched.Len()))
		})
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Do runs fn on the loop goroutine between two ticks and waits for it to finish.
// ctx only bounds the wait for the loop to accept fn; once accepted, fn always runs and
// Do returns its result. Once Do returns, a tween canceled inside fn will never fire
// another callback.
func (l *Loop) Do(ctx context.Context, fn func(*Scheduler)) error {
	result := make(chan error, 1)
	job := func() {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("tween: loop job panicked: %v", r)
			}
		}()
		fn(l.sched)
		result <- nil
	}

	select {
	case l.work <- job:
	case <-l.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	// Run executes accepted jobs synchronously, so result is always sent.
	return <-result
}
