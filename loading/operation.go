// Package loading reports the progress of an asynchronous load and gates its activation.
package loading

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/automoto/uitween/logx"
)

// DefaultThreshold is the raw progress a load reports once all work is done but
// activation has not been allowed yet.
const DefaultThreshold = 0.9

var ErrNoSteps = errors.New("loading: no steps")

// Step is one unit of loading work. Run reports its own completion fraction in [0,1].
type Step struct {
	Name   string
	Weight float64 // relative share of the total; <= 0 counts as 1
	Run    func(ctx context.Context, report func(fraction float64)) error
}

// Source is what a Tracker polls.
type Source interface {
	Progress() float64
	AllowActivation()
	Err() error
}

// AsyncOperation runs steps concurrently and exposes their combined progress.
type AsyncOperation struct {
	steps     []Step
	weights   []float64
	total     float64
	threshold float64
	log       logx.Logger

	fractions []atomic.Uint64 // math.Float64bits
	finished  atomic.Int32

	done      chan struct{}
	activated chan struct{}
	allowOnce sync.Once
	allowed   atomic.Bool
	mu        sync.Mutex
	err       error
}

type OperationOption func(*AsyncOperation)

func WithThreshold(v float64) OperationOption {
	return func(op *AsyncOperation) {
		if v > 0 && v <= 1 {
			op.threshold = v
		}
	}
}

func WithLogger(l logx.Logger) OperationOption {
	return func(op *AsyncOperation) { op.log = l }
}

// Start launches every step in its own goroutine. The first failing step cancels the
// others through ctx.
func Start(ctx context.Context, steps []Step, opts ...OperationOption) (*AsyncOperation, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	op := &AsyncOperation{
		steps:     steps,
		weights:   make([]float64, len(steps)),
		threshold: DefaultThreshold,
		fractions: make([]atomic.Uint64, len(steps)),
		done:      make(chan struct{}),
		activated: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(op)
	}
	op.log = op.log.With(logx.String("component", "loading"))
	for i, s := range steps {
		w := s.Weight
		if w <= 0 || math.IsNaN(w) {
			w = 1
		}
		op.weights[i] = w
		op.total += w
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range steps {
		g.Go(func() error { return op.run(gctx, i) })
	}
	go func() {
		err := g.Wait()
		op.mu.Lock()
		op.err = err
		op.mu.Unlock()
		if err != nil {
			op.log.Warn("load failed", logx.Err(err))
		} else {
			op.log.Debug("load finished", logx.Int("steps", len(steps)))
		}
		close(op.done)
		if err == nil && op.allowed.Load() {
			op.activate()
		}
	}()
	return op, nil
}

func (op *AsyncOperation) run(ctx context.Context, i int) error {
	s := op.steps[i]
	start := time.Now()
	report := func(f float64) { op.report(i, f) }
	if err := s.Run(ctx, report); err != nil {
		return fmt.Errorf("step %q: %w", s.Name, err)
	}
	op.report(i, 1)
	op.finished.Add(1)
	op.log.Debug("step finished", logx.String("step", s.Name), logx.Duration("took", time.Since(start)))
	return nil
}

// report stores f for step i, keeping each step's fraction monotonic.
func (op *AsyncOperation) report(i int, f float64) {
	if math.IsNaN(f) {
		return
	}
	f = math.Max(0, math.Min(1, f))
	slot := &op.fractions[i]
	for {
		old := slot.Load()
		if f <= math.Float64frombits(old) {
			return
		}
		if slot.CompareAndSwap(old, math.Float64bits(f)) {
			return
		}
	}
}

// Progress is the weighted raw progress in [0, threshold]; it reads exactly threshold
// once every step is done, and 1 once the operation has activated.
func (op *AsyncOperation) Progress() float64 {
	select {
	case <-op.activated:
		return 1
	default:
	}
	if int(op.finished.Load()) == len(op.steps) {
		return op.threshold
	}
	sum := 0.0
	for i := range op.fractions {
		sum += op.weights[i] * math.Float64frombits(op.fractions[i].Load())
	}
	return math.Min(op.threshold, sum/op.total*op.threshold)
}

// AllowActivation lets the operation activate as soon as all steps have finished.
func (op *AsyncOperation) AllowActivation() {
	op.allowed.Store(true)
	select {
	case <-op.done:
		if op.Err() == nil {
			op.activate()
		}
	default:
	}
}

func (op *AsyncOperation) activate() {
	op.allowOnce.Do(func() { close(op.activated) })
}

// Done is closed when every step has returned.
func (op *AsyncOperation) Done() <-chan struct{} { return op.done }

// Activated is closed once loading succeeded and activation was allowed.
func (op *AsyncOperation) Activated() <-chan struct{} { return op.activated }

func (op *AsyncOperation) Err() error {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.err
}

// Wait blocks until every step has returned or ctx is done.
func (op *AsyncOperation) Wait(ctx context.Context) error {
	select {
	case <-op.done:
		return op.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Delay is a step that takes d and reports its progress along the way.
func Delay(name string, d time.Duration, weight float64) Step {
	return Step{
		Name:   name,
		Weight: weight,
		Run: func(ctx context.Context, report func(float64)) error {
			if d <= 0 {
				return nil
			}
			start := time.Now()
			ticker := time.NewTicker(d / 10)
			defer ticker.Stop()
			timer := time.NewTimer(d)
			defer timer.Stop()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-timer.C:
					return nil
				case <-ticker.C:
					report(float64(time.Since(start)) / float64(d))
				}
			}
		},
	}
}
