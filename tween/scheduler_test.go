package tween

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/uitween/ease"
)

// recorder captures every callback of one tween in order.
type recorder struct {
	events    []string
	updates   []float64
	plays     int
	completes int
}

func (r *recorder) options(duration, delay float64) Options {
	return Options{
		Duration: duration,
		Delay:    delay,
		OnUpdate: func(p float64) {
			r.updates = append(r.updates, p)
			r.events = append(r.events, "update")
		},
		OnPlay: func() {
			r.plays++
			r.events = append(r.events, "play")
		},
		OnComplete: func() {
			r.completes++
			r.events = append(r.events, "complete")
		},
	}
}

func TestStartAndCompleteWithEaseOutQuad(t *testing.T) {
	s := NewScheduler()
	var r recorder
	opts := r.options(1.0, 0)
	opts.Easing = ease.OutQuad

	_, err := s.Start("A", opts)
	require.NoError(t, err)
	assert.True(t, s.IsActive("A"))

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, []float64{0.75}, r.updates)
	assert.Zero(t, r.completes)

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, []float64{0.75, 1.0}, r.updates)
	assert.Equal(t, 1, r.completes)
	assert.Equal(t, []string{"play", "update", "update", "complete"}, r.events)
	assert.False(t, s.IsActive("A"))
	assert.Zero(t, s.Len())
}

func TestDefaultEasingIsOutQuad(t *testing.T) {
	s := NewScheduler()
	var r recorder
	_, err := s.Start("k", r.options(2, 0))
	require.NoError(t, err)

	require.NoError(t, s.Tick(1))
	require.Len(t, r.updates, 1)
	assert.Equal(t, 0.75, r.updates[0])
}

func TestWithDefaultEasing(t *testing.T) {
	s := NewScheduler(WithDefaultEasing(ease.Linear))
	var r recorder
	_, err := s.Start("k", r.options(4, 0))
	require.NoError(t, err)

	require.NoError(t, s.Tick(1))
	assert.Equal(t, []float64{0.25}, r.updates)
}

func TestRestartSameKeyCancelsPrevious(t *testing.T) {
	s := NewScheduler()
	var first, second recorder

	h1, err := s.Start("A", first.options(2.0, 0))
	require.NoError(t, err)
	h2, err := s.Start("A", second.options(1.0, 0))
	require.NoError(t, err)

	assert.Equal(t, Canceled, h1.State())
	assert.Equal(t, Pending, h2.State())
	assert.Equal(t, 1, s.Len())

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Tick(0.5))
	}

	assert.Empty(t, first.events, "superseded tween must never fire")
	assert.Equal(t, 1, second.completes)
	assert.Equal(t, Completed, h2.State())
}

func TestSingleFlightAcrossManyStarts(t *testing.T) {
	s := NewScheduler()
	recs := make([]*recorder, 5)
	for i := range recs {
		recs[i] = &recorder{}
		_, err := s.Start("same", recs[i].options(1, 0))
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
		require.NoError(t, s.Tick(0.25))
	}
	require.NoError(t, s.Tick(1))

	for i, r := range recs[:len(recs)-1] {
		assert.Zero(t, r.completes, "recorder %d", i)
	}
	assert.Equal(t, 1, recs[len(recs)-1].completes)
}

func TestProgressIsMonotonicAndEndsAtOne(t *testing.T) {
	s := NewScheduler()
	var r recorder
	_, err := s.Start("m", r.options(1, 0))
	require.NoError(t, err)

	for i := 0; i < 100 && s.IsActive("m"); i++ {
		require.NoError(t, s.Tick(0.016))
	}

	require.NotEmpty(t, r.updates)
	for i := 1; i < len(r.updates); i++ {
		assert.GreaterOrEqual(t, r.updates[i], r.updates[i-1])
	}
	assert.Equal(t, 1.0, r.updates[len(r.updates)-1])
	assert.Equal(t, 1, r.completes)
}

func TestDelayPrecedesPlay(t *testing.T) {
	s := NewScheduler()
	var r recorder
	h, err := s.Start("d", r.options(1, 0.5))
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.25))
	assert.Empty(t, r.events)
	assert.Equal(t, Pending, h.State())

	require.NoError(t, s.Tick(0.25))
	assert.Equal(t, 1, r.plays)
	assert.Equal(t, Playing, h.State())
	assert.Equal(t, 0.0, h.Elapsed())
	assert.Equal(t, []string{"play", "update"}, r.events)
	assert.Equal(t, 0.0, r.updates[0])

	require.NoError(t, s.Tick(0.5))
	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 1, r.plays, "play fires exactly once")
	assert.Equal(t, 1, r.completes)
}

func TestDelayOverflowCarriesIntoPlay(t *testing.T) {
	s := NewScheduler()
	var r recorder
	h, err := s.Start("d", r.options(1, 0.25))
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.75))
	assert.Equal(t, 0.5, h.Elapsed())
	assert.Equal(t, []float64{0.75}, r.updates)
}

func TestZeroDurationCompletesOnFirstPlayingTick(t *testing.T) {
	s := NewScheduler()
	var r recorder
	_, err := s.Start("z", r.options(0, 0.1))
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.05))
	assert.Empty(t, r.events)

	require.NoError(t, s.Tick(0.05))
	assert.Equal(t, []string{"play", "update", "complete"}, r.events)
	assert.Equal(t, []float64{1.0}, r.updates)
	assert.False(t, s.IsActive("z"))
}

func TestLargeDeltaCompletesInOneTick(t *testing.T) {
	s := NewScheduler()
	var r recorder
	_, err := s.Start("big", r.options(1, 1))
	require.NoError(t, err)

	require.NoError(t, s.Tick(5))
	assert.Equal(t, []string{"play", "update", "complete"}, r.events)
	assert.Equal(t, []float64{1.0}, r.updates)
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	var r recorder
	h, err := s.Start("c", r.options(1, 0))
	require.NoError(t, err)
	require.NoError(t, s.Tick(0.5))

	assert.True(t, s.Cancel("c"))
	assert.Equal(t, Canceled, h.State())
	assert.False(t, s.IsActive("c"))

	require.NoError(t, s.Tick(1))
	assert.Equal(t, []string{"play", "update"}, r.events)
	assert.Zero(t, r.completes)
}

func TestCancelIsIdempotent(t *testing.T) {
	s := NewScheduler()
	assert.False(t, s.Cancel("missing"))

	_, err := s.Start("x", Options{Duration: 1})
	require.NoError(t, err)
	assert.True(t, s.Cancel("x"))
	assert.False(t, s.Cancel("x"))
	assert.Zero(t, s.Len())
}

func TestCancelDuringDelay(t *testing.T) {
	s := NewScheduler()
	var r recorder
	h, err := s.Start("p", r.options(1, 1))
	require.NoError(t, err)
	require.NoError(t, s.Tick(0.5))

	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())
	require.NoError(t, s.Tick(2))
	assert.Empty(t, r.events)
}

func TestKeysUseReferenceIdentity(t *testing.T) {
	type target struct{ name string }
	a := &target{name: "same"}
	b := &target{name: "same"}

	s := NewScheduler()
	_, err := s.Start(a, Options{Duration: 1})
	require.NoError(t, err)
	_, err = s.Start(b, Options{Duration: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsActive(a))
	assert.True(t, s.IsActive(b))
}

func TestDifferentKeysAreIndependent(t *testing.T) {
	s := NewScheduler()
	var a, b recorder
	_, err := s.Start("a", a.options(0.5, 0))
	require.NoError(t, err)
	_, err = s.Start("b", b.options(1, 0))
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 1, a.completes)
	assert.Zero(t, b.completes)
	assert.True(t, s.IsActive("b"))

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 1, b.completes)
}

func TestInvalidKey(t *testing.T) {
	s := NewScheduler()
	var nilPtr *int
	type box struct{ V any }

	for name, key := range map[string]any{
		"nil":             nil,
		"typed nil":       nilPtr,
		"slice":           []int{1},
		"map":             map[string]int{},
		"struct of slice": box{V: []int{1}},
		"array of func":   [1]any{func() {}},
	} {
		t.Run(name, func(t *testing.T) {
			h, err := s.Start(key, Options{Duration: 1})
			assert.Nil(t, h)
			assert.ErrorIs(t, err, ErrInvalidKey)
			assert.False(t, s.Cancel(key))
			assert.False(t, s.IsActive(key))
		})
	}
	assert.Zero(t, s.Len())
}

func TestComparableBoxedKey(t *testing.T) {
	type box struct{ V any }
	s := NewScheduler()

	_, err := s.Start(box{V: 7}, Options{Duration: 1})
	require.NoError(t, err)
	assert.True(t, s.IsActive(box{V: 7}))
	assert.False(t, s.IsActive(box{V: 8}))
}

func TestInvalidDuration(t *testing.T) {
	s := NewScheduler()
	_, err := s.Start("k", Options{Duration: -1})
	assert.ErrorIs(t, err, ErrInvalidDuration)
	_, err = s.Start("k", Options{Duration: 1, Delay: -0.1})
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.False(t, s.IsActive("k"))
}

func TestInvalidDelta(t *testing.T) {
	s := NewScheduler()
	var r recorder
	_, err := s.Start("k", r.options(1, 0))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Tick(-0.1), ErrInvalidDelta)
	assert.Empty(t, r.events)
}

func TestCompleteCanChainSameKey(t *testing.T) {
	s := NewScheduler()
	var second recorder
	var chained *Handle

	_, err := s.Start("chain", Options{
		Duration: 0.5,
		OnComplete: func() {
			assert.False(t, s.IsActive("chain"))
			h, err := s.Start("chain", second.options(0.5, 0))
			require.NoError(t, err)
			chained = h
		},
	})
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.5))
	require.NotNil(t, chained)
	assert.True(t, s.IsActive("chain"))
	assert.Empty(t, second.events, "chained tween starts on the next tick")

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 1, second.completes)
	assert.False(t, s.IsActive("chain"))
}

func TestCancelFromOwnUpdateStopsTimeline(t *testing.T) {
	s := NewScheduler()
	completed := false
	updates := 0
	_, err := s.Start("self", Options{
		Duration: 1,
		OnUpdate: func(float64) {
			updates++
			s.Cancel("self")
		},
		OnComplete: func() { completed = true },
	})
	require.NoError(t, err)

	require.NoError(t, s.Tick(2))
	require.NoError(t, s.Tick(2))
	assert.Equal(t, 1, updates)
	assert.False(t, completed)
}

func TestCallbackPanicIsIsolated(t *testing.T) {
	s := NewScheduler()
	var healthy recorder

	bad, err := s.Start("bad", Options{
		Duration: 1,
		OnUpdate: func(float64) { panic("boom") },
	})
	require.NoError(t, err)
	_, err = s.Start("good", healthy.options(1, 0))
	require.NoError(t, err)

	err = s.Tick(0.5)
	require.Error(t, err)
	var cerr *CallbackError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "bad", cerr.Key)
	assert.Equal(t, PhaseUpdate, cerr.Phase)
	assert.Equal(t, Canceled, bad.State())
	assert.Same(t, cerr, bad.Err())

	assert.False(t, s.IsActive("bad"), "failed tween frees its slot")
	assert.True(t, s.IsActive("good"))
	assert.Len(t, healthy.updates, 1)

	_, err = s.Start("bad", Options{Duration: 1})
	assert.NoError(t, err)
}

func TestEasingPanicIsIsolated(t *testing.T) {
	s := NewScheduler()
	var healthy recorder

	bad, err := s.Start("bad", Options{
		Duration: 1,
		Easing:   func(float64) float64 { panic("ease boom") },
		OnUpdate: func(float64) {},
	})
	require.NoError(t, err)
	_, err = s.Start("good", healthy.options(1, 0))
	require.NoError(t, err)

	var tickErr error
	require.NotPanics(t, func() { tickErr = s.Tick(0.5) })
	var cerr *CallbackError
	require.ErrorAs(t, tickErr, &cerr)
	assert.Equal(t, "bad", cerr.Key)
	assert.Equal(t, PhaseUpdate, cerr.Phase)
	assert.Equal(t, Canceled, bad.State())
	assert.False(t, s.IsActive("bad"))

	// The scheduler keeps ticking the remaining tween to completion.
	require.NoError(t, s.Tick(0.6))
	assert.Equal(t, 1, healthy.completes)
	_, err = s.Start("bad", Options{Duration: 1})
	assert.NoError(t, err)
}

func TestCallbackErrorUnwrapsErrorPanics(t *testing.T) {
	sentinel := errors.New("writer failed")
	s := NewScheduler()
	_, err := s.Start("k", Options{OnPlay: func() { panic(sentinel) }})
	require.NoError(t, err)

	err = s.Tick(0.1)
	assert.ErrorIs(t, err, sentinel)
}

func TestPanicInCompleteKeepsCompletedState(t *testing.T) {
	s := NewScheduler()
	h, err := s.Start("k", Options{OnComplete: func() { panic("late") }})
	require.NoError(t, err)

	err = s.Tick(0)
	var cerr *CallbackError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, PhaseComplete, cerr.Phase)
	assert.Equal(t, Completed, h.State())
	assert.False(t, s.IsActive("k"))
}

func TestCloseCancelsSilently(t *testing.T) {
	s := NewScheduler()
	var a, b recorder
	ha, err := s.Start("a", a.options(1, 0))
	require.NoError(t, err)
	hb, err := s.Start("b", b.options(1, 1))
	require.NoError(t, err)
	require.NoError(t, s.Tick(0.5))

	s.Close()
	assert.Equal(t, Canceled, ha.State())
	assert.Equal(t, Canceled, hb.State())
	assert.Zero(t, s.Len())

	require.NoError(t, s.Tick(5))
	assert.Zero(t, a.completes)
	assert.Zero(t, b.plays)

	_, err = s.Start("c", Options{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTickFromCallbackIsRejected(t *testing.T) {
	s := NewScheduler()
	var inner error
	_, err := s.Start("k", Options{OnPlay: func() { inner = s.Tick(1) }})
	require.NoError(t, err)

	require.NoError(t, s.Tick(0))
	assert.ErrorIs(t, inner, ErrReentrantTick)
}

func TestHandleProgress(t *testing.T) {
	s := NewScheduler()
	h, err := s.Start("k", Options{Duration: 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Progress())

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 0.25, h.Progress())
	assert.True(t, h.Active())

	require.NoError(t, s.Tick(2))
	assert.Equal(t, 1.0, h.Progress())
	assert.False(t, h.Active())
}

func TestOrderDoesNotGrowWithRestarts(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 1000; i++ {
		_, err := s.Start("hot", Options{Duration: 1})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, s.Len())
	assert.LessOrEqual(t, len(s.order), 2*s.Len()+17)

	require.NoError(t, s.Tick(0.1))
	assert.Len(t, s.order, 1)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "canceled", Canceled.String())
	assert.True(t, Completed.Terminal())
	assert.False(t, Playing.Terminal())
	assert.Equal(t, "complete", PhaseComplete.String())
}
