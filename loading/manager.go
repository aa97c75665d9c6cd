package loading

import (
	"context"
	"errors"

	"github.com/automoto/uitween/logx"
)

var ErrNoTarget = errors.New("loading: no target requested")

// Manager remembers which target the next load is for and builds its tracker.
type Manager struct {
	threshold float64
	log       logx.Logger

	next    string
	op      *AsyncOperation
	tracker *Tracker
}

func NewManager(threshold float64, log logx.Logger) *Manager {
	return &Manager{threshold: threshold, log: log.With(logx.String("component", "loading"))}
}

// Request records target as the destination of the next Begin.
func (m *Manager) Request(target string) {
	m.next = target
	m.log.Debug("load requested", logx.String("target", target))
}

// Next is the requested target, or "" when none is pending.
func (m *Manager) Next() string { return m.next }

// Begin starts loading the requested target with steps and returns its tracker.
func (m *Manager) Begin(ctx context.Context, steps ...Step) (*Tracker, error) {
	if m.next == "" {
		return nil, ErrNoTarget
	}
	op, err := Start(ctx, steps, WithThreshold(m.threshold), WithLogger(m.log.With(logx.String("target", m.next))))
	if err != nil {
		return nil, err
	}
	m.op = op
	m.tracker = NewTracker(op, m.threshold)
	m.log.Info("loading", logx.String("target", m.next), logx.Int("steps", len(steps)))
	return m.tracker, nil
}

// Operation is the running load, nil before Begin.
func (m *Manager) Operation() *AsyncOperation { return m.op }

func (m *Manager) Tracker() *Tracker { return m.tracker }

// Finish clears the pending target once the tracker is ready and returns it.
func (m *Manager) Finish() (string, bool) {
	if m.tracker == nil || !m.tracker.Ready() {
		return "", false
	}
	target := m.next
	m.next = ""
	m.op = nil
	m.tracker = nil
	return target, true
}
