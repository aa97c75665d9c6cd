package tween

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned for nil, typed-nil or non-comparable keys.
	ErrInvalidKey = errors.New("tween: invalid key")
	// ErrInvalidDuration is returned when duration or delay is negative or NaN.
	ErrInvalidDuration = errors.New("tween: invalid duration or delay")
	// ErrInvalidDelta is returned by Tick for negative or NaN deltas.
	ErrInvalidDelta = errors.New("tween: invalid tick delta")
	// ErrReentrantTick is returned when Tick is called from inside a callback.
	ErrReentrantTick = errors.New("tween: tick called from a callback")
	// ErrClosed is returned after the scheduler (or its loop) has been shut down.
	ErrClosed = errors.New("tween: scheduler closed")
)

// Phase identifies which callback of a handle was running.
type Phase int

const (
	PhasePlay Phase = iota
	PhaseUpdate
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePlay:
		return "play"
	case PhaseUpdate:
		return "update"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// CallbackError reports a callback that panicked during Tick.
type CallbackError struct {
	Key   any
	Phase Phase
	Value any
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("tween: %s callback for key %v panicked: %v", e.Phase, e.Key, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *CallbackError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
