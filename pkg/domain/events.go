package domain

import (
	"context"
	"time"

	"github.com/aretw0/clifford/pkg/circuit"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart    EventType = "run_start"
	EventRound       EventType = "round"
	EventRunComplete EventType = "run_complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// RunEvent marks the start or end of a run.
type RunEvent struct {
	EventBase
	Kind     RunKind       `json:"kind"`
	Qubits   int           `json:"qubits"`
	Gates    int           `json:"gates,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// RoundEvent reports one completed sweep round.
type RoundEvent struct {
	EventBase
	Qubit      int             `json:"qubit"`
	Rejections int             `json:"rejections"`
	Gates      circuit.Circuit `json:"gates"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnRunStart    func(context.Context, *RunEvent)
	OnRound       func(context.Context, *RoundEvent)
	OnRunComplete func(context.Context, *RunEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRunStart:    chain(h.OnRunStart, other.OnRunStart),
		OnRound:       chain(h.OnRound, other.OnRound),
		OnRunComplete: chain(h.OnRunComplete, other.OnRunComplete),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
