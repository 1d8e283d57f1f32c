package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventRunEnd    EventType = "run_end"
	EventStepEnter EventType = "step_enter"
	EventStepLeave EventType = "step_leave"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Variant   string    `json:"variant"`
}

// RunEvent marks the boundaries of one skeleton run.
type RunEvent struct {
	EventBase
	Steps int `json:"steps,omitempty"`
}

// StepEvent represents entry into or exit from a step.
// Overridden is only meaningful for hook steps.
type StepEvent struct {
	EventBase
	Step       Step `json:"step"`
	Overridden bool `json:"overridden,omitempty"`
	Lines      int  `json:"lines,omitempty"`
}

// LifecycleHooks defines callbacks for skeleton observability.
type LifecycleHooks struct {
	OnRunStart  func(context.Context, *RunEvent)
	OnRunEnd    func(context.Context, *RunEvent)
	OnStepEnter func(context.Context, *StepEvent)
	OnStepLeave func(context.Context, *StepEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRunStart:  chainRun(h.OnRunStart, other.OnRunStart),
		OnRunEnd:    chainRun(h.OnRunEnd, other.OnRunEnd),
		OnStepEnter: chainStep(h.OnStepEnter, other.OnStepEnter),
		OnStepLeave: chainStep(h.OnStepLeave, other.OnStepLeave),
	}
}

func chainRun(a, b func(context.Context, *RunEvent)) func(context.Context, *RunEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *RunEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainStep(a, b func(context.Context, *StepEvent)) func(context.Context, *StepEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *StepEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
