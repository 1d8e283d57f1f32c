package observability

import (
	"context"
	"sync"

	"github.com/aretw0/stencil/pkg/domain"
)

// Recorder keeps every lifecycle event in memory, in the order received.
type Recorder struct {
	mu     sync.Mutex
	events []any
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Hooks returns lifecycle hooks that append to the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	run := func(_ context.Context, e *domain.RunEvent) { r.add(*e) }
	step := func(_ context.Context, e *domain.StepEvent) { r.add(*e) }
	return domain.LifecycleHooks{
		OnRunStart:  run,
		OnRunEnd:    run,
		OnStepEnter: step,
		OnStepLeave: step,
	}
}

func (r *Recorder) add(e any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events (RunEvent or StepEvent values).
func (r *Recorder) Events() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.events))
	copy(out, r.events)
	return out
}

// StepsEntered returns the IDs of every step entered, in order.
func (r *Recorder) StepsEntered() []domain.StepID {
	var ids []domain.StepID
	for _, e := range r.Events() {
		if se, ok := e.(domain.StepEvent); ok && se.Type == domain.EventStepEnter {
			ids = append(ids, se.Step.ID)
		}
	}
	return ids
}
