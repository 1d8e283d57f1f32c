package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/stencil/internal/logging"
	"github.com/aretw0/stencil/pkg/domain"
)

// Engine executes the skeleton against a variant.
// It holds no per-run state and can be shared.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the timestamp source for events.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the seven steps in order, exactly once each.
// Every step runs even if the sink fails; the first sink error is returned
// alongside the complete trace.
func (e *Engine) Run(ctx context.Context, v domain.Variant, sink domain.Sink) (domain.Trace, error) {
	name := v.Name()
	trace := domain.Trace{
		Variant: name,
		Steps:   make([]domain.StepRecord, 0, domain.StepCount),
	}

	if e.hooks.OnRunStart != nil {
		e.hooks.OnRunStart(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventRunStart, Variant: name},
		})
	}

	var firstErr error
	for _, step := range domain.Skeleton() {
		rec := e.step(ctx, v, step)
		trace.Steps = append(trace.Steps, rec)

		for _, text := range rec.Lines {
			if sink == nil || firstErr != nil {
				break
			}
			err := sink.WriteLine(ctx, domain.Line{
				Variant: name,
				Step:    step.ID,
				Kind:    step.Kind,
				Source:  rec.Source,
				Text:    text,
			})
			if err != nil {
				firstErr = fmt.Errorf("failed to write output of step %s: %w", step.ID, err)
				e.logger.Error("Output sink failed", "step", step.ID, "variant", name, "error", err)
			}
		}
	}

	if e.hooks.OnRunEnd != nil {
		e.hooks.OnRunEnd(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventRunEnd, Variant: name},
			Steps:     len(trace.Steps),
		})
	}

	return trace, firstErr
}

func (e *Engine) step(ctx context.Context, v domain.Variant, step domain.Step) domain.StepRecord {
	rec := domain.StepRecord{Step: step, Source: v.Name()}
	if step.Kind == domain.KindBase {
		rec.Source = domain.BaseSource
	}
	if step.Kind == domain.KindHook {
		rec.Overridden = domain.Overrides(v, step.ID)
	}

	event := &domain.StepEvent{
		EventBase:  domain.EventBase{Timestamp: e.now(), Type: domain.EventStepEnter, Variant: v.Name()},
		Step:       step,
		Overridden: rec.Overridden,
	}
	if e.hooks.OnStepEnter != nil {
		e.hooks.OnStepEnter(ctx, event)
	}

	out := domain.EmitterFunc(func(text string) {
		rec.Lines = append(rec.Lines, text)
	})
	dispatch(v, step, rec.Overridden, out)

	e.logger.Debug("Step executed",
		"step", step.ID,
		"kind", step.Kind,
		"variant", v.Name(),
		"lines", len(rec.Lines),
	)

	if e.hooks.OnStepLeave != nil {
		leave := *event
		leave.Timestamp = e.now()
		leave.Type = domain.EventStepLeave
		leave.Lines = len(rec.Lines)
		e.hooks.OnStepLeave(ctx, &leave)
	}
	return rec
}

// dispatch routes a step to the skeleton's own behavior or to the variant.
// Hook steps only reach the variant when overridden is true.
func dispatch(v domain.Variant, step domain.Step, overridden bool, out domain.Emitter) {
	switch step.ID {
	case domain.StepBaseOperation1, domain.StepBaseOperation2, domain.StepBaseOperation3:
		out.Emit(baseText(step.ID))
	case domain.StepRequiredOperation1:
		v.RequiredOperation1(out)
	case domain.StepRequiredOperation2:
		v.RequiredOperation2(out)
	case domain.StepHook1:
		if h, ok := v.(domain.Hook1er); ok && overridden {
			h.Hook1(out)
		}
	case domain.StepHook2:
		if h, ok := v.(domain.Hook2er); ok && overridden {
			h.Hook2(out)
		}
	}
}
