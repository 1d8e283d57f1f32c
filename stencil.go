package stencil

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/stencil/internal/runtime"
	"github.com/aretw0/stencil/pkg/domain"
)

// Version is the release of the stencil library and CLI.
const Version = "0.3.1"

// Template is the high-level entry point for running the skeleton.
// It is immutable after New and may be shared across goroutines as long as
// its output sink tolerates concurrent writes.
type Template struct {
	runtime *runtime.Engine
	output  domain.Sink
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
}

// Option defines a functional option for configuring the Template.
type Option func(*Template)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Template) {
		t.hooks = t.hooks.Merge(hooks)
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Template) {
		t.logger = logger
	}
}

// WithOutput sets where emitted lines are delivered. Defaults to plain text on stdout.
func WithOutput(sink domain.Sink) Option {
	return func(t *Template) {
		t.output = sink
	}
}

// New creates a Template.
func New(opts ...Option) *Template {
	t := &Template{
		output: NewWriterSink(os.Stdout),
	}
	for _, opt := range opts {
		opt(t)
	}

	rtOpts := []runtime.EngineOption{runtime.WithLifecycleHooks(t.hooks)}
	if t.logger != nil {
		rtOpts = append(rtOpts, runtime.WithLogger(t.logger))
	}
	t.runtime = runtime.NewEngine(rtOpts...)
	return t
}

// Run executes the skeleton once against v and returns what each step produced.
// The only possible error comes from the output sink.
func (t *Template) Run(ctx context.Context, v domain.Variant) (domain.Trace, error) {
	return t.runtime.Run(ctx, v, t.output)
}

// Steps returns the ordered skeleton definition.
func (t *Template) Steps() []domain.Step {
	return domain.Skeleton()
}

// BaseText returns the fixed text a base step prints, or "" for non-base steps.
func BaseText(id domain.StepID) string {
	return runtime.BaseText(id)
}
