package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/stencil"
	"github.com/aretw0/stencil/internal/logging"
	"github.com/aretw0/stencil/pkg/domain"
)

// Runner invokes the skeleton for a sequence of variants through the same client code.
type Runner struct {
	Handler      Handler
	Logger       *slog.Logger
	Announcement string

	templateOpts []stencil.Option
	template     *stencil.Template
}

// NewRunner creates a runner. Without WithHandler it writes plain text to stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Announcement: DefaultAnnouncement,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}

	tOpts := append([]stencil.Option{
		stencil.WithOutput(r.Handler),
		stencil.WithLogger(r.Logger),
	}, r.templateOpts...)
	r.template = stencil.New(tOpts...)
	return r
}

// Run executes every variant in order and returns their traces.
// The context is checked between variants; a run that has started always completes.
func (r *Runner) Run(ctx context.Context, variants ...domain.Variant) ([]domain.Trace, error) {
	traces := make([]domain.Trace, 0, len(variants))
	for i, v := range variants {
		if err := ctx.Err(); err != nil {
			return traces, err
		}
		if i > 0 {
			if err := r.Handler.Separate(ctx); err != nil {
				return traces, fmt.Errorf("failed to write separator: %w", err)
			}
		}
		if r.Announcement != "" {
			if err := r.Handler.Announce(ctx, r.Announcement); err != nil {
				return traces, fmt.Errorf("failed to write announcement: %w", err)
			}
		}

		r.Logger.Debug("Running variant", "variant", v.Name(), "index", i)
		trace, err := r.template.Run(ctx, v)
		traces = append(traces, trace)
		if err != nil {
			return traces, fmt.Errorf("variant %s: %w", v.Name(), err)
		}
	}
	return traces, nil
}
