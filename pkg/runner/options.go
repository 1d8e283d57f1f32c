package runner

import (
	"log/slog"

	"github.com/aretw0/stencil"
	"github.com/aretw0/stencil/pkg/domain"
)

// DefaultAnnouncement is printed before each variant runs.
const DefaultAnnouncement = "Same client code can work with different subclasses:"

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHandler configures the output handler.
func WithHandler(handler Handler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLifecycleHooks attaches observability hooks to the underlying template.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.templateOpts = append(r.templateOpts, stencil.WithLifecycleHooks(hooks))
	}
}

// WithAnnouncement overrides the header printed before each variant.
// An empty string disables the header.
func WithAnnouncement(text string) Option {
	return func(r *Runner) {
		r.Announcement = text
	}
}
