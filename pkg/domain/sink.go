package domain

import "context"

// Sink receives every line a run emits, in order.
type Sink interface {
	WriteLine(ctx context.Context, line Line) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, line Line) error

// WriteLine calls f(ctx, line).
func (f SinkFunc) WriteLine(ctx context.Context, line Line) error { return f(ctx, line) }
