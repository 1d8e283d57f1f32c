package runner

import (
	"context"

	"github.com/aretw0/stencil/pkg/domain"
)

// Handler receives everything the Runner produces.
// Step lines arrive through WriteLine; Announce and Separate frame each variant.
type Handler interface {
	domain.Sink
	Announce(ctx context.Context, text string) error
	Separate(ctx context.Context) error
}
