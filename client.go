package stencil

import (
	"context"

	"github.com/aretw0/stencil/pkg/domain"
)

// ClientCode triggers the skeleton on any variant.
// It has no knowledge of the concrete type it receives.
func ClientCode(ctx context.Context, t *Template, v domain.Variant) error {
	_, err := t.Run(ctx, v)
	return err
}
