package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/stencil/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnStepEnter: func(context.Context, *domain.StepEvent) { calls = append(calls, "a-enter") },
	}
	b := domain.LifecycleHooks{
		OnStepEnter: func(context.Context, *domain.StepEvent) { calls = append(calls, "b-enter") },
		OnRunEnd:    func(context.Context, *domain.RunEvent) { calls = append(calls, "b-end") },
	}

	merged := a.Merge(b)
	assert.Nil(t, merged.OnRunStart)
	assert.Nil(t, merged.OnStepLeave)

	merged.OnStepEnter(context.Background(), &domain.StepEvent{})
	merged.OnRunEnd(context.Background(), &domain.RunEvent{})
	assert.Equal(t, []string{"a-enter", "b-enter", "b-end"}, calls)
}
