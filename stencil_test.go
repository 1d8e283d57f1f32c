package stencil_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/stencil"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/observability"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Run(t *testing.T) {
	var buf bytes.Buffer
	rec := observability.NewRecorder()
	tmpl := stencil.New(
		stencil.WithOutput(stencil.NewWriterSink(&buf)),
		stencil.WithLifecycleHooks(rec.Hooks()),
	)

	trace, err := tmpl.Run(context.Background(), variants.ConcreteClass1{})
	require.NoError(t, err)

	assert.Len(t, trace.Steps, domain.StepCount)
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Len(t, rec.StepsEntered(), domain.StepCount)
	assert.Equal(t, domain.Skeleton(), tmpl.Steps())
}

func TestTemplate_HooksChain(t *testing.T) {
	first := observability.NewRecorder()
	second := observability.NewRecorder()
	tmpl := stencil.New(
		stencil.WithOutput(stencil.NewWriterSink(&bytes.Buffer{})),
		stencil.WithLifecycleHooks(first.Hooks()),
		stencil.WithLifecycleHooks(second.Hooks()),
	)

	require.NoError(t, stencil.ClientCode(context.Background(), tmpl, variants.ConcreteClass2{}))
	assert.Equal(t, first.StepsEntered(), second.StepsEntered())
	assert.Len(t, first.Events(), 2+2*domain.StepCount)
}

func TestBaseText(t *testing.T) {
	assert.Equal(t, "AbstractClass says: I am doing the bulk of the work anyway", stencil.BaseText(domain.StepBaseOperation3))
	assert.Empty(t, stencil.BaseText(domain.StepRequiredOperation1))
}
