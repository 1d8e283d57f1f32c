package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/stencil/internal/runtime"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/observability"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEveryStep(t *testing.T) {
	m := observability.NewMetrics()
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(m.Hooks()))

	for _, v := range []domain.Variant{variants.ConcreteClass1{}, variants.ConcreteClass2{}} {
		_, err := engine.Run(context.Background(), v, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("ConcreteClass1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("ConcreteClass2")))
	assert.Equal(t, 2*domain.StepCount, testutil.CollectAndCount(m.Steps), "one series per step and variant")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Steps.WithLabelValues("hook_1", "hook", "ConcreteClass2", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Steps.WithLabelValues("hook_1", "hook", "ConcreteClass1", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lines.WithLabelValues("hook_1", "ConcreteClass2")))
	// 5 lines for ConcreteClass1, 6 for ConcreteClass2; silent hooks add no series.
	assert.Equal(t, 11, testutil.CollectAndCount(m.Lines, "stencil_lines_total"))
}

func TestNewMetricsWith_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetricsWith(reg, reg)
	require.NoError(t, err)

	_, err = observability.NewMetricsWith(reg, reg)
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	rec := observability.NewRecorder()
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(rec.Hooks()))

	_, err := engine.Run(context.Background(), variants.ConcreteClass1{}, nil)
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 2+2*domain.StepCount)
	_, isRun := events[0].(domain.RunEvent)
	assert.True(t, isRun)

	var want []domain.StepID
	for _, s := range domain.Skeleton() {
		want = append(want, s.ID)
	}
	assert.Equal(t, want, rec.StepsEntered())
}
