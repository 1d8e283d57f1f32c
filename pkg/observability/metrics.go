package observability

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/stencil/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "stencil"

// Metrics holds the Prometheus collectors for skeleton runs.
type Metrics struct {
	Runs  *prometheus.CounterVec
	Steps *prometheus.CounterVec
	Lines *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m, err := NewMetricsWith(reg, reg)
	if err != nil {
		// A fresh registry cannot have conflicting collectors.
		panic(err)
	}
	return m
}

// NewMetricsWith registers the collectors on reg; g is used by WriteText.
func NewMetricsWith(reg prometheus.Registerer, g prometheus.Gatherer) (*Metrics, error) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of completed skeleton runs.",
		}, []string{"variant"}),
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Number of executed skeleton steps.",
		}, []string{"step", "kind", "variant", "overridden"}),
		Lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_total",
			Help:      "Number of text lines emitted by steps.",
		}, []string{"step", "variant"}),
		gatherer: g,
	}
	for _, c := range []prometheus.Collector{m.Runs, m.Steps, m.Lines} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunEnd: func(_ context.Context, e *domain.RunEvent) {
			m.Runs.WithLabelValues(e.Variant).Inc()
		},
		OnStepLeave: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(
				string(e.Step.ID),
				string(e.Step.Kind),
				e.Variant,
				strconv.FormatBool(e.Overridden),
			).Inc()
			if e.Lines > 0 {
				m.Lines.WithLabelValues(string(e.Step.ID), e.Variant).Add(float64(e.Lines))
			}
		},
	}
}

// WriteText dumps all gathered metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
