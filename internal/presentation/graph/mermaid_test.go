package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/stencil/internal/presentation/graph"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(domain.Skeleton(), nil)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `base_operation_1["BaseOperation1"]`)
	assert.Contains(t, out, `required_operation_1[["RequiredOperation1"]]`)
	assert.Contains(t, out, `hook_1{{"Hook1"}}`)
	assert.Contains(t, out, "base_operation_3 --> hook_2")
	assert.Equal(t, domain.StepCount-1, strings.Count(out, " --> "))
	assert.Contains(t, out, "class hook_1 noop;")
	assert.Contains(t, out, "class hook_2 noop;")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	overlay := graph.OverlayFor(variants.ConcreteClass2{})
	assert.True(t, overlay.Overridden[domain.StepHook1])
	assert.False(t, overlay.Overridden[domain.StepHook2])

	out := graph.GenerateMermaid(domain.Skeleton(), overlay)
	assert.Contains(t, out, "class hook_1 overridden;")
	assert.Contains(t, out, "class hook_2 noop;")
	assert.Contains(t, out, `hook_1{{"Hook1 <br/> ConcreteClass2"}}`)
	assert.Contains(t, out, `base_operation_2["BaseOperation2"]`)
}
