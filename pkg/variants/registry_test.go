package variants_test

import (
	"errors"
	"testing"

	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := variants.Default()
	assert.Equal(t, []string{"ConcreteClass1", "ConcreteClass2"}, reg.Names())

	for _, name := range []string{"ConcreteClass1", "concreteclass1", "A", "a"} {
		v, err := reg.New(name)
		require.NoError(t, err, name)
		assert.Equal(t, "ConcreteClass1", v.Name())
	}

	v, err := reg.New(" b ")
	require.NoError(t, err)
	assert.Equal(t, "ConcreteClass2", v.Name())
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := variants.Default().New("ConcreteClass3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownVariant))

	_, err = variants.Default().Resolve("A", "nope")
	assert.True(t, errors.Is(err, domain.ErrUnknownVariant))
}

func TestRegistry_Resolve(t *testing.T) {
	vs, err := variants.Default().Resolve("B", "A", "B")
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.Equal(t, "ConcreteClass2", vs[0].Name())
	assert.Equal(t, "ConcreteClass1", vs[1].Name())
	assert.Equal(t, "ConcreteClass2", vs[2].Name())
}

func TestConcreteHooks(t *testing.T) {
	assert.False(t, domain.Overrides(variants.ConcreteClass1{}, domain.StepHook1))
	assert.False(t, domain.Overrides(variants.ConcreteClass1{}, domain.StepHook2))
	assert.True(t, domain.Overrides(variants.ConcreteClass2{}, domain.StepHook1))
	assert.False(t, domain.Overrides(variants.ConcreteClass2{}, domain.StepHook2))
}
