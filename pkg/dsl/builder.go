package dsl

import (
	"fmt"

	"github.com/aretw0/stencil/pkg/domain"
)

// StepFunc is the behavior of a single extension step.
type StepFunc func(out domain.Emitter)

// Builder collects the functions of a variant.
type Builder struct {
	v Variant
}

// New starts a variant with the given name.
func New(name string) *Builder {
	return &Builder{v: Variant{name: name}}
}

// Required1 sets the first required operation.
func (b *Builder) Required1(fn StepFunc) *Builder {
	b.v.required1 = fn
	return b
}

// Required2 sets the second required operation.
func (b *Builder) Required2(fn StepFunc) *Builder {
	b.v.required2 = fn
	return b
}

// Hook1 overrides the first hook.
func (b *Builder) Hook1(fn StepFunc) *Builder {
	b.v.hook1 = fn
	return b
}

// Hook2 overrides the second hook.
func (b *Builder) Hook2(fn StepFunc) *Builder {
	b.v.hook2 = fn
	return b
}

// Build validates the variant. Both required operations must be set.
func (b *Builder) Build() (*Variant, error) {
	if b.v.required1 == nil {
		return nil, fmt.Errorf("variant %q: %w: %s", b.v.name, domain.ErrMissingRequired, domain.StepRequiredOperation1)
	}
	if b.v.required2 == nil {
		return nil, fmt.Errorf("variant %q: %w: %s", b.v.name, domain.ErrMissingRequired, domain.StepRequiredOperation2)
	}
	v := b.v
	return &v, nil
}

// MustBuild is like Build but panics on error. Intended for package-level variables and tests.
func (b *Builder) MustBuild() *Variant {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
