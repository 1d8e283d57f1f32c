package variants

import "github.com/aretw0/stencil/pkg/domain"

// ConcreteClass1 implements the required operations and keeps both hooks as no-op.
type ConcreteClass1 struct{}

// Name implements domain.Variant.
func (ConcreteClass1) Name() string { return "ConcreteClass1" }

// RequiredOperation1 implements domain.Variant.
func (c ConcreteClass1) RequiredOperation1(out domain.Emitter) {
	out.Emit(c.Name() + " says: Implemented Operation1")
}

// RequiredOperation2 implements domain.Variant.
func (c ConcreteClass1) RequiredOperation2(out domain.Emitter) {
	out.Emit(c.Name() + " says: Implemented Operation2")
}

// ConcreteClass2 implements the required operations and overrides Hook1.
type ConcreteClass2 struct{}

// Name implements domain.Variant.
func (ConcreteClass2) Name() string { return "ConcreteClass2" }

// RequiredOperation1 implements domain.Variant.
func (c ConcreteClass2) RequiredOperation1(out domain.Emitter) {
	out.Emit(c.Name() + " says: Implemented Operation1")
}

// RequiredOperation2 implements domain.Variant.
func (c ConcreteClass2) RequiredOperation2(out domain.Emitter) {
	out.Emit(c.Name() + " says: Implemented Operation2")
}

// Hook1 implements domain.Hook1er.
func (c ConcreteClass2) Hook1(out domain.Emitter) {
	out.Emit(c.Name() + " says: Overridden Hook1")
}

var (
	_ domain.Variant = ConcreteClass1{}
	_ domain.Variant = ConcreteClass2{}
	_ domain.Hook1er = ConcreteClass2{}
)
