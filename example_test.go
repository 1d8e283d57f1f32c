package stencil_test

import (
	"context"
	"log"
	"os"

	"github.com/aretw0/stencil"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/dsl"
	"github.com/aretw0/stencil/pkg/variants"
)

// ExampleClientCode shows the same client code driving two different variants.
func ExampleClientCode() {
	tmpl := stencil.New(stencil.WithOutput(stencil.NewWriterSink(os.Stdout)))
	ctx := context.Background()

	for _, v := range []domain.Variant{variants.ConcreteClass1{}, variants.ConcreteClass2{}} {
		if err := stencil.ClientCode(ctx, tmpl, v); err != nil {
			log.Fatal(err)
		}
	}

	// Output:
	// AbstractClass says: I am doing the bulk of the work
	// ConcreteClass1 says: Implemented Operation1
	// AbstractClass says: But I let subclasses override some operations
	// ConcreteClass1 says: Implemented Operation2
	// AbstractClass says: But I am doing the bulk of the work anyway
	// AbstractClass says: I am doing the bulk of the work
	// ConcreteClass2 says: Implemented Operation1
	// AbstractClass says: But I let subclasses override some operations
	// ConcreteClass2 says: Overridden Hook1
	// ConcreteClass2 says: Implemented Operation2
	// AbstractClass says: But I am doing the bulk of the work anyway
}

// ExampleTemplate_Run_dsl demonstrates a variant assembled from functions that only overrides the last hook.
func ExampleTemplate_Run_dsl() {
	v, err := dsl.New("Inline").
		Required1(func(out domain.Emitter) { out.Emit("Inline says: first") }).
		Required2(func(out domain.Emitter) { out.Emit("Inline says: second") }).
		Hook2(func(out domain.Emitter) { out.Emit("Inline says: closing hook") }).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := stencil.New().Run(context.Background(), v); err != nil {
		log.Fatal(err)
	}

	// Output:
	// AbstractClass says: I am doing the bulk of the work
	// Inline says: first
	// AbstractClass says: But I let subclasses override some operations
	// Inline says: second
	// AbstractClass says: But I am doing the bulk of the work anyway
	// Inline says: closing hook
}
