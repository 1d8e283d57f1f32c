/*
Package stencil is a small engine for the Template Method pattern: a fixed
algorithm skeleton whose steps are partly owned by the skeleton and partly
deferred to interchangeable variants.

# Concept

The skeleton runs seven steps in a fixed order:

 1. BaseOperation1 (skeleton)
 2. RequiredOperation1 (variant, mandatory)
 3. BaseOperation2 (skeleton)
 4. Hook1 (variant, optional, no-op by default)
 5. RequiredOperation2 (variant, mandatory)
 6. BaseOperation3 (skeleton)
 7. Hook2 (variant, optional, no-op by default)

A variant is any value satisfying domain.Variant. Hooks are optional
interfaces (domain.Hook1er, domain.Hook2er); a variant that does not
implement them simply produces no output at those positions.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/stencil"
		"github.com/aretw0/stencil/pkg/variants"
	)

	func main() {
		tmpl := stencil.New()
		if err := stencil.ClientCode(context.Background(), tmpl, variants.ConcreteClass2{}); err != nil {
			log.Fatal(err)
		}
	}
*/
package stencil
