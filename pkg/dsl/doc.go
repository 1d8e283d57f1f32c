/*
Package dsl builds variants from plain functions instead of named types.

It is useful for tests and for variants assembled at run time. The builder
refuses to produce a variant unless both required operations are set, and
hooks are only reported as overridden when a function was supplied.

Example usage:

	v, err := dsl.New("Inline").
		Required1(func(out domain.Emitter) { out.Emit("Inline says: one") }).
		Required2(func(out domain.Emitter) { out.Emit("Inline says: two") }).
		Hook2(func(out domain.Emitter) { out.Emit("Inline says: late hook") }).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	if err := stencil.ClientCode(context.Background(), stencil.New(), v); err != nil {
		log.Fatal(err)
	}
*/
package dsl
