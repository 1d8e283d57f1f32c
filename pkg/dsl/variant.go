package dsl

import "github.com/aretw0/stencil/pkg/domain"

// Variant is a domain.Variant backed by functions.
// Use Builder to obtain one; a zero Variant runs but emits nothing for its required steps.
type Variant struct {
	name      string
	required1 StepFunc
	required2 StepFunc
	hook1     StepFunc
	hook2     StepFunc
}

var (
	_ domain.Variant      = (*Variant)(nil)
	_ domain.Hook1er      = (*Variant)(nil)
	_ domain.Hook2er      = (*Variant)(nil)
	_ domain.HookReporter = (*Variant)(nil)
)

func (v *Variant) Name() string {
	if v == nil {
		return ""
	}
	return v.name
}

func (v *Variant) RequiredOperation1(out domain.Emitter) {
	if v != nil {
		run(v.required1, out)
	}
}

func (v *Variant) RequiredOperation2(out domain.Emitter) {
	if v != nil {
		run(v.required2, out)
	}
}

func (v *Variant) Hook1(out domain.Emitter) {
	if v != nil {
		run(v.hook1, out)
	}
}

func (v *Variant) Hook2(out domain.Emitter) {
	if v != nil {
		run(v.hook2, out)
	}
}

func run(fn StepFunc, out domain.Emitter) {
	if fn != nil {
		fn(out)
	}
}

// Overrides reports which hooks were actually supplied.
func (v *Variant) Overrides(id domain.StepID) bool {
	if v == nil {
		return false
	}
	switch id {
	case domain.StepHook1:
		return v.hook1 != nil
	case domain.StepHook2:
		return v.hook2 != nil
	}
	return false
}
