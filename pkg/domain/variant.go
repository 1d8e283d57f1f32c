package domain

// Emitter receives the text produced by a step.
type Emitter interface {
	Emit(text string)
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(text string)

// Emit calls f(text).
func (f EmitterFunc) Emit(text string) { f(text) }

// Variant is the capability set every concrete variant must satisfy.
// Omitting either required operation means the type is not a Variant,
// so the contract is checked by the compiler.
type Variant interface {
	// Name identifies the variant in output and metrics.
	Name() string
	RequiredOperation1(out Emitter)
	RequiredOperation2(out Emitter)
}

// Hook1er is implemented by variants that override the first hook.
type Hook1er interface {
	Hook1(out Emitter)
}

// Hook2er is implemented by variants that override the second hook.
type Hook2er interface {
	Hook2(out Emitter)
}

// HookReporter lets a variant that always exposes hook methods
// (for example one assembled from functions) report which of them are real.
type HookReporter interface {
	Overrides(id StepID) bool
}

// Overrides reports whether v supplies its own behavior for the hook step id.
// It returns false for non-hook steps.
func Overrides(v Variant, id StepID) bool {
	var ok bool
	switch id {
	case StepHook1:
		_, ok = v.(Hook1er)
	case StepHook2:
		_, ok = v.(Hook2er)
	default:
		return false
	}
	if !ok {
		return false
	}
	if r, isReporter := v.(HookReporter); isReporter {
		return r.Overrides(id)
	}
	return true
}
