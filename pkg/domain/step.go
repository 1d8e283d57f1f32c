package domain

// StepID identifies a position in the skeleton.
type StepID string

const (
	StepBaseOperation1     StepID = "base_operation_1"
	StepRequiredOperation1 StepID = "required_operation_1"
	StepBaseOperation2     StepID = "base_operation_2"
	StepHook1              StepID = "hook_1"
	StepRequiredOperation2 StepID = "required_operation_2"
	StepBaseOperation3     StepID = "base_operation_3"
	StepHook2              StepID = "hook_2"
)

// StepKind tells who owns the behavior of a step.
type StepKind string

const (
	// KindBase steps have a fixed implementation in the skeleton.
	KindBase StepKind = "base"
	// KindRequired steps must be supplied by every variant.
	KindRequired StepKind = "required"
	// KindHook steps may be supplied by a variant and are no-op otherwise.
	KindHook StepKind = "hook"
)

// Step is one entry of the skeleton.
type Step struct {
	ID   StepID   `json:"id" yaml:"id"`
	Kind StepKind `json:"kind" yaml:"kind"`
	Name string   `json:"name" yaml:"name"`
}

// BaseSource is the identity reported for steps owned by the skeleton.
const BaseSource = "AbstractClass"

var skeleton = [...]Step{
	{ID: StepBaseOperation1, Kind: KindBase, Name: "BaseOperation1"},
	{ID: StepRequiredOperation1, Kind: KindRequired, Name: "RequiredOperation1"},
	{ID: StepBaseOperation2, Kind: KindBase, Name: "BaseOperation2"},
	{ID: StepHook1, Kind: KindHook, Name: "Hook1"},
	{ID: StepRequiredOperation2, Kind: KindRequired, Name: "RequiredOperation2"},
	{ID: StepBaseOperation3, Kind: KindBase, Name: "BaseOperation3"},
	{ID: StepHook2, Kind: KindHook, Name: "Hook2"},
}

// Skeleton returns the ordered steps of the algorithm.
// The returned slice is a fresh copy; mutating it does not affect the skeleton.
func Skeleton() []Step {
	out := make([]Step, len(skeleton))
	copy(out, skeleton[:])
	return out
}

// StepCount is the number of steps every run executes.
const StepCount = len(skeleton)

// Lookup returns the step with the given ID.
func Lookup(id StepID) (Step, bool) {
	for _, s := range skeleton {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}
