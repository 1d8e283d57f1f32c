package domain

// StepRecord captures what a single step produced during a run.
type StepRecord struct {
	Step       Step     `json:"step"`
	Source     string   `json:"source"`
	Overridden bool     `json:"overridden,omitempty"`
	Lines      []string `json:"lines,omitempty"`
}

// Trace is the ordered outcome of one run. It always holds StepCount records.
type Trace struct {
	Variant string       `json:"variant"`
	Steps   []StepRecord `json:"steps"`
}

// Lines flattens the trace into the text lines in emission order.
func (t Trace) Lines() []string {
	var out []string
	for _, r := range t.Steps {
		out = append(out, r.Lines...)
	}
	return out
}

// Line is a single piece of text emitted by a step, as delivered to an output sink.
type Line struct {
	Variant string   `json:"variant"`
	Step    StepID   `json:"step"`
	Kind    StepKind `json:"kind"`
	Source  string   `json:"source"`
	Text    string   `json:"text"`
}
