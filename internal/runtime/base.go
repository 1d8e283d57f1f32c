package runtime

import "github.com/aretw0/stencil/pkg/domain"

var baseTexts = map[domain.StepID]string{
	domain.StepBaseOperation1: "I am doing the bulk of the work",
	domain.StepBaseOperation2: "But I let subclasses override some operations",
	domain.StepBaseOperation3: "But I am doing the bulk of the work anyway",
}

func baseText(id domain.StepID) string {
	return domain.BaseSource + " says: " + baseTexts[id]
}

// BaseText returns the fixed line a base step emits, or "" for other steps.
func BaseText(id domain.StepID) string {
	if _, ok := baseTexts[id]; !ok {
		return ""
	}
	return baseText(id)
}
