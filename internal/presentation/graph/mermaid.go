package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/stencil/pkg/domain"
)

// Overlay marks which hook steps a variant overrides.
type Overlay struct {
	Variant    string
	Overridden map[domain.StepID]bool
}

// OverlayFor builds an Overlay from a variant.
func OverlayFor(v domain.Variant) *Overlay {
	o := &Overlay{Variant: v.Name(), Overridden: make(map[domain.StepID]bool)}
	for _, s := range domain.Skeleton() {
		if s.Kind == domain.KindHook && domain.Overrides(v, s.ID) {
			o.Overridden[s.ID] = true
		}
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the skeleton.
// It applies semantic styling:
// - Base: [Rectangle]
// - Required: [[Subroutine]]
// - Hook: {{Hexagon}}
// Overridden hooks from the overlay are highlighted; the rest are dashed.
func GenerateMermaid(steps []domain.Step, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range steps {
		opener, closer := "[", "]"
		switch s.Kind {
		case domain.KindRequired:
			opener, closer = "[[", "]]"
		case domain.KindHook:
			opener, closer = "{{", "}}"
		}
		label := s.Name
		if overlay != nil && s.Kind != domain.KindBase {
			label = fmt.Sprintf("%s <br/> %s", s.Name, overlay.Variant)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", s.ID, opener, label, closer))
	}

	for i := 1; i < len(steps); i++ {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", steps[i-1].ID, steps[i].ID))
	}

	sb.WriteString("    classDef required stroke-width:2px;\n")
	sb.WriteString("    classDef overridden fill:#f472b6,stroke:#be185d,color:#fff;\n")
	sb.WriteString("    classDef noop stroke-dasharray: 5 5;\n")
	for _, s := range steps {
		switch s.Kind {
		case domain.KindRequired:
			sb.WriteString(fmt.Sprintf("    class %s required;\n", s.ID))
		case domain.KindHook:
			if overlay != nil && overlay.Overridden[s.ID] {
				sb.WriteString(fmt.Sprintf("    class %s overridden;\n", s.ID))
			} else {
				sb.WriteString(fmt.Sprintf("    class %s noop;\n", s.ID))
			}
		}
	}
	return sb.String()
}
