package presentation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/stencil"
	"github.com/aretw0/stencil/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for the skeleton listing.
type Format string

const (
	FormatTable    Format = "table"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// DescribeSteps encodes the skeleton in the requested format.
func DescribeSteps(steps []domain.Step, f Format) (string, error) {
	switch f {
	case FormatTable, "":
		var sb strings.Builder
		for i, s := range steps {
			fmt.Fprintf(&sb, "%d  %-22s %-9s %s\n", i+1, s.ID, s.Kind, s.Name)
		}
		return sb.String(), nil
	case FormatYAML:
		b, err := yaml.Marshal(map[string]any{"steps": steps})
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(b), nil
	case FormatJSON:
		b, err := json.MarshalIndent(map[string]any{"steps": steps}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return string(b) + "\n", nil
	case FormatMarkdown:
		var sb strings.Builder
		sb.WriteString("# Skeleton\n\n")
		sb.WriteString("| # | Step | Kind | Default |\n")
		sb.WriteString("|---|------|------|---------|\n")
		for i, s := range steps {
			def := "supplied by variant"
			switch s.Kind {
			case domain.KindBase:
				def = stencil.BaseText(s.ID)
			case domain.KindHook:
				def = "no-op"
			}
			fmt.Fprintf(&sb, "| %d | `%s` | %s | %s |\n", i+1, s.ID, s.Kind, def)
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("unsupported format %q", f)
}

// DescribeVariant summarises which hooks a variant overrides, e.g. "ConcreteClass2  hooks: hook_1".
func DescribeVariant(v domain.Variant) string {
	var hooks []string
	for _, s := range domain.Skeleton() {
		if s.Kind == domain.KindHook && domain.Overrides(v, s.ID) {
			hooks = append(hooks, string(s.ID))
		}
	}
	if len(hooks) == 0 {
		return fmt.Sprintf("%-16s hooks: none", v.Name())
	}
	return fmt.Sprintf("%-16s hooks: %s", v.Name(), strings.Join(hooks, ", "))
}
