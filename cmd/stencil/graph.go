package main

import (
	"fmt"

	"github.com/aretw0/stencil/internal/presentation/graph"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the skeleton as a Mermaid diagram",
		Long:  `Outputs a Mermaid flowchart (graph TD) of the skeleton. With --variant, overridden hooks are highlighted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("variant")

			var overlay *graph.Overlay
			if name != "" {
				v, err := variants.Default().New(name)
				if err != nil {
					return err
				}
				overlay = graph.OverlayFor(v)
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(domain.Skeleton(), overlay))
			return nil
		},
	}
	cmd.Flags().StringP("variant", "v", "", "Variant whose overrides should be highlighted")
	return cmd
}
