package main

import (
	"fmt"
	"os"

	"github.com/aretw0/stencil/internal/presentation"
	"github.com/aretw0/stencil/internal/presentation/tui"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/spf13/cobra"
)

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the steps of the skeleton in execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			text, err := presentation.DescribeSteps(domain.Skeleton(), presentation.Format(format))
			if err != nil {
				return err
			}

			if presentation.Format(format) == presentation.FormatMarkdown && isStdout(cmd) && tui.IsTerminal(os.Stdout) {
				rendered, err := tui.NewRenderer()(text)
				if err != nil {
					return fmt.Errorf("failed to render markdown: %w", err)
				}
				text = rendered
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, yaml, json, markdown)")
	return cmd
}

func isStdout(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && f == os.Stdout
}
