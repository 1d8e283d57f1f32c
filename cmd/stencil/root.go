package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stencil",
		Short: "stencil demonstrates a fixed algorithm skeleton with pluggable steps",
		Long: `stencil runs a seven step algorithm skeleton against interchangeable variants.
Base steps are fixed, required steps come from the variant and hooks are optional.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	run := newRunCmd()
	root.AddCommand(run, newStepsCmd(), newGraphCmd(), newVariantsCmd(), newVersionCmd())

	// 'run' is the default when no command is provided.
	root.Flags().AddFlagSet(run.Flags())
	root.RunE = run.RunE
	return root
}
