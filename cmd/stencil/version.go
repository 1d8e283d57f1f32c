package main

import (
	"fmt"

	"github.com/aretw0/stencil"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of stencil",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stencil version %s\n", stencil.Version)
		},
	}
}
