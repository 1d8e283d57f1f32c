package main

import (
	"fmt"

	"github.com/aretw0/stencil/internal/presentation"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/spf13/cobra"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the registered variants and the hooks they override",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := variants.Default()
			for _, name := range reg.Names() {
				v, err := reg.New(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), presentation.DescribeVariant(v))
			}
			return nil
		},
	}
}
