package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jc8810/rt5dctl/internal/ports"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List candidate serial ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ports.List()
			if err != nil {
				return err
			}
			for _, p := range list {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name)
			}
			return nil
		},
	}
}
