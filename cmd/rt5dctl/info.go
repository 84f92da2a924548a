package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jc8810/rt5dctl/pkg/codec"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <port>",
		Short: "Handshake with the radio and print its version block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, port, err := connect(args[0])
			if err != nil {
				return err
			}
			defer port.Close()

			ctx, cancel := sessionContext()
			defer cancel()

			version, err := sess.Info(ctx)
			if err != nil {
				return err
			}

			text, decodeErr := codec.DecodeGB2312(version)
			if decodeErr != nil || text == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "version: % X\n", version)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", text)
			return nil
		},
	}
}
