package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jc8810/rt5dctl/pkg/document"
)

const defaultOutfile = "rt5d_config.json"

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <port> [outfile]",
		Short: "Read the radio's full codeplug into a JSON document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outfile := defaultOutfile
			if len(args) == 2 {
				outfile = args[1]
			}

			sess, port, err := connect(args[0])
			if err != nil {
				return err
			}
			defer port.Close()

			ctx, cancel := sessionContext()
			defer cancel()

			payloads, err := sess.ReadAll(ctx, cliProgress)
			if err != nil {
				return err
			}

			doc, err := document.FromPayloads(payloads)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(outfile, out, 0o644); err != nil {
				return usagef("writing %s: %v", outfile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outfile)
			return nil
		},
	}
}
