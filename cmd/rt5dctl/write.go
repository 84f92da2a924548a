package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jc8810/rt5dctl/pkg/document"
)

func newWriteCmd() *cobra.Command {
	var includeBasicInfo bool

	cmd := &cobra.Command{
		Use:   "write <port> <infile>",
		Short: "Write a JSON document's codeplug to the radio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return usagef("reading %s: %v", args[1], err)
			}

			var doc document.Codeplug
			if err := json.Unmarshal(raw, &doc); err != nil {
				return usagef("parsing %s: %v", args[1], err)
			}

			payloads, err := document.ToPayloads(&doc)
			if err != nil {
				return err
			}

			sess, port, err := connect(args[0])
			if err != nil {
				return err
			}
			defer port.Close()

			ctx, cancel := sessionContext()
			defer cancel()

			if _, err := sess.WriteAll(ctx, payloads, includeBasicInfo, cliProgress); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "write verified")
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeBasicInfo, "basic-info", false, "also write the optional basic info block (step 11)")
	return cmd
}
