package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var debug bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rt5dctl",
		Short: "Programming tool for the RT-5D / JJCC-888DMR handheld",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logrus.InfoLevel
			if debug {
				level = logrus.DebugLevel
			}
			log.SetLevel(level)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose protocol logging")

	root.AddCommand(
		newTestCmd(),
		newPortsCmd(),
		newInfoCmd(),
		newReadCmd(),
		newWriteCmd(),
	)
	return root
}
