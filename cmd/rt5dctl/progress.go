package main

import (
	"fmt"
	"os"
)

// cliProgress prints a one-line packet counter per phase, overwriting
// itself with a carriage return the way a long-running CLI transfer
// normally reports progress.
func cliProgress(phase string, packetIndex, totalPackets int) {
	if totalPackets <= 1 {
		fmt.Fprintf(os.Stderr, "%s: done\n", phase)
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s: packet %d/%d", phase, packetIndex, totalPackets)
	if packetIndex == totalPackets {
		fmt.Fprintln(os.Stderr)
	}
}
