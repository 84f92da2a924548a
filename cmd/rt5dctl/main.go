package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rt5dctl:", err)
	}
	os.Exit(exitCode(err))
}
