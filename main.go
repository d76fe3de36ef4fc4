package main

import (
	"fmt"
	"os"

	"github.com/secondguess/cardsmith/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
