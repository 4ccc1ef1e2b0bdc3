package main

import (
	"fmt"
	"os"

	"github.com/teranos/gentokens/cmd/gentokens/cmd"
	"github.com/teranos/gentokens/logger"
)

func main() {
	if err := logger.Initialize(logger.VerbosityUser); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.GentokensCmd.Execute(); err != nil {
		logger.Cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Cleanup()
}
