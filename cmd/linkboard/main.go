package main

import (
	"fmt"
	"os"

	"github.com/linkboard/linkboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ linkboard failed: %v\n", err)
		os.Exit(1)
	}
}
