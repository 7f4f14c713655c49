// Package main is the entry point for the learning-loop service.
package main

import (
	"os"

	"github.com/sells-group/learning-loop/cmd/learning-loop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
