// Package main is the entry point for the loopctl CLI client.
package main

import (
	"github.com/sells-group/learning-loop/cmd/loopctl/cmd"
)

func main() {
	cmd.Execute()
}
