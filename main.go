// main.go
//
// Entry point for the wordlebot binary.
// All behaviour lives in the cobra commands (commands.go, cmd_*.go).

package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
