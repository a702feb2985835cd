// Command tripctl is the command-line companion to the trip companion API.
package main

import (
	"fmt"
	"os"

	"github.com/pkordes/trip-companion/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
