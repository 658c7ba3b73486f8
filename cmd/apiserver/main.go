// Command apiserver runs the HTTP API server.  It is a thin wrapper over
// the serve subcommand for container deployments.
package main

import (
	"fmt"
	"os"

	"github.com/pharmindex/repurpose/internal/interfaces/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(append([]string{"serve"}, os.Args[1:]...))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
