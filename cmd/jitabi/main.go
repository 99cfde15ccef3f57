// Command jitabi generates Go binary codec packages from Antelope ABI
// JSON documents.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/openrepublic/go-jitabi/cmd/jitabi/cmd/describe"
	"github.com/openrepublic/go-jitabi/cmd/jitabi/cmd/generate"
	"github.com/openrepublic/go-jitabi/internal/buildinfo"
)

// Command is the root CLI command, exposed for use in tests.
var Command = &cli.Command{
	Name:    "jitabi",
	Usage:   "generate or inspect Go binary codecs for Antelope ABI schemas",
	Version: buildinfo.Version.String(),
	Commands: []*cli.Command{
		generate.Command,
		describe.Command,
	},
}

func main() {
	if err := Command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
