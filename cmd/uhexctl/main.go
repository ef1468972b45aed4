// Command uhexctl composes, separates and inspects Universal Hex files
// from the command line.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type Context struct {
	log *logrus.Logger
}

var CLI struct {
	Verbose bool `optional help:"Enable debug logging."`

	Compose  ComposeCmd  `cmd:"" help:"Compose a Universal Hex from one or more labelled Intel Hex files."`
	Separate SeparateCmd `cmd:"" help:"Split a Universal Hex file into its per-board Intel Hex files."`
	Detect   DetectCmd   `cmd:"" help:"Report whether a file has Universal Hex shape."`
}

func main() {
	k := kong.Parse(&CLI, kong.UsageOnError())

	log := logrus.New()
	if CLI.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx := &Context{log: log}
	err := k.Run(ctx)
	k.FatalIfErrorf(err)
}
