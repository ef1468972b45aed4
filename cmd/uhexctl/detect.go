package main

import (
	"fmt"
	"os"

	"github.com/boardhex/uhex/uhex"
	"github.com/fatih/color"
)

// DetectCmd reports whether a file has Universal Hex shape, and whether it
// carries the MakeCode V1 trailing-record signature.
type DetectCmd struct {
	File string `arg help:"File to inspect."`
}

func (c *DetectCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}
	s := string(data)

	if uhex.IsUniversalHex(s) {
		color.Green("%s: universal hex", c.File)
	} else {
		color.Yellow("%s: plain intel hex", c.File)
	}

	if uhex.IsMakeCodeForV1(s) {
		color.Cyan("%s: carries the MakeCode V1 signature", c.File)
	}
	return nil
}
