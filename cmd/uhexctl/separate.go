package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boardhex/uhex/uhex"
	"github.com/fatih/color"
)

// SeparateCmd splits a Universal Hex file into one Intel Hex file per
// board it was composed from.
type SeparateCmd struct {
	File   string `arg help:"Universal Hex file to split."`
	OutDir string `optional short:"d" help:"Directory to write per-board files into; defaults to the input's directory."`
}

func (c *SeparateCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	hexes, err := uhex.Separate(string(data))
	if err != nil {
		return err
	}

	outDir := c.OutDir
	if outDir == "" {
		outDir = filepath.Dir(c.File)
	}
	base := filepath.Base(c.File)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	for _, h := range hexes {
		name := fmt.Sprintf("%s.0x%04X.hex", stem, h.BoardID)
		out := filepath.Join(outDir, name)
		if err := os.WriteFile(out, []byte(h.Hex), 0o644); err != nil {
			return err
		}
		color.Green("wrote %s", out)
	}
	return nil
}
