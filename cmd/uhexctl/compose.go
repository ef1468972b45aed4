package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/boardhex/uhex/uhex"
	"github.com/fatih/color"
)

// ComposeCmd builds a Universal Hex file from one or more board-ID:file
// pairs.
type ComposeCmd struct {
	Board  []string `arg name:"board" help:"board-id:path.hex pairs, e.g. 0x9903:firmware.hex"`
	Out    string   `optional short:"o" help:"Output file; defaults to stdout."`
	Blocks bool     `optional help:"Use the block layout instead of the section layout."`
}

func (c *ComposeCmd) Run(ctx *Context) error {
	hexes := make([]uhex.LabelledHex, 0, len(c.Board))
	for _, arg := range c.Board {
		boardID, path, err := splitBoardArg(arg)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		ctx.log.Debugf("composing board 0x%04X from %s", boardID, path)
		hexes = append(hexes, uhex.LabelledHex{BoardID: boardID, Hex: string(data)})
	}

	result, err := uhex.Create(hexes, c.Blocks)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Print(result)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(result), 0o644); err != nil {
		return err
	}
	color.Green("wrote %s (%d bytes)", c.Out, len(result))
	return nil
}

func splitBoardArg(arg string) (boardID uint16, path string, err error) {
	for i := 0; i < len(arg); i++ {
		if arg[i] != ':' {
			continue
		}
		id, err := strconv.ParseUint(arg[:i], 0, 16)
		if err != nil {
			return 0, "", fmt.Errorf("invalid board id %q: %w", arg[:i], err)
		}
		return uint16(id), arg[i+1:], nil
	}
	return 0, "", fmt.Errorf("expected board-id:path, got %q", arg)
}
