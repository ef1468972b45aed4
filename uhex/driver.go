package uhex

import (
	"strings"

	"github.com/boardhex/uhex/ihex"
)

// LabelledHex pairs an Intel Hex stream with the board it targets.
type LabelledHex struct {
	BoardID uint16
	Hex     string
}

// eofSuffix is the literal trailing sequence ComposeBlock and ComposeSection
// leave at the end of a fragment when the source stream carried an
// EndOfFile record.
var eofSuffix = ihex.EndOfFileRecord() + "\n"

// Create builds a Universal Hex string out of one or more labelled Intel
// Hex streams. When blocks is true it uses the block layout (fixed
// 512-character blocks); otherwise it uses the section layout (one
// contiguous, 512-aligned region per board).
//
// Every fragment but the last has its trailing end-of-file marker
// stripped, since only the very end of the concatenated stream should
// terminate the file; the last fragment keeps (or gains) one.
func Create(hexes []LabelledHex, blocks bool) (string, error) {
	if len(hexes) == 0 {
		return "", nil
	}

	compose := ComposeSection
	if blocks {
		compose = ComposeBlock
	}

	fragments := make([]string, len(hexes))
	for i, h := range hexes {
		fragment, err := compose(h.Hex, h.BoardID)
		if err != nil {
			return "", err
		}
		fragments[i] = fragment
	}

	for i := 0; i < len(fragments)-1; i++ {
		fragments[i] = strings.TrimSuffix(fragments[i], eofSuffix)
	}

	last := len(fragments) - 1
	if !strings.HasSuffix(fragments[last], eofSuffix) {
		fragments[last] += eofSuffix
	}

	return strings.Join(fragments, ""), nil
}
