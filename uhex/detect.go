package uhex

import "github.com/boardhex/uhex/ihex"

// IsUniversalHex reports whether s has the shape of a Universal Hex
// stream, using a bounded prefix scan rather than a full parse.
func IsUniversalHex(s string) bool {
	return ihex.IsUniversalHex(s)
}

// IsMakeCodeForV1 reports whether s carries the trailing-record signature
// left behind by the MakeCode editor when targeting V1 boards.
func IsMakeCodeForV1(s string) bool {
	return ihex.IsMakeCodeForV1Records(ihex.SplitRecords(s))
}
