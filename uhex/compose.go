package uhex

import (
	"strings"

	"github.com/boardhex/uhex/ihex"
)

// preamble runs the checks and setup shared by ComposeBlock and
// ComposeSection: split into records, reject input that's already a
// Universal Hex stream, decide whether Data records get relabelled to
// CustomData, and measure the padding-record data width to use.
func preamble(ihexStr string) (records []string, padCap int, empty bool, err error) {
	records = ihex.SplitRecords(ihexStr)
	if len(records) == 0 {
		return nil, 0, true, nil
	}
	if ihex.IsUniversalHexRecords(records) {
		return nil, 0, false, &AlreadyUniversalHexError{}
	}
	padCap, err = ihex.FindDataFieldLength(records)
	if err != nil {
		return nil, 0, false, err
	}
	return records, padCap, false, nil
}

func trailingRecordsError(records []string, idx int) error {
	return &TrailingRecordsAfterEOFError{
		Remaining: len(records) - idx,
		MakeCode:  ihex.IsMakeCodeForV1Records(records),
	}
}

// peekLeadingExtAddr looks at records[idx]: if it's an ExtendedLinearAddress
// or ExtendedSegmentAddress record, it is adopted as the current extended
// address and consumed; otherwise currentExtAddr and idx pass through
// unchanged. Used both before the very first block/section header and
// before every subsequent block header in the block layout, per spec.
func peekLeadingExtAddr(records []string, idx int, currentExtAddr string) (addr string, next int, err error) {
	if idx >= len(records) {
		return currentExtAddr, idx, nil
	}

	typ, err := ihex.GetRecordType(records[idx])
	if err != nil {
		return "", 0, err
	}
	switch typ {
	case ihex.ExtendedLinearAddress:
		return records[idx], idx + 1, nil
	case ihex.ExtendedSegmentAddress:
		converted, err := ihex.ConvertExtSegToExtLinear(records[idx])
		if err != nil {
			return "", 0, err
		}
		return converted, idx + 1, nil
	default:
		return currentExtAddr, idx, nil
	}
}

// ComposeBlock builds a Universal Hex fragment for a single board's Intel
// Hex stream using the block layout: a sequence of fixed 512-character
// blocks, each opening with the currently active ExtendedLinearAddress and
// a BlockStart record, and each self-contained enough to be written to
// storage independently of its neighbors.
func ComposeBlock(ihexStr string, boardID uint16) (string, error) {
	records, padCap, empty, err := preamble(ihexStr)
	if err != nil {
		return "", err
	}
	if empty {
		return "", nil
	}
	replaceData := !isV1(boardID)

	blockStart, err := ihex.BlockStartRecord(boardID)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	currentExtAddr, err := ihex.ExtLinAddressRecord(0)
	if err != nil {
		return "", err
	}
	idx := 0

	for {
		currentExtAddr, idx, err = peekLeadingExtAddr(records, idx, currentExtAddr)
		if err != nil {
			return "", err
		}

		used := 0
		write := func(s string) {
			out.WriteString(s)
			out.WriteByte('\n')
			used += len(s) + 1
		}

		write(currentExtAddr)
		write(blockStart)

		eofSeen := false
		for idx < len(records) {
			t, err := translateRecord(records[idx], replaceData)
			if err != nil {
				return "", err
			}
			if t.isEndOfFile {
				eofSeen = true
				idx++
				break
			}
			// Reserve room for this block's own closing records
			// (BlockEnd plus newline, zero-padded) before committing to
			// emit another record in this block.
			if used+len(t.emit)+1+padBaseLen > BlockSize {
				break
			}
			write(t.emit)
			if t.isExtAddr {
				currentExtAddr = t.extAddr
			}
			idx++
		}

		if eofSeen {
			if idx < len(records) {
				return "", trailingRecordsError(records, idx)
			}
			write(ihex.BlockEndRecord(0))
			write(ihex.EndOfFileRecord())
			return out.String(), nil
		}

		closeWithPadding(write, used, BlockSize, padCap)

		if idx >= len(records) {
			// A well-formed Intel Hex stream always ends in EndOfFile, so
			// input shouldn't run out without eofSeen; treat it the same
			// as a clean finish rather than loop forever.
			return out.String(), nil
		}
	}
}

// ComposeSection builds a Universal Hex fragment for a single board's
// Intel Hex stream using the section layout: one contiguous region opening
// with a single ExtendedLinearAddress and BlockStart pair, padded at its
// end to the next 512-character boundary.
func ComposeSection(ihexStr string, boardID uint16) (string, error) {
	records, padCap, empty, err := preamble(ihexStr)
	if err != nil {
		return "", err
	}
	if empty {
		return "", nil
	}
	replaceData := !isV1(boardID)

	var out strings.Builder
	used := 0
	write := func(s string) {
		out.WriteString(s)
		out.WriteByte('\n')
		used += len(s) + 1
	}

	zero, err := ihex.ExtLinAddressRecord(0)
	if err != nil {
		return "", err
	}
	currentExtAddr, idx, err := peekLeadingExtAddr(records, 0, zero)
	if err != nil {
		return "", err
	}
	write(currentExtAddr)

	blockStart, err := ihex.BlockStartRecord(boardID)
	if err != nil {
		return "", err
	}
	write(blockStart)

	eofSeen := false
	for idx < len(records) {
		t, err := translateRecord(records[idx], replaceData)
		if err != nil {
			return "", err
		}
		if t.isEndOfFile {
			eofSeen = true
			idx++
			break
		}
		write(t.emit)
		idx++
	}

	if idx < len(records) {
		return "", trailingRecordsError(records, idx)
	}

	// The final BlockEnd record ends on the next 512-character boundary;
	// when an EndOfFile record follows, the EndOfFile record's 12
	// characters are reserved inside that same boundary instead, so the
	// BlockEnd ends 12 characters before it and the EndOfFile closes it.
	trailing := 0
	if eofSeen {
		trailing = padBaseLen
	}
	target := roundUpToBlock(used+padBaseLen+trailing) - trailing
	closeWithPadding(write, used, target, padCap)

	if eofSeen {
		write(ihex.EndOfFileRecord())
	}

	return out.String(), nil
}
