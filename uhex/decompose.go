package uhex

import (
	"strings"

	"github.com/boardhex/uhex/ihex"
)

type boardStream struct {
	boardID     uint16
	builder     strings.Builder
	lastExtAddr string
}

func (b *boardStream) emitExtAddrIfChanged(addr string) {
	if addr == b.lastExtAddr {
		return
	}
	b.builder.WriteString(addr)
	b.builder.WriteByte('\n')
	b.lastExtAddr = addr
}

func (b *boardStream) emit(record string) {
	b.builder.WriteString(record)
	b.builder.WriteByte('\n')
}

// Separate decomposes a Universal Hex string into the per-board Intel Hex
// streams it was composed from, in the order each board ID was first seen.
// It works for either layout: block boundaries (BlockEnd, and the repeated
// ExtendedLinearAddress + BlockStart pairs that open every block) carry no
// information Separate needs to keep, and are dropped rather than
// duplicated into the reconstructed streams.
func Separate(s string) ([]LabelledHex, error) {
	records := ihex.SplitRecords(s)
	if len(records) == 0 {
		return nil, &UniversalHexEmptyError{}
	}
	if !ihex.IsUniversalHexRecords(records) {
		return nil, &UniversalHexShapeInvalidError{}
	}

	order := make([]uint16, 0, 4)
	boards := make(map[uint16]*boardStream)

	currentExtAddr, err := ihex.ExtLinAddressRecord(0)
	if err != nil {
		return nil, err
	}
	var current *boardStream

	for _, record := range records {
		typ, err := ihex.GetRecordType(record)
		if err != nil {
			return nil, err
		}

		switch typ {
		case ihex.ExtendedLinearAddress:
			currentExtAddr = record

		case ihex.BlockStart:
			data, err := ihex.GetRecordData(record)
			if err != nil {
				return nil, err
			}
			if len(data) != 4 {
				return nil, &BlockStartDataInvalidError{Length: len(data)}
			}
			boardID := uint16(data[0])<<8 | uint16(data[1])

			b, ok := boards[boardID]
			if !ok {
				b = &boardStream{boardID: boardID}
				boards[boardID] = b
				order = append(order, boardID)
			}
			current = b

		case ihex.BlockEnd, ihex.PaddedData:
			// Structural markers; carry no per-board payload.

		case ihex.EndOfFile:
			// The overall stream terminator; each board's own EndOfFile is
			// appended once after the walk, below.

		case ihex.CustomData:
			converted, err := ihex.ConvertTo(record, ihex.Data)
			if err != nil {
				return nil, err
			}
			current.emitExtAddrIfChanged(currentExtAddr)
			current.emit(converted)

		case ihex.Data, ihex.StartSegmentAddress, ihex.ExtendedSegmentAddress:
			current.emitExtAddrIfChanged(currentExtAddr)
			current.emit(record)

		case ihex.StartLinearAddress, ihex.OtherData:
			// Carries no information a reconstructed board stream needs.
		}
	}

	result := make([]LabelledHex, len(order))
	for i, boardID := range order {
		b := boards[boardID]
		hex := b.builder.String()
		if !strings.HasSuffix(hex, eofSuffix) {
			hex += eofSuffix
		}
		result[i] = LabelledHex{BoardID: boardID, Hex: hex}
	}
	return result, nil
}
