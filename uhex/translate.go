package uhex

import "github.com/boardhex/uhex/ihex"

// BlockSize is the fixed character width of a Universal Hex block, and the
// alignment boundary section fragments are padded to.
const BlockSize = 512

// translated is the result of running one input record through
// translateRecord: the record to emit into the composed fragment, and
// whether it updates the tracked extended-address state or signals
// end-of-file.
type translated struct {
	emit        string
	extAddr     string
	isExtAddr   bool
	isEndOfFile bool
}

// translateRecord applies the shared Data/ExtSeg/ExtLin/EndOfFile rules
// common to both the block and section composer layouts. Data records are
// relabelled to CustomData when replaceData is set, so V1 bootloaders skip
// them; ExtendedSegmentAddress records are converted to their
// ExtendedLinearAddress equivalent; every other record type passes through
// unchanged.
func translateRecord(record string, replaceData bool) (translated, error) {
	typ, err := ihex.GetRecordType(record)
	if err != nil {
		return translated{}, err
	}

	switch typ {
	case ihex.EndOfFile:
		return translated{isEndOfFile: true}, nil

	case ihex.Data:
		if !replaceData {
			return translated{emit: record}, nil
		}
		converted, err := ihex.ConvertTo(record, ihex.CustomData)
		if err != nil {
			return translated{}, err
		}
		return translated{emit: converted}, nil

	case ihex.ExtendedLinearAddress:
		return translated{emit: record, extAddr: record, isExtAddr: true}, nil

	case ihex.ExtendedSegmentAddress:
		converted, err := ihex.ConvertExtSegToExtLinear(record)
		if err != nil {
			return translated{}, err
		}
		return translated{emit: converted, extAddr: converted, isExtAddr: true}, nil

	default:
		return translated{emit: record}, nil
	}
}

// padBaseLen is the character length of a padding or block-end record
// carrying zero data bytes: the 11-character minimal record plus its
// trailing newline.
const padBaseLen = ihex.MinRecordLen + 1

// closeWithPadding fills the gap between used and target with PaddedData
// records sized at padCap, then emits a single BlockEnd record sized to
// land exactly on target. The number of full-width pads is chosen so the
// BlockEnd record absorbs whatever's left over, which keeps its data
// length from ever going negative; when what's left is more than one
// record's maximum data length, one shorter PaddedData record takes it
// and the BlockEnd record carries no data. Callers that hand it a gap smaller
// than padBaseLen would make that unavoidable, so target must be at
// least used+padBaseLen (every caller computes target so that holds).
func closeWithPadding(write func(string), used int, target int, padCap int) {
	full := padBaseLen + 2*padCap
	gap := target - used
	pads := (gap - padBaseLen) / full
	if pads < 0 {
		pads = 0
	}
	for i := 0; i < pads; i++ {
		write(ihex.PaddedDataRecord(padCap))
	}
	n := (gap - pads*full - padBaseLen) / 2
	if n > ihex.RecordDataMaxBytes {
		write(ihex.PaddedDataRecord(n - padBaseLen/2))
		n = 0
	}
	if n < 0 {
		n = 0
	}
	write(ihex.BlockEndRecord(n))
}

// roundUpToBlock rounds n up to the next multiple of BlockSize.
func roundUpToBlock(n int) int {
	return ((n + BlockSize - 1) / BlockSize) * BlockSize
}
