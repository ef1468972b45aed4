package uhex

import "fmt"

// AlreadyUniversalHexError reports that ComposeBlock or ComposeSection was
// handed a stream that already has Universal Hex shape.
type AlreadyUniversalHexError struct{}

func (e *AlreadyUniversalHexError) Error() string {
	return "input is already a Universal Hex stream"
}

// TrailingRecordsAfterEOFError reports input records following the first
// EndOfFile record, which Intel Hex forbids. When MakeCode is true, the
// trailing records match a known pattern left behind by the MakeCode
// editor when targeting V1 boards, and the caller should consider
// stripping them rather than treating the input as corrupt.
type TrailingRecordsAfterEOFError struct {
	Remaining int
	MakeCode  bool
}

func (e *TrailingRecordsAfterEOFError) Error() string {
	if e.MakeCode {
		return fmt.Sprintf("%d record(s) follow the end-of-file marker; this matches the MakeCode V1 editor pattern and can likely be ignored", e.Remaining)
	}
	return fmt.Sprintf("%d record(s) follow the end-of-file marker", e.Remaining)
}

// UniversalHexEmptyError reports an empty Universal Hex string passed to
// Separate.
type UniversalHexEmptyError struct{}

func (e *UniversalHexEmptyError) Error() string {
	return "universal hex input is empty"
}

// UniversalHexShapeInvalidError reports a string that does not have the
// required opening ExtendedLinearAddress + BlockStart / closing EndOfFile
// shape of a Universal Hex stream.
type UniversalHexShapeInvalidError struct{}

func (e *UniversalHexShapeInvalidError) Error() string {
	return "input does not have the shape of a universal hex stream"
}

// BlockStartDataInvalidError reports a BlockStart record whose data field
// is not the expected 4 bytes (board ID plus the 0xC0 0xDE signature).
type BlockStartDataInvalidError struct {
	Length int
}

func (e *BlockStartDataInvalidError) Error() string {
	return fmt.Sprintf("block start record carries %d data bytes, want 4", e.Length)
}
