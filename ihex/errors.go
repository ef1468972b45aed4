package ihex

import "fmt"

// RecordLengthOutOfRangeError reports a record string shorter than
// MinRecordLen or longer than MaxRecordLen characters.
type RecordLengthOutOfRangeError struct {
	Record string
	Length int
}

func (e *RecordLengthOutOfRangeError) Error() string {
	return fmt.Sprintf("record length %d out of range [%d, %d]: %q", e.Length, MinRecordLen, MaxRecordLen, e.Record)
}

// RecordStartInvalidError reports a record string that does not start with
// ':'.
type RecordStartInvalidError struct {
	Record string
}

func (e *RecordStartInvalidError) Error() string {
	return fmt.Sprintf("record does not start with ':': %q", e.Record)
}

// RecordTypeInvalidError reports a type byte outside the enumerated set in
// record.go.
type RecordTypeInvalidError struct {
	Record string
	Type   byte
}

func (e *RecordTypeInvalidError) Error() string {
	return fmt.Sprintf("invalid record type 0x%02X in record %q", e.Type, e.Record)
}

// RecordByteCountInconsistentError reports a declared byte count that
// implies a serialized record length different from (shorter or longer
// than) the string actually supplied.
type RecordByteCountInconsistentError struct {
	Record   string
	Declared int
	Actual   int
}

func (e *RecordByteCountInconsistentError) Error() string {
	return fmt.Sprintf("record declares %d data bytes but string length implies %d: %q", e.Declared, e.Actual, e.Record)
}

// RecordAddressOutOfRangeError reports an address outside [0, 65535] passed
// to Create.
type RecordAddressOutOfRangeError struct {
	Address int
}

func (e *RecordAddressOutOfRangeError) Error() string {
	return fmt.Sprintf("address 0x%X out of range [0, 0xFFFF]", e.Address)
}

// RecordDataTooLargeError reports a data payload longer than
// RecordDataMaxBytes passed to Create.
type RecordDataTooLargeError struct {
	Length int
}

func (e *RecordDataTooLargeError) Error() string {
	return fmt.Sprintf("data length %d exceeds maximum of %d bytes", e.Length, RecordDataMaxBytes)
}

// ExtLinearAddressOutOfRangeError reports an address that doesn't fit in 32
// bits passed to ExtLinAddressRecord.
type ExtLinearAddressOutOfRangeError struct {
	Address int64
}

func (e *ExtLinearAddressOutOfRangeError) Error() string {
	return fmt.Sprintf("extended linear address 0x%X does not fit in 32 bits", e.Address)
}

// ExtSegmentRecordInvalidError reports an ExtendedSegmentAddress record
// whose data is not exactly 2 bytes shaped "HH 00" with HH a multiple of
// 0x10.
type ExtSegmentRecordInvalidError struct {
	Record string
}

func (e *ExtSegmentRecordInvalidError) Error() string {
	return fmt.Sprintf("not a 0x1000-aligned extended segment address record: %q", e.Record)
}

// DataFieldLengthTooLargeError reports that FindDataFieldLength observed a
// record whose data width exceeds RecordDataMaxBytes.
type DataFieldLengthTooLargeError struct {
	Length int
}

func (e *DataFieldLengthTooLargeError) Error() string {
	return fmt.Sprintf("observed data field length %d exceeds maximum of %d bytes", e.Length, RecordDataMaxBytes)
}
