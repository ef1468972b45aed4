package ihex

import (
	"github.com/boardhex/uhex/hexutil"
)

// checksumOf returns the Intel Hex checksum byte for buf: the two's
// complement of the sum of its bytes, so that appending the checksum makes
// the total sum of every byte in the record equal to zero (mod 256).
func checksumOf(buf []byte) byte {
	var sum byte
	for _, b := range buf {
		sum += b
	}
	return ^sum + 1
}

// Create builds an Intel Hex record string for the given address, type and
// payload, computing its checksum.
func Create(address int, typ RecordType, data []byte) (string, error) {
	if address < 0 || address > 0xFFFF {
		return "", &RecordAddressOutOfRangeError{Address: address}
	}
	if len(data) > RecordDataMaxBytes {
		return "", &RecordDataTooLargeError{Length: len(data)}
	}
	if !typ.IsValid() {
		return "", &RecordTypeInvalidError{Type: byte(typ)}
	}

	header := []byte{
		byte(len(data)),
		byte(address >> 8),
		byte(address),
		byte(typ),
	}
	body := append(header, data...)
	checksum := checksumOf(body)

	return string(startChar) + hexutil.BytesToHex(body) + hexutil.ByteToHex(checksum), nil
}

// Validate reports whether record is a syntactically well-formed record
// string: correct overall length and a leading ':'. It does not check the
// record type or checksum.
func Validate(record string) error {
	if len(record) < MinRecordLen || len(record) > MaxRecordLen {
		return &RecordLengthOutOfRangeError{Record: record, Length: len(record)}
	}
	if record[0] != startChar {
		return &RecordStartInvalidError{Record: record}
	}
	return nil
}

// GetRecordType validates record and returns its decoded type, failing if
// the type nibble pair isn't one of the enumerated record types.
func GetRecordType(record string) (RecordType, error) {
	if err := Validate(record); err != nil {
		return 0, err
	}

	typeBytes, err := hexutil.BytesFromHex(record[7:9])
	if err != nil {
		return 0, err
	}

	typ := RecordType(typeBytes[0])
	if !typ.IsValid() {
		return 0, &RecordTypeInvalidError{Record: record, Type: typeBytes[0]}
	}
	return typ, nil
}

// GetRecordData validates record and returns its decoded payload, i.e. the
// record string with the leading ':', the header and the trailing checksum
// stripped off.
func GetRecordData(record string) ([]byte, error) {
	if err := Validate(record); err != nil {
		return nil, err
	}

	byteCountBuf, err := hexutil.BytesFromHex(record[1:3])
	if err != nil {
		return nil, err
	}
	byteCount := int(byteCountBuf[0])

	dataStart := headerLen
	dataEnd := dataStart + 2*byteCount
	if dataEnd+checksumLen != len(record) {
		return nil, &RecordByteCountInconsistentError{Record: record, Declared: byteCount, Actual: (len(record) - headerLen - checksumLen) / 2}
	}

	return hexutil.BytesFromHex(record[dataStart:dataEnd])
}

// Parse fully decodes record into a Record. It extracts the checksum field
// but does not verify it — see the package doc comment.
func Parse(record string) (Record, error) {
	if err := Validate(record); err != nil {
		return Record{}, err
	}

	fields, err := hexutil.BytesFromHex(record[1:])
	if err != nil {
		return Record{}, err
	}
	// fields = byteCount(1) addrHi(1) addrLo(1) type(1) data(byteCount) checksum(1)
	byteCount := int(fields[0])

	expectedLen := headerLen + 2*byteCount + checksumLen
	if expectedLen != len(record) {
		return Record{}, &RecordByteCountInconsistentError{
			Record:   record,
			Declared: byteCount,
			Actual:   (len(record) - headerLen - checksumLen) / 2,
		}
	}

	typ := RecordType(fields[3])
	if !typ.IsValid() {
		return Record{}, &RecordTypeInvalidError{Record: record, Type: fields[3]}
	}

	data := make([]byte, byteCount)
	copy(data, fields[4:4+byteCount])

	return Record{
		ByteCount: byteCount,
		Address:   uint16(fields[1])<<8 | uint16(fields[2]),
		Type:      typ,
		Data:      data,
		Checksum:  fields[len(fields)-1],
	}, nil
}

// ConvertTo re-emits record with a new type byte, recomputing the
// checksum; the address and data are unchanged.
func ConvertTo(record string, newType RecordType) (string, error) {
	rec, err := Parse(record)
	if err != nil {
		return "", err
	}
	return Create(int(rec.Address), newType, rec.Data)
}

// ConvertExtSegToExtLinear converts an ExtendedSegmentAddress record into
// the equivalent ExtendedLinearAddress record. The input's data must be
// exactly 2 bytes shaped "HH 00", with HH a multiple of 0x10 (i.e. the
// segment base is a multiple of 0x1000).
func ConvertExtSegToExtLinear(record string) (string, error) {
	rec, err := Parse(record)
	if err != nil {
		return "", err
	}
	if rec.Type != ExtendedSegmentAddress || len(rec.Data) != 2 || rec.Data[1] != 0x00 || rec.Data[0]&0x0F != 0 {
		return "", &ExtSegmentRecordInvalidError{Record: record}
	}

	segBase := uint32(rec.Data[0]) << 12
	return ExtLinAddressRecord(segBase)
}

// EndOfFileRecord returns the pre-canned End Of File record.
func EndOfFileRecord() string {
	return ":00000001FF"
}

// BlockEndRecord returns a Universal Hex Block End record carrying n bytes
// of 0xFF padding. Two common sizes are pre-canned for byte-exactness.
func BlockEndRecord(n int) string {
	switch n {
	case 4:
		return ":0400000BFFFFFFFFF5"
	case 12:
		return ":0C00000BFFFFFFFFFFFFFFFFFFFFFFFFF5"
	}
	record, err := Create(0, BlockEnd, ffBytes(n))
	if err != nil {
		// n is always derived from in-range block/section arithmetic by
		// callers in this module; Create only fails on an out-of-range
		// input, which would indicate a composer bug.
		panic(err)
	}
	return record
}

// PaddedDataRecord returns a Universal Hex Padded Data record carrying n
// bytes of 0xFF.
func PaddedDataRecord(n int) string {
	record, err := Create(0, PaddedData, ffBytes(n))
	if err != nil {
		panic(err)
	}
	return record
}

func ffBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 0xFF
	}
	return buf
}

// ExtLinAddressRecord builds an Extended Linear Address record whose 2
// data bytes are the upper 16 bits of addr32, big-endian.
func ExtLinAddressRecord(addr32 uint32) (string, error) {
	if uint64(addr32) > 0xFFFFFFFF {
		return "", &ExtLinearAddressOutOfRangeError{Address: int64(addr32)}
	}
	upper := uint16(addr32 >> 16)
	return Create(0, ExtendedLinearAddress, []byte{byte(upper >> 8), byte(upper)})
}

// BlockStartRecord builds a Universal Hex Block Start record whose 4 data
// bytes are the target board ID (big-endian) followed by the 0xC0 0xDE
// signature.
func BlockStartRecord(boardID uint16) (string, error) {
	return Create(0, BlockStart, []byte{byte(boardID >> 8), byte(boardID), 0xC0, 0xDE})
}
