package ihex

import "strings"

// SplitRecords splits an Intel Hex stream into individual record strings.
// Carriage returns are stripped and blank lines are dropped; the original
// order is preserved.
func SplitRecords(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	lines := strings.Split(s, "\n")

	records := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		records = append(records, line)
	}
	return records
}

// FindDataFieldLength walks records and returns the padding-record data
// width a composer should use: the largest data-field byte length that has
// either been surpassed or observed at least 13 times.
//
// This mirrors an early-exit heuristic in the reference implementation
// (stop once a length has recurred more than 12 times) that exists purely
// for performance; inputs that don't hit the early exit always compute the
// same final max regardless of when the loop stops.
func FindDataFieldLength(records []string) (int, error) {
	max := 16
	count := 0

	for _, record := range records {
		d := (len(record) - MinRecordLen) / 2
		switch {
		case d > max:
			max = d
			count = 0
		case d == max:
			count++
		}
		if count > 12 {
			break
		}
	}

	if max > RecordDataMaxBytes {
		return 0, &DataFieldLengthTooLargeError{Length: max}
	}
	return max, nil
}

// IsUniversalHexRecords reports whether records has the shape of a
// Universal Hex stream: it opens with an ExtendedLinearAddress record
// immediately followed by a BlockStart record, and closes with EndOfFile.
func IsUniversalHexRecords(records []string) bool {
	if len(records) < 2 {
		return false
	}

	first, err := GetRecordType(records[0])
	if err != nil || first != ExtendedLinearAddress {
		return false
	}
	second, err := GetRecordType(records[1])
	if err != nil || second != BlockStart {
		return false
	}
	last, err := GetRecordType(records[len(records)-1])
	if err != nil || last != EndOfFile {
		return false
	}
	return true
}

// IsMakeCodeForV1Records reports whether records carries the signature
// left behind by the MakeCode editor when targeting V1 boards: either the
// stream ends at the first EndOfFile record and an
// ExtendedLinearAddress(0x20000000) record appears somewhere before it, or
// records of type OtherData (or further occurrences of that same address
// record) appear after the first EndOfFile.
//
// This flag exists only to enrich error messages; it is never itself a
// validation step and never changes compose/decompose semantics.
func IsMakeCodeForV1Records(records []string) bool {
	v1Marker, err := ExtLinAddressRecord(0x20000000)
	if err != nil {
		return false
	}

	eofIndex := -1
	sawMarkerBeforeEOF := false
	for i, record := range records {
		typ, err := GetRecordType(record)
		if err != nil {
			continue
		}
		if eofIndex == -1 {
			if record == v1Marker {
				sawMarkerBeforeEOF = true
			}
			if typ == EndOfFile {
				eofIndex = i
			}
			continue
		}
		if typ == OtherData || record == v1Marker {
			return true
		}
	}

	if eofIndex == -1 {
		return false
	}
	if eofIndex == len(records)-1 && sawMarkerBeforeEOF {
		return true
	}
	return false
}

// extLinAddrSignature and blockStartSignature are the two literal record
// prefixes IsUniversalHex scans for.
const (
	extLinAddrSignature = ":02000004"
	blockStartSignature = ":0400000A"
)

// IsUniversalHex is an inexpensive prefix check: s begins with the 2-byte
// ExtendedLinearAddress signature, and, within a bounded scan for the next
// ':', the following record begins with the BlockStart signature.
func IsUniversalHex(s string) bool {
	if !strings.HasPrefix(s, extLinAddrSignature) {
		return false
	}

	scanLimit := MaxRecordLen + 3
	searchFrom := len(extLinAddrSignature)
	end := searchFrom + scanLimit
	if end > len(s) {
		end = len(s)
	}

	next := strings.IndexByte(s[searchFrom:end], startChar)
	if next == -1 {
		return false
	}

	rest := s[searchFrom+next:]
	return strings.HasPrefix(rest, blockStartSignature)
}
