package hexutil

import (
	"encoding/hex"
	"strings"
)

// BytesFromHex decodes an ASCII hex string into bytes. It accepts either
// case. It fails when the string has an odd length or contains a
// non-hex-digit byte.
func BytesFromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &InvalidHexCharacterError{Input: s}
	}

	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, &InvalidHexCharacterError{Input: s}
	}
	return buf, nil
}

// ByteToHex returns the fixed-width, upper-case, 2-character hex
// representation of b.
func ByteToHex(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}

// BytesToHex returns the upper-case hex encoding of buf, i.e. the
// concatenation of ByteToHex over every byte.
func BytesToHex(buf []byte) string {
	return strings.ToUpper(hex.EncodeToString(buf))
}
