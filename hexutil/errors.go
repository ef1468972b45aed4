package hexutil

import "fmt"

// InvalidHexCharacterError reports a hex string that is malformed: either it
// has an odd number of characters, or it contains a byte that isn't a valid
// hex digit.
type InvalidHexCharacterError struct {
	Input string
}

func (e *InvalidHexCharacterError) Error() string {
	return fmt.Sprintf("invalid hex string %q", e.Input)
}
