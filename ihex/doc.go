// Package ihex implements the Intel Hex record codec and the stream-level
// helpers used to compose and decompose Universal Hex files: building,
// parsing, validating and retyping individual records, and measuring shape
// properties (padding width, Universal Hex/MakeCode signatures) of a full
// record stream.
//
// # Record layout
//
//	':' BB AAAA TT [DD...] CC
//
// BB is the 2-hex-character data byte count, AAAA the 4-character
// big-endian load address, TT the 2-character record type, DD the data
// field (2*BB characters), and CC the checksum:
//
//	checksum = (-(sum of all preceding bytes)) mod 256
//
// All emitted hex digits are upper-case; input is accepted in either case.
// Parse does not itself verify the checksum field — callers that need a
// verified decode call Validate and recompute the checksum themselves.
package ihex
