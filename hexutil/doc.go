// Package hexutil converts between ASCII hex strings and byte buffers.
//
// Decoding accepts either case; every encoding function in this package
// always emits upper-case hex, matching the output convention required by
// Intel Hex and Universal Hex records.
package hexutil
