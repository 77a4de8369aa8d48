// Package charset provides the low-level byte-to-text conversions
// used to read and write RDP files.
//
// RDP files in the wild are UTF-16 little-endian (as written by the
// standard Windows client) or UTF-8. The decoders here are strict:
// they succeed only if the entire byte sequence is well formed under
// the attempted encoding, so that callers can use them to sniff the
// encoding of a file.
//
// You should not need to use this package directly unless you are
// reimplementing the document pipeline; the rdpfile package wires
// these conversions into Decode and Encode.
package charset
