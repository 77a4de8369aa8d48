// Package rdpfile decodes and encodes RDP connection files, the
// line-oriented "key:type:value" documents used to describe remote
// session settings.
//
// A file is a sequence of records, one per line, each naming a
// property. The single-character type tag selects the value kind:
// 'i' for signed integers, 's' for text, and 'b' for binary data
// written as hex pairs. [Decode] turns file bytes into a [Document],
// detecting whether the input is UTF-16 little-endian, UTF-8, or
// byte-order-marked UTF-16; [DecodeString] does the same for text the
// caller has already decoded. [Encode] serializes a Document back to
// canonical UTF-8 bytes.
//
// The codec is a pure transform: it performs no I/O, holds no state
// between calls, and is safe to use from any number of goroutines.
// Reading and writing the files themselves is the caller's business
// (the rdp command in cmd/rdp is one such caller).
//
// Decoding is strict and atomic. A malformed line, an unknown type
// tag, or undecodable bytes fail the whole call; no partial Document
// is ever returned. The package never interprets the meaning of keys
// beyond providing named constants for the documented ones, and it
// does not validate relationships between properties.
package rdpfile
