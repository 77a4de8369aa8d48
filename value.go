package rdpfile

import (
	"bytes"
	"strconv"
)

// A Kind identifies the variant held by a [Value].
type Kind uint8

const (
	// KindText is a string value, type tag 's'. The zero Value is the
	// empty Text.
	KindText Kind = iota
	// KindInteger is a signed 64-bit integer value, type tag 'i'.
	KindInteger
	// KindBinary is a byte sequence value, type tag 'b', encoded as
	// hex pairs in the file format.
	KindBinary
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// A Value is the value of one property in an RDP file: a text string,
// a signed integer, or a binary blob. The kind of a Value and its
// type tag are fixed at construction and always agree; a Value built
// with [Integer] always carries tag 'i', and so on.
//
// The zero Value is the empty Text.
type Value struct {
	kind Kind

	num int64
	str string
	bin []byte
}

// Text returns a Value holding the given string.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Integer returns a Value holding the given integer.
func Integer(n int64) Value {
	return Value{kind: KindInteger, num: n}
}

// Binary returns a Value holding a copy of the given bytes.
func Binary(bs []byte) Value {
	return Value{kind: KindBinary, bin: bytes.Clone(bs)}
}

// Kind returns the variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// Tag returns the one-character type tag of the Value, as written in
// the second field of a file record: 'i', 's' or 'b'.
func (v Value) Tag() byte { return kindToTag[v.kind] }

// Text returns the string held by a Text value, or "" for other
// kinds.
func (v Value) Text() string { return v.str }

// Int returns the integer held by an Integer value, or 0 for other
// kinds.
func (v Value) Int() int64 { return v.num }

// Bytes returns the bytes held by a Binary value, or nil for other
// kinds. The result is a copy; mutating it does not change the
// Value.
func (v Value) Bytes() []byte { return bytes.Clone(v.bin) }

const upperhex = "0123456789ABCDEF"

// String returns the canonical textual encoding of the Value, as
// written in the third field of a file record: minimal decimal for
// Integer (with a leading '-' when negative), the text itself for
// Text, and uppercase hex pairs with no separators for Binary.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindBinary:
		out := make([]byte, 0, len(v.bin)*2)
		for _, b := range v.bin {
			out = append(out, upperhex[b>>4], upperhex[b&0xf])
		}
		return string(out)
	default:
		return v.str
	}
}

// Equal reports whether two Values hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.num == o.num
	case KindBinary:
		return bytes.Equal(v.bin, o.bin)
	default:
		return v.str == o.str
	}
}
