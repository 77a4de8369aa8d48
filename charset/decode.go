package charset

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Decode converts the raw bytes of an RDP file to text. It tries, in
// order, UTF-16 little-endian, UTF-8, and byte-order-mark-sensitive
// UTF-16 (falling back to [NativeEndian] when no mark is present),
// and returns the first decoding that consumes the entire input.
//
// A leading byte order mark survives decoding as U+FEFF; stripping it
// is the caller's concern.
func Decode(data []byte) (string, error) {
	if s, ok := DecodeUTF16(data, binary.LittleEndian); ok {
		return s, nil
	}
	if s, ok := DecodeUTF8(data); ok {
		return s, nil
	}
	if s, ok := DecodeUTF16BOM(data); ok {
		return s, nil
	}
	return "", errors.New("bytes are not UTF-16 or UTF-8 text")
}

// DecodeUTF8 converts data from UTF-8. It reports false unless the
// entire input is well-formed UTF-8.
func DecodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// DecodeUTF16 converts data from UTF-16 in the given byte order. It
// reports false unless the input is an even number of bytes and every
// surrogate code unit is half of a correctly ordered pair. A leading
// U+FFFE unit also fails the decode: a byte-swapped mark means the
// input is UTF-16 in the opposite order.
func DecodeUTF16(data []byte, order binary.ByteOrder) (string, bool) {
	if len(data)%2 != 0 {
		return "", false
	}
	if len(data) >= 2 && order.Uint16(data) == 0xFFFE {
		return "", false
	}
	var sb strings.Builder
	sb.Grow(len(data) / 2)
	for i := 0; i < len(data); i += 2 {
		u := rune(order.Uint16(data[i:]))
		if !utf16.IsSurrogate(u) {
			sb.WriteRune(u)
			continue
		}
		if i+4 > len(data) {
			return "", false
		}
		r := utf16.DecodeRune(u, rune(order.Uint16(data[i+2:])))
		if r == unicode.ReplacementChar {
			// DecodeRune signals a lone or misordered surrogate with
			// U+FFFD; a real pair always yields a supplementary rune.
			return "", false
		}
		sb.WriteRune(r)
		i += 2
	}
	return sb.String(), true
}

// DecodeUTF16BOM converts data from UTF-16, taking the byte order
// from a leading byte order mark when one is present and from
// [NativeEndian] otherwise.
func DecodeUTF16BOM(data []byte) (string, bool) {
	order := NativeEndian
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFE && data[1] == 0xFF:
			order = binary.BigEndian
		case data[0] == 0xFF && data[1] == 0xFE:
			order = binary.LittleEndian
		}
	}
	return DecodeUTF16(data, order)
}
