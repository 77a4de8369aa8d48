package rdpfile

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/timi2506/rdpfile/charset"
)

// Encode serializes a Document to RDP file bytes: one
// "key:tag:value" line per property with the value in its canonical
// encoding, lines joined by "\n" with no trailing newline, in sorted
// key order, as UTF-8.
//
// Encode fails with [ErrEncoding] if the serialized text is not
// representable as UTF-8, which can only happen when a key or Text
// value carries bytes that are not well-formed UTF-8. It does not
// reject keys or values containing ':' or line breaks; such
// properties encode to well-formed bytes that will not decode back to
// the same Document.
func Encode(doc Document) ([]byte, error) {
	var sb strings.Builder
	for i, key := range slices.Sorted(maps.Keys(doc)) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		val := doc[key]
		debugEncode("%q <- %s %q", key, val.Kind(), val)
		sb.WriteString(key)
		sb.WriteByte(':')
		sb.WriteByte(val.Tag())
		sb.WriteByte(':')
		sb.WriteString(val.String())
	}
	bs, err := charset.Encode(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return bs, nil
}

const debugEncoding = false

func debugEncode(msg string, args ...any) {
	if !debugEncoding {
		return
	}
	log.Printf(msg, args...)
}
