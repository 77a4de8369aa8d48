package rdpfile_test

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	"github.com/timi2506/rdpfile"
)

// valueComparer teaches cmp to compare Values through Equal, since
// their fields are unexported.
var valueComparer = cmp.Comparer(rdpfile.Value.Equal)

// utf16le encodes text as UTF-16 little-endian bytes, surrogate pairs
// included, with no byte order mark of its own.
func utf16le(text string) []byte { return encodeUTF16(text, binary.LittleEndian) }

// utf16be encodes text as UTF-16 big-endian bytes.
func utf16be(text string) []byte { return encodeUTF16(text, binary.BigEndian) }

func encodeUTF16(text string, order binary.ByteOrder) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		order.PutUint16(out[i*2:], u)
	}
	return out
}
