package charset_test

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/timi2506/rdpfile/charset"
)

// enc lays out the UTF-16 code units of text in the given byte order.
func enc(text string, order binary.ByteOrder) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		order.PutUint16(out[i*2:], u)
	}
	return out
}

func TestDecodeUTF16(t *testing.T) {
	le, be := binary.LittleEndian, binary.BigEndian
	type testCase struct {
		name  string
		in    []byte
		order binary.ByteOrder
		want  string
		ok    bool
	}
	ok := func(name string, in []byte, order binary.ByteOrder, want string) testCase {
		return testCase{name, in, order, want, true}
	}
	fail := func(name string, in []byte, order binary.ByteOrder) testCase {
		return testCase{name, in, order, "", false}
	}
	tests := []testCase{
		ok("empty", nil, le, ""),
		ok("ascii le", enc("user:s:bob", le), le, "user:s:bob"),
		ok("ascii be", enc("user:s:bob", be), be, "user:s:bob"),
		ok("bmp le", enc("héllo wörld", le), le, "héllo wörld"),
		ok("astral le", enc("a🔒b", le), le, "a🔒b"),
		ok("astral be", enc("a🔒b", be), be, "a🔒b"),
		ok("bom passes through", enc("\ufeffhi", le), le, "\ufeffhi"),
		// A swapped mark only matters in first position.
		ok("interior fffe", enc("a\ufffeb", le), le, "a\ufffeb"),
		ok("ascii through wrong order", enc("ab", le), be, "愀戀"),

		fail("odd length", []byte{0x41, 0x00, 0x42}, le),
		fail("single byte", []byte{0x41}, le),
		fail("lone high surrogate", []byte{0x3d, 0xd8}, le),
		fail("high surrogate then bmp", []byte{0x3d, 0xd8, 0x41, 0x00}, le),
		fail("lone low surrogate", []byte{0x12, 0xdd}, le),
		fail("swapped pair", []byte{0x12, 0xdd, 0x3d, 0xd8}, le),
		fail("leading swapped bom le", []byte{0xfe, 0xff, 0x41, 0x00}, le),
		fail("leading swapped bom be", []byte{0xff, 0xfe, 0x00, 0x41}, be),
	}
	for _, tc := range tests {
		got, gotOK := charset.DecodeUTF16(tc.in, tc.order)
		if gotOK != tc.ok {
			t.Errorf("DecodeUTF16(%s) ok = %v, want %v", tc.name, gotOK, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("DecodeUTF16(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDecodeUTF8(t *testing.T) {
	if got, ok := charset.DecodeUTF8([]byte("héllo")); !ok || got != "héllo" {
		t.Errorf(`DecodeUTF8("héllo") = %q, %v`, got, ok)
	}
	if got, ok := charset.DecodeUTF8(nil); !ok || got != "" {
		t.Errorf("DecodeUTF8(nil) = %q, %v", got, ok)
	}
	for _, in := range [][]byte{
		{0xff},
		{0x80},             // lone continuation
		{0xc3},             // truncated sequence
		{0xed, 0xa0, 0x80}, // surrogate half
	} {
		if got, ok := charset.DecodeUTF8(in); ok {
			t.Errorf("DecodeUTF8(%x) = %q, want failure", in, got)
		}
	}
}

func TestDecodeUTF16BOM(t *testing.T) {
	type testCase struct {
		name string
		in   []byte
		want string
		ok   bool
	}
	tests := []testCase{
		{"be bom", enc("\ufeffhi", binary.BigEndian), "\ufeffhi", true},
		{"le bom", enc("\ufeffhi", binary.LittleEndian), "\ufeffhi", true},
		{"no bom native", enc("hi", charset.NativeEndian), "hi", true},
		{"empty", nil, "", true},
		{"be bom bad body", []byte{0xfe, 0xff, 0xd8, 0x3d}, "", false},
	}
	for _, tc := range tests {
		got, ok := charset.DecodeUTF16BOM(tc.in)
		if ok != tc.ok {
			t.Errorf("DecodeUTF16BOM(%s) ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("DecodeUTF16BOM(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDecodeDetection(t *testing.T) {
	type testCase struct {
		name string
		in   []byte
		want string
	}
	tests := []testCase{
		// Odd byte counts can only be UTF-8.
		{"utf8", []byte("a:i:1"), "a:i:1"},
		{"utf16le", enc("a:i:1", binary.LittleEndian), "a:i:1"},
		{"utf16le bom", enc("\ufeffa:i:1", binary.LittleEndian), "\ufeffa:i:1"},
		// The swapped-mark check pushes big-endian input past the
		// little-endian and UTF-8 attempts to the mark-sensitive one.
		{"utf16be bom", enc("\ufeffa:i:1", binary.BigEndian), "\ufeffa:i:1"},
		{"empty", nil, ""},
		// An even count of ASCII bytes decodes as UTF-16, not as the
		// text it looks like.
		{"even ascii", []byte("ab"), "扡"},
	}
	for _, tc := range tests {
		got, err := charset.Decode(tc.in)
		if err != nil {
			t.Errorf("Decode(%s) got err: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Decode(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}

	for _, tc := range []struct {
		name string
		in   []byte
	}{
		{"invalid everywhere", []byte{0xff, 0xfe, 0xff}},
		{"lone continuation", []byte{0x80}},
	} {
		if got, err := charset.Decode(tc.in); err == nil {
			t.Errorf("Decode(%s) = %q, want error", tc.name, got)
		}
	}
}
