package rdpfile

// A Document is the decoded contents of one RDP file: a mapping from
// property key to value. Keys are case-sensitive and used verbatim.
// When input repeats a key, the last occurrence in file order wins.
//
// A Document is a plain map with no iteration order; [Encode] emits
// entries in sorted key order, so serialization is deterministic
// regardless.
type Document map[string]Value

// Text returns the string held at key. The second result is false if
// the key is absent or holds a non-Text value.
func (d Document) Text(key string) (string, bool) {
	v, ok := d[key]
	if !ok || v.Kind() != KindText {
		return "", false
	}
	return v.Text(), true
}

// Int returns the integer held at key. The second result is false if
// the key is absent or holds a non-Integer value.
func (d Document) Int(key string) (int64, bool) {
	v, ok := d[key]
	if !ok || v.Kind() != KindInteger {
		return 0, false
	}
	return v.Int(), true
}

// Bytes returns the bytes held at key. The second result is false if
// the key is absent or holds a non-Binary value.
func (d Document) Bytes(key string) ([]byte, bool) {
	v, ok := d[key]
	if !ok || v.Kind() != KindBinary {
		return nil, false
	}
	return v.Bytes(), true
}
