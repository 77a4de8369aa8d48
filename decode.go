package rdpfile

import (
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/timi2506/rdpfile/charset"
)

// Decode parses the raw bytes of an RDP file into a Document. The
// text encoding is detected by trying UTF-16 little-endian, UTF-8 and
// byte-order-mark-sensitive UTF-16 in that order, taking the first
// that decodes the whole input; if none does, Decode fails with
// [ErrInvalidFile].
//
// The little-endian-first order matches the files the standard
// Windows client writes, but it means an even number of pure ASCII
// bytes can sniff as UTF-16 and then fail to parse. Callers that
// already hold text should use [DecodeString] and skip detection.
func Decode(data []byte) (Document, error) {
	text, err := charset.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return DecodeString(text)
}

// DecodeString parses RDP file text into a Document.
//
// A leading byte order mark is ignored, and "\r\n" and bare "\r" are
// accepted as line separators. Each remaining line is trimmed of
// surrounding whitespace and, if nonempty, must have the form
// "key:tag:value" (or "key:tag" for an omitted Text value). Colons
// after the second are part of the value. A key that repeats
// overwrites its earlier value.
//
// Decoding is atomic: the first malformed line fails the whole call
// with [ErrInvalidFile] or [ErrInvalidString] and no Document is
// returned.
func DecodeString(text string) (Document, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	doc := Document{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, val, err := decodeLine(line)
		if err != nil {
			return nil, err
		}
		debugDecode("%q -> %s %q", key, val.Kind(), val)
		doc[key] = val
	}
	return doc, nil
}

// decodeLine splits one nonempty, trimmed line into its key and
// value. The first two ':' delimit the fields; the value field is
// absent when the line has no second ':'.
func decodeLine(line string) (string, Value, error) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 2 {
		return "", Value{}, fmt.Errorf("line %q is not key:type:value: %w", line, ErrInvalidFile)
	}
	if len(parts[1]) != 1 {
		return "", Value{}, fmt.Errorf("line %q: type tag %q: %w", line, parts[1], ErrInvalidFile)
	}
	kind, ok := tagToKind[parts[1][0]]
	if !ok {
		return "", Value{}, fmt.Errorf("line %q: type tag %q: %w", line, parts[1], ErrInvalidFile)
	}

	field, present := "", false
	if len(parts) == 3 {
		field, present = parts[2], true
	}
	val, err := decodeField(kind, field, present)
	if err != nil {
		return "", Value{}, fmt.Errorf("line %q: %w", line, err)
	}
	return parts[0], val, nil
}

// decodeField parses a value field under the given kind. present
// distinguishes an absent field (a two-part line) from an empty one;
// only Text treats an absent field as a value.
func decodeField(kind Kind, field string, present bool) (Value, error) {
	switch kind {
	case KindText:
		return Text(field), nil
	case KindInteger:
		if !present {
			return Value{}, fmt.Errorf("integer needs a value field: %w", ErrInvalidString)
		}
		return decodeInteger(field)
	case KindBinary:
		if !present {
			return Value{}, fmt.Errorf("binary needs a value field: %w", ErrInvalidString)
		}
		return decodeBinary(field)
	}
	debugDecode("no decoder for kind %d", kind)
	return Value{}, ErrUnknown
}

// decodeInteger parses a base-10 signed integer literal: an optional
// leading '-' followed by decimal digits, within int64 range. A
// leading '+' is not part of the grammar.
func decodeInteger(field string) (Value, error) {
	if strings.HasPrefix(field, "+") {
		return Value{}, fmt.Errorf("integer %q: %w", field, ErrInvalidString)
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("integer %q: %w", field, ErrInvalidString)
	}
	return Integer(n), nil
}

// decodeBinary parses hex pairs into bytes, most significant nibble
// first. Space characters may separate the digits and are removed
// before decoding; what remains must be an even number of hex digits,
// in either case.
func decodeBinary(field string) (Value, error) {
	bs, err := hex.DecodeString(strings.ReplaceAll(field, " ", ""))
	if err != nil {
		return Value{}, fmt.Errorf("hex %q: %w", field, ErrInvalidString)
	}
	return Binary(bs), nil
}

const debugDecoding = false

func debugDecode(msg string, args ...any) {
	if !debugDecoding {
		return
	}
	log.Printf(msg, args...)
}
