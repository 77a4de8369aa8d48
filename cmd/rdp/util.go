package main

import (
	"fmt"
	"os"

	"github.com/timi2506/rdpfile"
)

// readDocument loads and decodes one connection file.
func readDocument(path string) (rdpfile.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := rdpfile.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// writeDocument writes doc to path in canonical form.
func writeDocument(path string, doc rdpfile.Document) error {
	bs, err := rdpfile.Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, bs, 0644)
}

// convertFile rewrites the connection file at in canonically at out.
// in and out may be the same path.
func convertFile(in, out string) error {
	doc, err := readDocument(in)
	if err != nil {
		return err
	}
	return writeDocument(out, doc)
}

// jsonValue maps a Value to what the --json flag prints for it:
// integers as numbers, text as strings, binary as uppercase hex.
func jsonValue(v rdpfile.Value) any {
	switch v.Kind() {
	case rdpfile.KindInteger:
		return v.Int()
	case rdpfile.KindBinary:
		return v.String()
	default:
		return v.Text()
	}
}

func growTo(s []string, n int) []string {
	for len(s) < n {
		s = append(s, "")
	}
	return s
}
