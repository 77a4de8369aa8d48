package charset

import (
	"errors"
	"unicode/utf8"
)

// Encode converts text to its UTF-8 byte encoding. Go strings may
// carry arbitrary bytes; Encode fails rather than silently
// substituting replacement characters if text is not well-formed
// UTF-8.
func Encode(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, errors.New("text is not well-formed UTF-8")
	}
	return []byte(text), nil
}
