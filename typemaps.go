package rdpfile

var (
	// tagToKind maps the one-character type tag of a file record to
	// the value kind it selects.
	tagToKind = map[byte]Kind{
		'i': KindInteger,
		's': KindText,
		'b': KindBinary,
	}

	// kindToTag is the inverse of tagToKind.
	kindToTag = map[Kind]byte{
		KindInteger: 'i',
		KindText:    's',
		KindBinary:  'b',
	}
)
