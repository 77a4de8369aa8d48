package rdpfile

import "testing"

func TestTagTables(t *testing.T) {
	for tag, kind := range tagToKind {
		if got := kindToTag[kind]; got != tag {
			t.Errorf("kindToTag[%v] = %q, want %q", kind, got, tag)
		}
	}

	for kind, tag := range kindToTag {
		if got := tagToKind[tag]; got != kind {
			t.Errorf("tagToKind[%q] = %v, want %v", tag, got, kind)
		}
	}

	for _, kind := range []Kind{KindText, KindInteger, KindBinary} {
		if _, ok := kindToTag[kind]; !ok {
			t.Errorf("kindToTag[%v] is missing", kind)
		}
	}
}
