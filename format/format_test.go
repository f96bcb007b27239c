package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		pf, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if pf != f {
			t.Errorf("expected %s, got %s", f, pf)
		}
		sf, err := FromPath("x" + f.Suffix())
		if err != nil || sf != f {
			t.Errorf("FromPath(%s): %s %v", f.Suffix(), sf, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
	if _, err := FromPath("noext"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("YML")); err != nil || f != YAMLFormat {
		t.Errorf("UnmarshalText: %s %v", f, err)
	}
}
