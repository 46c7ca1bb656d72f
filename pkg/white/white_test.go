//
package white_test

import (
	"testing"

	. "github.com/andrew-torda/cvtree/pkg/white"
)

// TestWhiteRemove
func TestWhiteRemove(t *testing.T) {
	ss := []string{
		"abcdefghijk",
		" a b c d e f g h i j k",
		"a b c de fgh ijk",
		"   abcdefghijk    ",
		"a   b      cdefghijk\n ",
		"a  b  c  d   e    f     ghijk",
		"a bcdefghij \r\n  k",
		"abcdefghij\nk",
	}
	for _, s := range ss {
		b := []byte(s)
		Remove(&b)
		if string(b) != "abcdefghijk" {
			t.Fatalf("white remove broke on \"%s\"", s)
		}
	}
}

func TestIsWhite(t *testing.T) {
	for _, c := range []byte(" \t\n\r\v\f") {
		if !IsWhite(c) {
			t.Fatalf("%q should be white", c)
		}
	}
	for _, c := range []byte("A>-z0") {
		if IsWhite(c) {
			t.Fatalf("%q should not be white", c)
		}
	}
}
