package classify

import "testing"

func TestIsIdentifierStart(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{'a', true}, {'Z', true}, {'_', true},
		{'0', false}, {'$', false}, {' ', false},
	}
	for _, c := range cases {
		if got := IsIdentifierStart(c.b); got != c.want {
			t.Errorf("IsIdentifierStart(%q) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestIsIdentifierChar(t *testing.T) {
	for _, b := range []byte{'a', '9', '_', '$'} {
		if !IsIdentifierChar(b) {
			t.Errorf("IsIdentifierChar(%q) = false, want true", b)
		}
	}
	if IsIdentifierChar(' ') {
		t.Error("IsIdentifierChar(' ') = true, want false")
	}
}

func TestBaseDigitValue(t *testing.T) {
	cases := []struct {
		b    byte
		base int
		want int
	}{
		{'0', 2, 0}, {'1', 2, 1}, {'2', 2, -1},
		{'7', 8, 7}, {'8', 8, -1},
		{'9', 10, 9}, {'a', 10, -1},
		{'f', 16, 15}, {'F', 16, 15}, {'g', 16, -1},
	}
	for _, c := range cases {
		if got := BaseDigitValue(c.b, c.base); got != c.want {
			t.Errorf("BaseDigitValue(%q, %d) = %d, want %d", c.b, c.base, got, c.want)
		}
	}
}

func TestIsLogicDigit(t *testing.T) {
	for _, b := range []byte{'x', 'X', 'z', 'Z', '?'} {
		if !IsLogicDigit(b) {
			t.Errorf("IsLogicDigit(%q) = false, want true", b)
		}
	}
	if IsLogicDigit('0') {
		t.Error("IsLogicDigit('0') = true, want false")
	}
}

func TestUTF8SequenceLength(t *testing.T) {
	cases := []struct {
		lead byte
		want int
	}{
		{0x41, 1},
		{0xC2, 2},
		{0xE2, 3},
		{0xF0, 4},
		{0x80, 1}, // stray continuation byte
	}
	for _, c := range cases {
		if got := UTF8SequenceLength(c.lead); got != c.want {
			t.Errorf("UTF8SequenceLength(0x%02X) = %d, want %d", c.lead, got, c.want)
		}
	}
}

func TestIsPrintable(t *testing.T) {
	if !IsPrintable('a') {
		t.Error("'a' should be printable")
	}
	if IsPrintable(' ') || IsPrintable(0x7F) || IsPrintable(0) {
		t.Error("whitespace, DEL, and NUL should not be printable")
	}
}
