// Package classify holds the character predicates and digit-value
// extractors the lexer's cursor and scanners dispatch on (spec section
// 4.1). All predicates operate on a single byte; SystemVerilog source
// identifiers are restricted to ASCII, so byte-level classification is
// sufficient and keeps the hot path allocation-free.
package classify

// IsASCII reports whether b is a 7-bit ASCII byte.
func IsASCII(b byte) bool {
	return b < 0x80
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsDecimalDigit reports whether b is 0-9.
func IsDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsOctalDigit reports whether b is 0-7.
func IsOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsBinaryDigit reports whether b is 0 or 1.
func IsBinaryDigit(b byte) bool {
	return b == '0' || b == '1'
}

// IsLogicDigit reports whether b is a four-valued logic digit
// placeholder: x, X, z, Z, or ?.
func IsLogicDigit(b byte) bool {
	switch b {
	case 'x', 'X', 'z', 'Z', '?':
		return true
	default:
		return false
	}
}

// IsIdentifierStart reports whether b can start a plain identifier.
func IsIdentifierStart(b byte) bool {
	return IsAlpha(b) || b == '_'
}

// IsIdentifierChar reports whether b can continue a plain identifier body.
func IsIdentifierChar(b byte) bool {
	return IsAlpha(b) || IsDecimalDigit(b) || b == '_' || b == '$'
}

// IsHorizontalWhitespace reports whether b is a space or tab.
func IsHorizontalWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsNewlineStart reports whether b begins a line-ending sequence.
func IsNewlineStart(b byte) bool {
	return b == '\n' || b == '\r'
}

// IsPrintable reports whether b is a printable, non-whitespace ASCII
// character (the range used to validate escaped-identifier bodies).
func IsPrintable(b byte) bool {
	return b > 0x20 && b < 0x7F
}

// DecimalValue returns the numeric value of an ASCII decimal digit, or
// -1 if b is not one.
func DecimalValue(b byte) int {
	if IsDecimalDigit(b) {
		return int(b - '0')
	}
	return -1
}

// HexValue returns the numeric value (0-15) of an ASCII hex digit, or
// -1 if b is not one.
func HexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// BaseDigitValue returns the numeric value of b in the given base
// (2, 8, 10, or 16), or -1 if b is not a valid digit in that base.
func BaseDigitValue(b byte, base int) int {
	v := HexValue(b)
	if v < 0 || v >= base {
		return -1
	}
	return v
}

// UTF8SequenceLength estimates the byte length of a UTF-8 sequence
// from its lead byte, for skipping past malformed non-ASCII input
// after it has been diagnosed. Returns 1 for continuation or invalid
// lead bytes so the cursor always advances by at least one byte.
func UTF8SequenceLength(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
