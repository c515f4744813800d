package svsource

// BOM is the byte-order-mark kind detected at offset 0 of a buffer.
type BOM int

const (
	BOMNone BOM = iota
	BOMUTF16LE
	BOMUTF16BE
	BOMUTF8
)

// DetectBOM inspects the first bytes of data for a byte-order mark.
// Only a BOM at offset 0 is recognized; later occurrences of the same
// byte sequences are ordinary characters (spec section 6, "Tri-valued
// BOM handling"). Returns the BOM kind and the number of bytes to skip.
func DetectBOM(data []byte) (kind BOM, skip int) {
	switch {
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return BOMUTF16LE, 2
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return BOMUTF16BE, 2
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return BOMUTF8, 3
	default:
		return BOMNone, 0
	}
}
