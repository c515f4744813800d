package diag

import "sort"

// LineTable translates byte offsets into 1-based line/column pairs.
// It is built once per source buffer and answers lookups by binary
// search over the recorded newline offsets, rather than rescanning the
// buffer on every diagnostic the way a single linear pass would.
//
// Grounded on the line/column translation the teacher computes lazily
// in internal/module.spanToLineCol; here it is precomputed at
// construction since the lexer calls it once per diagnostic instead of
// once per whole-file batch.
type LineTable struct {
	// newlineOffsets[i] is the byte offset of the i-th '\n' in the source.
	newlineOffsets []ByteOffset
}

// NewLineTable scans source once and records every newline offset.
func NewLineTable(source []byte) *LineTable {
	lt := &LineTable{}
	for i, b := range source {
		if b == '\n' {
			lt.newlineOffsets = append(lt.newlineOffsets, ByteOffset(i))
		}
	}
	return lt
}

// LineCol returns the 1-based line and column for a byte offset.
func (lt *LineTable) LineCol(offset ByteOffset) (line, column int) {
	// Number of newlines strictly before offset gives the 0-based line index.
	idx := sort.Search(len(lt.newlineOffsets), func(i int) bool {
		return lt.newlineOffsets[i] >= offset
	})
	line = idx + 1
	var lineStart ByteOffset
	if idx > 0 {
		lineStart = lt.newlineOffsets[idx-1] + 1
	}
	column = int(offset-lineStart) + 1
	return line, column
}

// Resolve fills in Line/Column on a Span from its Start offset.
func (lt *LineTable) Resolve(span Span) Span {
	span.Line, span.Column = lt.LineCol(span.Start)
	return span
}
