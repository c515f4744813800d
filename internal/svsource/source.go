// Package svsource holds the source buffer and file-identity types the
// lexer is bound to. The full file tracker that maps file identifiers
// to on-disk paths across an entire compilation is an external
// collaborator (spec section 1, "out of scope"); this package only
// keeps the minimal slice the lexer itself needs: a stable handle a
// diagnostic can carry, and the byte buffer it was constructed from.
package svsource

import "fmt"

// FileID identifies a source file within a compilation. The lexer
// treats it as an opaque handle; the preprocessor/driver owns the
// mapping from FileID to a real path.
type FileID uint32

// FileTable is a minimal registry from FileID to display name, enough
// for diagnostics to report a filename without the lexer depending on
// a filesystem. A complete preprocessor/driver would own a much richer
// version of this (include search paths, canonicalization, content
// hashing); that machinery lives outside this lexer's scope.
type FileTable struct {
	names []string
}

// NewFileTable returns an empty file table.
func NewFileTable() *FileTable {
	return &FileTable{}
}

// Register assigns a new FileID to name and returns it.
func (t *FileTable) Register(name string) FileID {
	t.names = append(t.names, name)
	return FileID(len(t.names) - 1)
}

// Name returns the display name for id, or a synthetic placeholder if
// the id is unknown.
func (t *FileTable) Name(id FileID) string {
	if int(id) < 0 || int(id) >= len(t.names) {
		return fmt.Sprintf("<file %d>", id)
	}
	return t.names[id]
}

// Buffer is an immutable, NUL-terminated byte sequence. The trailing
// NUL is part of the buffer and serves as an end sentinel; it is a
// construction precondition, not a runtime-recovered error, matching
// spec section 3's invariant on SourceBuffer.
type Buffer struct {
	data []byte // includes the trailing NUL sentinel
	end  int    // index of the sentinel == len(data)-1
}

// NewBuffer wraps already NUL-terminated bytes. It panics if the input
// does not end in a NUL byte, since that precondition is the caller's
// responsibility to establish (typically by appending one NUL when
// reading a file into memory).
func NewBuffer(data []byte) *Buffer {
	if len(data) == 0 || data[len(data)-1] != 0 {
		panic("svsource: buffer must be NUL-terminated")
	}
	return &Buffer{data: data, end: len(data) - 1}
}

// FromString builds a NUL-terminated Buffer from a string, appending
// the sentinel automatically. This is the common case for tests and
// for callers that already have source text in memory.
func FromString(s string) *Buffer {
	data := make([]byte, len(s)+1)
	copy(data, s)
	return NewBuffer(data)
}

// Bytes returns the full backing slice, including the trailing NUL sentinel.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// End returns the index of the NUL sentinel, i.e. the logical length
// of the source text excluding the sentinel itself.
func (b *Buffer) End() int {
	return b.end
}

// At returns the byte at i, or 0 if i is beyond the sentinel.
func (b *Buffer) At(i int) byte {
	if i < 0 || i >= len(b.data) {
		return 0
	}
	return b.data[i]
}
