// Package cursor implements the lexer's position tracking: current
// read position, mark (lexeme start), and lexeme extraction over an
// immutable source buffer (spec section 4.1).
package cursor

import "github.com/svlex/svlex/internal/svsource"

// Cursor tracks a read position within a source buffer. It never
// advances past the end sentinel; ReallyAtEnd is the sole authority
// for termination (spec section 3, invariant 1).
type Cursor struct {
	buf  *svsource.Buffer
	pos  int
	mark int
}

// New creates a cursor positioned at the start of buf.
func New(buf *svsource.Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Peek returns the byte at offset k from the current position, or NUL
// if that position is beyond the end sentinel.
func (c *Cursor) Peek(k int) byte {
	return c.buf.At(c.pos + k)
}

// Advance moves the cursor forward by n bytes, never past the sentinel.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > c.buf.End() {
		c.pos = c.buf.End()
	}
}

// Consume advances by one byte iff the current byte equals want,
// reporting whether it did.
func (c *Cursor) Consume(want byte) bool {
	if c.Peek(0) != want {
		return false
	}
	c.Advance(1)
	return true
}

// Mark snapshots the current position as the start of the next lexeme.
func (c *Cursor) Mark() {
	c.mark = c.pos
}

// MarkPos returns the position saved by the last call to Mark.
func (c *Cursor) MarkPos() int {
	return c.mark
}

// Lexeme returns the half-open byte range [mark, pos) as a slice
// aliasing the source buffer. The caller must intern it (via
// arena.InternBytes) before retaining it beyond token construction if
// it needs to outlive the buffer or differ from the raw source.
func (c *Cursor) Lexeme() []byte {
	return c.buf.Bytes()[c.mark:c.pos]
}

// ReallyAtEnd reports whether the cursor has reached the end sentinel.
// This is the sole termination authority (spec section 3, invariant 1).
func (c *Cursor) ReallyAtEnd() bool {
	return c.pos >= c.buf.End()
}
