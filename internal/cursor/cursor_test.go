package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlex/svlex/internal/cursor"
	"github.com/svlex/svlex/internal/svsource"
)

func TestCursorPeekAdvance(t *testing.T) {
	buf := svsource.FromString("ab")
	c := cursor.New(buf)

	require.Equal(t, byte('a'), c.Peek(0))
	require.Equal(t, byte('b'), c.Peek(1))
	require.Equal(t, byte(0), c.Peek(2), "past the sentinel reads as NUL")

	c.Advance(1)
	require.Equal(t, 1, c.Pos())
	require.Equal(t, byte('b'), c.Peek(0))

	c.Advance(10)
	require.True(t, c.ReallyAtEnd(), "Advance never overshoots the sentinel")
	require.Equal(t, buf.End(), c.Pos())
}

func TestCursorConsume(t *testing.T) {
	buf := svsource.FromString("x=")
	c := cursor.New(buf)

	require.False(t, c.Consume('='), "Consume must not advance on a mismatch")
	require.Equal(t, 0, c.Pos())

	require.True(t, c.Consume('x'))
	require.Equal(t, 1, c.Pos())
}

func TestCursorMarkAndLexeme(t *testing.T) {
	buf := svsource.FromString("hello world")
	c := cursor.New(buf)

	c.Mark()
	for i := 0; i < 5; i++ {
		c.Advance(1)
	}
	require.Equal(t, "hello", string(c.Lexeme()))
	require.Equal(t, 0, c.MarkPos())
}
