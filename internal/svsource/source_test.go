package svsource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlex/svlex/internal/svsource"
)

func TestFromString(t *testing.T) {
	buf := svsource.FromString("hi")
	require.Equal(t, 2, buf.End())
	require.Equal(t, byte('h'), buf.At(0))
	require.Equal(t, byte(0), buf.At(2), "the sentinel NUL")
	require.Equal(t, byte(0), buf.At(100), "reads past the sentinel are NUL, not a panic")
}

func TestNewBufferPanicsWithoutSentinel(t *testing.T) {
	require.Panics(t, func() {
		svsource.NewBuffer([]byte("no sentinel"))
	})
}

func TestFileTable(t *testing.T) {
	tbl := svsource.NewFileTable()
	a := tbl.Register("top.sv")
	b := tbl.Register("pkg.svh")

	require.NotEqual(t, a, b)
	require.Equal(t, "top.sv", tbl.Name(a))
	require.Equal(t, "pkg.svh", tbl.Name(b))
	require.Contains(t, tbl.Name(svsource.FileID(99)), "99")
}
