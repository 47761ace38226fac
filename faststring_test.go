package faststring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstruction(t *testing.T) {
	var zero FastString
	require.Equal(t, 0, zero.Len())
	require.True(t, zero.IsEmpty())
	require.Equal(t, "", zero.String())

	s := New("héllo")
	require.Equal(t, 6, s.Len())
	require.Equal(t, byte('h'), s.At(0))
	require.Equal(t, byte(0xc3), s.At(1))
	require.Equal(t, "héllo", s.String())
	require.Panics(t, func() { s.At(6) })
	require.Panics(t, func() { s.At(-1) })
}

func TestFromBytesCopies(t *testing.T) {
	b := []byte("abc")
	s := FromBytes(b)
	b[0] = 'x'
	require.Equal(t, "abc", s.String())

	out := s.Bytes()
	out[1] = 'x'
	require.Equal(t, "abc", s.String())
}

func TestWrapAliases(t *testing.T) {
	b := []byte("abc")
	s := Wrap(b)
	b[0] = 'x'
	require.Equal(t, "xbc", s.String())
	require.Equal(t, []byte("pre-xbc"), s.AppendTo([]byte("pre-")))
}
