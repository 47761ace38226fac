package faststring

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualBasics(t *testing.T) {
	require.True(t, Equal(FastString{}, New("")))
	require.True(t, Equal(New("abc"), FromBytes([]byte("abc"))))
	require.False(t, Equal(New("abc"), New("abd")))
	require.False(t, Equal(New("abc"), New("abcd")))
	require.False(t, New("a").Equal(New("")))
	require.True(t, New("\x00\xff").Equal(Wrap([]byte{0x00, 0xff})))
}

func TestEqualString(t *testing.T) {
	require.True(t, EqualString(FastString{}, ""))
	require.True(t, New("héllo").EqualString("héllo"))
	// "é" is two bytes; a one-byte string of the same rune count must not match
	require.False(t, New("é").EqualString("e"))
	require.False(t, FromBytes([]byte{0xc3}).EqualString("é"))
	require.False(t, New("abc").EqualString("abc\x00"))
}

func TestEqualLaws(t *testing.T) {
	reflexive := func(a []byte) bool {
		s := FromBytes(a)
		return Equal(s, s) && Equal(s, FromBytes(a))
	}
	require.NoError(t, quick.Check(reflexive, &quick.Config{}))

	symmetric := func(a, b []byte) bool {
		x, y := FromBytes(a), FromBytes(b)
		return Equal(x, y) == Equal(y, x)
	}
	require.NoError(t, quick.Check(symmetric, &quick.Config{}))

	matchesBytes := func(a, b []byte) bool {
		return Equal(FromBytes(a), FromBytes(b)) == bytes.Equal(a, b)
	}
	require.NoError(t, quick.Check(matchesBytes, &quick.Config{}))

	// short inputs so equal pairs actually occur
	transitive := func(a, b, c uint8) bool {
		x, y, z := FromBytes([]byte{a % 2}), FromBytes([]byte{b % 2}), FromBytes([]byte{c % 2})
		if Equal(x, y) && Equal(y, z) {
			return Equal(x, z)
		}
		return true
	}
	require.NoError(t, quick.Check(transitive, &quick.Config{}))
}

func TestEqualStringMatchesUTF8Bytes(t *testing.T) {
	condition := func(a []byte, s string) bool {
		return EqualString(FromBytes(a), s) == bytes.Equal(a, []byte(s)) &&
			New(s).EqualString(s)
	}
	err := quick.Check(condition, &quick.Config{})
	assert.NoError(t, err)
}
