package faststring

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func strs(parts []FastString) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return out
}

func TestSplitByte(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, strs(New("a,b,c").SplitByte(',')))
	require.Equal(t, []string{"", "a", ""}, strs(New(",a,").SplitByte(',')))
	require.Equal(t, []string{"abc"}, strs(New("abc").SplitByte(',')))
	require.Equal(t, []string{""}, strs(FastString{}.SplitByte(',')))
}

func TestSplit(t *testing.T) {
	require.Equal(t, []string{"GET", "/", "HTTP/1.1"}, strs(New("GET\r\n/\r\nHTTP/1.1").SplitString("\r\n")))
	// non-overlapping: "aaa" split on "aa" leaves one trailing byte
	require.Equal(t, []string{"", "a"}, strs(New("aaa").SplitString("aa")))
	require.Equal(t, []string{"abc"}, strs(New("abc").Split(FastString{})))
	require.Equal(t, []string{"abc"}, strs(New("abc").SplitString("abcd")))
}

func TestSplitMatchesBytes(t *testing.T) {
	condition := func(h []byte, sep uint8) bool {
		for i := range h {
			h[i] %= 4
		}
		sep %= 4
		want := bytes.Split(h, []byte{sep})
		got := FromBytes(h).SplitByte(sep)
		if len(want) != len(got) {
			return false
		}
		for i := range want {
			if !EqualString(got[i], string(want[i])) {
				return false
			}
		}
		multi := FromBytes(h).Split(FromBytes([]byte{sep, sep}))
		return len(multi) == len(bytes.Split(h, []byte{sep, sep}))
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestSplitSharesMemory(t *testing.T) {
	b := []byte("ab,cd")
	parts := Wrap(b).SplitByte(',')
	b[3] = 'X'
	require.Equal(t, "Xd", parts[1].String())
}
