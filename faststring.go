// Package faststring is a byte-exact string type with byte-wise equality and
// naive forward/backward search. A character is one raw byte.
package faststring

import "unicode/utf8"

// FastString is an immutable sequence of raw bytes. A "character" is one
// byte; nothing here decodes UTF-8 except the rune helpers, which only
// encode their argument before searching.
//
// The zero value is the empty string.
type FastString struct {
	buf []byte
}

// New copies the UTF-8 bytes of s.
func New(s string) FastString {
	if len(s) == 0 {
		return FastString{}
	}
	return FastString{buf: []byte(s)}
}

// FromBytes copies b.
func FromBytes(b []byte) FastString {
	if len(b) == 0 {
		return FastString{}
	}
	return FastString{buf: cloneBytes(b)}
}

// Wrap returns a view over b without copying; caller must ensure b is not
// modified while the FastString (or anything split from it) is in use.
func Wrap(b []byte) FastString {
	return FastString{buf: b}
}

func fromRune(r rune) FastString {
	var scratch [utf8.UTFMax]byte
	n := utf8.EncodeRune(scratch[:], r)
	return FromBytes(scratch[:n])
}

// Len returns the number of bytes.
func (s FastString) Len() int { return len(s.buf) }

func (s FastString) IsEmpty() bool { return len(s.buf) == 0 }

// At returns the i-th byte. It panics if i is outside [0, Len()).
func (s FastString) At(i int) byte { return s.buf[i] }

// Bytes returns a copy of the underlying bytes.
func (s FastString) Bytes() []byte { return cloneBytes(s.buf) }

func (s FastString) String() string { return string(s.buf) }

// AppendTo appends the bytes of s to dst.
func (s FastString) AppendTo(dst []byte) []byte { return append(dst, s.buf...) }

// slice returns a zero-copy sub-view [i, j).
func (s FastString) slice(i, j int) FastString {
	return FastString{buf: s.buf[i:j:j]}
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
