package faststring

// Equal reports whether a and b hold the same bytes.
// Lengths are compared first; bytes are only inspected when they match.
func Equal(a, b FastString) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether a holds exactly the UTF-8 bytes of s.
// The length check uses len(s), the byte count, not the rune count.
func EqualString(a FastString, s string) bool {
	if a.Len() != len(s) {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.buf[i] != s[i] {
			return false
		}
	}
	return true
}

func (s FastString) Equal(other FastString) bool { return Equal(s, other) }

func (s FastString) EqualString(other string) bool { return EqualString(s, other) }
