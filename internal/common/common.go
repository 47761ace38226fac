package common

// MatchAt reports whether needle occurs in hay starting at i.
// Callers guarantee 0 <= i and i+len(needle) <= len(hay).
// The scan stops at the first mismatching byte.
func MatchAt(hay, needle []byte, i int) bool {
	match := true
	for j, c := range needle {
		if hay[i+j] != c {
			match = false
			break
		}
	}
	return match
}

// InRange reports whether 0 <= i <= hi.
func InRange(i, hi int) bool {
	return i >= 0 && i <= hi
}

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [10]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A zero byte count means b ended before the varint did.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == 10 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
