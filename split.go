package faststring

// SplitByte slices s around each occurrence of sep. The pieces share
// memory with s. An empty s yields a single empty piece.
func (s FastString) SplitByte(sep byte) []FastString {
	var parts []FastString
	from := 0
	p := s.PositionByte(sep, Forward())
	for p != NotFound {
		parts = append(parts, s.slice(from, p))
		from = p + 1
		p = s.PositionByte(sep, ForwardFrom(from))
	}
	return append(parts, s.slice(from, s.Len()))
}

// Split slices s around each non-overlapping occurrence of sep, resuming
// after the end of every match. An empty sep returns s as the only piece.
func (s FastString) Split(sep FastString) []FastString {
	if sep.IsEmpty() {
		return []FastString{s}
	}
	var parts []FastString
	from := 0
	p := s.Position(sep, Forward())
	for p != NotFound {
		parts = append(parts, s.slice(from, p))
		from = p + sep.Len()
		p = s.Position(sep, ForwardFrom(from))
	}
	return append(parts, s.slice(from, s.Len()))
}

func (s FastString) SplitString(sep string) []FastString {
	return s.Split(Wrap([]byte(sep)))
}
