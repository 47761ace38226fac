package faststring

import "github.com/rawbytedev/faststring/internal/common"

// NotFound is returned by every search that has no match.
const NotFound = -1

// SearchOptions selects scan direction and start index.
// When HasStart is false the default start for the direction is used.
type SearchOptions struct {
	Start    int
	HasStart bool
	Reverse  bool
}

func Forward() SearchOptions { return SearchOptions{} }

func Backward() SearchOptions { return SearchOptions{Reverse: true} }

// ForwardFrom scans upward starting at index i.
func ForwardFrom(i int) SearchOptions { return SearchOptions{Start: i, HasStart: true} }

// BackwardFrom scans downward starting at index i.
func BackwardFrom(i int) SearchOptions {
	return SearchOptions{Start: i, HasStart: true, Reverse: true}
}

// PositionByte returns the index of c, or NotFound.
//
// Forward scans start at 0 by default, backward scans at Len()-1. An
// explicit start outside [0, Len()) yields NotFound in either direction.
func (s FastString) PositionByte(c byte, opts SearchOptions) int {
	n := len(s.buf)
	if opts.Reverse {
		i := n - 1
		if opts.HasStart {
			if !common.InRange(opts.Start, n-1) {
				return NotFound
			}
			i = opts.Start
		}
		for ; i >= 0; i-- {
			if s.buf[i] == c {
				return i
			}
		}
		return NotFound
	}
	i := 0
	if opts.HasStart {
		if !common.InRange(opts.Start, n-1) {
			return NotFound
		}
		i = opts.Start
	}
	for ; i < n; i++ {
		if s.buf[i] == c {
			return i
		}
	}
	return NotFound
}

// Position returns the start index of needle, or NotFound.
//
// Candidate starts are limited to [0, Len()-needle.Len()]. The default
// start is 0 forward and Len()-needle.Len() in reverse; an explicit start
// outside that window yields NotFound rather than being clamped. An empty
// needle matches at the effective start.
func (s FastString) Position(needle FastString, opts SearchOptions) int {
	if len(s.buf) < len(needle.buf) {
		// needle longer than haystack
		return NotFound
	}
	last := len(s.buf) - len(needle.buf)
	if opts.Reverse {
		i := last
		if opts.HasStart {
			if !common.InRange(opts.Start, last) {
				// no room for a full needle starting at Start
				return NotFound
			}
			i = opts.Start
		}
		for ; i >= 0; i-- {
			if common.MatchAt(s.buf, needle.buf, i) {
				return i
			}
		}
		return NotFound
	}
	i := 0
	if opts.HasStart {
		if !common.InRange(opts.Start, last) {
			return NotFound
		}
		i = opts.Start
	}
	for ; i <= last; i++ {
		if common.MatchAt(s.buf, needle.buf, i) {
			return i
		}
	}
	return NotFound
}

// PositionString searches for the UTF-8 bytes of needle.
func (s FastString) PositionString(needle string, opts SearchOptions) int {
	return s.Position(Wrap([]byte(needle)), opts)
}

// PositionRune searches for the UTF-8 encoding of r. Invalid runes are
// encoded as U+FFFD.
func (s FastString) PositionRune(r rune, opts SearchOptions) int {
	return s.Position(fromRune(r), opts)
}

// PositionsByte returns every index of c in increasing order.
func (s FastString) PositionsByte(c byte) []int {
	result := []int{}
	p := s.PositionByte(c, Forward())
	for p != NotFound {
		result = append(result, p)
		p = s.PositionByte(c, ForwardFrom(p+1))
	}
	return result
}

// Positions returns every start index of needle in increasing order.
// Each search resumes one byte past the previous start, so overlapping
// occurrences are all reported.
func (s FastString) Positions(needle FastString) []int {
	result := []int{}
	p := s.Position(needle, Forward())
	for p != NotFound {
		result = append(result, p)
		p = s.Position(needle, ForwardFrom(p+1))
	}
	return result
}

func (s FastString) PositionsString(needle string) []int {
	return s.Positions(Wrap([]byte(needle)))
}

func (s FastString) PositionsRune(r rune) []int {
	return s.Positions(fromRune(r))
}

// Count returns the number of possibly overlapping occurrences of needle.
func (s FastString) Count(needle FastString) int {
	return len(s.Positions(needle))
}

func (s FastString) Contains(needle FastString) bool {
	return s.Position(needle, Forward()) != NotFound
}

func (s FastString) ContainsString(needle string) bool {
	return s.PositionString(needle, Forward()) != NotFound
}

func (s FastString) ContainsByte(c byte) bool {
	return s.PositionByte(c, Forward()) != NotFound
}

func (s FastString) ContainsRune(r rune) bool {
	return s.PositionRune(r, Forward()) != NotFound
}

// HasPrefix reports whether s begins with prefix. Every string has the
// empty prefix.
func (s FastString) HasPrefix(prefix FastString) bool {
	if prefix.Len() < 1 {
		return true
	}
	if len(s.buf) < prefix.Len() {
		return false
	}
	return common.MatchAt(s.buf, prefix.buf, 0)
}

func (s FastString) HasPrefixString(prefix string) bool {
	return s.HasPrefix(Wrap([]byte(prefix)))
}

// HasSuffix reports whether s ends with suffix. Every string has the
// empty suffix.
func (s FastString) HasSuffix(suffix FastString) bool {
	if len(s.buf) < suffix.Len() {
		return false
	}
	if suffix.Len() < 1 {
		return true
	}
	return common.MatchAt(s.buf, suffix.buf, len(s.buf)-suffix.Len())
}

func (s FastString) HasSuffixString(suffix string) bool {
	return s.HasSuffix(Wrap([]byte(suffix)))
}
