package htmlast

import "sort"

// Position is a 1-based line and column in the source buffer.
// Column counts runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// LineIndex maps rune offsets to 1-based line/column positions.
// It is built with one scan over the buffer and queried in O(log n);
// the pipeline builds one at most once per failed call.
type LineIndex struct {
	// starts[i] is the rune offset of the first character of line i+1.
	starts []int
	length int
}

// NewLineIndex builds a line index for the given buffer.
func NewLineIndex(src []rune) *LineIndex {
	starts := []int{0}
	for i, r := range src {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, length: len(src)}
}

// LineCount returns the number of lines in the buffer.
func (x *LineIndex) LineCount() int {
	return len(x.starts)
}

// At converts a rune offset to a 1-based position. Offsets at or past the
// end of the buffer map to the position just after the last character.
func (x *LineIndex) At(offset int) Position {
	if offset < 0 {
		return Position{}
	}
	if offset > x.length {
		offset = x.length
	}

	// Find the last line starting at or before offset.
	line := sort.Search(len(x.starts), func(i int) bool {
		return x.starts[i] > offset
	})

	return Position{Line: line, Column: offset - x.starts[line-1] + 1}
}

// LineSpan returns the half-open rune range of the 1-based line number,
// excluding the trailing newline. It returns (0, 0) when the line number is
// out of range.
func (x *LineIndex) LineSpan(line int) (start, end int) {
	if line < 1 || line > len(x.starts) {
		return 0, 0
	}
	start = x.starts[line-1]
	if line < len(x.starts) {
		end = x.starts[line] - 1
	} else {
		end = x.length
	}
	return start, end
}
