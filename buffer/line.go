package buffer

// Line is an ordered, mutable sequence of runes. No line terminator is stored.
type Line struct {
	runes []rune
}

func NewLine(s string) Line {
	return Line{runes: []rune(s)}
}

func (l Line) Len() int { return len(l.runes) }

func (l Line) String() string { return string(l.runes) }

// Runes returns a copy of the line content.
func (l Line) Runes() []rune {
	return append([]rune(nil), l.runes...)
}

// Slice returns the runes in [start, end), with both bounds clamped into the line.
func (l Line) Slice(start, end int) []rune {
	start = clampInt(start, 0, len(l.runes))
	end = clampInt(end, start, len(l.runes))
	return append([]rune(nil), l.runes[start:end]...)
}

// InsertAt inserts r before index i. i is clamped to [0, Len()].
// It returns the index r was inserted at.
func (l *Line) InsertAt(i int, r rune) int {
	i = clampInt(i, 0, len(l.runes))
	l.runes = append(l.runes, 0)
	copy(l.runes[i+1:], l.runes[i:])
	l.runes[i] = r
	return i
}

// RemoveAt removes the rune at index i. i is clamped to [0, Len()-1].
// Removing from an empty line is a no-op and reports false.
func (l *Line) RemoveAt(i int) (rune, bool) {
	if len(l.runes) == 0 {
		return 0, false
	}
	i = clampInt(i, 0, len(l.runes)-1)
	r := l.runes[i]
	l.runes = append(l.runes[:i], l.runes[i+1:]...)
	return r, true
}
