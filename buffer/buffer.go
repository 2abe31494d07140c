package buffer

import "strings"

// Buffer is the document: an ordered sequence of Lines.
type Buffer struct {
	lines   []Line
	version uint64
}

// New returns a buffer holding one Line per string.
func New(lines ...string) *Buffer {
	b := &Buffer{}
	b.Load(lines)
	return b
}

// Load appends one Line per input string, preserving order.
func (b *Buffer) Load(lines []string) {
	if len(lines) == 0 {
		return
	}
	for _, s := range lines {
		b.lines = append(b.lines, NewLine(s))
	}
	b.version++
}

func (b *Buffer) Len() int { return len(b.lines) }

func (b *Buffer) Version() uint64 { return b.version }

// Line returns a copy of the line at row.
func (b *Buffer) Line(row int) (Line, bool) {
	if row < 0 || row >= len(b.lines) {
		return Line{}, false
	}
	return Line{runes: b.lines[row].Runes()}, true
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].Len()
}

// LineSlice returns the runes of row in [start, end), clamped into the line.
func (b *Buffer) LineSlice(row, start, end int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row].Slice(start, end)
}

// Lines returns the document as strings, one per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}

// ClampPos clamps p into the current document bounds.
func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}
