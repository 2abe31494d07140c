package buffer

// InsertChar inserts ch before col on row. col is clamped to [0, LineLen(row)].
//
// It returns the position immediately after the inserted rune. ok is false
// when row is out of range; the buffer is left untouched in that case.
func (b *Buffer) InsertChar(row, col int, ch rune) (next Pos, ok bool) {
	if row < 0 || row >= len(b.lines) {
		return Pos{Row: row, Col: col}, false
	}
	at := b.lines[row].InsertAt(col, ch)
	b.version++
	return Pos{Row: row, Col: at + 1}, true
}

// InsertString inserts s rune by rune starting at col on row.
func (b *Buffer) InsertString(row, col int, s string) (next Pos, ok bool) {
	next = Pos{Row: row, Col: col}
	for _, r := range s {
		p, inserted := b.InsertChar(next.Row, next.Col, r)
		if !inserted {
			return next, ok
		}
		next, ok = p, true
	}
	return next, ok
}

// RemoveCharBefore applies backspace semantics: it removes the rune
// immediately before col on row. col is clamped to [0, LineLen(row)] first.
//
// col == 0 is a no-op: lines are never joined.
func (b *Buffer) RemoveCharBefore(row, col int) (next Pos, ok bool) {
	if row < 0 || row >= len(b.lines) {
		return Pos{Row: row, Col: col}, false
	}
	col = clampInt(col, 0, b.lines[row].Len())
	if col == 0 {
		return Pos{Row: row, Col: 0}, false
	}
	if _, removed := b.lines[row].RemoveAt(col - 1); !removed {
		return Pos{Row: row, Col: col}, false
	}
	b.version++
	return Pos{Row: row, Col: col - 1}, true
}
