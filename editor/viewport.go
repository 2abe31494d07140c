package editor

import (
	"fmt"

	"github.com/iw2rmb/fred/buffer"
)

// Viewport is the visible slice of the buffer as two half-open ranges in
// buffer coordinates: lines [VStart, VEnd) and columns [HStart, HEnd).
type Viewport struct {
	VStart, VEnd int
	HStart, HEnd int
}

// Lines returns the number of buffer lines in the vertical window.
func (v Viewport) Lines() int { return v.VEnd - v.VStart }

// Columns returns the width of the horizontal window.
func (v Viewport) Columns() int { return v.HEnd - v.HStart }

func (v Viewport) ContainsLine(line int) bool { return line >= v.VStart && line < v.VEnd }

func (v Viewport) String() string {
	return fmt.Sprintf("V: [%d, %d) | H: [%d, %d)", v.VStart, v.VEnd, v.HStart, v.HEnd)
}

// rows is the number of interior (text) rows; the last terminal row is
// reserved for the status line.
func (st *State) rows() int {
	if st.height-1 < 1 {
		return 1
	}
	return st.height - 1
}

// textWidth is the number of columns left of the gutter.
func (st *State) textWidth() int {
	w := st.width - st.gutterWidth()
	if w < 1 {
		return 1
	}
	return w
}

// screenRow is the cursor's 0-based row inside the viewport.
func (st *State) screenRow() int { return st.cursor.Row - st.vp.VStart }

// setVertical anchors the vertical window at start and sizes it to the
// screen, clamped to the buffer.
func (st *State) setVertical(start int) {
	n := st.buf.Len()
	if start > n {
		start = n
	}
	if start < 0 {
		start = 0
	}
	end := start + st.rows()
	if end > n {
		end = n
	}
	st.vp.VStart, st.vp.VEnd = start, end
}

// followColumn shifts the horizontal window so the cursor column is visible.
// It reports RedrawFull when the window moved.
func (st *State) followColumn() Redraw {
	w := st.textWidth()
	start := st.vp.HStart
	switch {
	case st.cursor.Col < start:
		start = st.cursor.Col
	case st.cursor.Col >= start+w:
		start = st.cursor.Col - w + 1
	}
	if start < 0 {
		start = 0
	}
	moved := start != st.vp.HStart || st.vp.HEnd != start+w
	st.vp.HStart, st.vp.HEnd = start, start+w
	if moved {
		return RedrawFull
	}
	return RedrawNone
}

// clampColumn keeps the cursor column inside the current line.
func (st *State) clampColumn() Redraw {
	if n := st.buf.LineLen(st.cursor.Row); st.cursor.Col > n {
		st.cursor.Col = n
	}
	if st.cursor.Col < 0 {
		st.cursor.Col = 0
	}
	return st.followColumn()
}

// moveDown moves the cursor one line down. Inside the window only the status
// line changes; on the last interior row the window shifts by one line.
func (st *State) moveDown() Redraw {
	if st.cursor.Row+1 >= st.buf.Len() {
		return RedrawNone
	}
	redraw := RedrawStatus
	if st.screenRow() >= st.rows()-1 {
		st.setVertical(st.vp.VStart + 1)
		redraw = RedrawFull
	}
	st.cursor.Row++
	return redraw.Merge(st.clampColumn())
}

// moveUp mirrors moveDown.
func (st *State) moveUp() Redraw {
	if st.cursor.Row == 0 {
		return RedrawNone
	}
	redraw := RedrawStatus
	if st.screenRow() <= 0 && st.vp.VStart > 0 {
		st.setVertical(st.vp.VStart - 1)
		redraw = RedrawFull
	}
	st.cursor.Row--
	return redraw.Merge(st.clampColumn())
}

func (st *State) moveLeft() Redraw {
	if st.cursor.Col == 0 {
		return RedrawNone
	}
	st.cursor.Col--
	return RedrawCursor.Merge(st.followColumn())
}

func (st *State) moveRight() Redraw {
	if st.cursor.Col >= st.buf.LineLen(st.cursor.Row) {
		return RedrawNone
	}
	st.cursor.Col++
	return RedrawCursor.Merge(st.followColumn())
}

// gotoTop resets the window to the first screenful and puts the cursor on
// the first line, keeping its column where the line allows.
func (st *State) gotoTop() Redraw {
	st.setVertical(0)
	st.cursor.Row = 0
	st.clampColumn()
	return RedrawFull
}

// gotoBottom shows the last screenful and puts the cursor on the last line.
// Buffers shorter than the screen anchor the window at line 0.
func (st *State) gotoBottom() Redraw {
	n := st.buf.Len()
	start := n - st.rows()
	if start < 0 {
		start = 0
	}
	st.setVertical(start)
	st.cursor.Row = n - 1
	if st.cursor.Row < 0 {
		st.cursor.Row = 0
	}
	st.clampColumn()
	return RedrawFull
}

// jumpTo places the cursor at p, clamped into the buffer and the vertical
// window. The vertical window does not move.
func (st *State) jumpTo(p buffer.Pos) Redraw {
	p = st.buf.ClampPos(p)
	if p.Row < st.vp.VStart {
		p.Row = st.vp.VStart
	}
	if p.Row >= st.vp.VEnd {
		p.Row = st.vp.VEnd - 1
	}
	if p == st.cursor {
		return RedrawNone
	}
	redraw := RedrawCursor
	if p.Row != st.cursor.Row {
		redraw = RedrawStatus
	}
	st.cursor = p
	return redraw.Merge(st.clampColumn())
}

// reanchor restores the viewport invariants after a size change.
func (st *State) reanchor() {
	start := st.vp.VStart
	rows := st.rows()
	if st.cursor.Row >= start+rows {
		start = st.cursor.Row - rows + 1
	}
	if st.cursor.Row < start {
		start = st.cursor.Row
	}
	if last := st.buf.Len() - rows; start > last {
		start = last
	}
	st.setVertical(start)
	st.clampColumn()
}
