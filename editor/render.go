package editor

import "github.com/iw2rmb/fred/internal/screen"

// Paint repaints the parts of s selected by r.
//
//   - RedrawFull repaints the visible buffer region, the status line and the cursor.
//   - RedrawStatus repaints the status line and the cursor.
//   - RedrawCursor only moves the cursor.
func Paint(s Surface, st *State, r Redraw) {
	switch r {
	case RedrawFull:
		paintBody(s, st)
		fallthrough
	case RedrawStatus:
		paintStatus(s, st)
		fallthrough
	case RedrawCursor:
		col, row := st.CursorScreen()
		s.MoveTo(col, row)
	}
}

func paintBody(s Surface, st *State) {
	rows := st.rows()
	gutter := st.gutterWidth()
	s.ClearRegion(0, rows)

	for i := 0; i < rows; i++ {
		line := st.vp.VStart + i
		if line >= st.vp.VEnd {
			break
		}
		s.MoveTo(0, i)
		if gutter > 0 {
			s.SetRole(screen.RoleGutter)
			s.Print(LineNumberText(line+1, gutter))
		}
		s.SetRole(screen.RoleText)
		s.Print(string(st.buf.LineSlice(line, st.vp.HStart, st.vp.HEnd)))
	}
}

// paintStatus paints the last terminal row. On a one-row terminal that row
// holds text and the status line is clipped.
func paintStatus(s Surface, st *State) {
	s.MoveTo(0, st.rows())
	s.SetRole(screen.RoleStatus)
	s.Print(st.StatusLine())
	s.SetRole(screen.RoleText)
}
