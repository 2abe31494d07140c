package editor

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// StatusText returns the unpadded status line.
func (st *State) StatusText() string {
	s := fmt.Sprintf(" %s | Line: %d/%d | DrawLine: %d | %s | Pending: %s",
		st.mode,
		st.cursor.Row+1,
		st.buf.Len(),
		st.DrawLine(),
		st.vp,
		st.pending,
	)
	if st.message != "" {
		s += " | " + st.message
	}
	return s
}

// StatusLine returns the status line truncated or right-padded with spaces
// to the terminal width, so a shorter line overwrites a longer one.
func (st *State) StatusLine() string {
	return padToWidth(st.StatusText(), st.width)
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	return runewidth.FillRight(s, width)
}
