package editor

import "github.com/iw2rmb/fred/buffer"

// ChangeEvent describes the buffer after an edit.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Mode    Mode

	// Line is the text of the edited line.
	Line string
}

func buildChangeEvent(st *State) ChangeEvent {
	line, _ := st.buf.Line(st.cursor.Row)
	return ChangeEvent{
		Version: st.buf.Version(),
		Cursor:  st.cursor,
		Mode:    st.mode,
		Line:    line.String(),
	}
}
