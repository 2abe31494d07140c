package editor

import "github.com/iw2rmb/fred/buffer"

// ViewportState is a stable host-facing snapshot of the editor camera.
type ViewportState struct {
	Viewport Viewport
	// Rows is the number of interior rows available for text.
	Rows int
	// GutterWidth is the width of the line-number gutter, 0 when hidden.
	GutterWidth int
	// DrawLine is the 1-based row of the cursor inside the viewport.
	DrawLine int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		Viewport:    m.st.Viewport(),
		Rows:        m.st.rows(),
		GutterWidth: m.st.GutterWidth(),
		DrawLine:    m.st.DrawLine(),
	}
}

// ScreenToDoc maps screen coordinates to a document position clamped into
// the buffer.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	x = ClampToStartOfLine(x, m.st.GutterWidth())
	p := ScreenToBuffer(x, y, m.st.Viewport(), m.st.GutterWidth())
	return m.st.Buffer().ClampPos(p)
}

// DocToScreen maps a document position to screen coordinates.
//
// ok is false when the position is outside the viewport.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	return BufferToScreen(pos, m.st.Viewport(), m.st.GutterWidth())
}
