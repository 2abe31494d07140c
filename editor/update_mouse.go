package editor

import tea "github.com/charmbracelet/bubbletea"

// updateMouse handles left clicks, which place the cursor, and the wheel,
// which moves the cursor one line like j and k. Other mouse events are
// ignored.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	var redraw Redraw
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonLeft:
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		redraw = m.st.Click(msg.X, msg.Y)
	case tea.MouseButtonWheelDown:
		redraw = m.st.Handle(Input{Token: TokenDown}, m.cfg.Now()).Redraw
	case tea.MouseButtonWheelUp:
		redraw = m.st.Handle(Input{Token: TokenUp}, m.cfg.Now()).Redraw
	default:
		return m, nil
	}

	Paint(m.grid, m.st, redraw)
	return m, nil
}

// mouseInBounds reports whether (x, y) lies on a text row. The status row
// is not clickable.
func (m Model) mouseInBounds(x, y int) bool {
	w, _ := m.st.Size()
	return x >= 0 && x < w && y >= 0 && y < m.st.rows()
}
