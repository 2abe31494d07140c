package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	redraw := RedrawNone
	edited := false
	for _, in := range m.cfg.KeyMap.Resolve(m.st.Mode(), msg) {
		res := m.st.Handle(in, m.cfg.Now())
		redraw = redraw.Merge(res.Redraw)
		edited = edited || res.Edited
		if res.Quit {
			return m, tea.Quit
		}
	}

	Paint(m.grid, m.st, redraw)
	if edited && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.st))
	}
	return m, nil
}
