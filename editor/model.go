package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fred/buffer"
	"github.com/iw2rmb/fred/internal/screen"
)

// Model is a Bubble Tea component hosting the editing state and the surface
// it is painted on.
type Model struct {
	cfg  Config
	st   *State
	grid *screen.Grid
}

func New(cfg Config, buf *buffer.Buffer) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	st := NewState(buf, cfg)
	w, h := st.Size()
	m := Model{
		cfg:  cfg,
		st:   st,
		grid: screen.New(w, h, cfg.Style.palette()),
	}
	Paint(m.grid, m.st, RedrawFull)
	return m
}

// State exposes the editing state. Hosts must not mutate it concurrently
// with Update.
func (m Model) State() *State { return m.st }

func (m Model) Buffer() *buffer.Buffer { return m.st.Buffer() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.st.Resize(width, height)
	w, h := m.st.Size()
	m.grid.Resize(w, h)
	Paint(m.grid, m.st, RedrawFull)
	return m
}

// SetMessage shows msg in the status line until the next key press.
func (m Model) SetMessage(msg string) Model {
	Paint(m.grid, m.st, m.st.SetMessage(msg))
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	default:
		return m, nil
	}
}

// Focus shows the cursor cell. Models start focused.
func (m Model) Focus() Model {
	m.grid.HideCursor(false)
	return m
}

// Blur hides the cursor cell, for example while the terminal window has lost
// focus. Input is still handled.
func (m Model) Blur() Model {
	m.grid.HideCursor(true)
	return m
}

func (m Model) View() string { return m.grid.View() }
