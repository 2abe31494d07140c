package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fred/buffer"
)

func TestViewportState_FollowsCursor(t *testing.T) {
	m := newTestModel(10, 3, "0", "1", "2", "3")

	vs := m.ViewportState()
	if vs.Viewport.VStart != 0 || vs.Rows != 2 || vs.GutterWidth != 2 || vs.DrawLine != 1 {
		t.Fatalf("initial viewport state: got %+v", vs)
	}

	m, _ = sendKeys(m, runeKey("j"), runeKey("j"))
	vs = m.ViewportState()
	if vs.Viewport.VStart != 1 || vs.Viewport.VEnd != 3 || vs.DrawLine != 2 {
		t.Fatalf("after two moves down: got %+v", vs)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.ViewportState().Viewport.VStart; got != 0 {
		t.Fatalf("after two moves up: VStart %d, want 0", got)
	}
}

func TestScreenToDoc_ClampsIntoBuffer(t *testing.T) {
	m := newTestModel(20, 5, "abc", "de")

	tests := []struct {
		x, y int
		want buffer.Pos
	}{
		{0, 0, buffer.Pos{Row: 0, Col: 0}},
		{1, 1, buffer.Pos{Row: 1, Col: 0}},
		{3, 0, buffer.Pos{Row: 0, Col: 1}},
		{99, 1, buffer.Pos{Row: 1, Col: 2}},
		{5, 9, buffer.Pos{Row: 1, Col: 2}},
	}
	for _, tt := range tests {
		if got := m.ScreenToDoc(tt.x, tt.y); got != tt.want {
			t.Fatalf("ScreenToDoc(%d, %d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDocToScreen(t *testing.T) {
	m := newTestModel(20, 5, "abc", "de")

	x, y, ok := m.DocToScreen(buffer.Pos{Row: 1, Col: 1})
	if !ok || x != 3 || y != 1 {
		t.Fatalf("DocToScreen(1,1): got (%d,%d,%v), want (3,1,true)", x, y, ok)
	}
	if _, _, ok := m.DocToScreen(buffer.Pos{Row: 2}); ok {
		t.Fatalf("row past the buffer should not be visible")
	}
}
