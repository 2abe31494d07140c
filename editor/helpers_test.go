package editor

import (
	"testing"
	"time"

	"github.com/iw2rmb/fred/buffer"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testConfig(width, height int) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	return cfg
}

func newTestState(t *testing.T, width, height int, lines ...string) *State {
	t.Helper()
	return NewState(buffer.New(lines...), testConfig(width, height))
}

func numberedLines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i%26))
	}
	return out
}

// press feeds tokens to st at t0 and returns the last result.
func press(st *State, toks ...Token) Result {
	var res Result
	for _, tok := range toks {
		res = st.Handle(Input{Token: tok}, t0)
	}
	return res
}

func typeText(st *State, s string) Result {
	var res Result
	for _, r := range s {
		res = st.Handle(Input{Token: TokenRune, Rune: r}, t0)
	}
	return res
}

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// checkInvariants fails t when st breaks a viewport or cursor invariant.
func checkInvariants(t fataler, st *State) {
	t.Helper()
	vp := st.Viewport()
	cur := st.Cursor()
	n := st.Buffer().Len()

	if vp.VStart < 0 || vp.VStart > vp.VEnd || vp.VEnd > n {
		t.Fatalf("vertical range %v outside buffer of %d lines", vp, n)
	}
	if vp.Lines() > st.rows() {
		t.Fatalf("vertical range %v taller than %d rows", vp, st.rows())
	}
	if !vp.ContainsLine(cur.Row) {
		t.Fatalf("cursor line %d outside %v", cur.Row, vp)
	}
	if ll := st.Buffer().LineLen(cur.Row); cur.Col < 0 || cur.Col > ll {
		t.Fatalf("cursor column %d outside line of %d runes", cur.Col, ll)
	}
	if cur.Col < vp.HStart || cur.Col >= vp.HEnd {
		t.Fatalf("cursor column %d outside %v", cur.Col, vp)
	}
	if vp.Columns() != st.textWidth() {
		t.Fatalf("horizontal range %v, want width %d", vp, st.textWidth())
	}
	col, row := st.CursorScreen()
	if w, h := st.Size(); col >= w || row >= h {
		t.Fatalf("cursor screen (%d,%d) outside %dx%d terminal", col, row, w, h)
	}
	if col-st.GutterWidth() < 0 || col-st.GutterWidth()+vp.HStart > st.Buffer().LineLen(cur.Row) {
		t.Fatalf("screen column %d maps outside the line", col)
	}
}
