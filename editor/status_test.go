package editor

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	st := newTestState(t, 80, 5, "a", "bb", "ccc")
	press(st, TokenDown, TokenGoto)

	want := " NORMAL | Line: 2/3 | DrawLine: 2 | V: [0, 3) | H: [0, 78) | Pending: g"
	assert.Equal(t, want, st.StatusText())
}

func TestStatusLine_PadsToWidth(t *testing.T) {
	st := newTestState(t, 120, 5, "a")
	line := st.StatusLine()

	assert.Equal(t, 120, runewidth.StringWidth(line))
	assert.Equal(t, st.StatusText(), line[:len(st.StatusText())])
}

func TestStatusLine_TruncatesToWidth(t *testing.T) {
	st := newTestState(t, 10, 5, "a")
	assert.Equal(t, " NORMAL | ", st.StatusLine())
}

func TestStatusLine_ShorterOverwritesLonger(t *testing.T) {
	st := newTestState(t, 100, 5, numberedLines(3)...)
	press(st, TokenInsert)
	long := st.StatusLine()
	press(st, TokenEscape)
	short := st.StatusLine()

	assert.Equal(t, len(long), len(short))
	assert.Contains(t, short, "NORMAL")
}
