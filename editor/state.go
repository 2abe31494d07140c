package editor

import (
	"strings"
	"time"

	"github.com/iw2rmb/fred/buffer"
)

// State is the complete editing state. It is owned by a single event loop
// and mutated only through Handle and Resize.
type State struct {
	buf    *buffer.Buffer
	vp     Viewport
	cursor buffer.Pos

	mode      Mode
	pending   PendingKey
	pendingAt time.Time

	width, height int

	showLineNums   bool
	gutterPolicy   GutterPolicy
	fixedGutter    int
	pendingPolicy  PendingPolicy
	pendingTimeout time.Duration
	tabText        string

	message string
	quit    bool
}

// Result reports what Handle did.
type Result struct {
	Redraw Redraw
	Quit   bool
	// Edited is set when the buffer content changed.
	Edited bool
}

// NewState attaches buf to a fresh state in Normal mode with the cursor at
// the top-left. A buffer without lines gets one empty line so Insert mode has
// somewhere to write.
func NewState(buf *buffer.Buffer, cfg Config) *State {
	if buf == nil {
		buf = buffer.New()
	}
	if buf.Len() == 0 {
		buf.Load([]string{""})
	}

	st := &State{
		buf:            buf,
		mode:           ModeNormal,
		showLineNums:   cfg.ShowLineNums,
		gutterPolicy:   cfg.Gutter,
		pendingPolicy:  cfg.Pending,
		pendingTimeout: cfg.PendingTimeout,
		tabText:        "\t",
		message:        cfg.Message,
		width:          1,
		height:         1,
	}
	if cfg.ExpandTabs && cfg.TabSpaces > 0 {
		st.tabText = strings.Repeat(" ", cfg.TabSpaces)
	}
	st.fixedGutter = LineNumberWidth(buf.Len())
	st.Resize(cfg.Width, cfg.Height)
	return st
}

func (st *State) Buffer() *buffer.Buffer { return st.buf }

func (st *State) Viewport() Viewport { return st.vp }

func (st *State) Cursor() buffer.Pos { return st.cursor }

func (st *State) Mode() Mode { return st.mode }

func (st *State) Pending() PendingKey { return st.pending }

func (st *State) Size() (width, height int) { return st.width, st.height }

func (st *State) Quit() bool { return st.quit }

// Message returns the transient status message, if any.
func (st *State) Message() string { return st.message }

// SetMessage replaces the transient status message. It is cleared by the
// next key press.
func (st *State) SetMessage(msg string) Redraw {
	if msg == st.message {
		return RedrawNone
	}
	st.message = msg
	return RedrawStatus
}

// GutterWidth returns the gutter width currently used for mapping.
func (st *State) GutterWidth() int { return st.gutterWidth() }

// DrawLine is the 1-based row of the cursor inside the viewport.
func (st *State) DrawLine() int { return st.screenRow() + 1 }

// CursorScreen returns the screen position the physical cursor should be
// placed at.
func (st *State) CursorScreen() (col, row int) {
	col, row, _ = BufferToScreen(st.cursor, st.vp, st.gutterWidth())
	return col, row
}

// Click places the cursor at the buffer position under screen cell
// (col, row). Gutter cells select the start of the line; cells past the end
// of a line select its end.
func (st *State) Click(col, row int) Redraw {
	if st.quit {
		return RedrawNone
	}
	line := st.vp.VStart + row
	if line >= st.vp.VEnd {
		line = st.vp.VEnd - 1
	}
	if line < st.vp.VStart {
		line = st.vp.VStart
	}
	gutter := st.gutterWidth()
	col = ClampToStartOfLine(col, gutter)
	col = ClampToEndOfLine(col, st.buf.LineLen(line), gutter, st.vp.HStart)
	return st.jumpTo(ScreenToBuffer(col, line-st.vp.VStart, st.vp, gutter))
}

// Resize applies a new terminal size and restores the viewport invariants.
// Sizes below one cell are treated as one.
func (st *State) Resize(width, height int) Redraw {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	st.width, st.height = width, height
	st.reanchor()
	return RedrawFull
}

// Handle dispatches one input at time now and applies the resulting
// transition.
func (st *State) Handle(in Input, now time.Time) Result {
	if st.quit {
		return Result{Quit: true}
	}

	prevMode, prevPending := st.mode, st.pending
	prevVersion := st.buf.Version()

	redraw := RedrawNone
	if st.message != "" {
		st.message = ""
		redraw = RedrawStatus
	}

	if st.pending.Active() && st.pendingTimeout > 0 && now.Sub(st.pendingAt) > st.pendingTimeout {
		st.pending = Inactive()
	}

	tr := Dispatch(st.mode, st.pending, in, st.pendingPolicy)
	redraw = redraw.Merge(st.apply(tr.Action, in))
	if !tr.KeepPending {
		st.pending = tr.Next
		if st.pending.Active() {
			st.pendingAt = now
		}
	}

	if st.mode != prevMode || st.pending != prevPending {
		redraw = redraw.Merge(RedrawStatus)
	}
	return Result{
		Redraw: redraw,
		Quit:   st.quit,
		Edited: st.buf.Version() != prevVersion,
	}
}

func (st *State) apply(a Action, in Input) Redraw {
	switch a {
	case ActionMoveLeft:
		return st.moveLeft()
	case ActionMoveDown:
		return st.moveDown()
	case ActionMoveUp:
		return st.moveUp()
	case ActionMoveRight:
		return st.moveRight()
	case ActionGotoTop:
		return st.gotoTop()
	case ActionGotoBottom:
		return st.gotoBottom()
	case ActionEnterNormal:
		st.mode = ModeNormal
		return RedrawNone
	case ActionEnterInsert:
		st.mode = ModeInsert
		return st.clampColumn()
	case ActionEnterVisual:
		st.mode = ModeVisual
		return RedrawNone
	case ActionInsertRune:
		return st.insert(string(in.Rune))
	case ActionInsertTab:
		return st.insert(st.tabText)
	case ActionDeleteBackward:
		return st.deleteBackward()
	case ActionQuit:
		st.quit = true
		return RedrawNone
	default:
		return RedrawNone
	}
}

// insert writes s before the cursor and advances the cursor past it.
func (st *State) insert(s string) Redraw {
	next, ok := st.buf.InsertString(st.cursor.Row, st.cursor.Col, s)
	if !ok {
		return RedrawNone
	}
	st.cursor = next
	st.followColumn()
	return RedrawFull
}

// deleteBackward removes the rune before the cursor. Column 0 is a no-op.
func (st *State) deleteBackward() Redraw {
	next, ok := st.buf.RemoveCharBefore(st.cursor.Row, st.cursor.Col)
	if !ok {
		return RedrawNone
	}
	st.cursor = next
	st.followColumn()
	return RedrawFull
}
