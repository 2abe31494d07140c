package editor

// Redraw is the repaint requested by an operation, ordered by cost.
type Redraw uint8

const (
	// RedrawNone: nothing visible changed.
	RedrawNone Redraw = iota
	// RedrawCursor: only the physical cursor moves.
	RedrawCursor
	// RedrawStatus: the status line and the cursor.
	RedrawStatus
	// RedrawFull: the visible buffer region, the status line and the cursor.
	RedrawFull
)

// Merge returns the more expensive of r and o.
func (r Redraw) Merge(o Redraw) Redraw {
	if o > r {
		return o
	}
	return r
}

func (r Redraw) String() string {
	switch r {
	case RedrawCursor:
		return "cursor"
	case RedrawStatus:
		return "status"
	case RedrawFull:
		return "full"
	default:
		return "none"
	}
}
