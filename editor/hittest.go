package editor

import "github.com/iw2rmb/fred/buffer"

// ScreenToBuffer maps screen coordinates to a buffer position.
//
// Rows are 0-based from the top of the viewport; columns include the gutter.
// The result is not clamped into the buffer; callers that need a valid
// position pass it through buffer.Buffer.ClampPos.
func ScreenToBuffer(col, row int, vp Viewport, gutter int) buffer.Pos {
	return buffer.Pos{
		Row: vp.VStart + row,
		Col: col - gutter + vp.HStart,
	}
}

// BufferToScreen maps a buffer position to screen coordinates.
//
// ok is false when pos lies outside the viewport window.
func BufferToScreen(pos buffer.Pos, vp Viewport, gutter int) (col, row int, ok bool) {
	row = pos.Row - vp.VStart
	col = pos.Col - vp.HStart + gutter
	ok = pos.Row >= vp.VStart && pos.Row < vp.VEnd &&
		pos.Col >= vp.HStart && pos.Col < vp.HEnd
	return col, row, ok
}

// ClampToStartOfLine keeps a screen column out of the gutter.
func ClampToStartOfLine(col, gutter int) int {
	if col < gutter {
		return gutter
	}
	return col
}

// ClampToEndOfLine keeps a screen column at or before the insertion point
// after the last rune of a line of lineLen runes, given the horizontal
// scroll offset hStart.
func ClampToEndOfLine(col, lineLen, gutter, hStart int) int {
	end := gutter + lineLen - hStart
	if end < gutter {
		end = gutter
	}
	if col > end {
		return end
	}
	return col
}
