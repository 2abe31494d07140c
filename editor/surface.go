package editor

import "github.com/iw2rmb/fred/internal/screen"

// Surface is the terminal the render engine paints on.
type Surface interface {
	Size() (cols, rows int)
	MoveTo(col, row int)
	// ClearRegion blanks rows in [top, bottom).
	ClearRegion(top, bottom int)
	SetRole(role screen.Role)
	Print(s string)
}

var _ Surface = (*screen.Grid)(nil)
